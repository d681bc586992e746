package validation_test

import (
	"testing"

	"github.com/frahmantamala/employee-directory/internal/core/common/validation"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestValidation(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Validation Suite")
}

func strPtr(s string) *string { return &s }

var _ = Describe("ValidationBuilder", func() {
	It("returns nil when every rule passes", func() {
		v := validation.NewValidator()
		v.Field("name", "HR").Required("")
		v.Field("email", "jane@x.com").Required("").Email("")
		Expect(v.Validate()).To(BeNil())
	})

	It("reports the first failing rule per field", func() {
		v := validation.NewValidator()
		v.Field("email", "").Required("Email cannot be null").Email("Enter a valid email")
		v.Field("first_name", "  ").Required("Enter your first name")

		errs := v.Validate()
		Expect(errs).To(HaveLen(2))
		Expect(errs).To(HaveKeyWithValue("email", "Email cannot be null"))
		Expect(errs).To(HaveKeyWithValue("first_name", "Enter your first name"))
	})

	It("rejects malformed emails", func() {
		v := validation.NewValidator()
		v.Field("email", "not-an-email").Required("").Email("Enter a valid email")
		Expect(v.Validate()).To(HaveKeyWithValue("email", "Enter a valid email"))

		v = validation.NewValidator()
		v.Field("email", "Jane <jane@x.com>").Email("Enter a valid email")
		Expect(v.Validate()).To(HaveKey("email"))
	})

	It("treats nil pointers as missing", func() {
		var missing *string
		v := validation.NewValidator()
		v.Field("department_id", missing).Required("Department cannot be null")
		Expect(v.Validate()).To(HaveKeyWithValue("department_id", "Department cannot be null"))
	})

	It("allows omitted optional fields but rejects blank ones", func() {
		var omitted *string
		v := validation.NewValidator()
		v.Field("name", omitted).NotBlank("")
		Expect(v.Validate()).To(BeNil())

		v = validation.NewValidator()
		v.Field("name", strPtr(" ")).NotBlank("")
		Expect(v.Validate()).To(HaveKeyWithValue("name", "name cannot be blank"))
	})

	It("enforces maximum length", func() {
		v := validation.NewValidator()
		v.Field("name", "abcdef").MaxLength(3)
		Expect(v.Validate()).To(HaveKeyWithValue("name", "name must not exceed 3 characters"))
	})
})
