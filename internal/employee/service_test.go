package employee_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/frahmantamala/employee-directory/internal"
	departmentDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/department"
	employeeDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/employee"
	roleDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/role"
	"github.com/frahmantamala/employee-directory/internal/employee"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestEmployee(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Employee Suite")
}

func strPtr(s string) *string { return &s }

func notFound(entity string) error {
	return internal.NewStoreError("get", entity, internal.ErrRecordNotFound, nil)
}

type mockEmployeeRepository struct {
	employees   map[int64]*employeeDatamodel.Employee
	nextID      int64
	createCalls int
	updateCalls int
	deleteCalls int
	createErr   error
	updateErr   error
	getErr      error
}

func newMockEmployeeRepository() *mockEmployeeRepository {
	return &mockEmployeeRepository{
		employees: make(map[int64]*employeeDatamodel.Employee),
		nextID:    1,
	}
}

func (m *mockEmployeeRepository) GetByID(ctx context.Context, id int64) (*employeeDatamodel.Employee, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if e, ok := m.employees[id]; ok {
		copied := *e
		return &copied, nil
	}
	return nil, notFound("employee")
}

func (m *mockEmployeeRepository) GetByEmail(ctx context.Context, email string) (*employeeDatamodel.Employee, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, e := range m.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return nil, notFound("employee")
}

func (m *mockEmployeeRepository) GetAll(ctx context.Context) ([]*employeeDatamodel.Employee, error) {
	var out []*employeeDatamodel.Employee
	for _, e := range m.employees {
		out = append(out, e)
	}
	return out, nil
}

func (m *mockEmployeeRepository) GetByDepartmentID(ctx context.Context, departmentID int64) ([]*employeeDatamodel.Employee, error) {
	var out []*employeeDatamodel.Employee
	for _, e := range m.employees {
		if e.DepartmentID != nil && *e.DepartmentID == departmentID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockEmployeeRepository) Create(ctx context.Context, e *employeeDatamodel.Employee) error {
	m.createCalls++
	if m.createErr != nil {
		return m.createErr
	}
	e.ID = m.nextID
	m.nextID++
	m.employees[e.ID] = e
	return nil
}

func (m *mockEmployeeRepository) Update(ctx context.Context, e *employeeDatamodel.Employee) error {
	m.updateCalls++
	if m.updateErr != nil {
		return m.updateErr
	}
	m.employees[e.ID] = e
	return nil
}

func (m *mockEmployeeRepository) Delete(ctx context.Context, id int64) error {
	m.deleteCalls++
	delete(m.employees, id)
	return nil
}

type mockDepartments struct {
	rows  map[int64]*departmentDatamodel.Department
	calls int
	err   error
}

func (m *mockDepartments) GetByID(ctx context.Context, id int64) (*departmentDatamodel.Department, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if d, ok := m.rows[id]; ok {
		return d, nil
	}
	return nil, notFound("department")
}

type mockRoles struct {
	rows  map[int64]*roleDatamodel.Role
	calls int
}

func (m *mockRoles) GetByID(ctx context.Context, id int64) (*roleDatamodel.Role, error) {
	m.calls++
	if r, ok := m.rows[id]; ok {
		return r, nil
	}
	return nil, notFound("role")
}

type fakeHasher struct {
	hashed []string
	err    error
}

func (f *fakeHasher) Hash(plaintext string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.hashed = append(f.hashed, plaintext)
	return "hashed:" + plaintext, nil
}

var _ = Describe("Employee Service", func() {
	var (
		ctx         context.Context
		repo        *mockEmployeeRepository
		departments *mockDepartments
		roles       *mockRoles
		hasher      *fakeHasher
		service     *employee.Service
	)

	validRequest := func() employee.CreateEmployeeRequest {
		return employee.CreateEmployeeRequest{
			FirstName:    "Jane",
			LastName:     "Doe",
			Email:        "jane@x.com",
			Phone:        "000",
			Address:      "addr",
			DepartmentID: strPtr("1"),
			RoleID:       strPtr("2"),
		}
	}

	BeforeEach(func() {
		ctx = context.Background()
		repo = newMockEmployeeRepository()
		departments = &mockDepartments{rows: map[int64]*departmentDatamodel.Department{
			1: {ID: 1, Name: "HR"},
			5: {ID: 5, Name: "IT"},
		}}
		roles = &mockRoles{rows: map[int64]*roleDatamodel.Role{2: {ID: 2, Name: "Employee"}}}
		hasher = &fakeHasher{}
		validator := employee.NewReferenceValidator(departments, roles)
		service = employee.NewService(repo, validator, hasher, "Password@123", nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	})

	Describe("CreateEmployee", func() {
		It("links the resolved references and stores the default password hash", func() {
			req := validRequest()
			req.Password = "caller-chosen"

			resp := service.CreateEmployee(ctx, req)
			Expect(resp.Code).To(Equal(internal.CodeSuccess))

			created := resp.Data.(*employee.Employee)
			Expect(created.ID).To(BeNumerically(">", 0))
			Expect(*created.DepartmentID).To(Equal(int64(1)))
			Expect(*created.RoleID).To(Equal(int64(2)))
			Expect(created.Status).To(BeFalse())

			Expect(hasher.hashed).To(Equal([]string{"Password@123"}))
			Expect(repo.employees[created.ID].PasswordHash).To(Equal("hashed:Password@123"))
		})

		It("round-trips every caller-supplied field", func() {
			created := service.CreateEmployee(ctx, validRequest()).Data.(*employee.Employee)

			got := service.GetEmployee(ctx, created.ID).Data.(*employee.Employee)
			Expect(got.FirstName).To(Equal("Jane"))
			Expect(got.LastName).To(Equal("Doe"))
			Expect(got.Email).To(Equal("jane@x.com"))
			Expect(got.Phone).To(Equal("000"))
			Expect(got.Address).To(Equal("addr"))
		})

		It("persists nothing when the department does not resolve", func() {
			req := validRequest()
			req.DepartmentID = strPtr("404")

			resp := service.CreateEmployee(ctx, req)
			Expect(resp.Code).To(Equal(internal.CodeFailed))
			Expect(resp.Message).To(Equal("Unable to create employee, department not found"))
			Expect(repo.createCalls).To(BeZero())
		})

		It("reports a missing role", func() {
			req := validRequest()
			req.RoleID = strPtr("9")

			resp := service.CreateEmployee(ctx, req)
			Expect(resp.Message).To(Equal("Unable to create employee, role not found"))
			Expect(repo.createCalls).To(BeZero())
		})

		It("reports a malformed reference as bad input", func() {
			req := validRequest()
			req.DepartmentID = strPtr("abc")

			resp := service.CreateEmployee(ctx, req)
			Expect(resp.Code).To(Equal(internal.CodeFailed))
			Expect(resp.Message).To(Equal("Unable to create employee, pass in correct data"))
		})

		It("reports a taken email as a conflict", func() {
			repo.createErr = internal.NewStoreError("create", "employee", internal.ErrDuplicateRecord, nil)

			resp := service.CreateEmployee(ctx, validRequest())
			Expect(resp.Message).To(Equal("Unable to create employee, employee details has been used"))
		})

		It("reports a department removed before the insert as not found", func() {
			repo.createErr = internal.NewStoreError("create", "employee", internal.ErrInvalidReference, nil)

			resp := service.CreateEmployee(ctx, validRequest())
			Expect(resp.Code).To(Equal(internal.CodeFailed))
			Expect(resp.Message).To(Equal("Unable to create employee, department not found"))
		})

		It("fails when the password cannot be hashed", func() {
			hasher.err = errors.New("entropy exhausted")

			resp := service.CreateEmployee(ctx, validRequest())
			Expect(resp.Message).To(Equal("Unable to create employee, try again later"))
			Expect(repo.createCalls).To(BeZero())
		})
	})

	Describe("UpdateEmployee", func() {
		var id int64

		BeforeEach(func() {
			id = service.CreateEmployee(ctx, validRequest()).Data.(*employee.Employee).ID
		})

		It("moves the employee to a new department", func() {
			resp := service.UpdateEmployee(ctx, id, employee.UpdateEmployeeRequest{DepartmentID: strPtr("5"), Phone: strPtr("999")})
			Expect(resp.Code).To(Equal(internal.CodeSuccess))

			updated := resp.Data.(*employee.Employee)
			Expect(*updated.DepartmentID).To(Equal(int64(5)))
			Expect(*updated.RoleID).To(Equal(int64(2)))
			Expect(updated.Phone).To(Equal("999"))
			Expect(updated.FirstName).To(Equal("Jane"))
		})

		It("does not look up a role on update", func() {
			before := roles.calls
			service.UpdateEmployee(ctx, id, employee.UpdateEmployeeRequest{FirstName: strPtr("Janet")})
			Expect(roles.calls).To(Equal(before))
		})

		It("rejects an unresolvable department without persisting", func() {
			resp := service.UpdateEmployee(ctx, id, employee.UpdateEmployeeRequest{DepartmentID: strPtr("404")})
			Expect(resp.Code).To(Equal(internal.CodeFailed))
			Expect(resp.Message).To(Equal("Unable to update employee, department not found"))
			Expect(repo.updateCalls).To(BeZero())
			Expect(*repo.employees[id].DepartmentID).To(Equal(int64(1)))
		})

		It("reports an absent employee as 90", func() {
			resp := service.UpdateEmployee(ctx, 77, employee.UpdateEmployeeRequest{})
			Expect(resp.Code).To(Equal(internal.CodeNotFound))
			Expect(resp.Message).To(Equal("Unable to retrieve employee"))
		})

		It("reports a department removed before the write as not found", func() {
			repo.updateErr = internal.NewStoreError("update", "employee", internal.ErrInvalidReference, nil)

			resp := service.UpdateEmployee(ctx, id, employee.UpdateEmployeeRequest{DepartmentID: strPtr("5")})
			Expect(resp.Code).To(Equal(internal.CodeFailed))
			Expect(resp.Message).To(Equal("Unable to update employee, department not found"))
		})

		It("reports a row deleted before the write as 90", func() {
			repo.updateErr = internal.NewStoreError("update", "employee", internal.ErrRecordNotFound, nil)

			resp := service.UpdateEmployee(ctx, id, employee.UpdateEmployeeRequest{Phone: strPtr("111")})
			Expect(resp.Code).To(Equal(internal.CodeNotFound))
			Expect(resp.Message).To(Equal("Unable to retrieve employee"))
		})
	})

	Describe("DeleteEmployee", func() {
		It("is not invoked on the store for an absent id", func() {
			resp := service.DeleteEmployee(ctx, 12)
			Expect(resp.Code).To(Equal(internal.CodeNotFound))
			Expect(resp.Message).To(Equal("Employee not found"))
			Expect(repo.deleteCalls).To(BeZero())
		})

		It("returns 90 on the second call", func() {
			id := service.CreateEmployee(ctx, validRequest()).Data.(*employee.Employee).ID
			Expect(service.DeleteEmployee(ctx, id).Code).To(Equal(internal.CodeSuccess))
			Expect(service.DeleteEmployee(ctx, id).Code).To(Equal(internal.CodeNotFound))
		})
	})

	Describe("GetEmployeeByEmail", func() {
		It("returns the auth view with the password hash", func() {
			service.CreateEmployee(ctx, validRequest())

			resp := service.GetEmployeeByEmail(ctx, "jane@x.com")
			Expect(resp.Code).To(Equal(internal.CodeSuccess))
			view := resp.Data.(employee.AuthView)
			Expect(view.Password).To(Equal("hashed:Password@123"))
			Expect(view.WithoutPassword().Password).To(BeEmpty())
		})

		It("reports an unknown email as 90", func() {
			resp := service.GetEmployeeByEmail(ctx, "ghost@x.com")
			Expect(resp.Code).To(Equal(internal.CodeNotFound))
			Expect(resp.Message).To(Equal("Employee not found"))
		})

		It("reports a store failure as 99", func() {
			repo.getErr = errors.New("boom")
			resp := service.GetEmployeeByEmail(ctx, "jane@x.com")
			Expect(resp.Code).To(Equal(internal.CodeFailed))
		})
	})

	Describe("GetAllEmployees", func() {
		It("returns an empty list when nobody is stored", func() {
			resp := service.GetAllEmployees(ctx)
			Expect(resp.Code).To(Equal(internal.CodeSuccess))
			Expect(resp.Data).To(BeEmpty())
		})
	})
})

var _ = Describe("ReferenceValidator", func() {
	var (
		ctx         context.Context
		departments *mockDepartments
		roles       *mockRoles
		validator   *employee.ReferenceValidator
	)

	BeforeEach(func() {
		ctx = context.Background()
		departments = &mockDepartments{rows: map[int64]*departmentDatamodel.Department{1: {ID: 1, Name: "HR"}}}
		roles = &mockRoles{rows: map[int64]*roleDatamodel.Role{2: {ID: 2, Name: "Manager"}}}
		validator = employee.NewReferenceValidator(departments, roles)
	})

	It("resolves both references", func() {
		refs, err := validator.Resolve(ctx, strPtr("1"), strPtr("2"))
		Expect(err).NotTo(HaveOccurred())
		Expect(refs.Department.Name).To(Equal("HR"))
		Expect(refs.Role.Name).To(Equal("Manager"))
	})

	It("leaves absent references unset without a lookup", func() {
		refs, err := validator.Resolve(ctx, nil, strPtr(" "))
		Expect(err).NotTo(HaveOccurred())
		Expect(refs.Department).To(BeNil())
		Expect(refs.Role).To(BeNil())
		Expect(departments.calls + roles.calls).To(BeZero())
	})

	DescribeTable("rejects malformed ids before any lookup",
		func(raw string) {
			_, err := validator.Resolve(ctx, strPtr(raw), nil)
			Expect(err).To(MatchError(employee.ErrMalformedReference))
			Expect(departments.calls).To(BeZero())
		},
		Entry("letters", "abc"),
		Entry("negative", "-1"),
		Entry("zero", "0"),
		Entry("decimal", "1.5"),
		Entry("overflow", "99999999999999999999"),
	)

	It("names the relation that is missing", func() {
		_, err := validator.Resolve(ctx, strPtr("3"), strPtr("2"))
		var missing *employee.MissingReferenceError
		Expect(errors.As(err, &missing)).To(BeTrue())
		Expect(missing.Relation).To(Equal("department"))
		Expect(roles.calls).To(BeZero())

		_, err = validator.Resolve(ctx, strPtr("1"), strPtr("8"))
		Expect(errors.As(err, &missing)).To(BeTrue())
		Expect(missing.Relation).To(Equal("role"))
	})

	It("wraps other store failures", func() {
		departments.err = errors.New("connection refused")
		_, err := validator.Resolve(ctx, strPtr("1"), nil)
		Expect(err).To(MatchError(ContainSubstring("connection refused")))
		var missing *employee.MissingReferenceError
		Expect(errors.As(err, &missing)).To(BeFalse())
	})
})
