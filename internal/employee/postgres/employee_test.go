package postgres_test

import (
	"context"
	"testing"

	"github.com/frahmantamala/employee-directory/internal"
	employeeDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/employee"
	"github.com/frahmantamala/employee-directory/internal/employee"
	employeePostgres "github.com/frahmantamala/employee-directory/internal/employee/postgres"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestEmployeePostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Employee Postgres Suite")
}

var _ = Describe("Employee PostgreSQL Repository", func() {
	var (
		repo employee.RepositoryAPI
		ctx  context.Context
	)

	int64Ptr := func(v int64) *int64 { return &v }

	newEmployee := func(email string, departmentID int64) *employeeDatamodel.Employee {
		return &employeeDatamodel.Employee{
			FirstName:    "Jane",
			LastName:     "Doe",
			Phone:        "000",
			Address:      "addr",
			Email:        email,
			PasswordHash: "hash",
			DepartmentID: int64Ptr(departmentID),
			RoleID:       int64Ptr(1),
		}
	}

	BeforeEach(func() {
		ctx = context.Background()
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(db.AutoMigrate(&employeeDatamodel.Employee{})).To(Succeed())

		repo = employeePostgres.NewEmployeeRepository(db)
	})

	It("creates with a default inactive status", func() {
		emp := newEmployee("jane@x.com", 1)
		Expect(repo.Create(ctx, emp)).To(Succeed())

		stored, err := repo.GetByID(ctx, emp.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.Status).To(BeFalse())
		Expect(stored.PasswordHash).To(Equal("hash"))
		Expect(stored.CreatedAt).NotTo(BeZero())
	})

	It("reports a duplicate email as a conflict", func() {
		Expect(repo.Create(ctx, newEmployee("jane@x.com", 1))).To(Succeed())
		err := repo.Create(ctx, newEmployee("jane@x.com", 2))
		Expect(internal.IsDuplicate(err)).To(BeTrue())
	})

	It("finds by email", func() {
		Expect(repo.Create(ctx, newEmployee("jane@x.com", 1))).To(Succeed())

		found, err := repo.GetByEmail(ctx, "jane@x.com")
		Expect(err).NotTo(HaveOccurred())
		Expect(found.FirstName).To(Equal("Jane"))

		_, err = repo.GetByEmail(ctx, "ghost@x.com")
		Expect(internal.IsNotFound(err)).To(BeTrue())
	})

	It("lists only the given department", func() {
		Expect(repo.Create(ctx, newEmployee("a@x.com", 1))).To(Succeed())
		Expect(repo.Create(ctx, newEmployee("b@x.com", 1))).To(Succeed())
		Expect(repo.Create(ctx, newEmployee("c@x.com", 2))).To(Succeed())

		rows, err := repo.GetByDepartmentID(ctx, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(2))
		Expect(rows[0].Email).To(Equal("a@x.com"))
		Expect(rows[1].Email).To(Equal("b@x.com"))

		rows, err = repo.GetByDepartmentID(ctx, 9)
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(BeEmpty())
	})

	It("updates and deletes", func() {
		emp := newEmployee("jane@x.com", 1)
		Expect(repo.Create(ctx, emp)).To(Succeed())

		emp.Status = true
		emp.DepartmentID = int64Ptr(2)
		Expect(repo.Update(ctx, emp)).To(Succeed())

		stored, err := repo.GetByID(ctx, emp.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.Status).To(BeTrue())
		Expect(*stored.DepartmentID).To(Equal(int64(2)))

		Expect(repo.Delete(ctx, emp.ID)).To(Succeed())
		Expect(internal.IsNotFound(repo.Delete(ctx, emp.ID))).To(BeTrue())
	})

	It("writes zero values back on update", func() {
		emp := newEmployee("jane@x.com", 1)
		emp.Status = true
		Expect(repo.Create(ctx, emp)).To(Succeed())

		emp.Status = false
		emp.Address = ""
		Expect(repo.Update(ctx, emp)).To(Succeed())

		stored, err := repo.GetByID(ctx, emp.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.Status).To(BeFalse())
		Expect(stored.Address).To(BeEmpty())
	})

	It("does not recreate a row deleted after it was read", func() {
		emp := newEmployee("jane@x.com", 1)
		Expect(repo.Create(ctx, emp)).To(Succeed())
		Expect(repo.Delete(ctx, emp.ID)).To(Succeed())

		emp.Phone = "111"
		Expect(internal.IsNotFound(repo.Update(ctx, emp))).To(BeTrue())

		rows, err := repo.GetAll(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(BeEmpty())
	})
})
