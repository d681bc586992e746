package postgres

import (
	"context"

	"github.com/frahmantamala/employee-directory/internal"
	employeeDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/employee"
	"github.com/frahmantamala/employee-directory/internal/core/dberror"
	"github.com/frahmantamala/employee-directory/internal/employee"
	"gorm.io/gorm"
)

const entity = "employee"

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.RepositoryAPI {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*employeeDatamodel.Employee, error) {
	var emp employeeDatamodel.Employee
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&emp).Error; err != nil {
		return nil, dberror.Classify("get", entity, err)
	}
	return &emp, nil
}

func (r *EmployeeRepository) GetByEmail(ctx context.Context, email string) (*employeeDatamodel.Employee, error) {
	var emp employeeDatamodel.Employee
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&emp).Error; err != nil {
		return nil, dberror.Classify("get", entity, err)
	}
	return &emp, nil
}

func (r *EmployeeRepository) GetAll(ctx context.Context) ([]*employeeDatamodel.Employee, error) {
	var employees []*employeeDatamodel.Employee
	err := r.db.WithContext(ctx).Order("id ASC").Find(&employees).Error
	return employees, dberror.Classify("list", entity, err)
}

func (r *EmployeeRepository) GetByDepartmentID(ctx context.Context, departmentID int64) ([]*employeeDatamodel.Employee, error) {
	var employees []*employeeDatamodel.Employee
	err := r.db.WithContext(ctx).
		Where("department_id = ?", departmentID).
		Order("id ASC").
		Find(&employees).Error
	return employees, dberror.Classify("list", entity, err)
}

func (r *EmployeeRepository) Create(ctx context.Context, emp *employeeDatamodel.Employee) error {
	return dberror.Classify("create", entity, r.db.WithContext(ctx).Create(emp).Error)
}

func (r *EmployeeRepository) Update(ctx context.Context, emp *employeeDatamodel.Employee) error {
	// Select("*") writes zero values too; unlike Save it never inserts a row
	// that was deleted after it was read.
	result := r.db.WithContext(ctx).Model(emp).Select("*").Updates(emp)
	if result.Error != nil {
		return dberror.Classify("update", entity, result.Error)
	}
	if result.RowsAffected == 0 {
		return internal.NewStoreError("update", entity, internal.ErrRecordNotFound, nil)
	}
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&employeeDatamodel.Employee{}, id)
	if result.Error != nil {
		return dberror.Classify("delete", entity, result.Error)
	}
	if result.RowsAffected == 0 {
		return internal.NewStoreError("delete", entity, internal.ErrRecordNotFound, nil)
	}
	return nil
}
