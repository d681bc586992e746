package postgres

import (
	"context"

	"github.com/frahmantamala/employee-directory/internal"
	departmentDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/department"
	"github.com/frahmantamala/employee-directory/internal/core/dberror"
	"github.com/frahmantamala/employee-directory/internal/department"
	"gorm.io/gorm"
)

const entity = "department"

type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) department.RepositoryAPI {
	return &DepartmentRepository{db: db}
}

func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*departmentDatamodel.Department, error) {
	var departments []*departmentDatamodel.Department
	err := r.db.WithContext(ctx).Order("id ASC").Find(&departments).Error
	return departments, dberror.Classify("list", entity, err)
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*departmentDatamodel.Department, error) {
	var dept departmentDatamodel.Department
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&dept).Error; err != nil {
		return nil, dberror.Classify("get", entity, err)
	}
	return &dept, nil
}

func (r *DepartmentRepository) GetByName(ctx context.Context, name string) (*departmentDatamodel.Department, error) {
	var dept departmentDatamodel.Department
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&dept).Error; err != nil {
		return nil, dberror.Classify("get", entity, err)
	}
	return &dept, nil
}

func (r *DepartmentRepository) Create(ctx context.Context, dept *departmentDatamodel.Department) error {
	return dberror.Classify("create", entity, r.db.WithContext(ctx).Create(dept).Error)
}

func (r *DepartmentRepository) Update(ctx context.Context, dept *departmentDatamodel.Department) error {
	result := r.db.WithContext(ctx).Model(dept).Select("*").Updates(dept)
	if result.Error != nil {
		return dberror.Classify("update", entity, result.Error)
	}
	if result.RowsAffected == 0 {
		return internal.NewStoreError("update", entity, internal.ErrRecordNotFound, nil)
	}
	return nil
}

func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&departmentDatamodel.Department{}, id)
	if result.Error != nil {
		return dberror.Classify("delete", entity, result.Error)
	}
	if result.RowsAffected == 0 {
		return internal.NewStoreError("delete", entity, internal.ErrRecordNotFound, nil)
	}
	return nil
}
