package postgres

import (
	"context"

	"github.com/frahmantamala/employee-directory/internal"
	roleDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/role"
	"github.com/frahmantamala/employee-directory/internal/core/dberror"
	"github.com/frahmantamala/employee-directory/internal/role"
	"gorm.io/gorm"
)

const entity = "role"

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) role.RepositoryAPI {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) GetAll(ctx context.Context) ([]*roleDatamodel.Role, error) {
	var roles []*roleDatamodel.Role
	err := r.db.WithContext(ctx).Order("id ASC").Find(&roles).Error
	return roles, dberror.Classify("list", entity, err)
}

func (r *RoleRepository) GetByID(ctx context.Context, id int64) (*roleDatamodel.Role, error) {
	var found roleDatamodel.Role
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&found).Error; err != nil {
		return nil, dberror.Classify("get", entity, err)
	}
	return &found, nil
}

func (r *RoleRepository) GetByName(ctx context.Context, name string) (*roleDatamodel.Role, error) {
	var found roleDatamodel.Role
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&found).Error; err != nil {
		return nil, dberror.Classify("get", entity, err)
	}
	return &found, nil
}

func (r *RoleRepository) Create(ctx context.Context, rl *roleDatamodel.Role) error {
	return dberror.Classify("create", entity, r.db.WithContext(ctx).Create(rl).Error)
}

func (r *RoleRepository) Update(ctx context.Context, rl *roleDatamodel.Role) error {
	result := r.db.WithContext(ctx).Model(rl).Select("*").Updates(rl)
	if result.Error != nil {
		return dberror.Classify("update", entity, result.Error)
	}
	if result.RowsAffected == 0 {
		return internal.NewStoreError("update", entity, internal.ErrRecordNotFound, nil)
	}
	return nil
}

func (r *RoleRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&roleDatamodel.Role{}, id)
	if result.Error != nil {
		return dberror.Classify("delete", entity, result.Error)
	}
	if result.RowsAffected == 0 {
		return internal.NewStoreError("delete", entity, internal.ErrRecordNotFound, nil)
	}
	return nil
}
