package role

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/employee-directory/internal"
	roleDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/role"
	"github.com/frahmantamala/employee-directory/internal/core/events"
)

type RepositoryAPI interface {
	GetByID(ctx context.Context, id int64) (*roleDatamodel.Role, error)
	GetByName(ctx context.Context, name string) (*roleDatamodel.Role, error)
	GetAll(ctx context.Context) ([]*roleDatamodel.Role, error)
	Create(ctx context.Context, role *roleDatamodel.Role) error
	Update(ctx context.Context, role *roleDatamodel.Role) error
	Delete(ctx context.Context, id int64) error
}

const (
	msgRetrieveFailed   = "Unable to retrieve role"
	msgRetrieveRetry    = "Unable to retrieve role, try again later"
	msgRetrieveAllRetry = "Unable to retrieve roles, try again later"
	msgCreateDuplicate  = "Unable to create role, role details has been used"
	msgCreateRetry      = "Unable to create role, try again later"
	msgUpdateDuplicate  = "Unable to update role, role details has been used"
	msgUpdateRetry      = "Unable to update role, try again later"
	msgNotFound         = "Role not found"
	msgDeleteRetry      = "Unable to delete role, try again later"
)

type Service struct {
	repo      RepositoryAPI
	publisher events.Publisher
	logger    *slog.Logger
}

func NewService(repo RepositoryAPI, publisher events.Publisher, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *Service) GetRole(ctx context.Context, id int64) *internal.APIResponse {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if internal.IsNotFound(err) {
			return internal.NotFound(msgRetrieveFailed)
		}
		s.logger.Error("failed to get role", "error", err, "role_id", id)
		return internal.Failed(msgRetrieveRetry)
	}
	return internal.Success(FromDataModel(row))
}

func (s *Service) GetAllRoles(ctx context.Context) *internal.APIResponse {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to list roles", "error", err)
		return internal.Failed(msgRetrieveAllRetry)
	}

	roles := make([]*Role, 0, len(rows))
	for _, row := range rows {
		roles = append(roles, FromDataModel(row))
	}
	return internal.Success(roles)
}

func (s *Service) CreateRole(ctx context.Context, req CreateRoleRequest) *internal.APIResponse {
	row := ToDataModel(NewRole(req.Name, req.Description))

	if err := s.repo.Create(ctx, row); err != nil {
		if internal.IsDuplicate(err) {
			s.logger.Warn("role name already in use", "name", req.Name)
			return internal.Failed(msgCreateDuplicate)
		}
		s.logger.Error("failed to create role", "error", err, "name", req.Name)
		return internal.Failed(msgCreateRetry)
	}

	s.logger.Info("role created", "role_id", row.ID, "name", row.Name)
	s.publish(ctx, events.EventTypeRoleCreated, row.ID)
	return internal.Success(FromDataModel(row))
}

func (s *Service) UpdateRole(ctx context.Context, id int64, req UpdateRoleRequest) *internal.APIResponse {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if internal.IsNotFound(err) {
			return internal.NotFound(msgRetrieveFailed)
		}
		s.logger.Error("failed to load role for update", "error", err, "role_id", id)
		return internal.Failed(msgUpdateRetry)
	}

	role := FromDataModel(row)
	role.Apply(req)
	updated := ToDataModel(role)

	if err := s.repo.Update(ctx, updated); err != nil {
		if internal.IsDuplicate(err) {
			s.logger.Warn("role name already in use", "role_id", id)
			return internal.Failed(msgUpdateDuplicate)
		}
		if internal.IsNotFound(err) {
			return internal.NotFound(msgRetrieveFailed)
		}
		s.logger.Error("failed to update role", "error", err, "role_id", id)
		return internal.Failed(msgUpdateRetry)
	}

	s.publish(ctx, events.EventTypeRoleUpdated, id)
	return internal.Success(FromDataModel(updated))
}

func (s *Service) DeleteRole(ctx context.Context, id int64) *internal.APIResponse {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if internal.IsNotFound(err) {
			return internal.NotFound(msgNotFound)
		}
		s.logger.Error("failed to load role for delete", "error", err, "role_id", id)
		return internal.Failed(msgDeleteRetry)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if internal.IsNotFound(err) {
			return internal.NotFound(msgNotFound)
		}
		s.logger.Error("failed to delete role", "error", err, "role_id", id)
		return internal.Failed(msgDeleteRetry)
	}

	s.logger.Info("role deleted", "role_id", id)
	s.publish(ctx, events.EventTypeRoleDeleted, id)
	return internal.Success(nil)
}

func (s *Service) publish(ctx context.Context, eventType string, id int64) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, events.NewRecordChangedEvent(eventType, "role", id)); err != nil {
		s.logger.Warn("failed to publish role event", "event_type", eventType, "error", err)
	}
}
