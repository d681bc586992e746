package employee

import (
	"context"
	"errors"
	"log/slog"

	"github.com/frahmantamala/employee-directory/internal"
	employeeDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/employee"
	"github.com/frahmantamala/employee-directory/internal/core/events"
)

type RepositoryAPI interface {
	GetByID(ctx context.Context, id int64) (*employeeDatamodel.Employee, error)
	GetByEmail(ctx context.Context, email string) (*employeeDatamodel.Employee, error)
	GetAll(ctx context.Context) ([]*employeeDatamodel.Employee, error)
	GetByDepartmentID(ctx context.Context, departmentID int64) ([]*employeeDatamodel.Employee, error)
	Create(ctx context.Context, employee *employeeDatamodel.Employee) error
	Update(ctx context.Context, employee *employeeDatamodel.Employee) error
	Delete(ctx context.Context, id int64) error
}

type ReferenceResolver interface {
	Resolve(ctx context.Context, departmentID, roleID *string) (References, error)
}

type PasswordHasher interface {
	Hash(plaintext string) (string, error)
}

const (
	msgRetrieveFailed     = "Unable to retrieve employee"
	msgRetrieveRetry      = "Unable to retrieve employee, try again later"
	msgRetrieveAllRetry   = "Unable to retrieve employees, try again later"
	msgNotFound           = "Employee not found"
	msgCreateDuplicate    = "Unable to create employee, employee details has been used"
	msgCreateRetry        = "Unable to create employee, try again later"
	msgCreateBadInput     = "Unable to create employee, pass in correct data"
	msgCreateNoDepartment = "Unable to create employee, department not found"
	msgCreateNoRole       = "Unable to create employee, role not found"
	msgUpdateDuplicate    = "Unable to update employee, employee details has been used"
	msgUpdateRetry        = "Unable to update employee, try again later"
	msgUpdateBadInput     = "Unable to update employee, pass in correct data"
	msgUpdateNoDepartment = "Unable to update employee, department not found"
	msgDeleteRetry        = "Unable to delete employee, try again later"
)

type Service struct {
	repo            RepositoryAPI
	references      ReferenceResolver
	hasher          PasswordHasher
	defaultPassword string
	publisher       events.Publisher
	logger          *slog.Logger
}

func NewService(repo RepositoryAPI, references ReferenceResolver, hasher PasswordHasher, defaultPassword string, publisher events.Publisher, logger *slog.Logger) *Service {
	return &Service{
		repo:            repo,
		references:      references,
		hasher:          hasher,
		defaultPassword: defaultPassword,
		publisher:       publisher,
		logger:          logger,
	}
}

func (s *Service) GetEmployee(ctx context.Context, id int64) *internal.APIResponse {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if internal.IsNotFound(err) {
			return internal.NotFound(msgRetrieveFailed)
		}
		s.logger.Error("failed to get employee", "error", err, "employee_id", id)
		return internal.Failed(msgRetrieveRetry)
	}
	return internal.Success(FromDataModel(row))
}

// GetEmployeeByEmail returns the AuthView including the password hash. Callers
// outside the login path must strip it.
func (s *Service) GetEmployeeByEmail(ctx context.Context, email string) *internal.APIResponse {
	row, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if internal.IsNotFound(err) {
			return internal.NotFound(msgNotFound)
		}
		s.logger.Error("failed to get employee by email", "error", err)
		return internal.Failed(msgRetrieveRetry)
	}
	return internal.Success(ToAuthView(row))
}

func (s *Service) GetAllEmployees(ctx context.Context) *internal.APIResponse {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return internal.Failed(msgRetrieveAllRetry)
	}

	employees := make([]*Employee, 0, len(rows))
	for _, row := range rows {
		employees = append(employees, FromDataModel(row))
	}
	return internal.Success(employees)
}

func (s *Service) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) *internal.APIResponse {
	refs, err := s.references.Resolve(ctx, req.DepartmentID, req.RoleID)
	if err != nil {
		return s.referenceFailure(err, msgCreateBadInput, msgCreateNoDepartment, msgCreateNoRole, msgCreateRetry)
	}

	hash, err := s.hasher.Hash(s.defaultPassword)
	if err != nil {
		s.logger.Error("failed to hash default password", "error", err)
		return internal.Failed(msgCreateRetry)
	}

	row := NewEmployee(req, refs, hash)
	if err := s.repo.Create(ctx, row); err != nil {
		if internal.IsDuplicate(err) {
			s.logger.Warn("employee email already in use")
			return internal.Failed(msgCreateDuplicate)
		}
		if internal.IsInvalidReference(err) {
			// the department was removed after it was resolved
			s.logger.Warn("employee references a missing department")
			return internal.Failed(msgCreateNoDepartment)
		}
		s.logger.Error("failed to create employee", "error", err)
		return internal.Failed(msgCreateRetry)
	}

	s.logger.Info("employee created", "employee_id", row.ID)
	s.publish(ctx, events.EventTypeEmployeeCreated, row.ID)
	return internal.Success(FromDataModel(row))
}

func (s *Service) UpdateEmployee(ctx context.Context, id int64, req UpdateEmployeeRequest) *internal.APIResponse {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if internal.IsNotFound(err) {
			return internal.NotFound(msgRetrieveFailed)
		}
		s.logger.Error("failed to load employee for update", "error", err, "employee_id", id)
		return internal.Failed(msgUpdateRetry)
	}

	// the role link is not updatable here, so only the department is resolved
	refs, err := s.references.Resolve(ctx, req.DepartmentID, nil)
	if err != nil {
		return s.referenceFailure(err, msgUpdateBadInput, msgUpdateNoDepartment, msgUpdateRetry, msgUpdateRetry)
	}

	ApplyUpdate(row, req, refs)
	if err := s.repo.Update(ctx, row); err != nil {
		if internal.IsDuplicate(err) {
			s.logger.Warn("employee email already in use", "employee_id", id)
			return internal.Failed(msgUpdateDuplicate)
		}
		if internal.IsInvalidReference(err) {
			s.logger.Warn("employee references a missing department", "employee_id", id)
			return internal.Failed(msgUpdateNoDepartment)
		}
		if internal.IsNotFound(err) {
			return internal.NotFound(msgRetrieveFailed)
		}
		s.logger.Error("failed to update employee", "error", err, "employee_id", id)
		return internal.Failed(msgUpdateRetry)
	}

	s.publish(ctx, events.EventTypeEmployeeUpdated, id)
	return internal.Success(FromDataModel(row))
}

func (s *Service) DeleteEmployee(ctx context.Context, id int64) *internal.APIResponse {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if internal.IsNotFound(err) {
			return internal.NotFound(msgNotFound)
		}
		s.logger.Error("failed to load employee for delete", "error", err, "employee_id", id)
		return internal.Failed(msgDeleteRetry)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if internal.IsNotFound(err) {
			return internal.NotFound(msgNotFound)
		}
		s.logger.Error("failed to delete employee", "error", err, "employee_id", id)
		return internal.Failed(msgDeleteRetry)
	}

	s.logger.Info("employee deleted", "employee_id", id)
	s.publish(ctx, events.EventTypeEmployeeDeleted, id)
	return internal.Success(nil)
}

func (s *Service) referenceFailure(err error, badInput, noDepartment, noRole, retry string) *internal.APIResponse {
	if errors.Is(err, ErrMalformedReference) {
		return internal.Failed(badInput)
	}

	var missing *MissingReferenceError
	if errors.As(err, &missing) {
		s.logger.Warn("employee reference does not resolve", "relation", missing.Relation, "id", missing.ID)
		if missing.Relation == "role" {
			return internal.Failed(noRole)
		}
		return internal.Failed(noDepartment)
	}

	s.logger.Error("failed to resolve employee references", "error", err)
	return internal.Failed(retry)
}

func (s *Service) publish(ctx context.Context, eventType string, id int64) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, events.NewRecordChangedEvent(eventType, "employee", id)); err != nil {
		s.logger.Warn("failed to publish employee event", "event_type", eventType, "error", err)
	}
}
