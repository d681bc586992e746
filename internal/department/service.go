package department

import (
	"context"
	"errors"
	"log/slog"

	"github.com/frahmantamala/employee-directory/internal"
	"github.com/frahmantamala/employee-directory/internal/auth"
	departmentDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/department"
	employeeDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/employee"
	"github.com/frahmantamala/employee-directory/internal/core/events"
	"github.com/frahmantamala/employee-directory/internal/employee"
)

type RepositoryAPI interface {
	GetByID(ctx context.Context, id int64) (*departmentDatamodel.Department, error)
	GetByName(ctx context.Context, name string) (*departmentDatamodel.Department, error)
	GetAll(ctx context.Context) ([]*departmentDatamodel.Department, error)
	Create(ctx context.Context, department *departmentDatamodel.Department) error
	Update(ctx context.Context, department *departmentDatamodel.Department) error
	Delete(ctx context.Context, id int64) error
}

// EmployeeLister is the reverse view from a department to its employees.
type EmployeeLister interface {
	GetByDepartmentID(ctx context.Context, departmentID int64) ([]*employeeDatamodel.Employee, error)
}

type RosterAuthorizer interface {
	AuthorizeRosterView(ctx context.Context, callerEmail string) (*departmentDatamodel.Department, error)
}

const (
	msgRetrieveFailed     = "Unable to retrieve department"
	msgRetrieveRetry      = "Unable to retrieve department, try again later"
	msgRetrieveAllRetry   = "Unable to retrieve departments, try again later"
	msgCreateDuplicate    = "Unable to create department, department details has been used"
	msgCreateRetry        = "Unable to create department, try again later"
	msgUpdateDuplicate    = "Unable to update department, department details has been used"
	msgUpdateRetry        = "Unable to update department, try again later"
	msgNotFound           = "Department not found"
	msgDeleteRetry        = "Unable to delete department, try again later"
	msgEmployeeNotFound   = "Employee not found"
	msgNoRosterPrivileges = "Employee does not have privileges to access department employees"
	msgRosterRetry        = "Unable to retrieve employees, try again later"
)

type Service struct {
	repo      RepositoryAPI
	employees EmployeeLister
	gate      RosterAuthorizer
	publisher events.Publisher
	logger    *slog.Logger
}

func NewService(repo RepositoryAPI, employees EmployeeLister, gate RosterAuthorizer, publisher events.Publisher, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		employees: employees,
		gate:      gate,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *Service) GetDepartment(ctx context.Context, id int64) *internal.APIResponse {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if internal.IsNotFound(err) {
			return internal.NotFound(msgRetrieveFailed)
		}
		s.logger.Error("failed to get department", "error", err, "department_id", id)
		return internal.Failed(msgRetrieveRetry)
	}
	return internal.Success(FromDataModel(row))
}

func (s *Service) GetAllDepartments(ctx context.Context) *internal.APIResponse {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to list departments", "error", err)
		return internal.Failed(msgRetrieveAllRetry)
	}

	departments := make([]*Department, 0, len(rows))
	for _, row := range rows {
		departments = append(departments, FromDataModel(row))
	}
	return internal.Success(departments)
}

func (s *Service) CreateDepartment(ctx context.Context, req CreateDepartmentRequest) *internal.APIResponse {
	row := ToDataModel(NewDepartment(req.Name, req.Description))

	if err := s.repo.Create(ctx, row); err != nil {
		if internal.IsDuplicate(err) {
			s.logger.Warn("department name already in use", "name", req.Name)
			return internal.Failed(msgCreateDuplicate)
		}
		s.logger.Error("failed to create department", "error", err, "name", req.Name)
		return internal.Failed(msgCreateRetry)
	}

	s.logger.Info("department created", "department_id", row.ID, "name", row.Name)
	s.publish(ctx, events.EventTypeDepartmentCreated, row.ID)
	return internal.Success(FromDataModel(row))
}

func (s *Service) UpdateDepartment(ctx context.Context, id int64, req UpdateDepartmentRequest) *internal.APIResponse {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if internal.IsNotFound(err) {
			return internal.NotFound(msgRetrieveFailed)
		}
		s.logger.Error("failed to load department for update", "error", err, "department_id", id)
		return internal.Failed(msgUpdateRetry)
	}

	department := FromDataModel(row)
	department.Apply(req)
	updated := ToDataModel(department)

	if err := s.repo.Update(ctx, updated); err != nil {
		if internal.IsDuplicate(err) {
			s.logger.Warn("department name already in use", "department_id", id)
			return internal.Failed(msgUpdateDuplicate)
		}
		if internal.IsNotFound(err) {
			return internal.NotFound(msgRetrieveFailed)
		}
		s.logger.Error("failed to update department", "error", err, "department_id", id)
		return internal.Failed(msgUpdateRetry)
	}

	s.publish(ctx, events.EventTypeDepartmentUpdated, id)
	return internal.Success(FromDataModel(updated))
}

func (s *Service) DeleteDepartment(ctx context.Context, id int64) *internal.APIResponse {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if internal.IsNotFound(err) {
			return internal.NotFound(msgNotFound)
		}
		s.logger.Error("failed to load department for delete", "error", err, "department_id", id)
		return internal.Failed(msgDeleteRetry)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if internal.IsNotFound(err) {
			return internal.NotFound(msgNotFound)
		}
		s.logger.Error("failed to delete department", "error", err, "department_id", id)
		return internal.Failed(msgDeleteRetry)
	}

	s.logger.Info("department deleted", "department_id", id)
	s.publish(ctx, events.EventTypeDepartmentDeleted, id)
	return internal.Success(nil)
}

// ViewEmployeesInDepartment lists the caller's own department. Only managers
// and admins pass the gate.
func (s *Service) ViewEmployeesInDepartment(ctx context.Context, callerEmail string) *internal.APIResponse {
	dept, err := s.gate.AuthorizeRosterView(ctx, callerEmail)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrCallerNotFound):
			return internal.NotFound(msgEmployeeNotFound)
		case errors.Is(err, auth.ErrInsufficientPrivileges):
			s.logger.Warn("roster access denied", "caller", callerEmail)
			return internal.Failed(msgNoRosterPrivileges)
		case errors.Is(err, auth.ErrDepartmentNotFound):
			return internal.NotFound(msgNotFound)
		default:
			s.logger.Error("roster authorization failed", "error", err, "caller", callerEmail)
			return internal.Failed(msgRosterRetry)
		}
	}

	rows, err := s.employees.GetByDepartmentID(ctx, dept.ID)
	if err != nil {
		s.logger.Error("failed to list department employees", "error", err, "department_id", dept.ID)
		return internal.Failed(msgRosterRetry)
	}

	roster := make([]*employee.Employee, 0, len(rows))
	for _, row := range rows {
		roster = append(roster, employee.FromDataModel(row))
	}

	s.logger.Info("roster retrieved", "department_id", dept.ID, "count", len(roster))
	return internal.Success(roster)
}

func (s *Service) publish(ctx context.Context, eventType string, id int64) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, events.NewRecordChangedEvent(eventType, "department", id)); err != nil {
		s.logger.Warn("failed to publish department event", "event_type", eventType, "error", err)
	}
}
