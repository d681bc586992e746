package employee

import (
	"time"

	employeeDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/employee"
)

// Employee is the public shape of an employee. The password hash stays on the
// row model and never reaches a payload.
type Employee struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Email        string    `json:"email"`
	Status       bool      `json:"status"`
	DepartmentID *int64    `json:"department_id"`
	RoleID       *int64    `json:"role_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AuthView is the reduced projection used to verify credentials.
type AuthView struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
}

// WithoutPassword returns a copy safe to serve outside the login path.
func (a AuthView) WithoutPassword() AuthView {
	a.Password = ""
	return a
}

func NewEmployee(req CreateEmployeeRequest, refs References, passwordHash string) *employeeDatamodel.Employee {
	now := time.Now()
	row := &employeeDatamodel.Employee{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Address:      req.Address,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Status:       req.Status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if refs.Department != nil {
		row.DepartmentID = &refs.Department.ID
	}
	if refs.Role != nil {
		row.RoleID = &refs.Role.ID
	}
	return row
}

// ApplyUpdate overwrites every field carried by the request. The role link is
// not touched.
func ApplyUpdate(row *employeeDatamodel.Employee, req UpdateEmployeeRequest, refs References) {
	if req.FirstName != nil {
		row.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		row.LastName = *req.LastName
	}
	if req.Phone != nil {
		row.Phone = *req.Phone
	}
	if req.Address != nil {
		row.Address = *req.Address
	}
	if req.Email != nil {
		row.Email = *req.Email
	}
	if req.Status != nil {
		row.Status = *req.Status
	}
	if refs.Department != nil {
		row.DepartmentID = &refs.Department.ID
	}
	row.UpdatedAt = time.Now()
}

func FromDataModel(e *employeeDatamodel.Employee) *Employee {
	return &Employee{
		ID:           e.ID,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Phone:        e.Phone,
		Address:      e.Address,
		Email:        e.Email,
		Status:       e.Status,
		DepartmentID: e.DepartmentID,
		RoleID:       e.RoleID,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToAuthView(e *employeeDatamodel.Employee) AuthView {
	return AuthView{
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Phone:     e.Phone,
		Address:   e.Address,
		Email:     e.Email,
		Password:  e.PasswordHash,
	}
}
