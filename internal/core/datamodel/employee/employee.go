package employee

import "time"

// Employee is the authoritative side of the department and role links; neither
// departments nor roles hold a back-collection.
type Employee struct {
	ID           int64     `gorm:"primaryKey"`
	FirstName    string    `gorm:"column:first_name;not null"`
	LastName     string    `gorm:"column:last_name;not null"`
	Phone        string    `gorm:"column:phone;not null"`
	Address      string    `gorm:"column:address"`
	Email        string    `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Status       bool      `gorm:"column:status;default:false"`
	DepartmentID *int64    `gorm:"column:department_id;index"`
	RoleID       *int64    `gorm:"column:role_id;index"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Employee) TableName() string {
	return "employees"
}
