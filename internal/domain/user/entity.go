package user

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleAdmin    Role = "admin"    // Can manage periods, approvals and payroll runs
	RoleEmployee Role = "employee" // Can submit attendance, overtime, reimbursements
)

type User struct {
	ID           string
	Username     string
	FullName     string
	PasswordHash string
	Role         Role
	BaseSalary   decimal.Decimal
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
