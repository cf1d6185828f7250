package user

import "context"

type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	// GetActiveEmployees returns every active user with the employee role,
	// ordered by username. The payroll processor iterates this set.
	GetActiveEmployees(ctx context.Context) ([]User, error)
}
