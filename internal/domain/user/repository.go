package user

import (
	"context"
)

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, u *User) error
	List(ctx context.Context) ([]User, error)
	UpdateRole(ctx context.Context, id string, role Role) error
	UpdateRoleAndActive(ctx context.Context, id string, role Role, active bool) error
	Delete(ctx context.Context, id string) error
}
