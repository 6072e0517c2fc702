package user

import (
	"context"
)

// UserService manages accounts. Every method requires the primary_admin role,
// enforced by the router; the primary-admin protection rules are enforced here
// so they hold regardless of transport.
type UserService interface {
	ListUsers(ctx context.Context) (ListUsersResponse, error)
	ApproveUser(ctx context.Context, userID string) (UserResponse, error)
	PromoteUser(ctx context.Context, userID string) (UserResponse, error)
	DemoteUser(ctx context.Context, userID string) (UserResponse, error)
	DeleteUser(ctx context.Context, userID string) error
}
