package user

import (
	"context"

	"github.com/fptrack/attendance-backend-go/internal/domain/user"
)

type UserServiceImpl struct {
	userRepo user.UserRepository
}

func NewUserService(userRepo user.UserRepository) user.UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// ListUsers implements user.UserService.
func (s *UserServiceImpl) ListUsers(ctx context.Context) (user.ListUsersResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return user.ListUsersResponse{}, err
	}

	resp := user.ListUsersResponse{
		Total: len(users),
		Users: make([]user.UserResponse, 0, len(users)),
	}
	for _, u := range users {
		resp.Users = append(resp.Users, user.ToResponse(u))
	}

	return resp, nil
}

// ApproveUser implements user.UserService. Approval moves a pending account
// to the regular user role and activates it in one step.
func (s *UserServiceImpl) ApproveUser(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}

	if u.Role != user.RolePending {
		return user.UserResponse{}, user.ErrAlreadyApproved
	}

	if err := s.userRepo.UpdateRoleAndActive(ctx, u.ID, user.RoleUser, true); err != nil {
		return user.UserResponse{}, err
	}

	u.Role = user.RoleUser
	u.IsActive = true
	return user.ToResponse(*u), nil
}

// PromoteUser implements user.UserService. Only an approved regular user can
// be promoted, and only to secondary admin; the primary admin role is never
// granted through this path.
func (s *UserServiceImpl) PromoteUser(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}

	if u.IsPrimaryAdmin() {
		return user.UserResponse{}, user.ErrPrimaryAdminProtected
	}
	if u.Role != user.RoleUser {
		return user.UserResponse{}, user.ErrNotSecondaryAdmin
	}

	if err := s.userRepo.UpdateRole(ctx, u.ID, user.RoleSecondaryAdmin); err != nil {
		return user.UserResponse{}, err
	}

	u.Role = user.RoleSecondaryAdmin
	return user.ToResponse(*u), nil
}

// DemoteUser implements user.UserService. Demotion only applies to secondary
// admins; the primary admin can never be demoted.
func (s *UserServiceImpl) DemoteUser(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}

	if u.IsPrimaryAdmin() {
		return user.UserResponse{}, user.ErrPrimaryAdminProtected
	}
	if u.Role != user.RoleSecondaryAdmin {
		return user.UserResponse{}, user.ErrNotSecondaryAdmin
	}

	if err := s.userRepo.UpdateRole(ctx, u.ID, user.RoleUser); err != nil {
		return user.UserResponse{}, err
	}

	u.Role = user.RoleUser
	return user.ToResponse(*u), nil
}

// DeleteUser implements user.UserService. The primary admin account cannot
// be deleted.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, id string) error {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if u.IsPrimaryAdmin() {
		return user.ErrPrimaryAdminProtected
	}

	return s.userRepo.Delete(ctx, u.ID)
}
