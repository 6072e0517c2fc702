package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/fptrack/attendance-backend-go/internal/domain/auth"
	"github.com/fptrack/attendance-backend-go/internal/domain/user"
	"github.com/fptrack/attendance-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register implements auth.AuthService. New accounts start as inactive
// pending users and stay locked out until a primary admin approves them.
func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := &user.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         user.RolePending,
		IsActive:     false,
	}

	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(*newUser), nil
}

// Login implements auth.AuthService. The credential check runs before the
// approval check so a wrong password never reveals account state.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if !u.IsActive || u.Role == user.RolePending {
		return auth.TokenResponse{}, auth.ErrAccountNotApproved
	}

	token, expiresAt, err := s.jwtService.GenerateAssertion(u.Username, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate assertion: %w", err)
	}

	return auth.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		Role:        string(u.Role),
	}, nil
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	s.jwtService.RevokeToken(token)
	return nil
}

// VerifyAssertion implements auth.AuthService. Beyond signature and expiry,
// the account behind the assertion must still exist and still be active, so
// deactivating a user invalidates their outstanding assertions.
func (s *AuthServiceImpl) VerifyAssertion(ctx context.Context, token string) (auth.Identity, error) {
	username, role, err := s.jwtService.VerifyAssertion(token)
	if err != nil {
		return auth.Identity{}, err
	}

	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.Identity{}, auth.ErrAssertionInvalid
		}
		return auth.Identity{}, err
	}

	if !u.IsActive {
		return auth.Identity{}, auth.ErrAccountNotApproved
	}

	// The stored role wins over the token claim when they diverge, so
	// demotions take effect without waiting for token expiry.
	if u.Role != role {
		role = u.Role
	}

	return auth.Identity{Username: username, Role: role}, nil
}

// Authorize implements auth.AuthService.
func (s *AuthServiceImpl) Authorize(ctx context.Context, token string, action user.Action) (auth.Identity, error) {
	identity, err := s.VerifyAssertion(ctx, token)
	if err != nil {
		return auth.Identity{}, err
	}

	if !user.Allowed(identity.Role, action) {
		return auth.Identity{}, user.ErrInsufficientRole
	}

	return identity, nil
}
