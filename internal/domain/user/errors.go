package user

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUsernameTaken    = errors.New("username already exists")
	ErrInsufficientRole = errors.New("role does not permit this action")

	// A primary admin account can never be demoted or deleted, by anyone,
	// to avoid locking the system out of its top role.
	ErrPrimaryAdminProtected = errors.New("primary admin accounts cannot be modified or removed")

	ErrNotSecondaryAdmin = errors.New("user is not a secondary admin")
	ErrAlreadyApproved   = errors.New("user is already approved")
)
