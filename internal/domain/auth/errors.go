package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountNotApproved = errors.New("account pending primary admin approval")
	ErrAssertionInvalid   = errors.New("invalid assertion")
	ErrAssertionExpired   = errors.New("assertion has expired")
	ErrAssertionRevoked   = errors.New("assertion has been revoked")
)
