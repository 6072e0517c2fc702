package jwt

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/fptrack/attendance-backend-go/internal/domain/auth"
	"github.com/fptrack/attendance-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service issues and verifies assertions: signed, time-limited tokens binding
// a username to a role. Verification is stateless apart from the in-memory
// revocation list populated by logout.
type Service interface {
	GenerateAssertion(username string, role user.Role) (token string, expiresAt int64, err error)
	VerifyAssertion(token string) (username string, role user.Role, err error)
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

const acceptableSkew = 30 * time.Second

type JWTService struct {
	secretKey      string
	expirationTime string
	tokenAuth      *jwtauth.JWTAuth
	revokedTokens  map[string]time.Time
	mu             sync.RWMutex
}

func NewJWTService(secretKey string, expirationTime string) Service {
	return &JWTService{
		secretKey:      secretKey,
		expirationTime: expirationTime,
		tokenAuth:      jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(acceptableSkew)),
		revokedTokens:  make(map[string]time.Time),
	}
}

func (j *JWTService) GenerateAssertion(username string, role user.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.expirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"sub":  username,
		"role": string(role),
		"type": "access",
		"exp":  expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// VerifyAssertion validates signature and expiry and extracts the identity
// claims. The role claim is only honored when it parses to a known role.
func (j *JWTService) VerifyAssertion(tokenString string) (string, user.Role, error) {
	if j.IsTokenRevoked(tokenString) {
		return "", "", auth.ErrAssertionRevoked
	}

	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		if errors.Is(err, jwtauth.ErrExpired) {
			return "", "", auth.ErrAssertionExpired
		}
		return "", "", auth.ErrAssertionInvalid
	}

	claims, err := token.AsMap(context.Background())
	if err != nil {
		return "", "", auth.ErrAssertionInvalid
	}

	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "access" {
		return "", "", auth.ErrAssertionInvalid
	}

	username, ok := claims["sub"].(string)
	if !ok || username == "" {
		return "", "", auth.ErrAssertionInvalid
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", "", auth.ErrAssertionInvalid
	}
	role, ok := user.ParseRole(roleStr)
	if !ok {
		return "", "", auth.ErrAssertionInvalid
	}

	return username, role, nil
}

// RevokeToken adds the token to the revocation list. Each entry carries the
// token's own expiry plus the acceptable skew, after which verification
// rejects it anyway; entries past that deadline are swept on the next
// revocation.
func (j *JWTService) RevokeToken(token string) {
	keepUntil := time.Now().Add(time.Hour)
	if parsed, err := jwtauth.VerifyToken(j.tokenAuth, token); err == nil {
		keepUntil = parsed.Expiration()
	} else if d, err := time.ParseDuration(j.expirationTime); err == nil {
		keepUntil = time.Now().Add(d)
	}
	keepUntil = keepUntil.Add(acceptableSkew)

	j.mu.Lock()
	defer j.mu.Unlock()

	now := time.Now()
	for t, exp := range j.revokedTokens {
		if exp.Before(now) {
			delete(j.revokedTokens, t)
		}
	}
	j.revokedTokens[token] = keepUntil
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	exp, revoked := j.revokedTokens[token]
	return revoked && !exp.Before(time.Now())
}
