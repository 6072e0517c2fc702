package user

import "time"

// UserResponse represents an account in API responses. The password hash
// never leaves the service layer.
type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

type ListUsersResponse struct {
	Total int            `json:"total"`
	Users []UserResponse `json:"users"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
