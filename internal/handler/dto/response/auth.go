package response

import (
	"villanest/internal/usecase/queries"
)

type UserResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	IsActive    bool   `json:"is_active"`
	LastLogin   *int64 `json:"last_login,omitempty"`
	CreatedAt   int64  `json:"created_at"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	res := &UserResponse{
		ID:          v.ID.String(),
		Email:       v.Email,
		DisplayName: v.DisplayName,
		Role:        v.Role,
		IsActive:    v.IsActive,
		CreatedAt:   v.CreatedAt.Unix(),
	}
	if v.LastLogin != nil {
		ts := v.LastLogin.Unix()
		res.LastLogin = &ts
	}
	return res
}

// LoginResponse also carries the access token for clients that cannot use cookies.
type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}
