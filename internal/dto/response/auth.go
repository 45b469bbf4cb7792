package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type AuthResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token,omitempty"`
	ExpiresAt *time.Time   `json:"expires_at,omitempty"`
}

func UserToResponse(u *entity.UserPublic) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email}
}
