package response

import (
	"time"

	"asset-registry/internal/data/entity"
)

// TokenResponse is the wire shape
// {access_token, token_type: "bearer", expires_in}.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// UserResponse is the public view of a user. The password hash never
// leaves the service layer.
type UserResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Phone       string    `json:"no_hp"`
	Address     string    `json:"address"`
	Description *string   `json:"desc,omitempty"`
	Role        int       `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

func UserToResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:          user.ID.String(),
		Name:        user.Name,
		Username:    user.Username,
		Email:       user.Email,
		Phone:       user.Phone,
		Address:     user.Address,
		Description: user.Description,
		Role:        int(user.Role),
		CreatedAt:   user.CreatedAt,
	}
}
