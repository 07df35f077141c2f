package request

// Wire field names: "no_hp" is the phone number, "desc" the free-form
// description.

type RegisterRequest struct {
	Name                 string  `json:"name" validate:"required"`
	Username             string  `json:"username" validate:"required"`
	Password             string  `json:"password" validate:"required"`
	PasswordConfirmation string  `json:"password_confirmation" validate:"required,eqfield=Password"`
	Email                string  `json:"email" validate:"required,email"`
	Phone                string  `json:"no_hp" validate:"required"`
	Address              string  `json:"address" validate:"required"`
	Description          *string `json:"desc,omitempty"`
	Role                 *int    `json:"role" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
