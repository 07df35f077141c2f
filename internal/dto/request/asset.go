package request

// AssetRequest is shared by insert and update; both take the same fields.
// Quantity is a pointer so an explicit zero still passes the required check.
type AssetRequest struct {
	Name        string  `json:"name" validate:"required"`
	Quantity    *int    `json:"quantity" validate:"required"`
	Brand       string  `json:"brand" validate:"required"`
	Description *string `json:"desc,omitempty"`
}
