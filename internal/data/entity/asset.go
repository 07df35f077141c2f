package entity

import (
	"time"

	"github.com/google/uuid"
)

type Asset struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Quantity    int       `db:"quantity"`
	Brand       string    `db:"brand"`
	Description *string   `db:"description"`
	UserID      uuid.UUID `db:"user_id"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
