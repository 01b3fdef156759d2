package models

import "time"

// Timestamps mirrors the created_at/updated_at column pair.
type Timestamps struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
