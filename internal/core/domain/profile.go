package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxProfileNameLength is the longest profile name accepted, in characters.
const MaxProfileNameLength = 255

// Profile is the public face of a user. Owner is the owner's username.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Owner     string    `json:"owner"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
