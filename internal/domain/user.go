package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a tracked participant. The pair is seeded by the caller and
// re-upserted explicitly; nothing mutates a user as a side effect.
type User struct {
	ID        uuid.UUID
	Name      string
	LoveName  string
	Track     Track
	CreatedAt time.Time
	UpdatedAt time.Time
}
