package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a derived unread signal addressed to an entry's owner.
// Created only when the acting user differs from the owner; the only
// mutation is flipping IsRead for a (entry, recipient) batch.
type Notification struct {
	ID         uuid.UUID
	UserID     uuid.UUID // recipient: the entry owner
	ActorID    uuid.UUID
	EntryID    uuid.UUID
	ActivityID uuid.UUID
	Type       ActivityType
	IsRead     bool
	CreatedAt  time.Time
}
