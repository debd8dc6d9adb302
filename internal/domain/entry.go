package domain

import (
	"time"

	"github.com/google/uuid"
)

// Limits enforced on entry fields. The outer transport validates shapes;
// the services re-check these derived values regardless.
const (
	MaxNoteLength    = 280
	MaxTags          = 6
	MaxContentLength = 280
)

// Entry is one logged count event, owned by exactly one user.
type Entry struct {
	ID     uuid.UUID
	UserID uuid.UUID

	// Date is the day the event is attributed to. WeekStart is always the
	// Monday 00:00 of the week containing Date and is recomputed whenever
	// Date changes; it is never null.
	Date      time.Time
	WeekStart time.Time

	Count    int
	Note     *string
	Tags     []string
	ImageURL *string

	// EditedAt is nil until the first update, then set on every accepted
	// update, even when the new values equal the old ones.
	EditedAt  *time.Time
	CreatedAt time.Time
}

// EntryFilter selects entries for listing. All fields are optional and
// combine with AND.
type EntryFilter struct {
	// WeekStart matches entries whose week_start equals the given instant.
	WeekStart *time.Time

	// Day matches entries whose date falls within the calendar day
	// containing the given instant (inclusive start, exclusive end).
	Day *time.Time

	// UserID matches entries owned by the given user.
	UserID *uuid.UUID
}

// EntryActivity is a reaction, comment, or reply attached to an entry.
// Append-only; never mutated or deleted directly.
type EntryActivity struct {
	ID        uuid.UUID
	EntryID   uuid.UUID
	ActorID   uuid.UUID
	Type      ActivityType
	Content   *string
	CreatedAt time.Time
}

// ActivitySummary counts activities of each type for one entry.
type ActivitySummary struct {
	Reaction int
	Comment  int
	Reply    int
}

// Add increments the counter for the given type. Unknown types are ignored.
func (s *ActivitySummary) Add(t ActivityType, n int) {
	switch t {
	case ActivityReaction:
		s.Reaction += n
	case ActivityComment:
		s.Comment += n
	case ActivityReply:
		s.Reply += n
	}
}

// EntryWithSummary is an entry decorated with its per-type activity counts
// and, when the listing was scoped to a user, that user's unread count.
type EntryWithSummary struct {
	Entry
	ActivitySummary     ActivitySummary
	UnreadActivityCount int
}

// WeeklySummary aggregates one week across users.
// Users with no entries in the week are absent from Totals.
type WeeklySummary struct {
	WeekStart  time.Time
	Totals     map[uuid.UUID]int
	EntryCount int
}
