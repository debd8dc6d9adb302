package journal

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/pairlog/pairlog-backend/internal/domain"
)

// CreateEntryInput holds the parameters for logging a new entry.
type CreateEntryInput struct {
	UserID   uuid.UUID
	Date     string
	Count    int
	Note     *string
	Tags     []string
	ImageURL *string
}

// Validate checks all fields and collects all errors.
func (i *CreateEntryInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.Count < 1 {
		errs = append(errs, domain.FieldError{Field: "count", Message: "must be at least 1"})
	}
	errs = append(errs, validateNote(i.Note)...)
	errs = append(errs, validateTags(i.Tags)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateEntryInput holds the parameters for a partial entry update.
// Note, Tags and ImageURL are tri-state: absent keeps the stored value,
// explicit null clears it, a value replaces it.
type UpdateEntryInput struct {
	EntryID     uuid.UUID
	RequesterID uuid.UUID

	Date     *string
	Count    *int
	Note     domain.Optional[string]
	Tags     domain.Optional[[]string]
	ImageURL domain.Optional[string]
}

// Validate checks all fields and collects all errors.
func (i *UpdateEntryInput) Validate() error {
	var errs []domain.FieldError

	if i.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entry_id", Message: "required"})
	}
	if i.RequesterID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "requester_id", Message: "required"})
	}
	if i.Count != nil && *i.Count < 1 {
		errs = append(errs, domain.FieldError{Field: "count", Message: "must be at least 1"})
	}
	if i.Note.Set {
		errs = append(errs, validateNote(i.Note.Value)...)
	}
	if i.Tags.Set && i.Tags.Value != nil {
		errs = append(errs, validateTags(*i.Tags.Value)...)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// DeleteEntryInput holds the parameters for deleting an entry.
type DeleteEntryInput struct {
	EntryID     uuid.UUID
	RequesterID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *DeleteEntryInput) Validate() error {
	var errs []domain.FieldError

	if i.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entry_id", Message: "required"})
	}
	if i.RequesterID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "requester_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateNote(note *string) []domain.FieldError {
	if note != nil && len(*note) > domain.MaxNoteLength {
		return []domain.FieldError{{Field: "note", Message: "too long (max 280)"}}
	}
	return nil
}

func validateTags(tags []string) []domain.FieldError {
	var errs []domain.FieldError

	if len(tags) > domain.MaxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "too many (max 6)"})
	}
	for idx, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			errs = append(errs, domain.FieldError{
				Field:   "tags[" + strconv.Itoa(idx) + "]",
				Message: "required",
			})
		}
	}

	return errs
}
