package user

import (
	"github.com/google/uuid"

	"github.com/pairlog/pairlog-backend/internal/domain"
)

const maxNameLength = 100

// UpsertInput holds the parameters for creating or replacing a participant.
type UpsertInput struct {
	ID       uuid.UUID
	Name     string
	LoveName string
	Track    domain.Track
}

// Validate checks all fields and collects all errors.
func (i *UpsertInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long (max 100)"})
	}
	if len(i.LoveName) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "love_name", Message: "too long (max 100)"})
	}
	if !i.Track.IsValid() {
		errs = append(errs, domain.FieldError{Field: "track", Message: "invalid value (allowed: LEFT, RIGHT)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
