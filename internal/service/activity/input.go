package activity

import (
	"github.com/google/uuid"

	"github.com/pairlog/pairlog-backend/internal/domain"
)

// RecordInput holds the parameters for recording an activity on an entry.
type RecordInput struct {
	EntryID uuid.UUID
	ActorID uuid.UUID
	Type    domain.ActivityType
	Content *string
}

// Validate checks all fields and collects all errors.
func (i *RecordInput) Validate() error {
	var errs []domain.FieldError

	if i.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entry_id", Message: "required"})
	}
	if i.ActorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "actor_id", Message: "required"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid value (allowed: reaction, comment, reply)"})
	}
	if i.Content != nil && len(*i.Content) > domain.MaxContentLength {
		errs = append(errs, domain.FieldError{Field: "content", Message: "too long (max 280)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
