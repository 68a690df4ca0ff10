// Package controller implements the business logic for the directory:
// it loads the entities a rule refers to, asks authz and validation
// for a decision, and performs every mutation inside a single
// repository transaction before producing a lifecycle event.
package controller

import (
	"errors"

	e "github.com/RomanKhudobei/my-company/internal/directory/errors"
	"github.com/RomanKhudobei/my-company/internal/directory/events"
	"github.com/google/uuid"
)

// EventProducer publishes entity lifecycle events after commit.
type EventProducer interface {
	Produce(eventType events.EventType, entityID uuid.UUID, payload interface{})
}

// ignoreNotFound maps ErrNotFound to a nil entity for lookups where
// absence is an answer, not a failure.
func ignoreNotFound[T any](entity *T, err error) (*T, error) {
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return entity, nil
}

// mergeInto folds a validator result into an accumulator so that
// independent rule sets report all offending fields together.
func mergeInto(v *e.Validation, err error) {
	if err == nil {
		return
	}
	var ve *e.Validation
	if errors.As(err, &ve) {
		v.Merge(ve)
	}
}
