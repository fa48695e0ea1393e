package jobs

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a job id is unknown to the manager.
var ErrNotFound = errors.New("job not found")

// ErrInvalidPriority is returned when a submitted priority falls outside 1..5.
var ErrInvalidPriority = errors.New("priority must be between 1 and 5")

// ErrNotProcessing is returned when progress is reported for a job that no
// worker currently owns.
var ErrNotProcessing = errors.New("job is not processing")

// InvalidTransitionError reports a rejected lifecycle change.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid job transition from %s to %s", e.From, e.To)
}
