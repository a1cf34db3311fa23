package source

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout is returned when the upstream feed did not answer in time.
	ErrTimeout = errors.New("upstream feed timed out")

	// ErrUnavailable is returned when the upstream feed could not be reached.
	ErrUnavailable = errors.New("upstream feed unavailable")

	// ErrMalformed is returned when the upstream body is not a valid feed.
	ErrMalformed = errors.New("upstream feed malformed")
)

// StatusError reports a non-2xx answer from the upstream feed.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream feed returned status %d", e.StatusCode)
}
