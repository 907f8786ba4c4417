package subscriber

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFirstName   = errors.New("invalid first name")
	ErrInvalidLastName    = errors.New("invalid last name")
	ErrSubscriberNotFound = errors.New("subscriber not found")
)

// NotFoundMessage returns the user facing text for a missing subscriber.
func NotFoundMessage(id any) string {
	return fmt.Sprintf("Subscriber with id %v not found.", id)
}
