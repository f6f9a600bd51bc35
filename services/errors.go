package services

import (
	"errors"
	"fmt"

	"github.com/Vinh124567/backend-hotel-booking-sub000/models"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
	ErrCapacity     = errors.New("no capacity left for the requested dates")
	ErrCancelWindow = errors.New("less than one day remains before check-in")
)

// StateError reports a transition refused by the booking lifecycle.
type StateError struct {
	Current models.BookingStatus
	Op      string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s a booking in status %q", e.Op, e.Current)
}
