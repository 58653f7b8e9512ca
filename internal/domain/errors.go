package domain

import (
	"errors"
	"fmt"
)

var (
	ErrIncompletePassengers = errors.New("passenger details are incomplete")
	ErrInvalidContact       = errors.New("contact details are invalid")
	ErrInvalidPromo         = errors.New("unknown promo code")
	ErrNoFlightSelected     = errors.New("no flight selected")
	ErrSessionNotFound      = errors.New("session not found")
)

// InvalidTransitionError is returned when a booking operation is invoked in a
// state it is not allowed from.
type InvalidTransitionError struct {
	From   BookingState
	Action string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s from state %s", e.Action, e.From)
}
