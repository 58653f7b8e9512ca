package domain

import (
	"fmt"
	"time"
)

type BookingState string

const (
	StateSearch           BookingState = "SEARCH"
	StateResults          BookingState = "RESULTS"
	StatePassengerDetails BookingState = "PASSENGER_DETAILS"
	StatePayment          BookingState = "PAYMENT"
	StateConfirmation     BookingState = "CONFIRMATION"
)

type Passenger struct {
	Title           string
	FirstName       string
	LastName        string
	DateOfBirth     time.Time
	Gender          string
	Nationality     string
	PassportNumber  string
	PassportExpiry  time.Time
	SpecialRequests []string
}

func (p Passenger) FullName() string {
	return fmt.Sprintf("%s %s %s", p.Title, p.FirstName, p.LastName)
}

// Age returns full years between the passenger's date of birth and now.
func (p Passenger) Age(now time.Time) int {
	years := now.Year() - p.DateOfBirth.Year()
	if now.YearDay() < p.DateOfBirth.YearDay() {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// Booking is the aggregate accumulated by one booking session. Only the
// generated reference survives completion; the rest is discarded with the
// session.
type Booking struct {
	Passengers            []Passenger
	ContactEmail          string
	ContactPhone          string
	EmergencyContactName  string
	EmergencyContactPhone string
	SpecialRequirements   string
	OutboundFlight        *FlightOffer
	ReturnFlight          *FlightOffer
	TotalPrice            int
	Reference             string
	BookingDate           time.Time
	PaymentMethod         string
	RoundTrip             bool
	PromoApplied          bool
}
