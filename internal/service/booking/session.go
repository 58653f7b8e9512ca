package booking

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/skyfare/flightbooking/internal/domain"
	"github.com/skyfare/flightbooking/internal/search"
)

var ErrOfferNotInResults = errors.New("offer is not part of the current results")

const defaultPaymentMethod = "credit_card"

// Session is one in-progress booking. It owns the Booking aggregate and the
// current search results, and enforces the state machine
// SEARCH -> RESULTS -> PASSENGER_DETAILS -> PAYMENT -> CONFIRMATION.
// All mutation goes through the session mutex, so one session is safe to
// drive from concurrent requests.
type Session struct {
	svc    *Service
	token  string
	filter *search.Filterer

	mu      sync.Mutex
	state   domain.BookingState
	booking domain.Booking
	results []domain.FlightOffer
}

// ContactInfo carries the contact step's form fields.
type ContactInfo struct {
	Email               string
	Phone               string
	EmergencyName       string
	EmergencyPhone      string
	SpecialRequirements string
}

func (s *Session) Token() string {
	return s.token
}

func (s *Session) State() domain.BookingState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Booking returns a snapshot of the aggregate.
func (s *Session) Booking() domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) Results() []domain.FlightOffer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.FlightOffer, len(s.results))
	copy(out, s.results)
	return out
}

// Search runs a route query and records it to the recent-searches list (two
// explicit calls on the engine; the query itself has no side effect). Valid
// from SEARCH and RESULTS. Moves to RESULTS.
func (s *Session) Search(ctx context.Context, origin, destination string, date time.Time, passengers int) ([]domain.FlightOffer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.StateSearch && s.state != domain.StateResults {
		return nil, &domain.InvalidTransitionError{From: s.state, Action: "search"}
	}

	fromCode := routeCode(origin)
	toCode := routeCode(destination)

	results := s.svc.engine.SearchByRoute(fromCode, toCode)
	logRecordFailure(s.svc.engine.RecordSearch(ctx, domain.RecentSearch{
		Origin:          origin,
		Destination:     destination,
		OriginCode:      fromCode,
		DestinationCode: toCode,
		Date:            date,
		Passengers:      passengers,
		SearchedAt:      time.Now(),
	}))

	s.results = results
	s.state = domain.StateResults

	out := make([]domain.FlightOffer, len(results))
	copy(out, results)
	return out, nil
}

// SelectFlight fixes the outbound flight. Valid from SEARCH and RESULTS.
// Moves to PASSENGER_DETAILS.
func (s *Session) SelectFlight(offer domain.FlightOffer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.StateSearch && s.state != domain.StateResults {
		return &domain.InvalidTransitionError{From: s.state, Action: "select flight"}
	}

	chosen := offer
	s.booking.OutboundFlight = &chosen
	s.state = domain.StatePassengerDetails
	return nil
}

// SelectFlightByID selects from the current results by offer ID.
func (s *Session) SelectFlightByID(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.StateSearch && s.state != domain.StateResults {
		return &domain.InvalidTransitionError{From: s.state, Action: "select flight"}
	}
	for i := range s.results {
		if s.results[i].ID == id {
			chosen := s.results[i]
			s.booking.OutboundFlight = &chosen
			s.state = domain.StatePassengerDetails
			return nil
		}
	}
	return ErrOfferNotInResults
}

func (s *Session) AddPassenger(p domain.Passenger) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.StatePassengerDetails {
		return &domain.InvalidTransitionError{From: s.state, Action: "add passenger"}
	}
	s.booking.Passengers = append(s.booking.Passengers, p)
	return nil
}

func (s *Session) RemovePassenger(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.StatePassengerDetails {
		return &domain.InvalidTransitionError{From: s.state, Action: "remove passenger"}
	}
	if index < 0 || index >= len(s.booking.Passengers) {
		return errors.New("passenger index out of range")
	}
	s.booking.Passengers = append(s.booking.Passengers[:index], s.booking.Passengers[index+1:]...)
	return nil
}

func (s *Session) UpdatePassenger(index int, p domain.Passenger) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.StatePassengerDetails {
		return &domain.InvalidTransitionError{From: s.state, Action: "update passenger"}
	}
	if index < 0 || index >= len(s.booking.Passengers) {
		return errors.New("passenger index out of range")
	}
	s.booking.Passengers[index] = p
	return nil
}

func (s *Session) SetContact(info ContactInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.StatePassengerDetails {
		return &domain.InvalidTransitionError{From: s.state, Action: "set contact"}
	}
	s.booking.ContactEmail = info.Email
	s.booking.ContactPhone = info.Phone
	s.booking.EmergencyContactName = info.EmergencyName
	s.booking.EmergencyContactPhone = info.EmergencyPhone
	s.booking.SpecialRequirements = info.SpecialRequirements
	return nil
}

// Validate runs the passenger/contact predicate without changing state.
func (s *Session) Validate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.svc.validateBooking(&s.booking)
}

// ApplyPromo accepts the one supported code, case-insensitively. Valid while
// entering details or paying; the discount lands in the next total
// computation.
func (s *Session) ApplyPromo(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.StatePassengerDetails && s.state != domain.StatePayment {
		return &domain.InvalidTransitionError{From: s.state, Action: "apply promo"}
	}
	if !strings.EqualFold(code, promoCode) {
		return domain.ErrInvalidPromo
	}
	s.booking.PromoApplied = true
	if s.state == domain.StatePayment {
		s.booking.TotalPrice = s.totalLocked()
	}
	return nil
}

// ProceedToPayment validates the aggregate, fixes the payable total, and
// moves to PAYMENT. Valid only from PASSENGER_DETAILS.
func (s *Session) ProceedToPayment() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.StatePassengerDetails {
		return 0, &domain.InvalidTransitionError{From: s.state, Action: "proceed to payment"}
	}
	if s.booking.OutboundFlight == nil {
		return 0, domain.ErrNoFlightSelected
	}
	if err := s.svc.validateBooking(&s.booking); err != nil {
		return 0, err
	}

	s.booking.TotalPrice = s.totalLocked()
	s.state = domain.StatePayment
	return s.booking.TotalPrice, nil
}

// CompleteBooking generates the reference, appends it to the durable
// history, publishes the completion event, and moves to CONFIRMATION. Valid
// only from PAYMENT.
func (s *Session) CompleteBooking(ctx context.Context) (domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.StatePayment {
		return domain.Booking{}, &domain.InvalidTransitionError{From: s.state, Action: "complete booking"}
	}

	history, err := s.svc.store.BookingHistory(ctx)
	if err != nil {
		return domain.Booking{}, err
	}

	s.booking.Reference = s.svc.uniqueReference(history)
	s.booking.TotalPrice = s.totalLocked()
	s.booking.BookingDate = time.Now()

	if err := s.svc.store.AppendBookingHistory(ctx, s.booking.Reference); err != nil {
		return domain.Booking{}, err
	}

	if err := s.svc.publishCompleted(ctx, &s.booking); err != nil {
		log.Printf("WARNING: failed to publish booking_completed for %s: %v", s.booking.Reference, err)
	}

	s.state = domain.StateConfirmation
	return s.snapshotLocked(), nil
}

// StartNewSearch drops the selected flight and results but keeps contact and
// passenger input. Returns to SEARCH from any state.
func (s *Session) StartNewSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.booking.OutboundFlight = nil
	s.booking.ReturnFlight = nil
	s.results = nil
	s.state = domain.StateSearch
}

// Reset clears the whole aggregate and returns to SEARCH.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.booking = domain.Booking{PaymentMethod: defaultPaymentMethod}
	s.results = nil
	s.state = domain.StateSearch
}

// SubmitFilter feeds the session's debounced text filter.
func (s *Session) SubmitFilter(query string) {
	s.filter.Submit(query)
}

// FilterResults returns the latest debounced filter result.
func (s *Session) FilterResults() []domain.FlightOffer {
	return s.filter.Current()
}

// totalLocked computes fare * passengers + taxes + convenience fee, with the
// 10% promo cut applied by integer truncation. Zero until a flight and at
// least one passenger are set.
func (s *Session) totalLocked() int {
	if s.booking.OutboundFlight == nil || len(s.booking.Passengers) == 0 {
		return 0
	}
	total := s.booking.OutboundFlight.Fare*len(s.booking.Passengers) + taxes + convenienceFee
	if s.booking.PromoApplied {
		total = total * (100 - promoPercent) / 100
	}
	return total
}

func (s *Session) snapshotLocked() domain.Booking {
	b := s.booking
	b.Passengers = make([]domain.Passenger, len(s.booking.Passengers))
	copy(b.Passengers, s.booking.Passengers)
	if s.booking.OutboundFlight != nil {
		f := *s.booking.OutboundFlight
		b.OutboundFlight = &f
	}
	if s.booking.ReturnFlight != nil {
		f := *s.booking.ReturnFlight
		b.ReturnFlight = &f
	}
	return b
}

// routeCode normalizes free city/code input to a 3-letter code. Truncation
// is by rune, so multi-byte city names stay intact.
func routeCode(s string) string {
	s = strings.TrimSpace(s)
	if r := []rune(s); len(r) > 3 {
		s = string(r[:3])
	}
	return strings.ToUpper(s)
}
