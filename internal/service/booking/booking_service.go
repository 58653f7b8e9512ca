package booking

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/skyfare/flightbooking/internal/domain"
	"github.com/skyfare/flightbooking/internal/kafka"
	"github.com/skyfare/flightbooking/internal/storage"
)

const (
	taxes          = 599
	convenienceFee = 99

	promoCode     = "SAVE10"
	promoPercent  = 10
	maxRefRetries = 5

	refLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	refDigits  = "0123456789"
)

// SearchEngine is the slice of the search engine the booking flow needs.
type SearchEngine interface {
	SearchByRoute(originCode, destinationCode string) []domain.FlightOffer
	FilterByText(query string) []domain.FlightOffer
	RecordSearch(ctx context.Context, s domain.RecentSearch) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// Service carries the dependencies shared by all booking sessions: the search
// engine, the durable store for booking history, and the optional event
// producer. Sessions themselves hold the per-booking state.
type Service struct {
	engine       SearchEngine
	store        storage.Store
	producer     Producer
	bookingTopic string

	notificationsTopic string
	debounce           time.Duration

	validate *validator.Validate

	rngMu sync.Mutex
	rng   *rand.Rand
}

type ServiceOption func(*Service)

func WithNotificationsTopic(topic string) ServiceOption {
	return func(s *Service) {
		s.notificationsTopic = topic
	}
}

// WithRand injects the random source used for booking references.
func WithRand(rng *rand.Rand) ServiceOption {
	return func(s *Service) {
		s.rng = rng
	}
}

// WithDebounce sets the window for per-session text filtering.
func WithDebounce(window time.Duration) ServiceOption {
	return func(s *Service) {
		s.debounce = window
	}
}

func NewService(
	engine SearchEngine,
	store storage.Store,
	producer Producer,
	bookingTopic string,
	opts ...ServiceOption,
) *Service {
	service := &Service{
		engine:       engine,
		store:        store,
		producer:     producer,
		bookingTopic: bookingTopic,
		validate:     validator.New(),
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// BookingHistory reads the durable list of completed booking references.
func (s *Service) BookingHistory(ctx context.Context) ([]string, error) {
	return s.store.BookingHistory(ctx)
}

// newReference produces a 3-uppercase-letters + 4-digits booking reference.
func (s *Service) newReference() string {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()

	buf := make([]byte, 7)
	for i := 0; i < 3; i++ {
		buf[i] = refLetters[s.rng.Intn(len(refLetters))]
	}
	for i := 3; i < 7; i++ {
		buf[i] = refDigits[s.rng.Intn(len(refDigits))]
	}
	return string(buf)
}

// uniqueReference retries generation against the stored history. After
// maxRefRetries collisions the last candidate is accepted; the space is large
// enough that this only matters for pathological histories.
func (s *Service) uniqueReference(history []string) string {
	seen := make(map[string]struct{}, len(history))
	for _, ref := range history {
		seen[ref] = struct{}{}
	}

	ref := s.newReference()
	for i := 0; i < maxRefRetries; i++ {
		if _, taken := seen[ref]; !taken {
			break
		}
		ref = s.newReference()
	}
	return ref
}

func (s *Service) publishCompleted(ctx context.Context, b *domain.Booking) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}

	event := kafka.BookingEvent{
		Type:         "booking_completed",
		Reference:    b.Reference,
		ContactEmail: b.ContactEmail,
		Passengers:   len(b.Passengers),
		TotalPrice:   b.TotalPrice,
		BookedAt:     b.BookingDate,
	}
	if b.OutboundFlight != nil {
		event.FlightNumber = b.OutboundFlight.FlightNumber
		event.OriginCode = b.OutboundFlight.OriginCode
		event.DestinationCode = b.OutboundFlight.DestinationCode
	}

	if err := s.producer.Publish(ctx, s.bookingTopic, b.Reference, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, b.Reference, event)
	}
	return nil
}

// contactForm mirrors the contact fields for validator tags.
type contactForm struct {
	Email string `validate:"required,email"`
	Phone string `validate:"required"`
}

func (s *Service) validateBooking(b *domain.Booking) error {
	if len(b.Passengers) == 0 {
		return domain.ErrIncompletePassengers
	}
	for _, p := range b.Passengers {
		if p.FirstName == "" || p.LastName == "" {
			return domain.ErrIncompletePassengers
		}
	}

	form := contactForm{Email: b.ContactEmail, Phone: b.ContactPhone}
	if err := s.validate.Struct(form); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidContact, err)
	}
	return nil
}

func logRecordFailure(err error) {
	if err != nil {
		log.Printf("WARNING: failed to record recent search: %v", err)
	}
}
