package storage

import (
	"context"

	"github.com/skyfare/flightbooking/internal/domain"
)

// Store is the durable key-value storage behind the recent-searches list and
// the booking-history list. Implementations persist whole blobs; callers do
// read-modify-write, so each list needs a single writer.
type Store interface {
	RecentSearches(ctx context.Context) ([]domain.RecentSearch, error)
	SaveRecentSearches(ctx context.Context, searches []domain.RecentSearch) error
	BookingHistory(ctx context.Context) ([]string, error)
	AppendBookingHistory(ctx context.Context, reference string) error
}
