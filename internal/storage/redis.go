package storage

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/skyfare/flightbooking/config"
	"github.com/skyfare/flightbooking/internal/domain"
)

// RedisStore keeps the recent-searches list as a JSON blob and the booking
// history as a redis list, so history appends need no read-modify-write.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(cfg config.RedisConfig) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
	}
}

func (s *RedisStore) RecentSearches(ctx context.Context) ([]domain.RecentSearch, error) {
	data, err := s.client.Get(ctx, recentSearchesKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var searches []domain.RecentSearch
	if err := json.Unmarshal(data, &searches); err != nil {
		return nil, err
	}
	return searches, nil
}

func (s *RedisStore) SaveRecentSearches(ctx context.Context, searches []domain.RecentSearch) error {
	payload, err := json.Marshal(searches)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, recentSearchesKey(), payload, 0).Err()
}

func (s *RedisStore) BookingHistory(ctx context.Context) ([]string, error) {
	refs, err := s.client.LRange(ctx, bookingHistoryKey(), 0, -1).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	return refs, nil
}

func (s *RedisStore) AppendBookingHistory(ctx context.Context, reference string) error {
	return s.client.RPush(ctx, bookingHistoryKey(), reference).Err()
}

func recentSearchesKey() string {
	return "store:recent_searches"
}

func bookingHistoryKey() string {
	return "store:booking_history"
}

var _ Store = (*RedisStore)(nil)
