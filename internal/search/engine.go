package search

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/skyfare/flightbooking/internal/catalog"
	"github.com/skyfare/flightbooking/internal/domain"
	"github.com/skyfare/flightbooking/internal/storage"
)

const defaultHistoryCap = 10

// Searcher is the query surface over the generated catalog plus the
// recent-searches bookkeeping. Route and text queries are pure; recording a
// search is an explicit, separate call.
type Searcher interface {
	Catalog() []domain.FlightOffer
	SearchByRoute(originCode, destinationCode string) []domain.FlightOffer
	CheapestForRoute(originCode, destinationCode string) *domain.FlightOffer
	FilterByText(query string) []domain.FlightOffer
	RecordSearch(ctx context.Context, s domain.RecentSearch) error
	RecentSearches(ctx context.Context) ([]domain.RecentSearch, error)
	ClearRecentSearches(ctx context.Context) error
	PopularRoutes(ctx context.Context, topN int) ([]RouteCount, error)
}

// RouteCount is one popular-routes entry: a city pair and how often it was
// searched recently.
type RouteCount struct {
	Origin      string
	Destination string
	Count       int
}

type Engine struct {
	offers     []domain.FlightOffer
	store      storage.Store
	historyCap int
}

type EngineOption func(*Engine)

func WithHistoryCap(cap int) EngineOption {
	return func(e *Engine) {
		if cap > 0 {
			e.historyCap = cap
		}
	}
}

func NewEngine(offers []domain.FlightOffer, store storage.Store, opts ...EngineOption) *Engine {
	e := &Engine{
		offers:     offers,
		store:      store,
		historyCap: defaultHistoryCap,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the full generated catalog unfiltered.
func (e *Engine) Catalog() []domain.FlightOffer {
	out := make([]domain.FlightOffer, len(e.offers))
	copy(out, e.offers)
	return out
}

// SearchByRoute matches both codes case-insensitively and returns offers
// sorted ascending by fare. No match is an empty slice, not an error.
func (e *Engine) SearchByRoute(originCode, destinationCode string) []domain.FlightOffer {
	from := strings.ToUpper(originCode)
	to := strings.ToUpper(destinationCode)

	matched := make([]domain.FlightOffer, 0)
	for _, o := range e.offers {
		if strings.ToUpper(o.OriginCode) == from && strings.ToUpper(o.DestinationCode) == to {
			matched = append(matched, o)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Fare < matched[j].Fare })
	return matched
}

// CheapestForRoute returns the lowest-fare offer on a route, nil when the
// route is not served.
func (e *Engine) CheapestForRoute(originCode, destinationCode string) *domain.FlightOffer {
	matched := e.SearchByRoute(originCode, destinationCode)
	if len(matched) == 0 {
		return nil
	}
	return &matched[0]
}

// FilterByText does a case-insensitive substring match over origin and
// destination cities, their codes, and the carrier name. An empty query
// returns the full catalog.
func (e *Engine) FilterByText(query string) []domain.FlightOffer {
	if query == "" {
		return e.Catalog()
	}

	q := strings.ToLower(query)
	matched := make([]domain.FlightOffer, 0)
	for _, o := range e.offers {
		if containsFold(o.Origin, q) ||
			containsFold(o.Destination, q) ||
			containsFold(o.OriginCode, q) ||
			containsFold(o.DestinationCode, q) ||
			containsFold(o.Carrier, q) {
			matched = append(matched, o)
		}
	}
	return matched
}

// containsFold expects needle already lowercased.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

// RecordSearch inserts a search at the head of the recent list, collapsing
// any older entry for the same code pair and travel day, truncates to the
// cap, and persists the result.
func (e *Engine) RecordSearch(ctx context.Context, s domain.RecentSearch) error {
	if s.SearchedAt.IsZero() {
		s.SearchedAt = time.Now()
	}

	existing, err := e.store.RecentSearches(ctx)
	if err != nil {
		return err
	}

	kept := make([]domain.RecentSearch, 0, len(existing)+1)
	kept = append(kept, s)
	for _, old := range existing {
		if old.SameRouteAndDay(s) {
			continue
		}
		kept = append(kept, old)
	}
	if len(kept) > e.historyCap {
		kept = kept[:e.historyCap]
	}

	return e.store.SaveRecentSearches(ctx, kept)
}

// RecentSearches loads the stored list, newest first.
func (e *Engine) RecentSearches(ctx context.Context) ([]domain.RecentSearch, error) {
	searches, err := e.store.RecentSearches(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(searches, func(i, j int) bool {
		return searches[i].SearchedAt.After(searches[j].SearchedAt)
	})
	return searches, nil
}

// ClearRecentSearches empties the list and persists the empty state.
func (e *Engine) ClearRecentSearches(ctx context.Context) error {
	return e.store.SaveRecentSearches(ctx, []domain.RecentSearch{})
}

// PopularRoutes groups the recent searches by code pair and returns the topN
// pairs by occurrence count, codes resolved to city names where known.
func (e *Engine) PopularRoutes(ctx context.Context, topN int) ([]RouteCount, error) {
	searches, err := e.store.RecentSearches(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, s := range searches {
		counts[s.OriginCode+"-"+s.DestinationCode]++
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})

	if topN > 0 && len(keys) > topN {
		keys = keys[:topN]
	}

	top := make([]RouteCount, 0, len(keys))
	for _, k := range keys {
		from, to, _ := strings.Cut(k, "-")
		top = append(top, RouteCount{
			Origin:      catalog.CityForCode(from),
			Destination: catalog.CityForCode(to),
			Count:       counts[k],
		})
	}
	return top, nil
}

var _ Searcher = (*Engine)(nil)
