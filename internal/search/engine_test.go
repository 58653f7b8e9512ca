package search

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyfare/flightbooking/internal/catalog"
	"github.com/skyfare/flightbooking/internal/domain"
	"github.com/skyfare/flightbooking/internal/storage"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	offers := catalog.NewGenerator(42).Generate()
	return NewEngine(offers, storage.NewMemoryStore())
}

func TestSearchByRoute_MatchesAndSorts(t *testing.T) {
	engine := newTestEngine(t)

	results := engine.SearchByRoute("bom", "del")
	require.NotEmpty(t, results)

	for i, o := range results {
		assert.Equal(t, "BOM", o.OriginCode)
		assert.Equal(t, "DEL", o.DestinationCode)
		if i > 0 {
			assert.LessOrEqual(t, results[i-1].Fare, o.Fare)
		}
	}
}

func TestSearchByRoute_NoMatch(t *testing.T) {
	engine := newTestEngine(t)
	assert.Empty(t, engine.SearchByRoute("BOM", "XXX"))
}

func TestCheapestForRoute(t *testing.T) {
	engine := newTestEngine(t)

	cheapest := engine.CheapestForRoute("BOM", "DEL")
	require.NotNil(t, cheapest)
	assert.Equal(t, engine.SearchByRoute("BOM", "DEL")[0], *cheapest)

	assert.Nil(t, engine.CheapestForRoute("BOM", "XXX"))
}

func TestFilterByText_EmptyQueryReturnsCatalog(t *testing.T) {
	engine := newTestEngine(t)
	assert.Len(t, engine.FilterByText(""), len(engine.Catalog()))
}

func TestFilterByText_Matches(t *testing.T) {
	engine := newTestEngine(t)

	for _, o := range engine.FilterByText("indigo") {
		assert.Equal(t, "IndiGo", o.Carrier)
	}

	for _, o := range engine.FilterByText("mumbai") {
		matched := strings.Contains(strings.ToLower(o.Origin), "mumbai") ||
			strings.Contains(strings.ToLower(o.Destination), "mumbai")
		assert.True(t, matched)
	}

	assert.Empty(t, engine.FilterByText("zzz-no-such-thing"))
}

func TestRecordSearch_DuplicateSameDayCollapses(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	first := domain.RecentSearch{
		Origin: "Mumbai", Destination: "Delhi",
		OriginCode: "BOM", DestinationCode: "DEL",
		Date: day, Passengers: 1, SearchedAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, engine.RecordSearch(ctx, first))

	second := first
	second.Passengers = 3
	second.SearchedAt = time.Now()
	require.NoError(t, engine.RecordSearch(ctx, second))

	searches, err := engine.RecentSearches(ctx)
	require.NoError(t, err)
	require.Len(t, searches, 1)
	assert.Equal(t, 3, searches[0].Passengers)
}

func TestRecordSearch_CapAtTen(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 11; i++ {
		s := domain.RecentSearch{
			OriginCode:      fmt.Sprintf("A%02d", i),
			DestinationCode: fmt.Sprintf("B%02d", i),
			Date:            day,
			Passengers:      1,
			SearchedAt:      time.Now().Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, engine.RecordSearch(ctx, s))
	}

	searches, err := engine.RecentSearches(ctx)
	require.NoError(t, err)
	require.Len(t, searches, 10)

	// Newest first; the very first recording fell off.
	assert.Equal(t, "A10", searches[0].OriginCode)
	for _, s := range searches {
		assert.NotEqual(t, "A00", s.OriginCode)
	}
}

func TestClearRecentSearches(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, engine.RecordSearch(ctx, domain.RecentSearch{
		OriginCode: "BOM", DestinationCode: "DEL",
		Date: time.Now(), Passengers: 1,
	}))
	require.NoError(t, engine.ClearRecentSearches(ctx))

	searches, err := engine.RecentSearches(ctx)
	require.NoError(t, err)
	assert.Empty(t, searches)
}

func TestPopularRoutes(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	record := func(from, to string, day int) {
		require.NoError(t, engine.RecordSearch(ctx, domain.RecentSearch{
			OriginCode: from, DestinationCode: to,
			Date:       time.Date(2026, 9, day, 0, 0, 0, 0, time.UTC),
			Passengers: 1,
		}))
	}

	record("BOM", "DEL", 1)
	record("BOM", "DEL", 2)
	record("DEL", "GOI", 1)

	top, err := engine.PopularRoutes(ctx, 5)
	require.NoError(t, err)
	require.Len(t, top, 2)

	assert.Equal(t, RouteCount{Origin: "Mumbai", Destination: "Delhi", Count: 2}, top[0])
	assert.Equal(t, RouteCount{Origin: "Delhi", Destination: "Goa", Count: 1}, top[1])
}

func TestPopularRoutes_UnknownCodeFallsBack(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, engine.RecordSearch(ctx, domain.RecentSearch{
		OriginCode: "QQQ", DestinationCode: "DEL",
		Date: time.Now(), Passengers: 1,
	}))

	top, err := engine.PopularRoutes(ctx, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "QQQ", top[0].Origin)
	assert.Equal(t, "Delhi", top[0].Destination)
}
