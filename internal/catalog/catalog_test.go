package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseFares() map[string]map[string]int {
	fares := make(map[string]map[string]int)
	for _, rt := range routes {
		key := rt.originCode + "-" + rt.destinationCode
		if fares[key] == nil {
			fares[key] = make(map[string]int)
		}
		for _, cf := range rt.carriers {
			fares[key][cf.carrier] = cf.baseFare
		}
	}
	return fares
}

func TestGenerator_UniqueIDs(t *testing.T) {
	offers := NewGenerator(42).Generate()
	require.NotEmpty(t, offers)

	seen := make(map[int]bool, len(offers))
	for _, o := range offers {
		assert.False(t, seen[o.ID], "duplicate offer id %d", o.ID)
		seen[o.ID] = true
	}
	assert.Equal(t, firstOfferID, offers[0].ID)
}

func TestGenerator_FareFloor(t *testing.T) {
	offers := NewGenerator(7).Generate()
	fares := baseFares()

	for _, o := range offers {
		base, ok := fares[o.OriginCode+"-"+o.DestinationCode][o.Carrier]
		require.True(t, ok, "offer %d has no base fare entry", o.ID)
		assert.Greater(t, o.Fare, 0)
		assert.GreaterOrEqual(t, o.Fare, base/2, "offer %d fare below floor", o.ID)
		assert.LessOrEqual(t, o.Fare, base+1000, "offer %d fare above variation ceiling", o.ID)
	}
}

func TestGenerator_Reproducible(t *testing.T) {
	first := NewGenerator(99).Generate()
	second := NewGenerator(99).Generate()
	assert.Equal(t, first, second)
}

func TestGenerator_FlightNumberPerSlot(t *testing.T) {
	offers := NewGenerator(1).Generate()

	// First route, first carrier: IndiGo 6E-2024 over four slots.
	require.GreaterOrEqual(t, len(offers), 4)
	assert.Equal(t, "6E-2024", offers[0].FlightNumber)
	assert.Equal(t, "6E-2025", offers[1].FlightNumber)
	assert.Equal(t, "6E-2026", offers[2].FlightNumber)
	assert.Equal(t, "6E-2027", offers[3].FlightNumber)
}

func TestGenerator_LookupFallbacks(t *testing.T) {
	assert.Equal(t, "Heathrow Airport", AirportName("LHR"))
	assert.Equal(t, "XYZ Airport", AirportName("XYZ"))
	assert.Equal(t, "15 kg", checkedAllowance("No Such Air"))
	assert.Equal(t, "Cancellation charges apply", cancellationPolicy("No Such Air"))
}

func TestRoutes_GroupsAndSorts(t *testing.T) {
	offers := NewGenerator(3).Generate()
	summaries := Routes(offers)
	require.NotEmpty(t, summaries)

	total := 0
	for _, s := range summaries {
		total += len(s.Offers)
		for i := 1; i < len(s.Offers); i++ {
			assert.LessOrEqual(t, s.Offers[i-1].Fare, s.Offers[i].Fare)
			assert.Equal(t, s.OriginCode, s.Offers[i].OriginCode)
			assert.Equal(t, s.DestinationCode, s.Offers[i].DestinationCode)
		}
	}
	assert.Equal(t, len(offers), total)

	for i := 1; i < len(summaries); i++ {
		assert.LessOrEqual(t, summaries[i-1].Origin, summaries[i].Origin)
	}
}

func TestPriceRange(t *testing.T) {
	offers := NewGenerator(5).Generate()

	min, max, ok := PriceRange(offers, "BOM", "DEL")
	require.True(t, ok)
	assert.LessOrEqual(t, min, max)
	assert.Greater(t, min, 0)

	_, _, ok = PriceRange(offers, "BOM", "NOPE")
	assert.False(t, ok)
}

func TestCityForCode(t *testing.T) {
	assert.Equal(t, "Mumbai", CityForCode("BOM"))
	assert.Equal(t, "ZZZ", CityForCode("ZZZ"))
}
