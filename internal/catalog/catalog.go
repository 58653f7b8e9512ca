package catalog

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/skyfare/flightbooking/internal/domain"
)

const firstOfferID = 1001

// Generator produces the in-memory flight catalog from the fixed route
// tables. Fares carry a random variation, so the random source is injectable
// to keep generation reproducible.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator builds a generator seeded with seed. A zero seed falls back to
// the clock.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate builds the full catalog: every route, every carrier on it, four
// daily time slots each. Offer IDs are sequential starting at 1001 and the
// fare never drops below half the carrier's base fare for the route.
func (g *Generator) Generate() []domain.FlightOffer {
	offers := make([]domain.FlightOffer, 0, offerCount())
	id := firstOfferID

	for _, rt := range routes {
		for _, cf := range rt.carriers {
			for slot, ts := range timeSlots {
				variation := g.rng.Intn(1501) - 500 // [-500, 1000]
				fare := cf.baseFare + variation
				if floor := cf.baseFare / 2; fare < floor {
					fare = floor
				}

				offers = append(offers, domain.FlightOffer{
					ID:                 id,
					FlightNumber:       slotFlightNumber(cf.flightNumber, slot),
					Carrier:            cf.carrier,
					Origin:             rt.origin,
					OriginCode:         rt.originCode,
					OriginAirport:      AirportName(rt.originCode),
					Destination:        rt.destination,
					DestinationCode:    rt.destinationCode,
					DestinationAirport: AirportName(rt.destinationCode),
					Departure:          ts.departure,
					Arrival:            ts.arrival,
					Duration:           ts.duration,
					Fare:               fare,
					CheckedBaggage:     checkedAllowance(cf.carrier),
					CabinBaggage:       "7 kg",
					Cancellation:       cancellationPolicy(cf.carrier),
					AircraftType:       "Boeing 737-800",
					SeatClass:          "Economy",
					AvailableSeats:     10 + g.rng.Intn(41),
				})
				id++
			}
		}
	}

	return offers
}

func offerCount() int {
	n := 0
	for _, rt := range routes {
		n += len(rt.carriers) * len(timeSlots)
	}
	return n
}

// slotFlightNumber derives the per-slot flight number by bumping the numeric
// suffix of the carrier's base number, e.g. "6E-2024" slot 2 -> "6E-2026".
func slotFlightNumber(base string, slot int) string {
	prefix := base
	if len(prefix) > 2 {
		prefix = prefix[:2]
	}

	digits := base
	if i := strings.LastIndexByte(base, '-'); i >= 0 {
		digits = base[i+1:]
	}
	suffix, err := strconv.Atoi(digits)
	if err != nil {
		suffix = 22
	}

	return fmt.Sprintf("%s-%04d", prefix, suffix+slot)
}

// AirportName resolves an airport code to its full name, falling back to a
// generic "<code> Airport".
func AirportName(code string) string {
	if name, ok := airportNames[code]; ok {
		return name
	}
	return code + " Airport"
}

func checkedAllowance(carrier string) string {
	if a, ok := checkedAllowances[carrier]; ok {
		return a
	}
	return "15 kg"
}

func cancellationPolicy(carrier string) string {
	if p, ok := cancellationPolicies[carrier]; ok {
		return p
	}
	return "Cancellation charges apply"
}
