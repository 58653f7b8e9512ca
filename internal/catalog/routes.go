package catalog

import (
	"sort"

	"github.com/skyfare/flightbooking/internal/domain"
)

// RouteSummary groups the offers serving one origin/destination pair.
type RouteSummary struct {
	Origin          string
	Destination     string
	OriginCode      string
	DestinationCode string
	Offers          []domain.FlightOffer
	AverageFare     int
	Duration        string
}

// Routes organizes a catalog into per-route summaries. Offers within a
// summary are sorted ascending by fare; summaries are sorted by origin city.
func Routes(offers []domain.FlightOffer) []RouteSummary {
	grouped := make(map[string][]domain.FlightOffer)
	order := make([]string, 0)
	for _, o := range offers {
		key := o.OriginCode + "-" + o.DestinationCode
		if _, ok := grouped[key]; !ok {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], o)
	}

	summaries := make([]RouteSummary, 0, len(order))
	for _, key := range order {
		group := grouped[key]
		sort.Slice(group, func(i, j int) bool { return group[i].Fare < group[j].Fare })

		total := 0
		for _, o := range group {
			total += o.Fare
		}

		first := group[0]
		summaries = append(summaries, RouteSummary{
			Origin:          first.Origin,
			Destination:     first.Destination,
			OriginCode:      first.OriginCode,
			DestinationCode: first.DestinationCode,
			Offers:          group,
			AverageFare:     total / len(group),
			Duration:        first.Duration,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Origin != summaries[j].Origin {
			return summaries[i].Origin < summaries[j].Origin
		}
		return summaries[i].Destination < summaries[j].Destination
	})
	return summaries
}

// PriceRange returns the min and max fare over a route. ok is false when no
// offer serves the route.
func PriceRange(offers []domain.FlightOffer, originCode, destinationCode string) (min, max int, ok bool) {
	for _, o := range offers {
		if o.OriginCode != originCode || o.DestinationCode != destinationCode {
			continue
		}
		if !ok {
			min, max, ok = o.Fare, o.Fare, true
			continue
		}
		if o.Fare < min {
			min = o.Fare
		}
		if o.Fare > max {
			max = o.Fare
		}
	}
	return min, max, ok
}
