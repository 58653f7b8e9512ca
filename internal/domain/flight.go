package domain

// FlightOffer is one bookable flight instance produced by the catalog
// generator. Offers are never mutated after generation.
type FlightOffer struct {
	ID                 int
	FlightNumber       string
	Carrier            string
	Origin             string
	OriginCode         string
	OriginAirport      string
	Destination        string
	DestinationCode    string
	DestinationAirport string
	Departure          string
	Arrival            string
	Duration           string
	Fare               int
	CheckedBaggage     string
	CabinBaggage       string
	Cancellation       string
	AircraftType       string
	SeatClass          string
	AvailableSeats     int
}
