package catalog

// Destination is one entry of the fixed popular-destinations table.
type Destination struct {
	City          string
	Code          string
	Country       string
	StartingPrice int
	International bool
}

type carrierFare struct {
	flightNumber string
	carrier      string
	baseFare     int
}

type route struct {
	origin          string
	originCode      string
	destination     string
	destinationCode string
	carriers        []carrierFare
}

type timeSlot struct {
	departure string
	arrival   string
	duration  string
}

var routes = []route{
	// Major domestic routes.
	{"Mumbai", "BOM", "Delhi", "DEL", []carrierFare{
		{"6E-2024", "IndiGo", 4500},
		{"AI-401", "Air India", 5200},
		{"SG-8123", "SpiceJet", 3800},
		{"UK-851", "Vistara", 6200},
	}},
	{"Delhi", "DEL", "Mumbai", "BOM", []carrierFare{
		{"6E-2025", "IndiGo", 4300},
		{"AI-402", "Air India", 5000},
		{"SG-8124", "SpiceJet", 3600},
		{"UK-852", "Vistara", 6000},
	}},
	{"Mumbai", "BOM", "Bangalore", "BLR", []carrierFare{
		{"G8-2134", "GoAir", 4200},
		{"UK-545", "Vistara", 4800},
		{"6E-5001", "IndiGo", 4500},
	}},
	{"Delhi", "DEL", "Bangalore", "BLR", []carrierFare{
		{"6E-5234", "IndiGo", 5500},
		{"AI-507", "Air India", 6200},
		{"SG-8234", "SpiceJet", 5000},
	}},
	{"Chennai", "MAA", "Delhi", "DEL", []carrierFare{
		{"6E-7891", "IndiGo", 5800},
		{"AI-543", "Air India", 6200},
	}},
	{"Mumbai", "BOM", "Goa", "GOI", []carrierFare{
		{"SG-1234", "SpiceJet", 4200},
		{"6E-6789", "IndiGo", 4500},
	}},

	// International routes.
	{"Mumbai", "BOM", "Dubai", "DXB", []carrierFare{
		{"EK-504", "Emirates", 18500},
		{"AI-131", "Air India", 16200},
	}},
	{"Delhi", "DEL", "Dubai", "DXB", []carrierFare{
		{"EK-512", "Emirates", 19200},
		{"AI-985", "Air India", 17500},
	}},
	{"Mumbai", "BOM", "Singapore", "SIN", []carrierFare{
		{"SQ-401", "Singapore Airlines", 28500},
		{"6E-1008", "IndiGo", 25000},
	}},
	{"Delhi", "DEL", "London", "LHR", []carrierFare{
		{"BA-142", "British Airways", 45500},
		{"AI-131", "Air India", 42000},
	}},
	{"Mumbai", "BOM", "New York", "JFK", []carrierFare{
		{"AI-119", "Air India", 65000},
		{"UA-82", "United Airlines", 68000},
	}},
	{"Delhi", "DEL", "Bangkok", "BKK", []carrierFare{
		{"TG-315", "Thai Airways", 22500},
		{"AI-333", "Air India", 20000},
	}},
}

var timeSlots = []timeSlot{
	{"06:30", "08:45", "2h 15m"},
	{"09:15", "11:30", "2h 15m"},
	{"14:20", "16:35", "2h 15m"},
	{"18:45", "21:00", "2h 15m"},
}

var airportNames = map[string]string{
	"BOM": "Chhatrapati Shivaji Maharaj International Airport",
	"DEL": "Indira Gandhi International Airport",
	"BLR": "Kempegowda International Airport",
	"MAA": "Chennai International Airport",
	"CCU": "Netaji Subhas Chandra Bose International Airport",
	"GOI": "Dabolim Airport",
	"DXB": "Dubai International Airport",
	"SIN": "Changi Airport",
	"LHR": "Heathrow Airport",
	"JFK": "John F. Kennedy International Airport",
	"BKK": "Suvarnabhumi Airport",
	"DOH": "Hamad International Airport",
}

var checkedAllowances = map[string]string{
	"IndiGo":             "15 kg",
	"Air India":          "20 kg",
	"SpiceJet":           "15 kg",
	"Vistara":            "15 kg",
	"GoAir":              "15 kg",
	"Emirates":           "30 kg",
	"Singapore Airlines": "30 kg",
	"British Airways":    "23 kg",
	"United Airlines":    "23 kg",
	"Thai Airways":       "30 kg",
}

var cancellationPolicies = map[string]string{
	"IndiGo":             "Free cancellation up to 24 hours before departure",
	"Air India":          "Free cancellation up to 24 hours before departure",
	"SpiceJet":           "Cancellation charges apply",
	"Vistara":            "Free cancellation up to 24 hours before departure",
	"GoAir":              "Cancellation charges apply",
	"Emirates":           "Free cancellation up to 24 hours before departure",
	"Singapore Airlines": "Free cancellation up to 24 hours before departure",
	"British Airways":    "Free cancellation up to 24 hours before departure",
	"United Airlines":    "Cancellation charges apply as per airline policy",
	"Thai Airways":       "Free cancellation up to 24 hours before departure",
}

var destinations = []Destination{
	{"Mumbai", "BOM", "India", 3500, false},
	{"Delhi", "DEL", "India", 4000, false},
	{"Bangalore", "BLR", "India", 4200, false},
	{"Chennai", "MAA", "India", 4600, false},
	{"Kolkata", "CCU", "India", 5200, false},
	{"Goa", "GOI", "India", 4200, false},
	{"Dubai", "DXB", "UAE", 16200, true},
	{"Singapore", "SIN", "Singapore", 22500, true},
	{"London", "LHR", "UK", 42000, true},
	{"Bangkok", "BKK", "Thailand", 19500, true},
	{"New York", "JFK", "USA", 52000, true},
	{"Sydney", "SYD", "Australia", 58000, true},
}

// Destinations returns a copy of the popular-destinations table.
func Destinations() []Destination {
	out := make([]Destination, len(destinations))
	copy(out, destinations)
	return out
}

// CityForCode resolves an airport code to its city name through the
// destinations table, falling back to the code itself.
func CityForCode(code string) string {
	for _, d := range destinations {
		if d.Code == code {
			return d.City
		}
	}
	return code
}
