package domain

import "time"

// RecentSearch is one remembered search query. The stored list is capped and
// kept newest first; entries for the same code pair on the same calendar day
// collapse into the newest one.
type RecentSearch struct {
	Origin          string
	Destination     string
	OriginCode      string
	DestinationCode string
	Date            time.Time
	Passengers      int
	SearchedAt      time.Time
}

// SameRouteAndDay reports whether two searches target the same code pair on
// the same travel day.
func (s RecentSearch) SameRouteAndDay(other RecentSearch) bool {
	if s.OriginCode != other.OriginCode || s.DestinationCode != other.DestinationCode {
		return false
	}
	y1, m1, d1 := s.Date.Date()
	y2, m2, d2 := other.Date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
