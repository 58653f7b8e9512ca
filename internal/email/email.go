package email

import (
	"context"
	"fmt"

	"github.com/skyfare/flightbooking/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	fmt.Printf("send confirmation to %s: booking %s, flight %s %s->%s, %d passenger(s), total %d\n",
		event.ContactEmail, event.Reference, event.FlightNumber,
		event.OriginCode, event.DestinationCode, event.Passengers, event.TotalPrice)
	return nil
}
