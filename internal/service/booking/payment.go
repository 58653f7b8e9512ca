package booking

import (
	"context"
	"time"
)

type PaymentStatus string

const (
	PaymentInitiated  PaymentStatus = "PAYMENT_INITIATED"
	PaymentProcessing PaymentStatus = "PAYMENT_PROCESSING"
	PaymentSuccessful PaymentStatus = "PAYMENT_SUCCESSFUL"
)

var paymentStages = []PaymentStatus{PaymentInitiated, PaymentProcessing, PaymentSuccessful}

// PaymentSimulator walks the fixed payment stage sequence with a delay
// between stages. There is no gateway behind it; the stages exist so a
// client can show payment progress.
type PaymentSimulator struct {
	StageDelay time.Duration
}

// Process emits each stage in order and closes the channel after the last
// one. Cancelling the context stops the sequence early.
func (p *PaymentSimulator) Process(ctx context.Context) <-chan PaymentStatus {
	delay := p.StageDelay
	if delay <= 0 {
		delay = 800 * time.Millisecond
	}

	out := make(chan PaymentStatus, len(paymentStages))
	go func() {
		defer close(out)
		for i, stage := range paymentStages {
			if i > 0 {
				select {
				case <-time.After(delay):
				case <-ctx.Done():
					return
				}
			}
			select {
			case out <- stage:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
