package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPaymentSimulator_StageOrder(t *testing.T) {
	sim := &PaymentSimulator{StageDelay: time.Millisecond}

	var got []PaymentStatus
	for stage := range sim.Process(context.Background()) {
		got = append(got, stage)
	}

	assert.Equal(t, []PaymentStatus{PaymentInitiated, PaymentProcessing, PaymentSuccessful}, got)
}

func TestPaymentSimulator_CancelStopsSequence(t *testing.T) {
	sim := &PaymentSimulator{StageDelay: time.Hour}

	ctx, cancel := context.WithCancel(context.Background())
	ch := sim.Process(ctx)

	first, ok := <-ch
	assert.True(t, ok)
	assert.Equal(t, PaymentInitiated, first)

	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "channel should close without further stages")
	case <-time.After(2 * time.Second):
		t.Fatal("channel did not close after cancel")
	}
}
