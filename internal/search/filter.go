package search

import (
	"sync"
	"time"

	"github.com/skyfare/flightbooking/internal/domain"
)

const defaultDebounce = 300 * time.Millisecond

type textFilter interface {
	FilterByText(query string) []domain.FlightOffer
}

// Filterer turns a stream of free-text queries into filter results. Queries
// are debounced: a query is only evaluated once the window elapses with no
// newer input, so rapid typing collapses into a single filter pass and the
// newest query always wins. A query identical to the pending one, or to the
// last evaluated one when nothing is pending, is dropped.
type Filterer struct {
	filter textFilter
	window time.Duration

	queries chan string
	done    chan struct{}
	closed  sync.Once

	mu      sync.RWMutex
	current []domain.FlightOffer
	ready   chan struct{}
}

func NewFilterer(filter textFilter, window time.Duration) *Filterer {
	if window <= 0 {
		window = defaultDebounce
	}
	f := &Filterer{
		filter:  filter,
		window:  window,
		queries: make(chan string, 16),
		done:    make(chan struct{}),
		ready:   make(chan struct{}, 1),
	}
	go f.run()
	return f
}

// Submit feeds one query into the stream. Safe from multiple goroutines.
func (f *Filterer) Submit(query string) {
	select {
	case f.queries <- query:
	case <-f.done:
	}
}

// Current returns the most recent evaluated result, nil before the first
// query completes.
func (f *Filterer) Current() []domain.FlightOffer {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.current
}

// Ready signals once per delivered result. Signals coalesce; after a receive,
// Current holds the newest result.
func (f *Filterer) Ready() <-chan struct{} {
	return f.ready
}

// Close stops the filter goroutine. Pending input is discarded.
func (f *Filterer) Close() {
	f.closed.Do(func() { close(f.done) })
}

func (f *Filterer) run() {
	var (
		timer       *time.Timer
		fire        <-chan time.Time
		pending     string
		havePending bool
		last        string
		haveLast    bool
	)

	stopTimer := func() {
		if timer != nil && !timer.Stop() {
			<-fire
		}
		timer, fire = nil, nil
	}

	for {
		select {
		case q := <-f.queries:
			if havePending && q == pending {
				continue
			}
			if !havePending && haveLast && q == last {
				continue
			}
			pending, havePending = q, true
			stopTimer()
			timer = time.NewTimer(f.window)
			fire = timer.C

		case <-fire:
			timer, fire = nil, nil
			if !havePending {
				continue
			}
			last, haveLast = pending, true
			havePending = false

			result := f.filter.FilterByText(last)
			f.mu.Lock()
			f.current = result
			f.mu.Unlock()

			select {
			case f.ready <- struct{}{}:
			default:
			}

		case <-f.done:
			stopTimer()
			return
		}
	}
}
