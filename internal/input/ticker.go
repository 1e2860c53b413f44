package input

import (
	"sync"
	"time"

	"github.com/unitdash/unitdash/internal/bus"
)

// DefaultJournalInterval is how often the displayed journal tail is
// re-fetched while the details view shows one.
const DefaultJournalInterval = 5 * time.Second

// JournalTicker periodically emits ViewLogRequested actions. The controller
// ignores them unless the details view is showing a journal tail, so the
// ticker can run for the whole session.
type JournalTicker struct {
	bus      *bus.Bus
	interval time.Duration
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewJournalTicker creates a ticker; interval values <= 0 use the default.
func NewJournalTicker(b *bus.Bus, interval time.Duration) *JournalTicker {
	if interval <= 0 {
		interval = DefaultJournalInterval
	}
	return &JournalTicker{
		bus:      b,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start launches the ticking goroutine.
func (t *JournalTicker) Start() {
	t.wg.Add(1)
	go t.run()
}

func (t *JournalTicker) run() {
	defer t.wg.Done()
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-t.done:
			return
		case <-ticker.C:
			if err := t.bus.Send(bus.ActionEvent(bus.ActionViewLogRequested)); err != nil {
				return
			}
		}
	}
}

// Stop signals the ticker and waits for it to exit.
func (t *JournalTicker) Stop() {
	t.stopOnce.Do(func() {
		close(t.done)
	})
	t.wg.Wait()
}
