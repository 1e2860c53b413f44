// Package input hosts the background producers feeding the event bus: the
// terminal key listener and the journal refresh ticker. Producers own no
// application state; they only hold their poll handle and the send side of
// the bus.
package input

import (
	"sync"
	"time"

	"github.com/unitdash/unitdash/internal/bus"
	"github.com/unitdash/unitdash/internal/logging/events"
	"github.com/unitdash/unitdash/internal/term"
)

// DefaultPollInterval bounds each wait for terminal input. Shutdown latency
// of the listener is bounded by this interval.
const DefaultPollInterval = 100 * time.Millisecond

// Poller yields key presses with a bounded wait. Implemented by term.Input;
// tests substitute scripted fakes.
type Poller interface {
	Poll(timeout time.Duration) (term.Key, bool, error)
}

// Listener forwards key presses from the poller onto the event bus. It never
// interprets key semantics. It exits when the bus is closed, when the poller
// fails, or when Stop is called.
type Listener struct {
	bus      *bus.Bus
	poller   Poller
	interval time.Duration
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewListener creates a listener; interval values <= 0 use the default.
func NewListener(b *bus.Bus, poller Poller, interval time.Duration) *Listener {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Listener{
		bus:      b,
		poller:   poller,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start launches the polling goroutine.
func (l *Listener) Start() {
	l.wg.Add(1)
	go l.run()
}

func (l *Listener) run() {
	defer l.wg.Done()
	for {
		select {
		case <-l.done:
			events.Input.Stopped("shutdown signal")
			return
		default:
		}
		key, ok, err := l.poller.Poll(l.interval)
		if err != nil {
			events.Input.Stopped("poll: " + err.Error())
			return
		}
		if !ok {
			continue
		}
		if err := l.bus.Send(bus.KeyEvent(key)); err != nil {
			events.Input.Stopped("bus closed")
			return
		}
	}
}

// Stop signals the listener and waits for it to exit. The wait is bounded by
// one poll interval.
func (l *Listener) Stop() {
	l.stopOnce.Do(func() {
		close(l.done)
	})
	l.wg.Wait()
}
