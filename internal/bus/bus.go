// Package bus carries every event the controller consumes: key presses from
// the input listener and application actions from background producers or the
// controller itself. One queue, many producers, exactly one consumer, strict
// FIFO. Rapid repeated presses are never coalesced.
package bus

import (
	"errors"
	"sync"

	"github.com/unitdash/unitdash/internal/term"
)

// ErrClosed is returned once the bus has been shut down. For producers it
// signals that the consumer is gone; for the consumer it is the orderly-exit
// condition.
var ErrClosed = errors.New("event bus closed")

// Kind discriminates the event union.
type Kind int

const (
	KindKeyPress Kind = iota
	KindAction
)

// Action is an application-level event variant.
type Action int

const (
	ActionGoList Action = iota
	ActionGoDetails
	ActionRefreshRequested
	ActionViewLogRequested
)

func (a Action) String() string {
	switch a {
	case ActionGoList:
		return "go-list"
	case ActionGoDetails:
		return "go-details"
	case ActionRefreshRequested:
		return "refresh-requested"
	case ActionViewLogRequested:
		return "view-log-requested"
	default:
		return "unknown"
	}
}

// Event is the tagged union flowing through the bus. Key is meaningful for
// KindKeyPress, Action for KindAction.
type Event struct {
	Kind   Kind
	Key    term.Key
	Action Action
}

// KeyEvent wraps a key press.
func KeyEvent(key term.Key) Event {
	return Event{Kind: KindKeyPress, Key: key}
}

// ActionEvent wraps an application action.
func ActionEvent(action Action) Event {
	return Event{Kind: KindAction, Action: action}
}

// Bus is the single event queue. The zero value is not usable; construct
// with New.
type Bus struct {
	events    chan Event
	done      chan struct{}
	closeOnce sync.Once
}

// New creates a bus with the given buffer capacity.
func New(capacity int) *Bus {
	return &Bus{
		events: make(chan Event, capacity),
		done:   make(chan struct{}),
	}
}

// Send enqueues an event. It fails only with ErrClosed after Close; it never
// waits on the consumer beyond queue backpressure.
func (b *Bus) Send(event Event) error {
	select {
	case <-b.done:
		return ErrClosed
	default:
	}
	select {
	case <-b.done:
		return ErrClosed
	case b.events <- event:
		return nil
	}
}

// Receive blocks until the next event arrives. Events already queued when
// Close is called are still delivered in order before ErrClosed surfaces.
func (b *Bus) Receive() (Event, error) {
	select {
	case event := <-b.events:
		return event, nil
	default:
	}
	select {
	case event := <-b.events:
		return event, nil
	case <-b.done:
		// drain anything that raced with the shutdown signal
		select {
		case event := <-b.events:
			return event, nil
		default:
			return Event{}, ErrClosed
		}
	}
}

// Close shuts the bus down. Safe to call more than once.
func (b *Bus) Close() {
	b.closeOnce.Do(func() {
		close(b.done)
	})
}
