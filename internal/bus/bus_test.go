package bus

import (
	"errors"
	"testing"

	"github.com/unitdash/unitdash/internal/term"
)

func TestReceivePreservesFIFOOrder(t *testing.T) {
	b := New(8)
	keys := []rune{'a', 'b', 'c', 'd'}
	for _, r := range keys {
		if err := b.Send(KeyEvent(term.Key{Type: term.KeyRune, Rune: r})); err != nil {
			t.Fatalf("send %q: %v", r, err)
		}
	}
	for _, want := range keys {
		event, err := b.Receive()
		if err != nil {
			t.Fatalf("receive: %v", err)
		}
		if event.Kind != KindKeyPress || event.Key.Rune != want {
			t.Fatalf("expected key %q, got %#v", want, event)
		}
	}
}

func TestInterleavedKindsStayOrdered(t *testing.T) {
	b := New(8)
	b.Send(KeyEvent(term.Key{Type: term.KeyRune, Rune: 'x'}))
	b.Send(ActionEvent(ActionRefreshRequested))
	b.Send(KeyEvent(term.Key{Type: term.KeyEnter}))

	first, _ := b.Receive()
	if first.Kind != KindKeyPress {
		t.Fatalf("expected key first, got %#v", first)
	}
	second, _ := b.Receive()
	if second.Kind != KindAction || second.Action != ActionRefreshRequested {
		t.Fatalf("expected refresh action second, got %#v", second)
	}
	third, _ := b.Receive()
	if third.Kind != KindKeyPress || third.Key.Type != term.KeyEnter {
		t.Fatalf("expected enter third, got %#v", third)
	}
}

func TestSendAfterCloseFails(t *testing.T) {
	b := New(1)
	b.Close()
	err := b.Send(ActionEvent(ActionGoList))
	if !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestCloseDrainsQueuedEventsFirst(t *testing.T) {
	b := New(4)
	b.Send(ActionEvent(ActionGoDetails))
	b.Send(ActionEvent(ActionGoList))
	b.Close()

	event, err := b.Receive()
	if err != nil {
		t.Fatalf("expected queued event after close, got %v", err)
	}
	if event.Action != ActionGoDetails {
		t.Fatalf("expected go-details, got %v", event.Action)
	}
	event, err = b.Receive()
	if err != nil || event.Action != ActionGoList {
		t.Fatalf("expected go-list, got %#v err=%v", event, err)
	}
	if _, err := b.Receive(); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed on empty closed bus, got %v", err)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	b := New(1)
	b.Close()
	b.Close()
	if _, err := b.Receive(); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}
