package term

import (
	"io"
	"sync"
	"time"

	"github.com/muesli/cancelreader"
)

// Input reads raw terminal bytes on an internal goroutine and exposes decoded
// key presses through a bounded-wait Poll. Reads are cancelable so Close does
// not wait on a blocked stdin read.
type Input struct {
	reader    cancelreader.CancelReader
	keys      chan Key
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewInput wraps the given reader (normally os.Stdin, already in raw mode)
// and starts the read loop.
func NewInput(r io.Reader) (*Input, error) {
	cr, err := cancelreader.NewReader(r)
	if err != nil {
		return nil, err
	}
	in := &Input{
		reader: cr,
		keys:   make(chan Key, 32),
		done:   make(chan struct{}),
	}
	in.wg.Add(1)
	go in.readLoop()
	return in, nil
}

func (in *Input) readLoop() {
	defer in.wg.Done()
	buf := make([]byte, 256)
	for {
		n, err := in.reader.Read(buf)
		if n > 0 {
			for _, key := range DecodeKeys(buf[:n]) {
				select {
				case in.keys <- key:
				case <-in.done:
					return
				}
			}
		}
		if err != nil {
			return
		}
	}
}

// Poll waits up to timeout for the next key press. The boolean reports
// whether a key was available before the deadline.
func (in *Input) Poll(timeout time.Duration) (Key, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case key := <-in.keys:
		return key, true, nil
	case <-in.done:
		return Key{}, false, io.EOF
	case <-timer.C:
		return Key{}, false, nil
	}
}

// Close cancels the pending read and waits for the read loop to exit.
func (in *Input) Close() error {
	in.closeOnce.Do(func() {
		close(in.done)
		in.reader.Cancel()
	})
	in.wg.Wait()
	return in.reader.Close()
}
