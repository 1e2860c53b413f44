package term

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// Screen owns the terminal display: raw mode, the alternate screen, and
// painting a full-frame view string. Widget layout is the caller's concern;
// the screen only writes the rows it is given.
type Screen struct {
	output      *termenv.Output
	state       *term.State
	fd          int
	fixedWidth  int
	fixedHeight int
}

// NewScreen switches the terminal into raw mode and the alternate screen.
// Non-zero width/height values pin the reported size regardless of the
// terminal dimensions.
func NewScreen(width, height int) (*Screen, error) {
	fd := int(os.Stdin.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	output := termenv.NewOutput(os.Stdout)
	output.AltScreen()
	output.HideCursor()
	output.ClearScreen()
	return &Screen{
		output:      output,
		state:       state,
		fd:          fd,
		fixedWidth:  width,
		fixedHeight: height,
	}, nil
}

// Size returns the drawable area in cells, preferring any fixed dimensions.
func (s *Screen) Size() (int, int) {
	width, height := fallbackWidth, fallbackHeight
	if w, h, err := term.GetSize(s.fd); err == nil {
		width, height = w, h
	}
	if s.fixedWidth > 0 {
		width = s.fixedWidth
	}
	if s.fixedHeight > 0 {
		height = s.fixedHeight
	}
	return width, height
}

// Paint writes a full frame. Rows beyond the view are cleared so a shrinking
// view never leaves stale cells behind.
func (s *Screen) Paint(view string) {
	_, height := s.Size()
	rows := strings.Split(view, "\n")
	s.output.MoveCursor(1, 1)
	for i := 0; i < height; i++ {
		if i > 0 {
			s.output.WriteString("\r\n")
		}
		if i < len(rows) {
			s.output.WriteString(rows[i])
		}
		s.output.ClearLineRight()
	}
}

// Close restores the terminal to its previous state.
func (s *Screen) Close() error {
	s.output.ExitAltScreen()
	s.output.ShowCursor()
	s.output.Reset()
	return term.Restore(s.fd, s.state)
}
