package state

import (
	"strings"

	"github.com/unitdash/unitdash/internal/systemd"
)

// ContentKind identifies what the details pane is showing.
type ContentKind int

const (
	ContentNone ContentKind = iota
	ContentUnit
	ContentLog
)

func (k ContentKind) String() string {
	switch k {
	case ContentUnit:
		return "unit"
	case ContentLog:
		return "journal"
	default:
		return "none"
	}
}

// ScrollStride is how many lines a page scroll shifts the offset.
const ScrollStride = 10

// Details owns the scroll offset and displayed text for one service: either
// the unit definition plus its property bundle, or a journal tail.
type Details struct {
	Kind    ContentKind
	Service string
	Lines   []string
	Scroll  int
	Props   systemd.PropsStatus
}

// ShowUnit displays a unit definition with its (possibly failed) property
// bundle and resets the scroll.
func (d *Details) ShowUnit(service, content string, props systemd.PropsStatus) {
	d.Kind = ContentUnit
	d.Service = service
	d.Lines = splitContent(content)
	d.Props = props
	d.Scroll = 0
}

// ShowLog displays a journal tail and resets the scroll.
func (d *Details) ShowLog(service, content string) {
	d.Kind = ContentLog
	d.Service = service
	d.Lines = splitContent(content)
	d.Props = systemd.PropsStatus{}
	d.Scroll = 0
}

// SetContent replaces the displayed text in place, keeping the scroll offset
// clamped. Used by periodic journal refreshes.
func (d *Details) SetContent(content string) {
	d.Lines = splitContent(content)
	d.clampScroll()
}

// ScrollUp moves one line toward the top, saturating at 0.
func (d *Details) ScrollUp() { d.scrollBy(-1) }

// ScrollDown moves one line toward the end.
func (d *Details) ScrollDown() { d.scrollBy(1) }

// PageUp moves one stride toward the top, saturating at 0.
func (d *Details) PageUp() { d.scrollBy(-ScrollStride) }

// PageDown moves one stride toward the end.
func (d *Details) PageDown() { d.scrollBy(ScrollStride) }

func (d *Details) scrollBy(delta int) {
	d.Scroll += delta
	d.clampScroll()
}

func (d *Details) clampScroll() {
	if d.Scroll < 0 {
		d.Scroll = 0
	}
	max := len(d.Lines) - 1
	if max < 0 {
		max = 0
	}
	if d.Scroll > max {
		d.Scroll = max
	}
}

// Reset clears the displayed content; called on the transition back to the
// list view.
func (d *Details) Reset() {
	d.Kind = ContentNone
	d.Service = ""
	d.Lines = nil
	d.Scroll = 0
	d.Props = systemd.PropsStatus{}
}

func splitContent(content string) []string {
	trimmed := strings.TrimRight(content, "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}
