package state

import (
	"fmt"

	"github.com/unitdash/unitdash/internal/systemd"
)

// PageStride is how many rows a page movement shifts the selection.
const PageStride = 10

// List owns the full and filtered service sets, the selection cursor, and
// the embedded filter editor. The cursor indexes the filtered set and is -1
// when it is empty; it is re-validated on every refresh and predicate
// change.
type List struct {
	Full   []systemd.Service
	Items  []systemd.Service
	Cursor int
	Offset int
	Filter Filter

	predicate string
}

// NewList returns an empty list with no selection.
func NewList() *List {
	return &List{Cursor: -1}
}

// Predicate returns the committed filter predicate.
func (l *List) Predicate() string { return l.predicate }

// activePredicate narrows live against the in-progress editor text while
// editing, and against the committed predicate otherwise.
func (l *List) activePredicate() string {
	if l.Filter.Editing() {
		return l.Filter.Text()
	}
	return l.predicate
}

// FilterServices returns the services matching the predicate, in original
// order. An empty predicate returns a copy of the full set.
func FilterServices(services []systemd.Service, predicate string) []systemd.Service {
	filtered := make([]systemd.Service, 0, len(services))
	for _, service := range services {
		if MatchesPredicate(service.Name, service.Description, predicate) {
			filtered = append(filtered, service)
		}
	}
	return filtered
}

// SetServices replaces the full set wholesale and rebuilds the filtered
// view. The previous snapshot, including any fetched property bundles, is
// discarded.
func (l *List) SetServices(services []systemd.Service) {
	l.Full = append([]systemd.Service(nil), services...)
	l.Rebuild()
}

// CommitPredicate stores a new committed predicate and rebuilds.
func (l *List) CommitPredicate(predicate string) {
	l.predicate = predicate
	l.Rebuild()
}

// Rebuild reapplies the active predicate and re-validates the cursor: a
// still-present selection is kept by name, otherwise the first row is
// selected, or none when the filtered set is empty.
func (l *List) Rebuild() {
	previous := l.SelectedName()
	l.Items = FilterServices(l.Full, l.activePredicate())
	if len(l.Items) == 0 {
		l.Cursor = -1
		l.Offset = 0
		return
	}
	l.Cursor = 0
	if previous != "" {
		if idx := l.indexOf(previous); idx >= 0 {
			l.Cursor = idx
		}
	}
	if l.Offset >= len(l.Items) {
		l.Offset = 0
	}
}

func (l *List) indexOf(name string) int {
	for i, service := range l.Items {
		if service.Name == name {
			return i
		}
	}
	return -1
}

// Refresh re-reads the full service set. On failure the previous set and
// selection are left untouched and the error is surfaced to the caller.
func (l *List) Refresh(repo systemd.Repository) error {
	services, err := repo.ListServices()
	if err != nil {
		return err
	}
	l.SetServices(services)
	return nil
}

// Selected returns the currently selected service.
func (l *List) Selected() (systemd.Service, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return systemd.Service{}, false
	}
	return l.Items[l.Cursor], true
}

// SelectedName returns the selected service name, or "".
func (l *List) SelectedName() string {
	if service, ok := l.Selected(); ok {
		return service.Name
	}
	return ""
}

// Apply invokes the given operation on the selected service. Success
// triggers a refresh with the current predicate so the new state shows up;
// failure leaves every row exactly as it was.
func (l *List) Apply(repo systemd.Repository, op systemd.Operation) error {
	service, ok := l.Selected()
	if !ok {
		return fmt.Errorf("no service selected")
	}
	var err error
	switch op {
	case systemd.OpStart:
		err = repo.Start(service.Name)
	case systemd.OpStop:
		err = repo.Stop(service.Name)
	case systemd.OpRestart:
		err = repo.Restart(service.Name)
	case systemd.OpEnable:
		err = repo.Enable(service.Name)
	case systemd.OpDisable:
		err = repo.Disable(service.Name)
	default:
		err = fmt.Errorf("unknown operation %q", op)
	}
	if err != nil {
		return err
	}
	return l.Refresh(repo)
}

// AttachProps stores a fetched (or failed) property bundle on the named
// service in both the full and the filtered set, so reopening the details
// view does not refetch.
func (l *List) AttachProps(name string, status systemd.PropsStatus) {
	for i := range l.Full {
		if l.Full[i].Name == name {
			l.Full[i].Props = status
		}
	}
	for i := range l.Items {
		if l.Items[i].Name == name {
			l.Items[i].Props = status
		}
	}
}

// MoveHome moves the selection to the first row.
func (l *List) MoveHome() bool {
	if len(l.Items) == 0 {
		return false
	}
	return l.moveBy(-len(l.Items))
}

// MoveEnd moves the selection to the last row.
func (l *List) MoveEnd() bool {
	if len(l.Items) == 0 {
		return false
	}
	return l.moveBy(len(l.Items))
}

// MoveUp moves the selection one row up.
func (l *List) MoveUp() bool { return l.moveBy(-1) }

// MoveDown moves the selection one row down.
func (l *List) MoveDown() bool { return l.moveBy(1) }

// PageUp moves the selection one page up.
func (l *List) PageUp() bool { return l.moveBy(-PageStride) }

// PageDown moves the selection one page down.
func (l *List) PageDown() bool { return l.moveBy(PageStride) }

func (l *List) moveBy(delta int) bool {
	if len(l.Items) == 0 {
		l.Cursor = -1
		return false
	}
	old := l.Cursor
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	l.Cursor += delta
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	return l.Cursor != old
}

// EnsureVisible adjusts the viewport offset so the cursor stays on screen.
func (l *List) EnsureVisible(maxVisible int) {
	if len(l.Items) == 0 {
		l.Offset = 0
		return
	}
	if maxVisible <= 0 {
		l.Offset = 0
		return
	}
	cursor := l.Cursor
	if cursor < 0 {
		cursor = 0
	}
	maxOffset := len(l.Items) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.Offset > maxOffset {
		l.Offset = maxOffset
	}
	if l.Offset < 0 {
		l.Offset = 0
	}
	if cursor < l.Offset {
		l.Offset = cursor
	}
	upper := l.Offset + maxVisible - 1
	if cursor > upper {
		l.Offset = cursor - maxVisible + 1
		if l.Offset < 0 {
			l.Offset = 0
		}
		if l.Offset > maxOffset {
			l.Offset = maxOffset
		}
	}
}
