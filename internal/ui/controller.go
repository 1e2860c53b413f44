// Package ui implements the application controller: a single-threaded loop
// that owns all view state, consumes the event bus, and paints one frame per
// processed event. Repository calls happen synchronously inside event
// handling, so a slow backend stalls input until the call returns; that
// trade-off is deliberate and documented in the keyboard help.
package ui

import (
	"errors"
	"fmt"

	"github.com/unitdash/unitdash/internal/bus"
	"github.com/unitdash/unitdash/internal/logging"
	"github.com/unitdash/unitdash/internal/logging/events"
	"github.com/unitdash/unitdash/internal/systemd"
	"github.com/unitdash/unitdash/internal/term"
	"github.com/unitdash/unitdash/internal/theme"
	"github.com/unitdash/unitdash/internal/ui/state"
)

var styles = theme.Default()

// Mode is the active view.
type Mode int

const (
	ModeList Mode = iota
	ModeDetails
)

// Screen is the paint surface the controller draws on.
type Screen interface {
	Size() (int, int)
	Paint(view string)
}

// Options carries controller configuration.
type Options struct {
	ScopeLabel    string
	InitialFilter string
	ShowFooter    bool
	Verbose       bool
}

// Controller owns every piece of view state as a direct field and mutates
// it only from its own loop. Background producers reach it exclusively
// through the bus.
type Controller struct {
	mode    Mode
	list    *state.List
	details *state.Details
	repo    systemd.Repository
	bus     *bus.Bus
	screen  Screen

	width      int
	height     int
	scope      string
	showFooter bool
	verbose    bool

	errMsg  string
	infoMsg string
	running bool
}

// NewController wires the controller to its collaborators.
func NewController(repo systemd.Repository, b *bus.Bus, screen Screen, opts Options) *Controller {
	c := &Controller{
		mode:       ModeList,
		list:       state.NewList(),
		details:    &state.Details{},
		repo:       repo,
		bus:        b,
		screen:     screen,
		scope:      opts.ScopeLabel,
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
	}
	if opts.InitialFilter != "" {
		c.list.CommitPredicate(opts.InitialFilter)
	}
	return c
}

// Run loads the initial service set and enters the event loop. Each
// iteration paints the active view before blocking on the next event, so
// the screen always reflects the most recent state change. A closed bus is
// the orderly-exit condition; every other receive error is fatal.
func (c *Controller) Run() error {
	c.running = true
	c.refreshList()
	for c.running {
		c.paint()
		event, err := c.bus.Receive()
		if err != nil {
			if errors.Is(err, bus.ErrClosed) {
				events.App.Exit("bus closed")
				return nil
			}
			return err
		}
		c.dispatch(event)
	}
	events.App.Exit("quit")
	return nil
}

func (c *Controller) paint() {
	c.width, c.height = c.screen.Size()
	c.screen.Paint(c.View())
}

func (c *Controller) dispatch(event bus.Event) {
	switch event.Kind {
	case bus.KindKeyPress:
		c.handleKey(event.Key)
	case bus.KindAction:
		c.handleAction(event.Action)
	}
}

func (c *Controller) handleAction(action bus.Action) {
	switch action {
	case bus.ActionGoList:
		c.details.Reset()
		c.mode = ModeList
	case bus.ActionGoDetails:
		c.mode = ModeDetails
	case bus.ActionRefreshRequested:
		c.refreshList()
	case bus.ActionViewLogRequested:
		if c.mode == ModeDetails && c.details.Kind == state.ContentLog {
			c.refreshLog()
		}
	}
}

func (c *Controller) handleKey(key term.Key) {
	events.Input.Key(key.String())
	if key.Type == term.KeyCtrlC {
		c.running = false
		return
	}
	switch c.mode {
	case ModeDetails:
		c.handleDetailsKey(key)
	case ModeList:
		if c.list.Filter.Editing() {
			c.handleFilterKey(key)
		} else {
			c.handleListKey(key)
		}
	}
}

// handleFilterKey owns every key while the filter editor is in Editing
// mode; list navigation is suppressed until submit or cancel.
func (c *Controller) handleFilterKey(key term.Key) {
	editor := &c.list.Filter
	switch key.Type {
	case term.KeyEnter:
		text := editor.Submit()
		events.Filter.Submit(text)
		c.clearNotices()
		c.list.CommitPredicate(text)
		c.refreshList()
	case term.KeyEsc:
		editor.Cancel(c.list.Predicate())
		events.Filter.Cancel()
		c.list.Rebuild()
	case term.KeyBackspace:
		if editor.DeleteRuneBackward() {
			events.Filter.Backspace(editor.Text())
			c.list.Rebuild()
		}
	case term.KeyCtrlW:
		if editor.DeleteWordBackward() {
			events.Filter.WordBackspace(editor.Text())
			c.list.Rebuild()
		}
	case term.KeyCtrlU:
		if editor.Clear() {
			events.Filter.Cleared()
			c.list.Rebuild()
		}
	case term.KeyLeft:
		if editor.MoveCursorLeft() {
			events.Filter.Cursor(editor.CursorPos())
		}
	case term.KeyRight:
		if editor.MoveCursorRight() {
			events.Filter.Cursor(editor.CursorPos())
		}
	case term.KeyCtrlA, term.KeyHome:
		if editor.MoveCursorStart() {
			events.Filter.Cursor(editor.CursorPos())
		}
	case term.KeyCtrlE, term.KeyEnd:
		if editor.MoveCursorEnd() {
			events.Filter.Cursor(editor.CursorPos())
		}
	case term.KeyRune:
		if editor.InsertRune(key.Rune) {
			events.Filter.Append(editor.Text())
			c.list.Rebuild()
		}
	}
}

func (c *Controller) handleListKey(key term.Key) {
	switch key.Type {
	case term.KeyUp:
		if c.list.MoveUp() {
			events.List.Cursor(c.list.Cursor)
		}
	case term.KeyDown:
		if c.list.MoveDown() {
			events.List.Cursor(c.list.Cursor)
		}
	case term.KeyPageUp:
		if c.list.PageUp() {
			events.List.Cursor(c.list.Cursor)
		}
	case term.KeyPageDown:
		if c.list.PageDown() {
			events.List.Cursor(c.list.Cursor)
		}
	case term.KeyHome:
		if c.list.MoveHome() {
			events.List.Cursor(c.list.Cursor)
		}
	case term.KeyEnd:
		if c.list.MoveEnd() {
			events.List.Cursor(c.list.Cursor)
		}
	case term.KeyEsc:
		// Esc outside editing clears the filter and re-applies the empty
		// predicate immediately.
		cleared := c.list.Filter.Clear()
		if cleared || c.list.Predicate() != "" {
			events.Filter.Cleared()
			c.clearNotices()
			c.list.CommitPredicate("")
			c.refreshList()
		}
	case term.KeyEnter:
		c.openUnit()
	case term.KeyRune:
		c.handleListRune(key.Rune)
	}
}

func (c *Controller) handleListRune(r rune) {
	switch r {
	case 'i':
		c.list.Filter.EnterEditing()
		events.Filter.EditStart()
	case 'u':
		c.clearNotices()
		// refresh is requested as an explicit intent and performed when the
		// controller dequeues it, keeping all mutations on the loop
		_ = c.bus.Send(bus.ActionEvent(bus.ActionRefreshRequested))
	case 'v':
		c.openLogs()
	case 's':
		c.applyAction(systemd.OpStart)
	case 'x':
		c.applyAction(systemd.OpStop)
	case 'r':
		c.applyAction(systemd.OpRestart)
	case 'e':
		c.applyAction(systemd.OpEnable)
	case 'd':
		c.applyAction(systemd.OpDisable)
	}
}

func (c *Controller) handleDetailsKey(key term.Key) {
	switch key.Type {
	case term.KeyUp:
		c.details.ScrollUp()
		events.Details.Scroll(c.details.Scroll)
	case term.KeyDown:
		c.details.ScrollDown()
		events.Details.Scroll(c.details.Scroll)
	case term.KeyPageUp:
		c.details.PageUp()
		events.Details.Scroll(c.details.Scroll)
	case term.KeyPageDown:
		c.details.PageDown()
		events.Details.Scroll(c.details.Scroll)
	case term.KeyLeft, term.KeyRight, term.KeyEsc:
		c.leaveDetails()
	case term.KeyRune:
		if key.Rune == 'q' {
			c.leaveDetails()
		}
	}
}

func (c *Controller) leaveDetails() {
	events.Details.Close(c.details.Service)
	c.details.Reset()
	_ = c.bus.Send(bus.ActionEvent(bus.ActionGoList))
}

// applyAction runs one unit operation on the selected service. Failure
// leaves the list and selection untouched and surfaces a single notice; no
// retry is attempted.
func (c *Controller) applyAction(op systemd.Operation) {
	c.clearNotices()
	service, ok := c.list.Selected()
	if !ok {
		c.errMsg = "no service selected"
		return
	}
	events.List.Action(string(op), service.Name)
	if err := c.list.Apply(c.repo, op); err != nil {
		c.fail(err)
		return
	}
	events.Repo.Success(fmt.Sprintf("%s %s", op, service.Name))
	if c.verbose {
		c.infoMsg = fmt.Sprintf("%s %s: ok", op, service.Name)
	}
}

func (c *Controller) openLogs() {
	c.clearNotices()
	service, ok := c.list.Selected()
	if !ok {
		return
	}
	text, err := c.repo.Logs(service.Name)
	if err != nil {
		c.fail(err)
		return
	}
	c.details.ShowLog(service.Name, text)
	events.Details.Open(state.ContentLog.String(), service.Name)
	_ = c.bus.Send(bus.ActionEvent(bus.ActionGoDetails))
}

// openUnit shows the unit definition together with the lazily fetched
// property bundle. The bundle is fetched at most once per snapshot; a
// failed fetch is remembered as such rather than retried.
func (c *Controller) openUnit() {
	c.clearNotices()
	service, ok := c.list.Selected()
	if !ok {
		return
	}
	text, err := c.repo.UnitDefinition(service.Name)
	if err != nil {
		c.fail(err)
		return
	}
	props := service.Props
	if props.State == systemd.PropsNotFetched {
		bundle, perr := c.repo.Properties(service.Name)
		if perr != nil {
			events.Repo.Error(perr)
			props = systemd.PropsStatus{State: systemd.PropsFailed, Reason: perr.Error()}
		} else {
			props = systemd.PropsStatus{State: systemd.PropsFetched, Bundle: bundle}
		}
		c.list.AttachProps(service.Name, props)
	}
	c.details.ShowUnit(service.Name, text, props)
	events.Details.Open(state.ContentUnit.String(), service.Name)
	_ = c.bus.Send(bus.ActionEvent(bus.ActionGoDetails))
}

func (c *Controller) refreshList() {
	if err := c.list.Refresh(c.repo); err != nil {
		c.fail(err)
		return
	}
	events.List.Refresh(len(c.list.Full), len(c.list.Items), c.list.Predicate())
	if c.verbose {
		c.infoMsg = fmt.Sprintf("%d services", len(c.list.Items))
	}
}

// refreshLog re-fetches the displayed journal tail in place. A failure
// keeps the previous tail.
func (c *Controller) refreshLog() {
	name := c.details.Service
	if name == "" {
		return
	}
	text, err := c.repo.Logs(name)
	if err != nil {
		c.fail(err)
		return
	}
	c.details.SetContent(text)
	events.Details.Refresh(name)
}

func (c *Controller) fail(err error) {
	logging.Error(err)
	events.Repo.Error(err)
	c.errMsg = err.Error()
}

func (c *Controller) clearNotices() {
	c.errMsg = ""
	c.infoMsg = ""
}
