package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/unitdash/unitdash/internal/format/table"
	"github.com/unitdash/unitdash/internal/systemd"
	"github.com/unitdash/unitdash/internal/ui/state"
)

const listFooterText = "↑/↓ move  i filter  enter unit  v journal  s/x/r start/stop/restart  e/d enable/disable  u refresh  ctrl+c quit"

const detailsFooterText = "↑/↓ scroll  pgup/pgdn page  q back  ctrl+c quit"

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View renders the active mode as a plain multi-line string; the screen
// layer owns cursor movement and clearing.
func (c *Controller) View() string {
	if c.mode == ModeDetails && c.details.Kind != state.ContentNone {
		return c.viewDetails()
	}
	return c.viewList()
}

func (c *Controller) viewList() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: c.listHeader(), style: styles.Header})

	rows := [][]string{{"UNIT", "LOAD", "ACTIVE", "SUB", "ENABLED", "DESCRIPTION"}}
	for _, svc := range c.list.Items {
		rows = append(rows, []string{
			svc.Name,
			svc.State.Load,
			svc.State.Active,
			svc.State.Sub,
			svc.State.UnitFile,
			svc.Description,
		})
	}
	formatted := table.Format(rows, []table.Alignment{
		table.AlignLeft, table.AlignLeft, table.AlignLeft,
		table.AlignLeft, table.AlignLeft, table.AlignLeft,
	})

	if len(c.list.Items) == 0 {
		lines = append(lines, styledLine{text: "  " + formatted[0], style: styles.ColumnHeader})
		msg := "(no services)"
		if p := c.activeFilterText(); p != "" {
			msg = fmt.Sprintf("No matches for %q", p)
		}
		lines = append(lines, styledLine{text: msg, style: styles.Info})
	} else {
		lines = append(lines, styledLine{text: "  " + formatted[0], style: styles.ColumnHeader})
		maxVisible := c.maxVisibleRows()
		c.list.EnsureVisible(maxVisible)
		start := c.list.Offset
		end := len(c.list.Items)
		if maxVisible > 0 && start+maxVisible < end {
			end = start + maxVisible
		}
		for i := start; i < end; i++ {
			lines = append(lines, c.buildRowLine(c.list.Items[i], formatted[i+1], i == c.list.Cursor))
		}
	}

	if c.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: listFooterText, style: styles.Footer})
	}

	// Reserve two rows for the bottom bar (notice + filter prompt).
	lines = limitHeight(lines, c.height-2, c.width)
	lines = applyWidth(lines, c.width)

	bottom := []styledLine{
		c.noticeLine(),
		{text: c.filterPrompt()},
	}
	bottom = applyWidth(bottom, c.width)
	lines = append(lines, bottom...)
	return renderLines(lines)
}

func (c *Controller) listHeader() string {
	return fmt.Sprintf("unitdash · %s · %d/%d", c.scope, len(c.list.Items), len(c.list.Full))
}

func (c *Controller) buildRowLine(svc systemd.Service, formatted string, selected bool) styledLine {
	indicator := "▌"
	lineStyle := styles.Row
	indicatorStyle := styles.Indicator
	switch {
	case svc.State.Sub == "failed":
		lineStyle = styles.RowFailed
	case svc.State.Active == "inactive":
		lineStyle = styles.RowInactive
	}
	if selected {
		lineStyle = styles.SelectedRow
		indicatorStyle = styles.SelectedIndicator
	}
	return styledLine{
		text:          indicator + " " + formatted,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

// maxVisibleRows is the room left for service rows after the header, the
// column header, the footer block, and the bottom bar.
func (c *Controller) maxVisibleRows() int {
	reserved := 4
	if c.showFooter {
		reserved += 2
	}
	rows := c.height - reserved
	if rows < 1 {
		rows = 1
	}
	return rows
}

// activeFilterText is the text currently narrowing the list: the editor
// buffer while editing, the committed predicate otherwise.
func (c *Controller) activeFilterText() string {
	if c.list.Filter.Editing() {
		return c.list.Filter.Text()
	}
	return c.list.Predicate()
}

// filterPrompt renders the bottom filter line. While editing, a reverse
// block marks the cursor position inside the buffer.
func (c *Controller) filterPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	prompt := render(styles.FilterPrompt, "» ")
	if !c.list.Filter.Editing() {
		if p := c.list.Predicate(); p != "" {
			return prompt + render(styles.Filter, p)
		}
		return prompt + render(styles.FilterPlaceholder, "(press i to filter)")
	}
	runes := []rune(c.list.Filter.Text())
	pos := c.list.Filter.CursorPos()
	head := string(runes[:pos])
	caret := " "
	tail := ""
	if pos < len(runes) {
		caret = string(runes[pos])
		tail = string(runes[pos+1:])
	}
	return prompt +
		render(styles.Filter, head) +
		render(styles.FilterCursor, caret) +
		render(styles.Filter, tail)
}

func (c *Controller) noticeLine() styledLine {
	if c.errMsg != "" {
		return styledLine{text: fmt.Sprintf("Error: %s", c.errMsg), style: styles.Error}
	}
	if c.infoMsg != "" {
		return styledLine{text: c.infoMsg, style: styles.Info}
	}
	return styledLine{}
}

func (c *Controller) viewDetails() string {
	d := c.details
	lines := make([]styledLine, 0, 16)
	title := fmt.Sprintf("%s · %s", d.Service, detailsKindLabel(d.Kind))
	lines = append(lines, styledLine{text: title, style: styles.DetailsTitle})

	if d.Kind == state.ContentUnit {
		lines = append(lines, c.propsLines(d.Props)...)
	}

	bodyRows := c.height - len(lines) - 2
	if c.showFooter {
		bodyRows -= 2
	}
	if bodyRows < 1 {
		bodyRows = 1
	}
	start := d.Scroll
	if start > len(d.Lines) {
		start = len(d.Lines)
	}
	end := start + bodyRows
	if end > len(d.Lines) {
		end = len(d.Lines)
	}
	for _, line := range d.Lines[start:end] {
		lines = append(lines, styledLine{text: line, style: styles.DetailsBody})
	}

	if c.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: detailsFooterText, style: styles.Footer})
	}

	lines = limitHeight(lines, c.height-2, c.width)
	lines = applyWidth(lines, c.width)

	position := fmt.Sprintf("[%d-%d/%d]", start+1, end, len(d.Lines))
	if len(d.Lines) == 0 {
		position = "(empty)"
	}
	bottom := []styledLine{
		c.noticeLine(),
		{text: position, style: styles.Footer},
	}
	bottom = applyWidth(bottom, c.width)
	lines = append(lines, bottom...)
	return renderLines(lines)
}

func detailsKindLabel(kind state.ContentKind) string {
	if kind == state.ContentLog {
		return "journal (tail)"
	}
	return "unit definition"
}

// propsLines summarizes the lazily fetched property bundle above the unit
// text. A failed fetch shows its reason instead of a partial table.
func (c *Controller) propsLines(props systemd.PropsStatus) []styledLine {
	switch props.State {
	case systemd.PropsFailed:
		return []styledLine{
			{text: "properties unavailable: " + props.Reason, style: styles.DetailsError},
			{},
		}
	case systemd.PropsFetched:
		b := props.Bundle
		rows := [][]string{
			{"MainPID", fmt.Sprintf("%d", b.MainPID)},
			{"ExecMainPID", fmt.Sprintf("%d", b.ExecMainPID)},
			{"ExecMainStatus", fmt.Sprintf("%s (%d)", b.ExecMainState, b.ExecMainCode)},
			{"Restart", b.Restart},
			{"Result", b.Result},
		}
		if b.User != "" {
			rows = append(rows, []string{"User", b.User})
		}
		if b.StatusText != "" {
			rows = append(rows, []string{"Status", b.StatusText})
		}
		formatted := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft})
		out := make([]styledLine, 0, len(formatted)+1)
		for _, row := range formatted {
			out = append(out, styledLine{text: "  " + row, style: styles.Info})
		}
		out = append(out, styledLine{})
		return out
	default:
		return nil
	}
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		result[i] = styledLine{
			text:          truncateText(line.text, width),
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	if width == 1 {
		return truncate.String(text, 1)
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
