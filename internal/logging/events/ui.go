package events

import "github.com/unitdash/unitdash/internal/logging"

type FilterTracer struct{}

type ListTracer struct{}

type DetailsTracer struct{}

type RepoTracer struct{}

var (
	Filter  = FilterTracer{}
	List    = ListTracer{}
	Details = DetailsTracer{}
	Repo    = RepoTracer{}
)

func (FilterTracer) EditStart() {
	logging.Trace("filter.edit-start", nil)
}

func (FilterTracer) Append(filter string) {
	logging.Trace("filter.append", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Backspace(filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"filter": filter})
}

func (FilterTracer) WordBackspace(filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Cursor(pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) Submit(filter string) {
	logging.Trace("filter.submit", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Cancel() {
	logging.Trace("filter.cancel", nil)
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (ListTracer) Refresh(total, visible int, predicate string) {
	logging.Trace("list.refresh", map[string]interface{}{
		"total":     total,
		"visible":   visible,
		"predicate": predicate,
	})
}

func (ListTracer) Cursor(cursor int) {
	logging.Trace("list.cursor", map[string]interface{}{"cursor": cursor})
}

func (ListTracer) Action(op, unit string) {
	logging.Trace("list.action", map[string]interface{}{"op": op, "unit": unit})
}

func (DetailsTracer) Open(kind, unit string) {
	logging.Trace("details.open", map[string]interface{}{"kind": kind, "unit": unit})
}

func (DetailsTracer) Scroll(offset int) {
	logging.Trace("details.scroll", map[string]interface{}{"offset": offset})
}

func (DetailsTracer) Refresh(unit string) {
	logging.Trace("details.refresh", map[string]interface{}{"unit": unit})
}

func (DetailsTracer) Close(unit string) {
	logging.Trace("details.close", map[string]interface{}{"unit": unit})
}

func (RepoTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("repo.error", map[string]interface{}{"error": err.Error()})
}

func (RepoTracer) Success(info string) {
	logging.Trace("repo.success", map[string]interface{}{"info": info})
}
