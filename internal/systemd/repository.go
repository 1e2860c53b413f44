package systemd

import "fmt"

// Operation names a unit action for error reporting.
type Operation string

const (
	OpStart   Operation = "start"
	OpStop    Operation = "stop"
	OpRestart Operation = "restart"
	OpEnable  Operation = "enable"
	OpDisable Operation = "disable"
)

// FetchKind names a read operation for error reporting.
type FetchKind string

const (
	FetchUnit       FetchKind = "unit definition"
	FetchLog        FetchKind = "journal"
	FetchProperties FetchKind = "properties"
)

// Repository abstracts the service manager backend. All calls are blocking;
// callers decide how long they are willing to stall.
type Repository interface {
	ListServices() ([]Service, error)
	Start(name string) error
	Stop(name string) error
	Restart(name string) error
	Enable(name string) error
	Disable(name string) error
	UnitDefinition(name string) (string, error)
	Logs(name string) (string, error)
	Properties(name string) (Properties, error)
}

// OperationError reports a rejected unit action.
type OperationError struct {
	Unit string
	Op   Operation
	Err  error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Unit, e.Err)
}

func (e *OperationError) Unwrap() error { return e.Err }

// FetchError reports a failed read (unit text, journal tail, properties).
type FetchError struct {
	Unit string
	Kind FetchKind
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s for %s: %v", e.Kind, e.Unit, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
