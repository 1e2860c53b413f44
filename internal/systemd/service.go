// Package systemd models systemd services and provides the repository the UI
// talks to. The production repository shells out to systemctl and journalctl;
// the D-Bus protocol itself is out of scope.
package systemd

// State is one atomic snapshot of a unit's state. It is always replaced as a
// whole, never field by field.
type State struct {
	Load     string
	Active   string
	Sub      string
	UnitFile string
}

// PropsState distinguishes "never fetched" from "fetched" and from "tried
// and failed".
type PropsState int

const (
	PropsNotFetched PropsState = iota
	PropsFetched
	PropsFailed
)

// PropsStatus is the tri-state wrapper around the lazily fetched property
// bundle. Bundle is meaningful only for PropsFetched, Reason only for
// PropsFailed.
type PropsStatus struct {
	State  PropsState
	Bundle Properties
	Reason string
}

// Properties is the extended runtime bundle fetched when the user opens the
// unit details view. It is never refreshed automatically.
type Properties struct {
	FragmentPath  string
	ExecStart     string
	ExecMainPID   int
	ExecMainCode  int
	ExecMainState string
	MainPID       int
	ControlPID    int
	Restart       string
	RestartUSec   string
	StatusText    string
	Result        string
	User          string
	Group         string
	LimitNOFILE   string
	LimitNPROC    string
	MemoryMax     string
	TasksMax      string
}

// Service is one managed unit. Snapshots are created wholesale on every list
// refresh; there is no incremental diffing.
type Service struct {
	Name        string
	Description string
	State       State
	Props       PropsStatus
}
