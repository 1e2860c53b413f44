package systemd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Scope selects the system or the per-user service manager.
type Scope string

const (
	ScopeSystem Scope = "system"
	ScopeUser   Scope = "user"
)

// DefaultLogLines is the journal tail length fetched for the details view.
const DefaultLogLines = 200

// runner executes a command and returns its stdout. Tests substitute
// scripted fakes.
type runner func(name string, args ...string) ([]byte, error)

func execRunner(name string, args ...string) ([]byte, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(bytes.TrimSpace(exitErr.Stderr)) > 0 {
			return out, fmt.Errorf("%w: %s", err, bytes.TrimSpace(exitErr.Stderr))
		}
		return out, err
	}
	return out, nil
}

// Systemctl is the production Repository, driving systemctl and journalctl.
type Systemctl struct {
	systemctlPath  string
	journalctlPath string
	scope          Scope
	logLines       int
	run            runner
}

// NewSystemctl resolves tool paths and returns a repository for the given
// scope. Lookup failures fall back to conventional paths; operations then
// fail with a useful error instead of panicking at startup.
func NewSystemctl(scope Scope, logLines int) *Systemctl {
	systemctlPath, err := exec.LookPath("systemctl")
	if err != nil {
		systemctlPath = "/usr/bin/systemctl"
	}
	journalctlPath, err := exec.LookPath("journalctl")
	if err != nil {
		journalctlPath = "/usr/bin/journalctl"
	}
	if logLines <= 0 {
		logLines = DefaultLogLines
	}
	return &Systemctl{
		systemctlPath:  systemctlPath,
		journalctlPath: journalctlPath,
		scope:          scope,
		logLines:       logLines,
		run:            execRunner,
	}
}

func (s *Systemctl) args(rest ...string) []string {
	if s.scope == ScopeUser {
		return append([]string{"--user"}, rest...)
	}
	return rest
}

type listedUnit struct {
	Unit        string `json:"unit"`
	Load        string `json:"load"`
	Active      string `json:"active"`
	Sub         string `json:"sub"`
	Description string `json:"description"`
}

type listedUnitFile struct {
	UnitFile string `json:"unit_file"`
	State    string `json:"state"`
}

// ListServices returns every service unit in backend order, with enablement
// state merged in from the unit-file listing. A failed unit-file listing
// degrades to "unknown" enablement rather than failing the refresh.
func (s *Systemctl) ListServices() ([]Service, error) {
	out, err := s.run(s.systemctlPath, s.args("list-units", "--type=service", "--all", "--no-pager", "--output=json")...)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	var units []listedUnit
	if err := json.Unmarshal(out, &units); err != nil {
		return nil, fmt.Errorf("parse unit list: %w", err)
	}

	fileStates := s.unitFileStates()
	services := make([]Service, 0, len(units))
	for _, unit := range units {
		state, ok := fileStates[unit.Unit]
		if !ok {
			state = "unknown"
		}
		services = append(services, Service{
			Name:        unit.Unit,
			Description: unit.Description,
			State: State{
				Load:     unit.Load,
				Active:   unit.Active,
				Sub:      unit.Sub,
				UnitFile: state,
			},
		})
	}
	return services, nil
}

func (s *Systemctl) unitFileStates() map[string]string {
	out, err := s.run(s.systemctlPath, s.args("list-unit-files", "--type=service", "--no-pager", "--output=json")...)
	if err != nil {
		return nil
	}
	var files []listedUnitFile
	if err := json.Unmarshal(out, &files); err != nil {
		return nil
	}
	states := make(map[string]string, len(files))
	for _, file := range files {
		states[file.UnitFile] = file.State
	}
	return states
}

func (s *Systemctl) apply(op Operation, name string) error {
	if _, err := s.run(s.systemctlPath, s.args(string(op), name)...); err != nil {
		return &OperationError{Unit: name, Op: op, Err: err}
	}
	return nil
}

func (s *Systemctl) Start(name string) error   { return s.apply(OpStart, name) }
func (s *Systemctl) Stop(name string) error    { return s.apply(OpStop, name) }
func (s *Systemctl) Restart(name string) error { return s.apply(OpRestart, name) }
func (s *Systemctl) Enable(name string) error  { return s.apply(OpEnable, name) }
func (s *Systemctl) Disable(name string) error { return s.apply(OpDisable, name) }

// UnitDefinition returns the unit's file content as systemctl cat renders
// it, including drop-ins.
func (s *Systemctl) UnitDefinition(name string) (string, error) {
	out, err := s.run(s.systemctlPath, s.args("cat", "--no-pager", name)...)
	if err != nil {
		return "", &FetchError{Unit: name, Kind: FetchUnit, Err: err}
	}
	return string(out), nil
}

// Logs returns the unit's journal tail.
func (s *Systemctl) Logs(name string) (string, error) {
	out, err := s.run(s.journalctlPath, s.args("-u", name, "-n", strconv.Itoa(s.logLines), "--no-pager")...)
	if err != nil {
		return "", &FetchError{Unit: name, Kind: FetchLog, Err: err}
	}
	return string(out), nil
}

var showProperties = []string{
	"FragmentPath",
	"ExecStart",
	"ExecMainPID",
	"ExecMainCode",
	"ExecMainStatus",
	"MainPID",
	"ControlPID",
	"Restart",
	"RestartUSec",
	"StatusText",
	"Result",
	"User",
	"Group",
	"LimitNOFILE",
	"LimitNPROC",
	"MemoryMax",
	"TasksMax",
}

// Properties fetches the extended runtime bundle for one unit.
func (s *Systemctl) Properties(name string) (Properties, error) {
	propArg := "--property=" + strings.Join(showProperties, ",")
	out, err := s.run(s.systemctlPath, s.args("show", name, propArg)...)
	if err != nil {
		return Properties{}, &FetchError{Unit: name, Kind: FetchProperties, Err: err}
	}
	return parseProperties(string(out)), nil
}

func parseProperties(output string) Properties {
	values := make(map[string]string)
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return Properties{
		FragmentPath:  values["FragmentPath"],
		ExecStart:     values["ExecStart"],
		ExecMainPID:   atoi(values["ExecMainPID"]),
		ExecMainCode:  atoi(values["ExecMainCode"]),
		ExecMainState: values["ExecMainStatus"],
		MainPID:       atoi(values["MainPID"]),
		ControlPID:    atoi(values["ControlPID"]),
		Restart:       values["Restart"],
		RestartUSec:   values["RestartUSec"],
		StatusText:    values["StatusText"],
		Result:        values["Result"],
		User:          values["User"],
		Group:         values["Group"],
		LimitNOFILE:   values["LimitNOFILE"],
		LimitNPROC:    values["LimitNPROC"],
		MemoryMax:     values["MemoryMax"],
		TasksMax:      values["TasksMax"],
	}
}

func atoi(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return n
}
