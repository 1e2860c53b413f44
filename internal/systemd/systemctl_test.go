package systemd

import (
	"errors"
	"strings"
	"testing"
)

const unitListJSON = `[
  {"unit":"ssh.service","load":"loaded","active":"active","sub":"running","description":"OpenBSD Secure Shell server"},
  {"unit":"cron.service","load":"loaded","active":"active","sub":"running","description":"Regular background program processing daemon"},
  {"unit":"foo.service","load":"not-found","active":"inactive","sub":"dead","description":"foo.service"}
]`

const unitFilesJSON = `[
  {"unit_file":"ssh.service","state":"enabled"},
  {"unit_file":"cron.service","state":"enabled"}
]`

// scriptedRunner resolves each invocation by its subcommand and records the
// full argument vector.
type scriptedRunner struct {
	outputs map[string][]byte
	errs    map[string]error
	calls   [][]string
}

func (r *scriptedRunner) run(name string, args ...string) ([]byte, error) {
	r.calls = append(r.calls, append([]string{name}, args...))
	key := ""
	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			key = arg
			break
		}
	}
	if err, ok := r.errs[key]; ok {
		return nil, err
	}
	return r.outputs[key], nil
}

func newTestRepo(runner *scriptedRunner, scope Scope) *Systemctl {
	return &Systemctl{
		systemctlPath:  "systemctl",
		journalctlPath: "journalctl",
		scope:          scope,
		logLines:       50,
		run:            runner.run,
	}
}

func TestListServicesMergesUnitFileStates(t *testing.T) {
	runner := &scriptedRunner{outputs: map[string][]byte{
		"list-units":      []byte(unitListJSON),
		"list-unit-files": []byte(unitFilesJSON),
	}}
	repo := newTestRepo(runner, ScopeSystem)

	services, err := repo.ListServices()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(services) != 3 {
		t.Fatalf("expected 3 services, got %d", len(services))
	}
	if services[0].Name != "ssh.service" || services[0].State.UnitFile != "enabled" {
		t.Fatalf("unexpected first service %#v", services[0])
	}
	if services[0].State.Sub != "running" {
		t.Fatalf("expected sub running, got %q", services[0].State.Sub)
	}
	if services[2].State.UnitFile != "unknown" {
		t.Fatalf("expected unknown enablement for unlisted unit, got %q", services[2].State.UnitFile)
	}
	if services[0].Props.State != PropsNotFetched {
		t.Fatalf("expected props not fetched, got %v", services[0].Props.State)
	}
}

func TestListServicesDegradesWhenUnitFilesFail(t *testing.T) {
	runner := &scriptedRunner{
		outputs: map[string][]byte{"list-units": []byte(unitListJSON)},
		errs:    map[string]error{"list-unit-files": errors.New("boom")},
	}
	repo := newTestRepo(runner, ScopeSystem)

	services, err := repo.ListServices()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, svc := range services {
		if svc.State.UnitFile != "unknown" {
			t.Fatalf("expected unknown enablement, got %q for %s", svc.State.UnitFile, svc.Name)
		}
	}
}

func TestListServicesFailsOnBadJSON(t *testing.T) {
	runner := &scriptedRunner{outputs: map[string][]byte{"list-units": []byte("not json")}}
	repo := newTestRepo(runner, ScopeSystem)
	if _, err := repo.ListServices(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestUserScopePrependsUserFlag(t *testing.T) {
	runner := &scriptedRunner{outputs: map[string][]byte{
		"list-units":      []byte("[]"),
		"list-unit-files": []byte("[]"),
	}}
	repo := newTestRepo(runner, ScopeUser)
	if _, err := repo.ListServices(); err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, call := range runner.calls {
		if len(call) < 2 || call[1] != "--user" {
			t.Fatalf("expected --user as first argument, got %v", call)
		}
	}
}

func TestApplyWrapsOperationError(t *testing.T) {
	cause := errors.New("unit not found")
	runner := &scriptedRunner{errs: map[string]error{"start": cause}}
	repo := newTestRepo(runner, ScopeSystem)

	err := repo.Start("nope.service")
	var opErr *OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected OperationError, got %v", err)
	}
	if opErr.Unit != "nope.service" || opErr.Op != OpStart {
		t.Fatalf("unexpected error detail %#v", opErr)
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause to survive")
	}
}

func TestOperationsInvokeMatchingSubcommand(t *testing.T) {
	runner := &scriptedRunner{outputs: map[string][]byte{}}
	repo := newTestRepo(runner, ScopeSystem)

	ops := []struct {
		call func(string) error
		verb string
	}{
		{repo.Start, "start"},
		{repo.Stop, "stop"},
		{repo.Restart, "restart"},
		{repo.Enable, "enable"},
		{repo.Disable, "disable"},
	}
	for i, op := range ops {
		if err := op.call("ssh.service"); err != nil {
			t.Fatalf("%s: %v", op.verb, err)
		}
		call := runner.calls[i]
		if call[1] != op.verb || call[2] != "ssh.service" {
			t.Fatalf("expected %s ssh.service, got %v", op.verb, call)
		}
	}
}

func TestLogsUsesJournalctlWithConfiguredTail(t *testing.T) {
	runner := &scriptedRunner{outputs: map[string][]byte{}}
	repo := newTestRepo(runner, ScopeSystem)

	if _, err := repo.Logs("ssh.service"); err != nil {
		t.Fatalf("logs: %v", err)
	}
	call := runner.calls[0]
	if call[0] != "journalctl" {
		t.Fatalf("expected journalctl, got %v", call)
	}
	joined := strings.Join(call, " ")
	if !strings.Contains(joined, "-u ssh.service") || !strings.Contains(joined, "-n 50") {
		t.Fatalf("unexpected journalctl invocation %v", call)
	}
}

func TestLogsWrapsFetchError(t *testing.T) {
	runner := &scriptedRunner{errs: map[string]error{"ssh.service": errors.New("no journal")}}
	repo := newTestRepo(runner, ScopeSystem)

	_, err := repo.Logs("ssh.service")
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if fetchErr.Kind != FetchLog {
		t.Fatalf("expected log fetch kind, got %v", fetchErr.Kind)
	}
}

func TestPropertiesParsesShowOutput(t *testing.T) {
	show := strings.Join([]string{
		"FragmentPath=/lib/systemd/system/ssh.service",
		"ExecStart={ path=/usr/sbin/sshd ; argv[]=/usr/sbin/sshd -D }",
		"ExecMainPID=712",
		"ExecMainCode=0",
		"ExecMainStatus=0",
		"MainPID=712",
		"ControlPID=0",
		"Restart=on-failure",
		"RestartUSec=100ms",
		"Result=success",
		"User=",
		"LimitNOFILE=524288",
		"MemoryMax=infinity",
		"TasksMax=4573",
	}, "\n")
	runner := &scriptedRunner{outputs: map[string][]byte{"show": []byte(show)}}
	repo := newTestRepo(runner, ScopeSystem)

	props, err := repo.Properties("ssh.service")
	if err != nil {
		t.Fatalf("properties: %v", err)
	}
	if props.MainPID != 712 || props.ExecMainPID != 712 {
		t.Fatalf("unexpected pids %#v", props)
	}
	if props.Restart != "on-failure" || props.Result != "success" {
		t.Fatalf("unexpected restart/result %#v", props)
	}
	if props.FragmentPath != "/lib/systemd/system/ssh.service" {
		t.Fatalf("unexpected fragment path %q", props.FragmentPath)
	}
	if props.LimitNOFILE != "524288" || props.MemoryMax != "infinity" {
		t.Fatalf("unexpected limits %#v", props)
	}
}

func TestParsePropertiesToleratesGarbage(t *testing.T) {
	props := parseProperties("no equals here\n\nMainPID=abc\nRestart=always\n")
	if props.MainPID != 0 {
		t.Fatalf("expected non-numeric pid to parse as 0, got %d", props.MainPID)
	}
	if props.Restart != "always" {
		t.Fatalf("expected restart kept, got %q", props.Restart)
	}
}

func TestOperationErrorMessageNamesUnitAndOp(t *testing.T) {
	err := &OperationError{Unit: "ssh.service", Op: OpRestart, Err: errors.New("denied")}
	msg := err.Error()
	for _, want := range []string{"ssh.service", "restart", "denied"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in %q", want, msg)
		}
	}
}
