package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/unitdash/unitdash/internal/app"
	"github.com/unitdash/unitdash/internal/systemd"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envScope      = "UNITDASH_SCOPE"
	envWidth      = "UNITDASH_WIDTH"
	envHeight     = "UNITDASH_HEIGHT"
	envShowFooter = "UNITDASH_FOOTER"
	envFilter     = "UNITDASH_FILTER"
	envLogLines   = "UNITDASH_LOG_LINES"
	envVerbose    = "UNITDASH_VERBOSE"
	envTrace      = "UNITDASH_TRACE"
	envLogFile    = "UNITDASH_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("unitdash", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	scope := fs.String("scope", envOrDefault(env, envScope, "system"), "service manager scope: system or user")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the keyboard hint row")
	filter := fs.String("filter", envOrDefault(env, envFilter, ""), "initial substring filter applied to the service list")
	logLines := fs.Int("log-lines", envOrInt(env, envLogLines, systemd.DefaultLogLines), "journal tail length per service")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *logLines <= 0 {
		return Config{}, fmt.Errorf("log-lines must be > 0 (got %d)", *logLines)
	}

	cfg := Config{
		App: app.Config{
			Scope:         *scope,
			Width:         *width,
			Height:        *height,
			ShowFooter:    *footer,
			InitialFilter: *filter,
			LogLines:      *logLines,
			Verbose:       *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"scope":    *scope,
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"footer":   strconv.FormatBool(*footer),
			"filter":   *filter,
			"logLines": strconv.Itoa(*logLines),
			"trace":    strconv.FormatBool(*trace),
			"verbose":  strconv.FormatBool(*verbose),
			"logFile":  *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	switch cfg.App.Scope {
	case "system", "user":
	default:
		return fmt.Errorf("scope must be system or user (got %q)", cfg.App.Scope)
	}
	return nil
}
