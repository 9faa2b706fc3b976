package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/menunav/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envLayout     = "MENUNAV_LAYOUT"
	envScreen     = "MENUNAV_SCREEN"
	envWatch      = "MENUNAV_WATCH"
	envWidth      = "MENUNAV_WIDTH"
	envHeight     = "MENUNAV_HEIGHT"
	envShowFooter = "MENUNAV_FOOTER"
	envTrace      = "MENUNAV_TRACE"
	envLogFile    = "MENUNAV_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("menunav", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	layout := fs.String("layout", envOrDefault(env, envLayout, ""), "path to the YAML layout document")
	start := fs.String("screen", envOrDefault(env, envScreen, ""), "id of the screen to show first (defaults to the document's start)")
	watch := fs.Bool("watch", envOrBool(env, envWatch, false), "reload the layout when the file changes")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	diagnose := fs.Bool("diagnose", false, "report navigation problems for every screen and exit")
	printValues := fs.Bool("print-values", false, "print control values as JSON on exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *layout == "" && fs.NArg() > 0 {
		*layout = fs.Arg(0)
	}

	cfg := Config{
		App: app.Config{
			LayoutPath:  *layout,
			StartScreen: *start,
			Watch:       *watch,
			Width:       *width,
			Height:      *height,
			ShowFooter:  *footer,
			Diagnose:    *diagnose,
			PrintValues: *printValues,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"layout":      *layout,
			"screen":      *start,
			"watch":       strconv.FormatBool(*watch),
			"width":       strconv.Itoa(*width),
			"height":      strconv.Itoa(*height),
			"footer":      strconv.FormatBool(*footer),
			"trace":       strconv.FormatBool(*trace),
			"logFile":     *logFile,
			"diagnose":    strconv.FormatBool(*diagnose),
			"printValues": strconv.FormatBool(*printValues),
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
	if strings.TrimSpace(cfg.App.LayoutPath) == "" {
		return errors.New("a layout document is required (--layout or MENUNAV_LAYOUT)")
	}
	if cfg.App.Diagnose && cfg.App.Watch {
		return errors.New("--diagnose and --watch cannot be combined")
	}
	return nil
}
