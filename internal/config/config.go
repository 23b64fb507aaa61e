package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

type Config struct {
	FilePath     string
	UseStdin     bool
	UseLocalTime bool
	Level        string // initial level filter
	Sort         string // initial sort spec ("-field" = descending)
	Theme        Theme
	MaxLineBytes int
	ExportFormat string
	ExportOut    string
	ShowVersion  bool

	// Internal
	IsPipedStdin bool
}

// fileSettings are the persistent viewer settings, read from
// ~/.config/jlv/config.toml when present. Flags override them.
type fileSettings struct {
	UseLocalTime bool   `toml:"use_local_time"`
	Level        string `toml:"level"`
	Sort         string `toml:"sort"`
	Theme        string `toml:"theme"`
}

func defaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "jlv", "config.toml")
}

func loadSettings(path string) (fileSettings, error) {
	s := fileSettings{Theme: string(ThemeDark)}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := toml.Unmarshal(b, &s); err != nil {
		return s, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if s.Theme == "" {
		s.Theme = string(ThemeDark)
	}
	return s, nil
}

func Load() (*Config, error) {
	cfg := &Config{}

	// Detect if stdin is piped
	fi, _ := os.Stdin.Stat()
	cfg.IsPipedStdin = (fi.Mode() & os.ModeCharDevice) == 0

	fs := flag.NewFlagSet("jlv", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: jlv [flags] <logfile>")
		fs.PrintDefaults()
	}

	settingsPath := fs.String("config", getenvDefault("JLV_CONFIG", defaultSettingsPath()), "path to settings file")
	fs.BoolVar(&cfg.UseStdin, "stdin", false, "read from stdin (default: auto if piped)")
	level := fs.String("level", "", "initial level filter")
	sortSpec := fs.String("sort", "", "initial sort spec, prefix with - for descending")
	localTime := fs.Bool("local-time", false, "display timestamps in local time")
	theme := fs.String("theme", "", "theme: dark|light")
	fs.IntVar(&cfg.MaxLineBytes, "max-line-bytes", 1024*1024, "maximum length of one log line")
	fs.StringVar(&cfg.ExportFormat, "export", "", "export key writes the current view as: csv|json")
	fs.StringVar(&cfg.ExportOut, "out", "", "output path for export")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	settings, err := loadSettings(*settingsPath)
	if err != nil {
		return nil, err
	}
	cfg.UseLocalTime = settings.UseLocalTime || *localTime
	cfg.Level = fallback(*level, settings.Level)
	cfg.Sort = fallback(*sortSpec, settings.Sort)
	cfg.Theme = Theme(fallback(*theme, settings.Theme))

	cfg.FilePath = fs.Arg(0)
	if cfg.FilePath == "" && cfg.IsPipedStdin {
		cfg.UseStdin = true
	}
	if !cfg.UseStdin && cfg.FilePath == "" && !cfg.ShowVersion {
		return nil, errors.New("missing log file")
	}

	if cfg.ExportFormat != "" {
		if cfg.ExportFormat != "csv" && cfg.ExportFormat != "json" {
			return nil, fmt.Errorf("unknown export format %q", cfg.ExportFormat)
		}
		if cfg.ExportOut == "" {
			return nil, errors.New("--export requires --out path")
		}
	}

	if cfg.MaxLineBytes < 64*1024 {
		cfg.MaxLineBytes = 64 * 1024
	}

	return cfg, nil
}

func fallback(v, d string) string {
	if strings.TrimSpace(v) != "" {
		return v
	}
	return d
}

func getenvDefault(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func (c *Config) String() string {
	return fmt.Sprintf("file=%s stdin=%v level=%s sort=%s localTime=%v theme=%s",
		c.FilePath, c.UseStdin, c.Level, c.Sort, c.UseLocalTime, c.Theme)
}
