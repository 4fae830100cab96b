package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/guilherme-santos/maccal/internal"
)

const (
	DefaultDatabase = "~/Library/Calendars/Calendar.sqlitedb"
	DefaultFormat   = "text"
)

type Window struct {
	// DaysBefore is how many days before today the window starts.
	DaysBefore int `yaml:"days_before"`
	// WeeksAfter is how many weeks after today the window ends.
	WeeksAfter int `yaml:"weeks_after"`
}

type Config struct {
	// Database is the path of Calendar.app's sqlite file. A leading "~" is
	// replaced by the home directory.
	Database string `yaml:"database"`
	// Format is the output format: text, notes or ics.
	Format string `yaml:"format"`
	Window Window `yaml:"window"`
}

func DefaultConfig() *Config {
	return &Config{
		Database: DefaultDatabase,
		Format:   DefaultFormat,
		Window: Window{
			DaysBefore: internal.DefaultWindowConfig.DaysBefore,
			WeeksAfter: internal.DefaultWindowConfig.WeeksAfter,
		},
	}
}

// Normalize replaces empty or invalid values by their defaults.
func (c *Config) Normalize() {
	def := DefaultConfig()
	if c.Database == "" {
		c.Database = def.Database
	}
	if c.Format == "" {
		c.Format = def.Format
	}
	if c.Window.DaysBefore < 0 {
		c.Window.DaysBefore = def.Window.DaysBefore
	}
	if c.Window.WeeksAfter < 0 {
		c.Window.WeeksAfter = def.Window.WeeksAfter
	}
}

// Load reads the YAML file at path. Keys missing from the file keep their
// default value; a missing file, or an empty path, gives the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(ExpandHome(path))
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("file: reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("file: parsing config %s: %w", path, err)
	}
	cfg.Normalize()
	return cfg, nil
}

// DatabasePath is Database with "~" expanded.
func (c Config) DatabasePath() string {
	return ExpandHome(c.Database)
}

func (c Config) WindowConfig() internal.WindowConfig {
	return internal.WindowConfig{
		DaysBefore: c.Window.DaysBefore,
		WeeksAfter: c.Window.WeeksAfter,
	}
}

// ExpandHome replaces a leading "~" in path by the user's home directory.
// The path is returned unchanged if the home directory is unknown.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
