package timeline

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/tracklinehq/trackline/pkg/errors"
)

// Default configuration values.
const (
	// DefaultScrollPerItem is the scroll distance in pixels allotted to each
	// item in scroll navigation.
	DefaultScrollPerItem = 300.0

	// DefaultMobileBreakpoint is the viewport width at or below which the
	// mobile layout rules apply.
	DefaultMobileBreakpoint = 767.0
)

// Config is the configuration surface for one timeline instance.
// Immutable after construction: Validate once, then share freely.
type Config struct {
	// ScrollPerItem is how much page scroll each item consumes in scroll
	// navigation. Must be positive.
	ScrollPerItem float64 `toml:"scroll_per_item" yaml:"scroll_per_item" json:"scroll_per_item"`

	// NavigationType selects continuous scroll or discrete arrow commands.
	NavigationType string `toml:"navigation_type" yaml:"navigation_type" json:"navigation_type"`

	// MobileLayout selects the orientation used below the mobile breakpoint.
	// Only honored in scroll navigation.
	MobileLayout string `toml:"mobile_layout" yaml:"mobile_layout" json:"mobile_layout"`

	// MobileBreakpoint is the viewport width threshold for MobileLayout.
	MobileBreakpoint float64 `toml:"mobile_breakpoint" yaml:"mobile_breakpoint" json:"mobile_breakpoint"`
}

// DefaultConfig returns a Config with all defaults applied.
func DefaultConfig() Config {
	return Config{
		ScrollPerItem:    DefaultScrollPerItem,
		NavigationType:   NavScroll,
		MobileLayout:     OrientationHorizontal,
		MobileBreakpoint: DefaultMobileBreakpoint,
	}
}

// ApplyDefaults fills zero-valued fields with defaults. It does not touch
// fields that are already set, so a partially specified config file works.
func (c *Config) ApplyDefaults() {
	if c.ScrollPerItem == 0 {
		c.ScrollPerItem = DefaultScrollPerItem
	}
	if c.NavigationType == "" {
		c.NavigationType = NavScroll
	}
	if c.MobileLayout == "" {
		c.MobileLayout = OrientationHorizontal
	}
	if c.MobileBreakpoint == 0 {
		c.MobileBreakpoint = DefaultMobileBreakpoint
	}
}

// Validate checks the config for consistency. It does not mutate the config;
// call ApplyDefaults first if zero values should mean "default".
func (c Config) Validate() error {
	if c.ScrollPerItem <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "scroll_per_item must be positive, got %v", c.ScrollPerItem)
	}
	if err := errors.ValidateNavigationType(c.NavigationType); err != nil {
		return err
	}
	if err := errors.ValidateOrientation(c.MobileLayout); err != nil {
		return err
	}
	if c.MobileBreakpoint < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "mobile_breakpoint cannot be negative, got %v", c.MobileBreakpoint)
	}
	return nil
}

// configFile is the on-disk shape of a trackline.toml file.
type configFile struct {
	Timeline Config `toml:"timeline"`
	Content  string `toml:"content"` // path to an items manifest, optional
}

// LoadConfig reads a TOML config file, applies defaults, and validates.
// It returns the config and the optional content manifest path from the file.
func LoadConfig(path string) (Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, "", errors.Wrap(errors.ErrCodeInvalidPath, err, "read config %s", path)
	}

	var f configFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return Config{}, "", errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %s", path)
	}

	f.Timeline.ApplyDefaults()
	if err := f.Timeline.Validate(); err != nil {
		return Config{}, "", err
	}
	return f.Timeline, f.Content, nil
}
