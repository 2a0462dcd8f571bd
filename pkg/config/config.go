// Package config defines the configuration types for rescript.
// These are plain data structures; loading and merging live in internal/configloader.
package config

import (
	"slices"

	"github.com/yaklabco/rescript/pkg/script"
)

// OutputFormat specifies how results are reported.
type OutputFormat string

const (
	FormatText  OutputFormat = "text"
	FormatJSON  OutputFormat = "json"
	FormatTable OutputFormat = "table"
	FormatDiff  OutputFormat = "diff"
)

// Formats lists the supported output formats.
func Formats() []OutputFormat {
	return []OutputFormat{FormatText, FormatJSON, FormatTable, FormatDiff}
}

// IsValid returns true if the format is supported.
func (f OutputFormat) IsValid() bool {
	return slices.Contains(Formats(), f)
}

// Config is the root configuration structure for rescript.
type Config struct {
	// Script names a built-in script range ("han-basic", "hiragana", ...).
	Script string `yaml:"script,omitempty"`

	// Ranges is a custom range list such as "4E00-9FA5,U+3007".
	// When set it takes precedence over Script.
	Ranges string `yaml:"ranges,omitempty"`

	// Mappings lists mapping files, applied as one table in list order.
	// Relative entries in a config file are resolved against that file's directory.
	Mappings []string `yaml:"mappings,omitempty"`

	// Backup writes a PATH.rescript.bak sidecar before overwriting.
	Backup *bool `yaml:"backup,omitempty"`

	// Strict makes residue a non-zero exit.
	Strict *bool `yaml:"strict,omitempty"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"format,omitempty"`

	// Jobs specifies the number of parallel workers. 0 means one per CPU.
	Jobs int `yaml:"jobs,omitempty"`

	// CLI-level options (not persisted to config files).

	// DryRun computes everything but never writes.
	DryRun bool `yaml:"-"`

	// LogFile mirrors log output to a rotated file.
	LogFile string `yaml:"-"`
}

// NewConfig returns a configuration populated with defaults.
func NewConfig() *Config {
	return &Config{
		Script: script.DefaultName,
		Backup: Bool(false),
		Strict: Bool(false),
		Format: FormatText,
	}
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}

// BackupEnabled reports whether backups are on. Unset means off.
func (c *Config) BackupEnabled() bool {
	return c != nil && c.Backup != nil && *c.Backup
}

// StrictEnabled reports whether strict mode is on. Unset means off.
func (c *Config) StrictEnabled() bool {
	return c != nil && c.Strict != nil && *c.Strict
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := *c
	clone.Mappings = slices.Clone(c.Mappings)
	if c.Backup != nil {
		clone.Backup = Bool(*c.Backup)
	}
	if c.Strict != nil {
		clone.Strict = Bool(*c.Strict)
	}
	return &clone
}
