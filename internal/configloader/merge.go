package configloader

import (
	"slices"

	"github.com/yaklabco/rescript/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
//   - Strings and ints: override wins if non-zero
//   - Backup and Strict: override wins if set, so false can undo an earlier true
//   - DryRun: can only be switched on
//   - Mappings: override replaces base entirely if non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.Script != "" {
		result.Script = override.Script
	}
	if override.Ranges != "" {
		result.Ranges = override.Ranges
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.LogFile != "" {
		result.LogFile = override.LogFile
	}

	if override.Backup != nil {
		result.Backup = config.Bool(*override.Backup)
	}
	if override.Strict != nil {
		result.Strict = config.Bool(*override.Strict)
	}
	if override.DryRun {
		result.DryRun = true
	}

	if override.Mappings != nil {
		result.Mappings = slices.Clone(override.Mappings)
	}

	return result
}
