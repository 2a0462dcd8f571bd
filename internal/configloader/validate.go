package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/rescript/pkg/config"
	"github.com/yaklabco/rescript/pkg/script"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the name of the invalid key (e.g., "format").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if _, err := script.Resolve(cfg.Script, cfg.Ranges); err != nil {
		field := "script"
		value := cfg.Script
		if strings.TrimSpace(cfg.Ranges) != "" {
			field, value = "ranges", cfg.Ranges
		}
		result.Errors = append(result.Errors, ValidationError{
			Field:   field,
			Value:   value,
			Message: err.Error(),
		})
	}

	if cfg.Ranges != "" && cfg.Script != "" && cfg.Script != script.DefaultName {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "ranges",
			Value:   cfg.Ranges,
			Message: fmt.Sprintf("ranges overrides script %q", cfg.Script),
		})
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, json, table, diff", cfg.Format),
		})
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	for idx, path := range cfg.Mappings {
		if strings.TrimSpace(path) == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("mappings[%d]", idx),
				Value:   path,
				Message: "mapping path is empty",
			})
		}
	}

	return result
}

// Range resolves the script range selected by cfg.
func Range(cfg *config.Config) (script.Range, error) {
	if cfg == nil {
		return script.Resolve("", "")
	}
	rng, err := script.Resolve(cfg.Script, cfg.Ranges)
	if err != nil {
		return script.Range{}, fmt.Errorf("resolve range: %w", err)
	}
	return rng, nil
}
