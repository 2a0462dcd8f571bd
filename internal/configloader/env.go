package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/rescript/pkg/config"
)

// envVarPrefix is the prefix for all rescript environment variables.
const envVarPrefix = "RESCRIPT_"

// envVar binds one RESCRIPT_* variable to a config field.
type envVar struct {
	suffix string
	help   string
	set    func(cfg *config.Config, value string) error
}

// envVars are applied in this order.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envVars = []envVar{
	{"SCRIPT", "Built-in script range name", func(cfg *config.Config, v string) error {
		cfg.Script = v
		return nil
	}},
	{"RANGES", "Custom code point ranges, e.g. 4E00-9FA5,U+3007", func(cfg *config.Config, v string) error {
		cfg.Ranges = v
		return nil
	}},
	{"MAPPINGS", "Comma-separated list of mapping files", func(cfg *config.Config, v string) error {
		cfg.Mappings = splitList(v)
		return nil
	}},
	{"BACKUP", "Write a .rescript.bak sidecar: true or false", boolSetter(func(cfg *config.Config, b bool) {
		cfg.Backup = config.Bool(b)
	})},
	{"STRICT", "Exit non-zero on residue: true or false", boolSetter(func(cfg *config.Config, b bool) {
		cfg.Strict = config.Bool(b)
	})},
	{"FORMAT", "Output format: text, json, table or diff", func(cfg *config.Config, v string) error {
		cfg.Format = config.OutputFormat(v)
		return nil
	}},
	{"JOBS", "Number of parallel workers (0 = auto)", func(cfg *config.Config, v string) error {
		jobs, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("want an integer, got %q", v)
		}
		cfg.Jobs = jobs
		return nil
	}},
	{"DRY_RUN", "Report without writing: true or false", boolSetter(func(cfg *config.Config, b bool) {
		cfg.DryRun = b
	})},
}

func boolSetter(assign func(cfg *config.Config, b bool)) func(*config.Config, string) error {
	return func(cfg *config.Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("want true/false/1/0, got %q", v)
		}
		assign(cfg, b)
		return nil
	}
}

// LoadFromEnv applies the set RESCRIPT_* variables to cfg. Empty variables
// are ignored.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for _, ev := range envVars {
		name := envVarPrefix + ev.suffix
		value := os.Getenv(name)
		if value == "" {
			continue
		}
		if err := ev.set(cfg, value); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}
	return nil
}

// splitList splits a comma-separated list, dropping blank elements.
func splitList(value string) []string {
	var out []string
	for part := range strings.SplitSeq(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ListEnvVars returns every supported variable with its description.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envVars))
	for _, ev := range envVars {
		vars[envVarPrefix+ev.suffix] = ev.help
	}
	return vars
}
