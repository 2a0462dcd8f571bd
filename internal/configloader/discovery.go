package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigPaths holds the configuration files found for one run. Empty fields
// mean the layer has no file.
type ConfigPaths struct {
	// User is $XDG_CONFIG_HOME/rescript/config.yaml (or .yml).
	User string

	// Project is the nearest .rescript.yml above the working directory.
	Project string

	// Explicit is the --config argument.
	Explicit string
}

// ProjectConfigFiles are the names looked for in each directory, most
// preferred first. The first entry is what 'rescript init' writes.
//
//nolint:gochecknoglobals // Read-only lookup table.
var ProjectConfigFiles = []string{
	".rescript.yml",
	".rescript.yaml",
	"rescript.yml",
	"rescript.yaml",
}

//nolint:gochecknoglobals // Read-only lookup table.
var userConfigFiles = []string{"config.yaml", "config.yml"}

// A directory holding one of these ends the upward search.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn", ".jj"}

// DiscoverPaths locates the user and project configuration files.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("discover config: %w", err)
	}

	project, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}

	var user string
	if dir := userConfigDir(); dir != "" {
		user = firstFile(dir, userConfigFiles)
	}

	return &ConfigPaths{User: user, Project: project}, nil
}

func userConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "rescript")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "rescript")
}

// FindProjectConfig walks from startDir towards the filesystem root and
// returns the first project config file, or "" when there is none. The walk
// ends after a VCS root or the home directory has been searched, so a file
// belonging to an enclosing project is never picked up.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		startDir = wd
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", startDir, err)
	}
	home, _ := os.UserHomeDir()

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("discover config: %w", err)
		}

		if found := firstFile(dir, ProjectConfigFiles); found != "" {
			return found, nil
		}
		if dir == home || isVCSRoot(dir) {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// firstFile returns dir/name for the first name that is a regular file.
func firstFile(dir string, names []string) string {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if info, err := os.Stat(filepath.Join(dir, marker)); err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
