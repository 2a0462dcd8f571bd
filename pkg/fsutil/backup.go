package fsutil

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// BackupSuffix is appended to a path to form its sidecar backup path.
const BackupSuffix = ".rescript.bak"

// ErrNoBackup is returned by RestoreBackup when no backup exists.
var ErrNoBackup = errors.New("no backup found")

// BackupPath returns the sidecar backup path for path.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// BackupExists reports whether a sidecar backup exists for path.
func BackupExists(path string) bool {
	_, err := os.Stat(BackupPath(path))
	return err == nil
}

// CreateBackup writes content to the sidecar backup of path unless a backup
// already exists. An existing backup is never overwritten, so repeated runs
// keep the oldest original. Returns true if a backup was written.
func CreateBackup(ctx context.Context, path string, content []byte, mode os.FileMode) (bool, error) {
	backupPath := BackupPath(path)

	if _, err := os.Stat(backupPath); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("stat backup path: %w", err)
	}

	if err := WriteAtomic(ctx, backupPath, content, mode); err != nil {
		return false, fmt.Errorf("write backup: %w", err)
	}
	return true, nil
}

// RestoreBackup copies the sidecar backup of path back over path.
// The backup itself is left in place; see RemoveBackup.
func RestoreBackup(ctx context.Context, path string) error {
	backupPath := BackupPath(path)

	stat, err := os.Stat(backupPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNoBackup, path)
		}
		return fmt.Errorf("stat backup: %w", err)
	}

	content, err := os.ReadFile(backupPath)
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}

	if err := WriteAtomic(ctx, path, content, stat.Mode().Perm()); err != nil {
		return fmt.Errorf("restore from backup: %w", err)
	}
	return nil
}

// RemoveBackup deletes the sidecar backup of path.
// Returns true if a backup was removed, false if none existed.
func RemoveBackup(path string) (bool, error) {
	err := os.Remove(BackupPath(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("remove backup: %w", err)
	}
	return true, nil
}
