package fsutil

import (
	"os"
	"path/filepath"
)

const (
	// AppName is the name of the application used in paths.
	AppName = "cachesweep"
)

// GetStateDir returns the platform-specific state directory for the application.
// On Linux: ~/.cache/cachesweep/
// On macOS: ~/Library/Caches/cachesweep/
// On Windows: %LOCALAPPDATA%\cachesweep\
// Holds the size memo and snapshot output unless overridden in config.
func GetStateDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, AppName), nil
}

// GetTrashDir returns the default directory that cleaned paths are moved to
// when the trash option is enabled.
// Format: <state_dir>/trash/
func GetTrashDir() (string, error) {
	stateDir, err := GetStateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(stateDir, "trash"), nil
}

// GetSnapshotDir returns the default directory that pre-delete snapshots
// are written to.
// Format: <state_dir>/snapshots/
func GetSnapshotDir() (string, error) {
	stateDir, err := GetStateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(stateDir, "snapshots"), nil
}

// HomeDir returns the current user's home directory, or an empty string if
// it cannot be determined. Cleaners treat an empty home as "no candidate paths".
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

// EnsureDirs creates all state directories if they don't exist.
func EnsureDirs() error {
	dirs := []func() (string, error){
		GetStateDir,
		GetTrashDir,
		GetSnapshotDir,
	}

	for _, dirFn := range dirs {
		dir, err := dirFn()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, DirModeDefault); err != nil {
			return err
		}
	}

	return nil
}
