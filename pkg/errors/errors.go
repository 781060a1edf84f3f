package errors

import "fmt"

// Common error types.
var (
	// Config errors.
	ErrEmptyConfigPath   = fmt.Errorf("config file path cannot be empty")
	ErrInvalidConfigPath = fmt.Errorf("invalid config file path")
	ErrConfigParse       = fmt.Errorf("failed to parse config")
	ErrConfigValidation  = fmt.Errorf("invalid configuration")
	ErrConfigEncode      = fmt.Errorf("failed to encode config")
	ErrConfigDirectory   = fmt.Errorf("failed to create config directory")
	ErrConfigFileCreate  = fmt.Errorf("failed to create config file")
	ErrConfigFileRename  = fmt.Errorf("failed to rename temporary config file")
	ErrConfigFileChmod   = fmt.Errorf("failed to set config file permissions")
	ErrConfigMarshal     = fmt.Errorf("failed to marshal config to YAML")
	ErrConfigFileExists  = fmt.Errorf("config file already exists")

	// Cleaner errors.
	ErrCleanerNotFound  = fmt.Errorf("cleaner not found")
	ErrCleanerExists    = fmt.Errorf("cleaner already registered")
	ErrCleanerDisabled  = fmt.Errorf("cleaner is disabled")
	ErrCategoryNotFound = fmt.Errorf("cache category not found")
	ErrPathProtected    = fmt.Errorf("path is protected")
	ErrNotInstalled     = fmt.Errorf("tool is not installed")

	// Hook errors.
	ErrHookTypeEmpty = fmt.Errorf("hook type cannot be empty")
	ErrHookExecution = fmt.Errorf("error executing hook")
	ErrHookScript    = fmt.Errorf("hook script error")
	ErrHookLoad      = fmt.Errorf("failed to load hook")

	// Snapshot errors.
	ErrSnapshotCreate = fmt.Errorf("failed to create snapshot")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// ErrInvalidOutputFormatWithDetails is a helper to create a wrapped error with the invalid format.
func ErrInvalidOutputFormatWithDetails(format string) error {
	return fmt.Errorf("%w: output format '%s', must be one of: text, json", ErrConfigValidation, format)
}

// ErrInvalidLogLevelWithDetails is a helper to create a wrapped error with the invalid level.
func ErrInvalidLogLevelWithDetails(level string) error {
	return fmt.Errorf("%w: log level '%s', must be one of: error, warn, info, debug", ErrConfigValidation, level)
}

// ErrCleanerNotFoundWithName creates an error for when a cleaner with the given name is not registered.
func ErrCleanerNotFoundWithName(name string) error {
	return fmt.Errorf("%w: %s", ErrCleanerNotFound, name)
}

// ErrCategoryNotFoundWithID creates an error for when a cache category id is unknown.
func ErrCategoryNotFoundWithID(id string) error {
	return fmt.Errorf("%w: %s", ErrCategoryNotFound, id)
}
