package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateWatch(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.ProfilesDir == "" {
		return errors.New("paths.profiles_dir must be set")
	}
	if c.Paths.LockPath == "" {
		return errors.New("paths.lock_path must be set")
	}
	if c.Paths.SourceDir != "" && c.Paths.SourceDir == c.Paths.ProfilesDir {
		return errors.New("paths.source_dir and paths.profiles_dir must differ")
	}
	return nil
}

func (c *Config) validateWatch() error {
	if c.Watch.DebounceMS < minWatchDebounceMS {
		return fmt.Errorf("watch.debounce_ms must be at least %d", minWatchDebounceMS)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q (use debug, info, warn or error)", c.Logging.Level)
	}
	if c.Logging.MaxSizeMB > maxLogMaxSizeMB {
		return fmt.Errorf("logging.max_size_mb must not exceed %d", maxLogMaxSizeMB)
	}
	return nil
}

// RequireSource reports an error when no source directory has been configured.
func (c *Config) RequireSource() error {
	if c.Paths.SourceDir == "" {
		return fmt.Errorf("source directory is required: pass --source, set %s, or set paths.source_dir", sourceDirEnv)
	}
	return nil
}
