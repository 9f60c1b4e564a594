package config

const (
	defaultProfilesDir       = "~/.deo/profiles"
	defaultLogDir            = "~/.local/share/deo/logs"
	defaultLockPath          = "~/.local/share/deo/encode.lock"
	defaultHandBrakeBinary   = "HandBrakeCLI"
	defaultWatchDebounceMS   = 2000
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
	defaultLogMaxSizeMB      = 10
	defaultLogMaxBackups     = 5
	defaultLogMaxAgeDays     = 30
	defaultLogCompress       = true
	sourceDirEnv             = "DEO_SOURCE_DIR"
	defaultConfigLocation    = "~/.config/deo/config.toml"
	projectConfigFileName    = "deo.toml"
	minWatchDebounceMS       = 100
	maxLogMaxSizeMB          = 1024
	defaultEncodingOverwrite = false
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ProfilesDir: defaultProfilesDir,
			LogDir:      defaultLogDir,
			LockPath:    defaultLockPath,
		},
		HandBrake: HandBrake{
			Binary: defaultHandBrakeBinary,
		},
		Encoding: Encoding{
			OverwriteExisting: defaultEncodingOverwrite,
		},
		Watch: Watch{
			DebounceMS: defaultWatchDebounceMS,
		},
		Logging: Logging{
			Format:     defaultLogFormat,
			Level:      defaultLogLevel,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAgeDays: defaultLogMaxAgeDays,
			Compress:   defaultLogCompress,
		},
	}
}
