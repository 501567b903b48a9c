package config

const (
	defaultLogDir            = "~/.local/share/sortd/logs"
	defaultStateDir          = "~/.local/share/sortd"
	defaultCatalogDB         = "~/.local/share/sortd/catalog.db"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
	defaultMaxRenameAttempts = 1000
	defaultHashBufferKiB     = 64
	defaultDebounceMillis    = 500
	defaultSettleSeconds     = 2
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:   defaultLogDir,
			StateDir: defaultStateDir,
		},
		Catalog: Catalog{
			DatabasePath: defaultCatalogDB,
			UseDefaults:  true,
		},
		Organize: Organize{
			MaxRenameAttempts: defaultMaxRenameAttempts,
			HashBufferKiB:     defaultHashBufferKiB,
		},
		Watch: Watch{
			DebounceMillis: defaultDebounceMillis,
			SettleSeconds:  defaultSettleSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Mappings: map[string]string{},
	}
}
