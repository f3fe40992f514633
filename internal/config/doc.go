// Package config defines the configuration structure for parcm.
//
// Configuration is organized into logical sections (Server, Pool, Loader, Catalog)
// and uses code generation via optgen to create functional option helpers.
//
// # Configuration Structure
//
//	Configuration
//	├── Server         - HTTP server settings
//	├── Pool           - Worker pool sizing
//	├── Loader         - Background album loading
//	├── Catalog        - Album catalog database
//	├── LogFormat      - Logging format
//	└── LogLevel       - Logging verbosity
//
// # Server Configuration
//
//	┌──────────┬─────────┬──────────────────────────────────┐
//	│ Field    │ Default │ Description                      │
//	├──────────┼─────────┼──────────────────────────────────┤
//	│ Mode     │ "dev"   │ Server mode: "prod" or "dev"     │
//	│ HTTPPort │ 8000    │ HTTP server listen port          │
//	└──────────┴─────────┴──────────────────────────────────┘
//
// # Pool Configuration
//
//	┌────────────┬─────────┬──────────────────────────────────────┐
//	│ Field      │ Default │ Description                          │
//	├────────────┼─────────┼──────────────────────────────────────┤
//	│ NumWorkers │ 4       │ Number of scheduler workers          │
//	│ MaxPending │ 0       │ Pending queue bound, 0 is unbounded  │
//	└────────────┴─────────┴──────────────────────────────────────┘
//
// # Loader Configuration
//
//	┌──────────────────┬─────────┬───────────────────────────────────────┐
//	│ Field            │ Default │ Description                           │
//	├──────────────────┼─────────┼───────────────────────────────────────┤
//	│ Timeout          │ 10s     │ Abandon a load still running after    │
//	│ TickInterval     │ 16ms    │ Player consumer tick                  │
//	│ DefaultCoverPath │ ""      │ Cover used when an album cover fails  │
//	│ FallbackRetries  │ 3       │ Attempts for an artifact fallback     │
//	└──────────────────┴─────────┴───────────────────────────────────────┘
//
// # Catalog Configuration
//
//	┌──────────────┬────────────┬─────────────────────────────────────┐
//	│ Field        │ Default    │ Description                         │
//	├──────────────┼────────────┼─────────────────────────────────────┤
//	│ DatabasePath │ ":memory:" │ DuckDB file holding the catalog     │
//	│ Workbook     │ ""         │ xlsx catalog imported on start      │
//	└──────────────┴────────────┴─────────────────────────────────────┘
//
// # Usage Example
//
//	cfg := config.NewConfigurationWithOptionsAndDefaults(
//	    config.WithPool(*config.NewPoolWithOptionsAndDefaults(
//	        config.WithNumWorkers(8),
//	    )),
//	    config.WithLogLevel("info"),
//	)
//
//	log.Info("configuration loaded", zap.Any("config", cfg.DebugMap()))
package config
