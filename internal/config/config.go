package config

import "time"

//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Server Pool Loader Catalog

type Configuration struct {
	Server    Server  `debugmap:"visible"`
	Pool      Pool    `debugmap:"visible"`
	Loader    Loader  `debugmap:"visible"`
	Catalog   Catalog `debugmap:"visible"`
	LogFormat string  `debugmap:"visible" default:"console"`
	LogLevel  string  `debugmap:"visible" default:"debug"`
}

type Server struct {
	Mode     string `debugmap:"visible" default:"dev"`
	HTTPPort int    `debugmap:"visible" default:"8000"`
}

type Pool struct {
	NumWorkers int `debugmap:"visible" default:"4"`
	// MaxPending bounds the pending queue. Zero means unbounded.
	MaxPending int `debugmap:"visible" default:"0"`
}

type Loader struct {
	Timeout          time.Duration `debugmap:"visible" default:"10s"`
	TickInterval     time.Duration `debugmap:"visible" default:"16ms"`
	DefaultCoverPath string        `debugmap:"visible"`
	FallbackRetries  uint          `debugmap:"visible" default:"3"`
}

type Catalog struct {
	DatabasePath string `debugmap:"visible" default:":memory:"`
	// Workbook is imported on start when set.
	Workbook string `debugmap:"visible"`
}
