package configs

// HTTP defines configuration for the web frontend server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 3000.
	Port uint16 `env:"PORT" envDefault:"3000"`
	// MetricsEnabled exposes Prometheus metrics on /metrics.
	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`
}
