package config

import "time"

type Config struct {
	Service *ServiceConfig
	Server  *ServerConfig
	Relay   *RelayConfig
	Logger  *LoggerConfig
	Tracer  *TracerConfig
}

type ServiceConfig struct {
	Name string
	Env  string
	Addr string
}

type ServerConfig struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type RelayConfig struct {
	MaxMessageSize int64
	SendBuffer     int
	WriteTimeout   time.Duration
	PongTimeout    time.Duration
	AllowedOrigins []string
}

type LoggerConfig struct {
	Level  string
	Format string
}

type TracerConfig struct {
	// Address of the OTLP/gRPC collector. Empty disables tracing export.
	Address string
}
