package models

import "time"

// Config holds all configuration for the application
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Match    MatchConfig
	Routing  RoutingConfig
	Services ServicesConfig
	Logger   LoggerConfig
}

// AppConfig holds application metadata
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig holds NATS configuration
type NATSConfig struct {
	URL string
}

// JWTConfig holds JWT validation configuration
type JWTConfig struct {
	Secret     string
	Expiration int
	Issuer     string
}

// MatchConfig holds the dispatch policy knobs. The defaults are business
// policy carried over as-is: an 8 hour daily cap, a 5 minute buffer
// around scheduled windows and a 10 minute busy-driver lookahead.
type MatchConfig struct {
	WorkTimeCapHours      int
	ScheduleBufferMinutes int
	LookaheadMinutes      int
}

// WorkTimeCap returns the daily work-time cap as a duration.
func (m MatchConfig) WorkTimeCap() time.Duration {
	return time.Duration(m.WorkTimeCapHours) * time.Hour
}

// ScheduleBuffer returns the overlap buffer applied around scheduled
// ride windows.
func (m MatchConfig) ScheduleBuffer() time.Duration {
	return time.Duration(m.ScheduleBufferMinutes) * time.Minute
}

// Lookahead returns the window in which a busy driver's current ride must
// end for the driver to still be considered.
func (m MatchConfig) Lookahead() time.Duration {
	return time.Duration(m.LookaheadMinutes) * time.Minute
}

// RoutingConfig holds the Google Maps provider configuration
type RoutingConfig struct {
	APIKey         string
	Region         string
	TimeoutSeconds int
	MaxRetries     int
}

// Timeout returns the per-call budget for routing and geocoding calls.
func (r RoutingConfig) Timeout() time.Duration {
	return time.Duration(r.TimeoutSeconds) * time.Second
}

// ServicesConfig holds URLs of the sibling services
type ServicesConfig struct {
	MatchServiceURL   string
	RidesServiceURL   string
	DriversServiceURL string
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
