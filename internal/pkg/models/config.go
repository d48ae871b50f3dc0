package models

// Config holds all application configuration
type Config struct {
	App        AppConfig
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	NATS       NATSConfig
	JWT        JWTConfig
	Logger     LoggerConfig
	NewRelic   NewRelicConfig
	Assignment AssignmentConfig
}

// AppConfig holds application metadata
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig holds PostgreSQL settings
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

// RedisConfig holds Redis settings
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig holds NATS settings
type NATSConfig struct {
	URL string
}

// JWTConfig holds token settings
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
	Issuer     string
}

// LoggerConfig holds logger settings
type LoggerConfig struct {
	Level    string
	FilePath string
}

// NewRelicConfig holds New Relic settings
type NewRelicConfig struct {
	LicenseKey string
	AppName    string
	Enabled    bool
}

// AssignmentConfig tunes the driver assignment policy and its retry sweep
type AssignmentConfig struct {
	SearchRadiusKm     float64
	SweepIntervalSecs  int
	SweepBatchSize     int
	FallbackCandidates int
	GeohashPrecision   uint
}
