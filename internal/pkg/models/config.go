package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	SMTP     SMTPConfig
	OTP      OTPConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
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

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// SMTPConfig contains the email delivery provider configuration
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// OTPConfig contains the tunables of the OTP issuance and verification flow.
// All durations are in seconds so they can be set directly from env vars.
type OTPConfig struct {
	CodeTTL     int // validity of an issued code
	RateWindow  int // length of the issuance rate-limit window
	MaxRequests int // issuance requests allowed per window
	MaxAttempts int // failed verification attempts before lockout
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	Format   string // "json" or "console"
	FilePath string // optional file output in addition to stdout
}
