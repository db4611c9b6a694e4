package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	Auth         AuthConfig         `yaml:"auth"`
	Redis        RedisConfig        `yaml:"redis"`
	Bulk         BulkConfig         `yaml:"bulk"`
	Confirmation ConfirmationConfig `yaml:"confirmation"`
	Audit        AuditConfig        `yaml:"audit"`
	Export       ExportConfig       `yaml:"export"`
	ContentStore ProviderConfig     `yaml:"content_store" env-prefix:"CONTENT_STORE_"`
	Identity     ProviderConfig     `yaml:"identity"      env-prefix:"IDENTITY_"`
	Log          LogConfig          `yaml:"log"`
	CORS         CORSConfig         `yaml:"cors"`
	RateLimit    RateLimitConfig    `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds settings for validating administrator access tokens.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"editorial-admin"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// RedisConfig holds the connection used by the confirmation token ledger.
type RedisConfig struct {
	URL string `yaml:"url" env:"REDIS_URL" env-default:"redis://localhost:6379/0"`
}

// BulkConfig holds bulk executor limits.
type BulkConfig struct {
	Workers     int           `yaml:"workers"      env:"BULK_WORKERS"      env-default:"8"`
	ItemTimeout time.Duration `yaml:"item_timeout" env:"BULK_ITEM_TIMEOUT" env-default:"10s"`
	MaxItems    int           `yaml:"max_items"    env:"BULK_MAX_ITEMS"    env-default:"500"`
}

// ConfirmationConfig holds confirmation token settings.
type ConfirmationConfig struct {
	Secret   string        `yaml:"secret"    env:"CONFIRMATION_SECRET"    env-required:"true"`
	TokenTTL time.Duration `yaml:"token_ttl" env:"CONFIRMATION_TOKEN_TTL" env-default:"5m"`
}

// AuditConfig holds audit log query and write limits.
type AuditConfig struct {
	DefaultLimit int `yaml:"default_limit"  env:"AUDIT_DEFAULT_LIMIT"  env-default:"50"`
	MaxLimit     int `yaml:"max_limit"      env:"AUDIT_MAX_LIMIT"      env-default:"200"`
	NotesMaxLen  int `yaml:"notes_max_len"  env:"AUDIT_NOTES_MAX_LEN"  env-default:"2000"`
}

// ExportConfig holds the destination of bulk export documents.
type ExportConfig struct {
	Path string `yaml:"path" env:"EXPORT_PATH" env-default:"exports.ndjson"`
}

// ProviderConfig holds settings for an external HTTP collaborator.
type ProviderConfig struct {
	BaseURL      string        `yaml:"base_url"      env:"BASE_URL"      env-required:"true"`
	Timeout      time.Duration `yaml:"timeout"       env:"TIMEOUT"       env-default:"5s"`
	ReadAttempts int           `yaml:"read_attempts" env:"READ_ATTEMPTS" env-default:"2"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request limits for the admin API.
type RateLimitConfig struct {
	PerMinute       int           `yaml:"per_minute"       env:"RATE_LIMIT_PER_MINUTE"       env-default:"120"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}
