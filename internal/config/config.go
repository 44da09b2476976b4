package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Storage   StorageConfig   `yaml:"storage"`
	Inference InferenceConfig `yaml:"inference"`
	Model     ModelConfig     `yaml:"model"`
	History   HistoryConfig   `yaml:"history"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// Origins returns the comma-separated AllowedOrigins as a trimmed list.
func (c CORSConfig) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
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
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// AuthConfig holds session token settings. Tokens are issued by the session
// provider; this service only validates them.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"leafcare"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"24h"`
}

// StorageConfig holds object storage settings. Endpoint and UsePathStyle
// target S3-compatible stores such as MinIO; empty credentials fall back to
// the default AWS credential chain.
type StorageConfig struct {
	Region          string        `yaml:"region"            env:"STORAGE_REGION"            env-default:"us-east-1"`
	Bucket          string        `yaml:"bucket"            env:"STORAGE_BUCKET"            env-default:"plant-disease-uploads"`
	Endpoint        string        `yaml:"endpoint"          env:"STORAGE_ENDPOINT"`
	AccessKeyID     string        `yaml:"access_key_id"     env:"STORAGE_ACCESS_KEY_ID"`
	SecretAccessKey string        `yaml:"secret_access_key" env:"STORAGE_SECRET_ACCESS_KEY"`
	UsePathStyle    bool          `yaml:"use_path_style"    env:"STORAGE_USE_PATH_STYLE"    env-default:"false"`
	UploadPrefix    string        `yaml:"upload_prefix"     env:"STORAGE_UPLOAD_PREFIX"     env-default:"predictions"`
	PresignTTL      time.Duration `yaml:"presign_ttl"       env:"STORAGE_PRESIGN_TTL"       env-default:"168h"`
	PlaceholderURL  string        `yaml:"placeholder_url"   env:"STORAGE_PLACEHOLDER_URL"   env-default:"/placeholder.svg"`
}

// InferenceConfig holds settings of the classifier HTTP service.
type InferenceConfig struct {
	BaseURL string        `yaml:"base_url" env:"INFERENCE_BASE_URL" env-default:"http://127.0.0.1:8000"`
	Timeout time.Duration `yaml:"timeout"  env:"INFERENCE_TIMEOUT"  env-default:"30s"`
}

// ModelConfig holds static classifier metadata.
type ModelConfig struct {
	Version  string  `yaml:"version"  env:"MODEL_VERSION"  env-default:"v2.1.0"`
	Accuracy float64 `yaml:"accuracy" env:"MODEL_ACCURACY" env-default:"0.94"`
	// LastUpdated is a YYYY-MM-DD date. Empty reports the current date.
	LastUpdated string `yaml:"last_updated" env:"MODEL_LAST_UPDATED"`
}

// HistoryConfig holds history listing and upload limits.
type HistoryConfig struct {
	DefaultPageSize int   `yaml:"default_page_size" env:"HISTORY_DEFAULT_PAGE_SIZE" env-default:"10"`
	MaxPageSize     int   `yaml:"max_page_size"     env:"HISTORY_MAX_PAGE_SIZE"     env-default:"100"`
	MaxUploadBytes  int64 `yaml:"max_upload_bytes"  env:"HISTORY_MAX_UPLOAD_BYTES"  env-default:"10485760"`
}

// RateLimitConfig limits prediction requests per client.
type RateLimitConfig struct {
	PredictPerMinute int `yaml:"predict_per_minute" env:"RATE_LIMIT_PREDICT_PER_MINUTE" env-default:"30"`
	PredictBurst     int `yaml:"predict_burst"      env:"RATE_LIMIT_PREDICT_BURST"      env-default:"5"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
