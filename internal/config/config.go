package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	S3     S3Config
	Cache  CacheConfig
	Log    LogConfig
	CORS   CORSConfig
	Email  EmailConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT validation settings. Tokens are issued by the
// platform identity service; this service only validates them.
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

// S3Config holds AWS S3 settings.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// CacheConfig holds validation report cache settings. Provider is
// "redis", "memory" or "noop".
type CacheConfig struct {
	Provider string        `mapstructure:"provider"`
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"ttl"`
	MaxItems int           `mapstructure:"max_items"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	ReviewQueue string `mapstructure:"review_queue"`
}

// Load reads configuration from environment variables with the LOANLENS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LOANLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "loanlens")
	v.SetDefault("db.password", "loanlens_secret")
	v.SetDefault("db.name", "loanlens_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.issuer", "loanlens")

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "loanlens-documents")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 50)
	v.SetDefault("s3.presign_expiry", 3600)

	// Cache defaults
	v.SetDefault("cache.provider", "memory")
	v.SetDefault("cache.redis_url", "redis://localhost:6379/0")
	v.SetDefault("cache.ttl", "1h")
	v.SetDefault("cache.max_items", 1024)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "us-east-1")
	v.SetDefault("email.from_address", "noreply@loanlens.io")
	v.SetDefault("email.from_name", "LoanLens")
	v.SetDefault("email.review_queue", "")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":           "LOANLENS_SERVER_PORT",
		"server.read_timeout":   "LOANLENS_SERVER_READ_TIMEOUT",
		"server.write_timeout":  "LOANLENS_SERVER_WRITE_TIMEOUT",
		"server.environment":    "LOANLENS_SERVER_ENVIRONMENT",
		"db.host":               "LOANLENS_DB_HOST",
		"db.port":               "LOANLENS_DB_PORT",
		"db.user":               "LOANLENS_DB_USER",
		"db.password":           "LOANLENS_DB_PASSWORD",
		"db.name":               "LOANLENS_DB_NAME",
		"db.sslmode":            "LOANLENS_DB_SSLMODE",
		"db.max_open":           "LOANLENS_DB_MAX_OPEN",
		"db.max_idle":           "LOANLENS_DB_MAX_IDLE",
		"jwt.secret":            "LOANLENS_JWT_SECRET",
		"jwt.issuer":            "LOANLENS_JWT_ISSUER",
		"s3.region":             "LOANLENS_S3_REGION",
		"s3.bucket":             "LOANLENS_S3_BUCKET",
		"s3.endpoint":           "LOANLENS_S3_ENDPOINT",
		"s3.access_key":         "LOANLENS_S3_ACCESS_KEY",
		"s3.secret_key":         "LOANLENS_S3_SECRET_KEY",
		"s3.max_file_size_mb":   "LOANLENS_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":     "LOANLENS_S3_PRESIGN_EXPIRY",
		"cache.provider":        "LOANLENS_CACHE_PROVIDER",
		"cache.redis_url":       "LOANLENS_CACHE_REDIS_URL",
		"cache.ttl":             "LOANLENS_CACHE_TTL",
		"cache.max_items":       "LOANLENS_CACHE_MAX_ITEMS",
		"log.level":             "LOANLENS_LOG_LEVEL",
		"log.format":            "LOANLENS_LOG_FORMAT",
		"cors.allowed_origins":  "LOANLENS_CORS_ALLOWED_ORIGINS",
		"email.provider":        "LOANLENS_EMAIL_PROVIDER",
		"email.region":          "LOANLENS_EMAIL_REGION",
		"email.from_address":    "LOANLENS_EMAIL_FROM_ADDRESS",
		"email.from_name":       "LOANLENS_EMAIL_FROM_NAME",
		"email.review_queue":    "LOANLENS_EMAIL_REVIEW_QUEUE",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if LOANLENS_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("LOANLENS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret: v.GetString("jwt.secret"),
		Issuer: v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Cache = CacheConfig{
		Provider: v.GetString("cache.provider"),
		RedisURL: v.GetString("cache.redis_url"),
		TTL:      v.GetDuration("cache.ttl"),
		MaxItems: v.GetInt("cache.max_items"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
		ReviewQueue: v.GetString("email.review_queue"),
	}

	return cfg, nil
}
