package config

import (
	"os"
	"strconv"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings. When Endpoint or the credential
// pair is empty the storage adapter degrades to an unavailable client that
// fails closed instead of crashing at startup.
type MinIOConfig struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	UseSSL        bool
	PublicBaseURL string
}

// RedisConfig holds the rate-limiter backing store settings. An empty URL
// degrades the limiter to an always-allow no-op.
type RedisConfig struct {
	URL       string
	Limit     int
	WindowSec int
}

// AuthConfig holds session and internal-service credentials.
type AuthConfig struct {
	SessionSecret  string
	InternalAPIKey string
}

// UploadConfig bounds uploads and signed-URL lifetimes.
type UploadConfig struct {
	MaxBytes      int64
	SignExpirySec int
}

// ResolverConfig selects how stored file references resolve to URLs. The
// transport override is injected here at construction time rather than read
// ad hoc from process-wide state.
type ResolverConfig struct {
	// Transport set to "public" routes object-store keys through the
	// public base URL instead of the presign exchange.
	Transport            string
	PublicBaseURL        string
	PresignEndpoint      string
	PresignProxyEndpoint string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost  string
	Port     string
	Database DatabaseConfig
	MinIO    MinIOConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Upload   UploadConfig
	Resolver ResolverConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	appHost := getEnv("APP_HOST", "localhost:8080")
	return &AppConfig{
		AppHost: appHost,
		Port:    getEnv("PORT", "8080"), // default only for non-sensitive value
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:      getEnv("MINIO_ENDPOINT", ""),
			AccessKey:     getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey:     getEnv("MINIO_SECRET_KEY", ""),
			Bucket:        getEnv("MINIO_BUCKET", "documents"),
			UseSSL:        getEnvBool("MINIO_USE_SSL", false),
			PublicBaseURL: getEnv("STORAGE_PUBLIC_BASE_URL", ""),
		},
		Redis: RedisConfig{
			URL:       getEnv("REDIS_URL", ""),
			Limit:     getEnvInt("RATE_LIMIT_REQUESTS", 10),
			WindowSec: getEnvInt("RATE_LIMIT_WINDOW_SEC", 10),
		},
		Auth: AuthConfig{
			SessionSecret:  getEnv("SESSION_SECRET", ""),
			InternalAPIKey: getEnv("INTERNAL_API_KEY", ""),
		},
		Upload: UploadConfig{
			MaxBytes:      getEnvInt64("UPLOAD_MAX_BYTES", 100<<20),
			SignExpirySec: getEnvInt("SIGN_EXPIRY_SEC", 3600),
		},
		Resolver: ResolverConfig{
			Transport:            getEnv("UPLOAD_TRANSPORT", "s3"),
			PublicBaseURL:        getEnv("STORAGE_PUBLIC_BASE_URL", ""),
			PresignEndpoint:      getEnv("PRESIGN_ENDPOINT", "http://"+appHost+"/files/s3/presign"),
			PresignProxyEndpoint: getEnv("PRESIGN_PROXY_ENDPOINT", "http://"+appHost+"/files/s3/presign-proxy"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return i
		}
	}
	return def
}
