package config

import (
	"strings"
	"time"

	"github.com/SeakMengs/PDFStudio/internal/env"
)

const (
	StorageDriverLocal = "local"
	StorageDriverS3    = "s3"
)

type Config struct {
	Port        string
	ENV         string
	DB          DatabaseConfig
	Storage     StorageConfig
	Upload      UploadConfig
	RateLimiter RateLimiterConfig
}

type RateLimiterConfig struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

type DatabaseConfig struct {
	DB_HOST      string
	DB_PORT      string
	DB_DATABASE  string
	DB_USERNAME  string
	DB_PASSWORD  string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  string
}

type StorageConfig struct {
	// Either "local" or "s3".
	DRIVER string

	// Root directory for the local driver, created at startup.
	LOCAL_DIR string

	Minio MinioConfig
}

type MinioConfig struct {
	ENDPOINT   string
	ACCESS_KEY string
	SECRET_KEY string
	BUCKET     string
	USE_SSL    bool
}

type UploadConfig struct {
	// Maximum accepted PDF size in bytes.
	MaxFileSize int64
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.ENV, "production")
}

func GetConfig() Config {
	rateLimiteTimeFrame, err := time.ParseDuration(env.GetString("RATE_LIMIT_TIME_FRAME", "1m"))
	if err != nil {
		rateLimiteTimeFrame = 60 * time.Second
	}

	return Config{
		Port: env.GetString("PORT", "8080"),
		ENV:  env.GetString("ENV", "development"),
		DB: DatabaseConfig{
			DB_HOST:      env.GetString("DB_HOST", "127.0.0.1"),
			DB_PORT:      env.GetString("DB_PORT", "5432"),
			DB_USERNAME:  env.GetString("DB_USERNAME", "root"),
			DB_PASSWORD:  env.GetString("DB_PASSWORD", ""),
			DB_DATABASE:  env.GetString("DB_DATABASE", "pdfstudio"),
			MaxOpenConns: env.GetInt("DB_MAX_OPEN_CONNS", 30),
			MaxIdleConns: env.GetInt("DB_MAX_IDLE_CONNS", 30),
			MaxIdleTime:  env.GetString("DB_MAX_IDLE_TIME", "15m"),
		},
		Storage: StorageConfig{
			DRIVER:    env.GetString("STORAGE_DRIVER", StorageDriverLocal),
			LOCAL_DIR: env.GetString("STORAGE_LOCAL_DIR", "uploads"),
			Minio: MinioConfig{
				ENDPOINT:   env.GetString("MINIO_ENDPOINT", "127.0.0.1:9000"),
				ACCESS_KEY: env.GetString("MINIO_ACCESS_KEY", ""),
				SECRET_KEY: env.GetString("MINIO_SECRET_KEY", ""),
				BUCKET:     env.GetString("MINIO_BUCKET", "pdfstudio"),
				USE_SSL:    env.GetBool("MINIO_USE_SSL", false),
			},
		},
		Upload: UploadConfig{
			// Same 100MB limit the frontend enforces before sending.
			MaxFileSize: env.GetInt64("UPLOAD_MAX_FILE_SIZE", 100*1024*1024),
		},
		// By default if not specified, we allow 5000 requests per minute on all routes
		RateLimiter: RateLimiterConfig{
			RequestsPerTimeFrame: env.GetInt("RATE_LIMIT_REQUESTS_PER_TIME_FRAME", 5000),
			TimeFrame:            rateLimiteTimeFrame,
			Enabled:              env.GetBool("RATE_LIMIT_ENABLED", true),
		},
	}
}
