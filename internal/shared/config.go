package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv        string
	HTTPAddr      string
	MetricsAddr   string
	APIBase       string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	CloudName     string
	UploadPreset  string
	UploadBase    string
	SessionDBPath string
	CORSOrigins   []string
	BackendRPS    int
	Workers       int
	SyncInterval  time.Duration
	CacheTTL      time.Duration
	PageSize      int
}

func Load() Config {
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:        env("APP_ENV", "prod"),
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		MetricsAddr:   env("METRICS_ADDR", ":9100"),
		APIBase:       env("API_BASE_URL", "http://localhost:5000/api"),
		RedisAddr:     env("REDIS_ADDR", "localhost:6379"),
		RedisPass:     env("REDIS_PASSWORD", ""),
		RedisDB:       atoi("REDIS_DB", 0),
		CloudName:     env("CLOUDINARY_CLOUD_NAME", ""),
		UploadPreset:  env("CLOUDINARY_UPLOAD_PRESET", ""),
		UploadBase:    env("CLOUDINARY_BASE_URL", "https://api.cloudinary.com/v1_1"),
		SessionDBPath: env("SESSION_DB_PATH", "session.db"),
		CORSOrigins:   strings.Split(env("CORS_ORIGINS", "*"), ","),
		BackendRPS:    atoi("BACKEND_RPS", 5),
		Workers:       atoi("SYNC_WORKERS", 4),
		SyncInterval:  time.Duration(atoi("SYNC_INTERVAL_SECONDS", 0)) * time.Second,
		CacheTTL:      time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,
		PageSize:      atoi("PAGE_SIZE", 9),
	}
	if c.CloudName == "" || c.UploadPreset == "" {
		log.Warn().Msg("cloudinary credentials are empty; image uploads will fail")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
