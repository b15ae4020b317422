package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServiceName     string
	HTTPAddr        string
	PostgresDSN     string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	KafkaBrokers    []string
	JWTSecret       string
	PublicRoot      string
	GalleryCapacity int
	MaxUploadBytes  int64
	OTLPEndpoint    string
	LogLevel        string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Warn("failed to load .env file, using default values", "error", err)
	}

	cfg := &Config{
		ServiceName:     os.Getenv("SERVICE_NAME"),
		HTTPAddr:        os.Getenv("HTTP_ADDR"),
		PostgresDSN:     os.Getenv("POSTGRES_DSN"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		KafkaBrokers:    splitList(os.Getenv("KAFKA_BROKER")),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		PublicRoot:      os.Getenv("PUBLIC_ROOT"),
		GalleryCapacity: intEnv("GALLERY_CAPACITY", 5),
		MaxUploadBytes:  int64(intEnv("MAX_UPLOAD_MB", 5)) << 20,
		OTLPEndpoint:    os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		LogLevel:        os.Getenv("LOG_LEVEL"),
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil || db < 0 {
			slog.Warn("invalid REDIS_DB, using 0", "value", v)
		} else {
			cfg.RedisDB = db
		}
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "travelsite-admin"
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	if cfg.PostgresDSN == "" {
		cfg.PostgresDSN = "host=localhost user=postgres password=postgres dbname=travelsite sslmode=disable"
	}
	if cfg.RedisAddr == "" {
		cfg.RedisAddr = "localhost:6379"
	}
	if len(cfg.KafkaBrokers) == 0 {
		cfg.KafkaBrokers = []string{"localhost:9092"}
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "supersecret"
	}
	if cfg.PublicRoot == "" {
		cfg.PublicRoot = "storage/app/public"
	}

	slog.Info("config loaded",
		"http_addr", cfg.HTTPAddr,
		"redis_addr", cfg.RedisAddr,
		"redis_db", cfg.RedisDB,
		"kafka_brokers", cfg.KafkaBrokers,
		"public_root", cfg.PublicRoot,
		"gallery_capacity", cfg.GalleryCapacity,
		"log_level", cfg.LogLevel,
	)
	return cfg
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func intEnv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid integer env value, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}
