package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr           string
	GinMode           string
	MongoURI          string
	MongoDB           string
	MySQLDSN          string
	CORSOrigins       []string
	AccountWindowDays int
	HandlerStatsSince time.Time
}

// JWTSecret signs login tokens. Set by LoadEnv; the default is for local
// development only.
var JWTSecret = []byte("railbook-dev-secret-change-me")

// Current holds the environment loaded at startup so handlers can read
// tuning knobs without threading Env through every constructor.
var Current Env

func LoadEnv() Env {
	// Only load .env outside production deployments.
	if strings.TrimSpace(os.Getenv("APP_ENV")) != "production" {
		_ = godotenv.Load()
	}

	env := Env{
		AppAddr:           envOr("APP_ADDR", ":8080"),
		GinMode:           strings.TrimSpace(os.Getenv("GIN_MODE")),
		MongoURI:          envOr("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:           envOr("MONGO_DB", "railbook"),
		MySQLDSN:          envOr("MYSQL_DSN", "root:@tcp(127.0.0.1:3306)/railbook?parseTime=true&loc=UTC&charset=utf8mb4"),
		AccountWindowDays: envIntOr("ACCOUNT_USAGE_WINDOW_DAYS", 30),
		HandlerStatsSince: envDateOr("HANDLER_STATS_SINCE", "2024-01-01"),
	}

	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				env.CORSOrigins = append(env.CORSOrigins, o)
			}
		}
	}

	if secret := strings.TrimSpace(os.Getenv("JWT_SECRET")); secret != "" {
		JWTSecret = []byte(secret)
	}

	Current = env
	return env
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("config: ignoring %s=%q, using %d", key, raw, def)
		return def
	}
	return n
}

func envDateOr(key, def string) time.Time {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		raw = def
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		log.Printf("config: ignoring %s=%q, using %s", key, raw, def)
		t, _ = time.Parse("2006-01-02", def)
	}
	return t
}
