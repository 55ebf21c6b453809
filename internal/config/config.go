package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// App holds the runtime configuration loaded from environment
// variables, with a local .env honored first.
type App struct {
	Env      string
	HTTPPort string

	DataDir   string
	PublicDir string

	AdminPIN        string
	AdminSessionTTL time.Duration
	JWTIssuer       string
	JWTSigningKey   string

	RedisAddr    string
	QueueBackend string
	QueueKey     string

	AppName     string
	SendgridKey string
	NotifyEmail string
	AdminEmail  string

	RateLimitPerMin int
}

// Load returns application config populated from environment variables
// with sensible defaults.
func Load() App {
	if err := godotenv.Load(".env"); err == nil {
		log.Println("loaded configuration from .env")
	}

	return App{
		Env:             getEnv("APP_ENV", "dev"),
		HTTPPort:        getEnv("PORT", "3000"),
		DataDir:         getEnv("DATA_DIR", "data"),
		PublicDir:       getEnv("PUBLIC_DIR", "public"),
		AdminPIN:        getEnv("ADMIN_PIN", "2468"),
		AdminSessionTTL: durationEnv("ADMIN_SESSION_TTL", 8*time.Hour),
		JWTIssuer:       getEnv("JWT_ISSUER", "academy-portal"),
		JWTSigningKey:   getEnv("JWT_SIGNING_KEY", "dev-signing-secret-change"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		QueueBackend:    getEnv("QUEUE_BACKEND", "memory"),
		QueueKey:        getEnv("QUEUE_KEY", "academy:notifications"),
		AppName:         getEnv("APP_NAME", "El-Azeezy Islamic Academy"),
		SendgridKey:     getEnv("SENDGRID_API_KEY", ""),
		NotifyEmail:     getEnv("NOTIFY_EMAIL", ""),
		AdminEmail:      getEnv("ADMIN_EMAIL", ""),
		RateLimitPerMin: intEnv("RATE_LIMIT_PER_MIN", 120),
	}
}

// EmailConfigured reports whether the SendGrid backend can be used.
func (a App) EmailConfigured() bool {
	return a.SendgridKey != "" && a.NotifyEmail != "" && a.AdminEmail != ""
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using fallback %s", key, err, fallback)
			return fallback
		}
		return d
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		var parsed int
		if _, err := fmt.Sscanf(val, "%d", &parsed); err == nil {
			return parsed
		}
		log.Printf("invalid int for %s, using fallback %d", key, fallback)
	}
	return fallback
}
