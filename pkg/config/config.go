package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Token transport strategies. They decide both how signin delivers the
// session token and where the guard looks for it.
const (
	TransportCookie = "cookie"
	TransportHeader = "header"
)

type Config struct {
	Port        string
	Env         string
	DatabaseURL string

	JWTSecret string
	JWTIssuer string
	TokenTTL  time.Duration

	TokenTransport string
	SessionCookie  string

	CORSOrigin string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		JWTSecret:      getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:      getEnv("JWT_ISSUER", "fada-auth"),
		TokenTTL:       getEnvDuration("TOKEN_TTL", 2*time.Hour),
		TokenTransport: getEnv("TOKEN_TRANSPORT", TransportCookie),
		SessionCookie:  getEnv("SESSION_COOKIE", "token"),
		CORSOrigin:     getEnv("CORS_ORIGIN", "http://localhost:5173"),
	}
	return cfg
}

// Production reports whether the process runs with production hardening
// (Secure cookies, release logging).
func (c Config) Production() bool {
	return c.Env == "production"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
