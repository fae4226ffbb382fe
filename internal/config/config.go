// Package config reads runtime settings from the environment. Values in
// .env and .env.local fill in variables the process does not already have.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr           string
	APIBaseURL     string
	APITimeout     time.Duration
	APIRateLimit   float64
	APIRateBurst   int
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
	MaxBodyBytes   int64
	EnableHSTS     bool
}

// Client holds the settings of the command-line tools. Flags override them.
type Client struct {
	APIBaseURL  string
	APITimeout  time.Duration
	SessionFile string
	Token       string
}

// LoadEnvFiles loads .env and .env.local without overriding variables
// already set by the runtime.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// Load reads the configuration. CATALOG_API_URL is required.
func Load() (Config, error) {
	LoadEnvFiles()

	base, err := mustGetEnv("CATALOG_API_URL")
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		Addr:       getEnv("ADMIN_ADDR", ":8081"),
		APIBaseURL: strings.TrimRight(base, "/"),
		EnableHSTS: getEnv("ENABLE_HSTS", "false") == "true",
	}
	if origins := getEnv("ALLOWED_ORIGINS", ""); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	if cfg.APITimeout, err = time.ParseDuration(getEnv("CATALOG_API_TIMEOUT", "10s")); err != nil {
		return Config{}, fmt.Errorf("CATALOG_API_TIMEOUT: %w", err)
	}
	if cfg.APIRateLimit, err = strconv.ParseFloat(getEnv("CATALOG_API_RPS", "0"), 64); err != nil {
		return Config{}, fmt.Errorf("CATALOG_API_RPS: %w", err)
	}
	if cfg.APIRateBurst, err = strconv.Atoi(getEnv("CATALOG_API_BURST", "1")); err != nil {
		return Config{}, fmt.Errorf("CATALOG_API_BURST: %w", err)
	}
	if cfg.RateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "20"), 64); err != nil {
		return Config{}, fmt.Errorf("RATE_LIMIT_RPS: %w", err)
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "40")); err != nil {
		return Config{}, fmt.Errorf("RATE_LIMIT_BURST: %w", err)
	}
	if cfg.MaxBodyBytes, err = strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64); err != nil {
		return Config{}, fmt.Errorf("MAX_BODY_BYTES: %w", err)
	}
	return cfg, nil
}

// LoadClient reads the command-line settings. Nothing is required: the API
// defaults to a local catalog and an empty SessionFile means the user config
// dir.
func LoadClient() (Client, error) {
	LoadEnvFiles()

	c := Client{
		APIBaseURL:  strings.TrimRight(getEnv("CATALOG_API_URL", "http://localhost:8080"), "/"),
		SessionFile: getEnv("CATALOG_SESSION_FILE", ""),
		Token:       getEnv("CATALOG_TOKEN", ""),
	}
	var err error
	if c.APITimeout, err = time.ParseDuration(getEnv("CATALOG_API_TIMEOUT", "10s")); err != nil {
		return Client{}, fmt.Errorf("CATALOG_API_TIMEOUT: %w", err)
	}
	return c, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mustGetEnv(key string) (string, error) {
	if v := os.Getenv(key); v != "" {
		return v, nil
	}
	return "", fmt.Errorf("missing required environment variable: %s", key)
}
