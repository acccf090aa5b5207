package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the process configuration for the HTTP service. The model
// credential is deliberately absent: it is read on every evaluation so it
// can be set or rotated without a restart.
type Config struct {
	ServerAddress   string
	ContentDir      string
	LogMode         string
	ShutdownTimeout time.Duration
	WriteTimeout    time.Duration
	CORSOrigins     []string
}

// DefaultCORSOrigins are the local frontend dev servers.
var DefaultCORSOrigins = []string{"http://localhost:5173", "http://localhost:3000"}

// Load reads .env (if present) and then the environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the environment without touching .env.
func FromEnv() (*Config, error) {
	shutdown, err := getDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	write, err := getDuration("WRITE_TIMEOUT", 90*time.Second)
	if err != nil {
		return nil, err
	}
	return &Config{
		ServerAddress:   getenvDefault("SERVER_ADDRESS", ":8000"),
		ContentDir:      getenvDefault("CONTENT_DIR", "content"),
		LogMode:         getenvDefault("LOG_MODE", "dev"),
		ShutdownTimeout: shutdown,
		WriteTimeout:    write,
		CORSOrigins:     corsOrigins(os.Getenv("CORS_ORIGINS")),
	}, nil
}

func getDuration(k string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q is not a valid duration: %w", k, v, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("config: %s must be positive, got %s", k, d)
	}
	return d, nil
}

func getenvDefault(k, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return fallback
}

// corsOrigins appends the comma separated extra origins to the defaults,
// skipping duplicates and anything that is not an http(s) origin.
func corsOrigins(extra string) []string {
	out := append([]string{}, DefaultCORSOrigins...)
	seen := map[string]bool{}
	for _, o := range out {
		seen[o] = true
	}
	for _, o := range strings.Split(extra, ",") {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if seen[o] || !(strings.HasPrefix(o, "http://") || strings.HasPrefix(o, "https://")) {
			continue
		}
		seen[o] = true
		out = append(out, o)
	}
	return out
}
