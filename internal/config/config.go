package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr      string
	TLSCert   string
	TLSKey    string
	StaticDir string
	LogMode   string
	RateLimit float64
	RateBurst int
}

// Load reads the optional .env files, then the HDD_* environment variables.
// Variables already set in the environment win over .env.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	cfg := Config{
		Addr:      env("HDD_ADDR", ":8080"),
		TLSCert:   os.Getenv("HDD_TLS_CERT"),
		TLSKey:    os.Getenv("HDD_TLS_KEY"),
		StaticDir: env("HDD_STATIC_DIR", "./static/main"),
		LogMode:   env("HDD_LOG_MODE", "production"),
	}
	var err error
	if cfg.RateLimit, err = strconv.ParseFloat(env("HDD_RATE_LIMIT", "1"), 64); err != nil {
		return Config{}, fmt.Errorf("HDD_RATE_LIMIT: %w", err)
	}
	if cfg.RateBurst, err = strconv.Atoi(env("HDD_RATE_BURST", "3")); err != nil {
		return Config{}, fmt.Errorf("HDD_RATE_BURST: %w", err)
	}
	if (cfg.TLSCert == "") != (cfg.TLSKey == "") {
		return Config{}, fmt.Errorf("HDD_TLS_CERT and HDD_TLS_KEY must be set together")
	}
	return cfg, nil
}

func (c Config) TLS() bool {
	return c.TLSCert != ""
}

func env(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
