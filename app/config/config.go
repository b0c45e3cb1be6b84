package config

import (
	"crypto/rand"
	"log"
	"os"
)

// Config holds the process-wide settings the application is started with.
type Config struct {
	Addr          string
	DBPath        string
	SessionSecret []byte
}

// FromEnv builds a Config from environment variables, falling back to
// defaults suitable for local development.
func FromEnv() Config {
	cfg := Config{
		Addr:   envOr("BLOG_ADDR", ":8080"),
		DBPath: envOr("BLOG_DB_PATH", "data/badger"),
	}

	if secret := os.Getenv("BLOG_SESSION_SECRET"); secret != "" {
		cfg.SessionSecret = []byte(secret)
	} else {
		cfg.SessionSecret = make([]byte, 32)
		if _, err := rand.Read(cfg.SessionSecret); err != nil {
			log.Fatalf("Failed to generate session secret: %v", err)
		}
		log.Println("BLOG_SESSION_SECRET not set; using an ephemeral secret, sessions will not survive restarts")
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
