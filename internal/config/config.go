package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	DBDSN             string
	LogFile           string
	LogMode           string
	ImageFetchTimeout time.Duration
	CORSOrigins       string
	BodyLimit         int
}

func Load() Config {
	// .env is optional; real env vars win over it
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[config] could not read .env: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "marketplace.db"
	} // sqlite file in project root
	mode := os.Getenv("LOG_MODE")
	if mode == "" {
		mode = "dev"
	}
	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" {
		origins = "*"
	}

	timeout := 10 * time.Second
	if v := os.Getenv("IMAGE_FETCH_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			timeout = d
		} else {
			log.Printf("[config] ignoring bad IMAGE_FETCH_TIMEOUT=%q", v)
		}
	}
	bodyLimit := 1 << 20
	if v := os.Getenv("BODY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			bodyLimit = n
		}
	}

	cfg := Config{
		Port:              port,
		DBDSN:             dsn,
		LogFile:           os.Getenv("LOG_FILE"),
		LogMode:           mode,
		ImageFetchTimeout: timeout,
		CORSOrigins:       origins,
		BodyLimit:         bodyLimit,
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_MODE=%s LOG_FILE=%s IMAGE_FETCH_TIMEOUT=%s",
		cfg.Port, cfg.DBDSN, cfg.LogMode, cfg.LogFile, cfg.ImageFetchTimeout)
	return cfg
}
