package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port       string
	DBDSN      string
	LogFile    string
	CORSOrigin string

	// WordPress mirror (read-only inputs to the sync core)
	WPBaseURL     string
	WPUsername    string
	WPAppPassword string
	WPTimeout     time.Duration
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "nectar.db"
	} // sqlite file in project root
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./nectar.log"
	}
	corsOrigin := os.Getenv("CORS_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = "http://localhost:5173"
	} // the dashboard SPA dev server


	wpBase := os.Getenv("WP_BASE_URL")
	wpUser := os.Getenv("WP_USERNAME")
	wpPass := os.Getenv("WP_APP_PASSWORD")
	timeout := 30 * time.Second
	if s := os.Getenv("WP_TIMEOUT_SECONDS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			timeout = time.Duration(n) * time.Second
		}
	}

	cfg := Config{
		Port: port, DBDSN: dsn, LogFile: logFile, CORSOrigin: corsOrigin,
		WPBaseURL: wpBase, WPUsername: wpUser, WPAppPassword: wpPass, WPTimeout: timeout,
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s WP_BASE_URL=%s WP_USERNAME=%s WP_TIMEOUT=%s",
		cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.WPBaseURL, cfg.WPUsername, cfg.WPTimeout)
	return cfg
}
