package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr string
	// DataDir holds the file-backed theme catalog (*.json).
	DataDir string
	// SweepInterval is how often stale turn/vote deadlines are enforced.
	// Zero disables the sweeper; clients then drive expiry themselves.
	SweepInterval time.Duration
	CORSOrigins   []string
	// DragonBallAPIURL overrides the external character catalog endpoint.
	DragonBallAPIURL string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func Load() Config {
	return Config{
		HTTPAddr:         getenv("HTTP_ADDR", ":8080"),
		DataDir:          getenv("DATA_DIR", "data"),
		SweepInterval:    time.Duration(getenvInt("SWEEP_INTERVAL_SECONDS", 2)) * time.Second,
		CORSOrigins:      strings.Split(getenv("CORS_ORIGINS", "http://localhost:3000"), ","),
		DragonBallAPIURL: getenv("DRAGONBALL_API_URL", ""),
	}
}
