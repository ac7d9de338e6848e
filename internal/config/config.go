package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ProjectID        string
	Region           string
	LogLevel         string
	VertexModel      string
	KMSKeyName       string
	OracleTimeout    time.Duration
	SummaryQueueSize int
	SummaryWorkers   int
}

func New() *Config {
	return &Config{
		ProjectID:        os.Getenv("PROJECTID"),
		Region:           os.Getenv("REGION"),
		LogLevel:         os.Getenv("LOGLEVEL"),
		VertexModel:      os.Getenv("VERTEXMODEL"),
		KMSKeyName:       os.Getenv("KMSKEYNAME"),
		OracleTimeout:    getDuration("ORACLETIMEOUT", 30*time.Second),
		SummaryQueueSize: getInt("SUMMARYQUEUESIZE", 64),
		SummaryWorkers:   getInt("SUMMARYWORKERS", 2),
	}
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}

func getInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
