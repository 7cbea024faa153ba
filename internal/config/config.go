package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port         string
	ClientOrigin string
	LogLevel     string

	MongoURI string
	MongoDB  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTLSec   int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvi(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var n int
		_, _ = fmt.Sscanf(v, "%d", &n)
		return n
	}
	return def
}

func Load() *Config {
	return &Config{
		Port:         getenv("PORT", "8000"),
		ClientOrigin: getenv("CLIENT_ORIGIN", "http://localhost:3000"),
		LogLevel:     getenv("LOG_LEVEL", "info"),

		MongoURI: getenv("MONGO_URI", "mongodb://127.0.0.1:27017"),
		MongoDB:  getenv("MONGO_DB", "qa_board"),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getenvi("REDIS_DB", 0),
		CacheTTLSec:   getenvi("CACHE_TTL_SECONDS", 300),
	}
}
