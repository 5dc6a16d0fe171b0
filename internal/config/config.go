// Package config provides runtime configuration values for the service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds configuration knobs for the HTTP server and storage wiring.
type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration

	// StoreBackend selects the durable store: memory, mongo or mysql.
	StoreBackend string
	MongoURI     string
	MongoDB      string
	MySQLDSN     string

	// RedisAddr, when set, fronts the durable ledger with Redis.
	RedisAddr string

	TokenTTL   time.Duration
	BcryptCost int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func durenvs(key string, defSec int) time.Duration {
	sec := atoienv(key, defSec)
	return time.Duration(sec) * time.Second
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return Config{
		HTTPAddr:        getenv("HTTP_ADDR", ":8080"),
		ShutdownTimeout: durenvs("SHUTDOWN_TIMEOUT", 10),
		StoreBackend:    getenv("STORE_BACKEND", "memory"),
		MongoURI:        getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:         getenv("MONGO_DB", "fashionstore"),
		MySQLDSN:        getenv("MYSQL_DSN", "root:root@tcp(localhost:3306)/fashionstore?parseTime=true"),
		RedisAddr:       getenv("REDIS_ADDR", ""),
		TokenTTL:        durenvs("TOKEN_TTL", 24*3600),
		BcryptCost:      atoienv("BCRYPT_COST", 10),
	}
}
