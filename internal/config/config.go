package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	HTTPPort    string
	GRPCPort    string
	MySQLDSN    string
	RedisAddr   string
	EventStream string
	WorkerCount int
	QueueSize   int
}

func Load() Config {
	cfg := Config{
		HTTPPort:    getenv("PORT", "8080"),
		GRPCPort:    getenv("GRPC_PORT", "50051"),
		MySQLDSN:    getenv("MYSQL_DSN", "root:root@tcp(localhost:3306)/shopledger?parseTime=true"),
		RedisAddr:   getenv("REDIS_ADDR", "localhost:6379"),
		EventStream: getenv("EVENT_STREAM", "shop-events"),
		WorkerCount: getint("WORKER_COUNT", 10),
		QueueSize:   getint("QUEUE_SIZE", 10000),
	}
	log.Printf("[config] PORT=%s GRPC_PORT=%s REDIS_ADDR=%s EVENT_STREAM=%s WORKER_COUNT=%d QUEUE_SIZE=%d",
		cfg.HTTPPort, cfg.GRPCPort, cfg.RedisAddr, cfg.EventStream, cfg.WorkerCount, cfg.QueueSize)
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getint(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("[config] invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}
