package config

import (
	"os"
	"strings"
	"time"
)

// Server captures process-level configuration.
type Server struct {
	Addr            string
	PostgresDSN     string
	RedisURL        string
	KafkaBrokers    []string
	AuditTopic      string
	ShutdownTimeout time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("MIRATH_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	topic := os.Getenv("MIRATH_AUDIT_TOPIC")
	if topic == "" {
		topic = "mirath.calculations"
	}

	var brokers []string
	if raw := os.Getenv("MIRATH_KAFKA_BROKERS"); raw != "" {
		brokers = strings.Split(raw, ",")
	}

	return Server{
		Addr:            addr,
		PostgresDSN:     os.Getenv("MIRATH_POSTGRES_DSN"),
		RedisURL:        os.Getenv("MIRATH_REDIS_URL"),
		KafkaBrokers:    brokers,
		AuditTopic:      topic,
		ShutdownTimeout: 10 * time.Second,
	}
}
