package config

import (
	"os"
	"strconv"
	"strings"

	"shop-service/internal/database"

	"go.uber.org/zap"
)

type Config struct {
	Port  string
	JWT   JWT
	DB    DB
	Redis Redis

	KafkaBrokers []string
	KafkaTopic   string
}

type JWT struct {
	Secret   string
	Issuer   string
	Audience string
}

type DB struct {
	database.Config
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

func Load(log *zap.Logger) *Config {
	return &Config{
		Port: getEnv("APP_PORT", log),
		JWT: JWT{
			Secret:   getEnv("JWT_SECRET", log),
			Issuer:   getEnv("JWT_ISSUER", log),
			Audience: getEnv("JWT_AUDIENCE", log),
		},
		DB: DB{
			Config: database.Config{
				Host:     getEnv("DB_HOST", log),
				Port:     getEnv("DB_PORT", log),
				User:     getEnv("DB_USER", log),
				Password: getEnv("DB_PASSWORD", log),
				Name:     getEnv("DB_NAME", log),
				SSLMode:  getEnv("DB_SSLMODE", log),
			},
		},
		Redis: Redis{
			Addr:     getEnv("REDIS_ADDR", log),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       atoiDefault(os.Getenv("REDIS_DB"), 0),
		},
		// Kafka опционален: без брокеров события заказов не публикуются
		KafkaBrokers: splitAndTrim(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   os.Getenv("KAFKA_TOPIC_ORDERS"),
	}
}

func getEnv(key string, log *zap.Logger) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	log.Error("Обязательная переменная окружения не установлена", zap.String("key", key))
	panic("missing required environment variable: " + key)
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := []string{}
	for _, p := range strings.Split(s, ",") {
		pt := strings.TrimSpace(p)
		if pt != "" {
			parts = append(parts, pt)
		}
	}
	return parts
}
