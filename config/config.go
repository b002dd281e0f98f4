package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	Env  string

	// CartStore picks the snapshot backend: redis, sqlite or memory.
	CartStore  string
	RedisURL   string
	SQLitePath string
	CartTTL    time.Duration

	// Bus picks the notification transport: local or redis.
	Bus        string
	BusChannel string

	OrderServiceURL   string
	AddressServiceURL string

	KafkaBrokers string
	KafkaTopic   string

	JWTSecret string
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port: getEnv("PORT", "8086"),
		Env:  getEnv("ENV", "development"),

		CartStore:  getEnv("CART_STORE", "redis"),
		RedisURL:   getEnv("REDIS_URL", "redis://redis:6379"),
		SQLitePath: getEnv("SQLITE_PATH", "storefront.db"),
		CartTTL:    getDurationEnv("CART_TTL", time.Hour*24*7),

		Bus:        getEnv("BUS", "local"),
		BusChannel: getEnv("BUS_CHANNEL", "cart.updated"),

		OrderServiceURL:   getEnv("ORDER_SERVICE_URL", "http://order-service:8083"),
		AddressServiceURL: getEnv("ADDRESS_SERVICE_URL", "http://auth-service:8081"),

		KafkaBrokers: getEnv("KAFKA_BROKERS", "localhost:9092"),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "checkout.completed"),

		JWTSecret: os.Getenv("JWT_SECRET"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
