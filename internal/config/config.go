package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	GinMode          string
	MongoURI         string
	MongoDatabase    string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	RabbitMQURI      string
	RabbitMQExchange string
	JWTSecret        string
	ConsulAddress    string
	ServiceName      string
	ServiceID        string
	ServiceAddress   string
	ShareBaseURL     string
	FEAddress        string
}

var AppConfig *Config

func LoadConfig() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	redisDB, _ := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))

	AppConfig = &Config{
		Port:             getEnvOrDefault("PORT", "8080"),
		GinMode:          getEnvOrDefault("GIN_MODE", "debug"),
		MongoURI:         getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:    getEnvOrDefault("MONGO_DATABASE", "media_service"),
		RedisAddr:        getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnvOrDefault("REDIS_PWD", ""),
		RedisDB:          redisDB,
		RabbitMQURI:      getEnvOrDefault("RABBITMQ_URI", ""),
		RabbitMQExchange: getEnvOrDefault("RABBITMQ_EXCHANGE", "media.events"),
		JWTSecret:        getEnvOrDefault("JWT_SECRET", "your-jwt-secret-key"),
		ConsulAddress:    getEnvOrDefault("CONSUL_ADDR", ""),
		ServiceName:      getEnvOrDefault("SERVICE_NAME", "media-service"),
		ServiceID:        getEnvOrDefault("SERVICE_NAME", "media-service") + "-" + getEnvOrDefault("HOSTNAME", "1"),
		ServiceAddress:   getEnvOrDefault("SERVICE_ADDRESS", "media-service"),
		ShareBaseURL:     getEnvOrDefault("SHARE_BASE_URL", "https://media.university.edu"),
		FEAddress:        getEnvOrDefault("FE_ADDR", "http://localhost:3000"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
