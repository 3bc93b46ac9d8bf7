package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string
	AppMode        string
	DBDriver       string
	DBHost         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBPort         string
	DBPath         string
	DBMaxIdleConns int
	DBMaxOpenConns int
	JWTSecret      string
	RedisHost      string
	RedisPort      string
	RedisPassword  string
	RedisDB        int
	// PersonalChannels grants user N access to the channel named "channelN".
	PersonalChannels bool
}

func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		AppPort:          getEnv("APP_PORT", "8080"),
		AppMode:          getEnv("APP_MODE", "debug"),
		DBDriver:         getEnv("DB_DRIVER", "sqlite"),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBUser:           getEnv("DB_USER", "chat"),
		DBPassword:       getEnv("DB_PASSWORD", "chat"),
		DBName:           getEnv("DB_NAME", "chat"),
		DBPort:           getEnv("DB_PORT", "3306"),
		DBPath:           getEnv("DB_PATH", "chat.sqlite"),
		DBMaxIdleConns:   getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
		DBMaxOpenConns:   getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
		JWTSecret:        getEnv("JWT_SECRET", "change-me"),
		RedisHost:        getEnv("REDIS_HOST", ""),
		RedisPort:        getEnv("REDIS_PORT", "6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RedisDB:          getEnvAsInt("REDIS_DB", 0),
		PersonalChannels: getEnvAsBool("ACCESS_PERSONAL_CHANNELS", false),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}
