package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env              string
	Port             string
	DBURL            string
	JWTSecret        string
	JWTAlgorithm     string
	AccessExpiryMin  int
	RefreshExpiryDay int
	UploadDir        string
	MaxPageSize      int
}

func Load() *Config {
	// Loads a local .env when present; real env vars win in production.
	_ = godotenv.Load()

	return &Config{
		Env:              getEnv("ENV", "development"),
		Port:             getEnv("PORT", "8080"),
		DBURL:            mustGetEnv("DB_URL"),
		JWTSecret:        mustGetEnv("JWT_SECRET"),
		JWTAlgorithm:     getEnv("JWT_ALGORITHM", "HS256"),
		AccessExpiryMin:  getEnvAsInt("ACCESS_TOKEN_EXPIRE_MINUTES", 15),
		RefreshExpiryDay: getEnvAsInt("REFRESH_TOKEN_EXPIRE_DAYS", 7),
		UploadDir:        getEnv("UPLOAD_DIR", "./static/uploads"),
		MaxPageSize:      getEnvAsInt("MAX_PAGE_SIZE", 100),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
