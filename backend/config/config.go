package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	JWTSecret  string

	// StoreBackend selects the document store: firebase, postgres or memory.
	StoreBackend string
	// AuthMode selects how session requests are verified: firebase or local.
	AuthMode string

	FirebaseCredentialsFile string
	FirebaseDatabaseURL     string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// StartDate anchors day 1 of the 730-day calendar.
	StartDate time.Time
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		ServerPort:              getEnv("SERVER_PORT", "8080"),
		JWTSecret:               getEnv("JWT_SECRET", "secret"),
		StoreBackend:            getEnv("STORE_BACKEND", "memory"),
		AuthMode:                getEnv("AUTH_MODE", "local"),
		FirebaseCredentialsFile: getEnv("FIREBASE_CREDENTIALS_FILE", ""),
		FirebaseDatabaseURL:     getEnv("FIREBASE_DATABASE_URL", ""),
		DBHost:                  getEnv("DB_HOST", "localhost"),
		DBPort:                  getEnv("DB_PORT", "5432"),
		DBUser:                  getEnv("DB_USER", "postgres"),
		DBPassword:              getEnv("DB_PASSWORD", "postgres"),
		DBName:                  getEnv("DB_NAME", "planiverse"),
		StartDate:               getEnvDate("START_DATE", "2025-07-01"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvDate(key, defaultValue string) time.Time {
	value := getEnv(key, defaultValue)
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		log.Printf("Invalid %s %q, falling back to %s", key, value, defaultValue)
		date, _ = time.Parse("2006-01-02", defaultValue)
	}
	return date.UTC()
}
