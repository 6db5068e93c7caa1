package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	FIREBASE_PROJECT_ID  string
	FIREBASE_WEB_API_KEY string
	FIREBASE_CREDENTIALS string
	IDENTITY_TOOLKIT_URL string
	USERS_COLLECTION     string
	PRODUCTS_COLLECTION  string
	CART_COLLECTION      string
	LOG_LEVEL            string
}

// LoadConfig reads .env when present and falls back to the process
// environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		FIREBASE_PROJECT_ID:  os.Getenv("FIREBASE_PROJECT_ID"),
		FIREBASE_WEB_API_KEY: os.Getenv("FIREBASE_WEB_API_KEY"),
		FIREBASE_CREDENTIALS: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		IDENTITY_TOOLKIT_URL: EnvDefault("IDENTITY_TOOLKIT_URL", "https://identitytoolkit.googleapis.com/v1"),
		USERS_COLLECTION:     EnvDefault("USERS_COLLECTION", "users"),
		PRODUCTS_COLLECTION:  EnvDefault("PRODUCTS_COLLECTION", "products"),
		CART_COLLECTION:      EnvDefault("CART_COLLECTION", "cart"),
		LOG_LEVEL:            EnvDefault("LOG_LEVEL", "info"),
	}

	if config.FIREBASE_PROJECT_ID == "" {
		return nil, fmt.Errorf("missing required env FIREBASE_PROJECT_ID")
	}
	if config.FIREBASE_WEB_API_KEY == "" {
		return nil, fmt.Errorf("missing required env FIREBASE_WEB_API_KEY")
	}

	return config, nil
}

func EnvDefault(key, def string) string {
	if os.Getenv(key) != "" {
		return os.Getenv(key)
	}
	return def
}
