package config

import (
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port        string
	MapboxToken string
	JWTSecret   string
	FareAPIURL  string
}

// Load reads configuration from the environment. A missing .env file is not
// an error; production deployments configure the process directly. A missing
// Mapbox token is reported per-operation, not at startup.
func Load() *AppConfig {
	if err := godotenv.Load(); err != nil {
		// Log the error but don't fail - might be in production without .env file
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &AppConfig{
		Port:        port,
		MapboxToken: os.Getenv("MAPBOX_ACCESS_TOKEN"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		FareAPIURL:  os.Getenv("FARE_API_URL"),
	}
}
