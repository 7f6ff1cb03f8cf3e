package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL       string
	DBName            string
	Port              string
	Env               string
	TesseractLanguage string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		DBName:            os.Getenv("DB_NAME"),
		Port:              os.Getenv("PORT"),
		Env:               os.Getenv("ENV"),
		TesseractLanguage: os.Getenv("TESSERACT_LANGUAGE"),
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.TesseractLanguage == "" {
		cfg.TesseractLanguage = "eng"
	}

	return cfg
}
