package config

import (
	"fmt"
	"log"
	"os"

	"backend/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config carries everything the service reads from the environment. The DB
// handle and the secrets are passed down explicitly instead of living in
// package globals.
type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	JWTSecret string
	Port      string

	AWSRegion     string
	SESEmail      string
	S3Bucket      string
	CloudFrontURL string

	HuggingFaceToken string
}

func Load() (*Config, error) {
	// .env is optional outside local dev; real deployments set the vars.
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:           os.Getenv("DB_HOST"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		DBPort:           os.Getenv("DB_PORT"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		Port:             os.Getenv("PORT"),
		AWSRegion:        os.Getenv("AWS_REGION"),
		SESEmail:         os.Getenv("SES_EMAIL"),
		S3Bucket:         os.Getenv("S3_BUCKET"),
		CloudFrontURL:    os.Getenv("CLOUDFRONT_URL"),
		HuggingFaceToken: os.Getenv("HUGGINGFACE_TOKEN"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}
	return cfg, nil
}

func OpenDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.HabitLog{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate failed: %w", err)
	}

	log.Println("database ready")
	return db, nil
}
