package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	RedisAddr     string
	RedisPassword string

	PollInterval time.Duration
	StatusTTL    time.Duration

	InferenceURL string
	InferenceKey string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	ResultsBucket  string

	ServerPort   int
	JWTPublicKey string
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	if !viper.IsSet("REDIS_ADDR") {
		return nil, fmt.Errorf("REDIS_ADDR is required")
	}

	viper.SetDefault("POLL_INTERVAL", 1)
	viper.SetDefault("STATUS_TTL", 3600)
	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("RESULTS_BUCKET", "task-results")

	return &Settings{
		RedisAddr:      viper.GetString("REDIS_ADDR"),
		RedisPassword:  viper.GetString("REDIS_PASSWORD"),
		PollInterval:   time.Duration(viper.GetInt("POLL_INTERVAL")) * time.Second,
		StatusTTL:      time.Duration(viper.GetInt("STATUS_TTL")) * time.Second,
		InferenceURL:   viper.GetString("HF_API_URL"),
		InferenceKey:   viper.GetString("HF_API_KEY"),
		MinioEndpoint:  viper.GetString("MINIO_ENDPOINT"),
		MinioAccessKey: viper.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey: viper.GetString("MINIO_SECRET_KEY"),
		MinioUseSSL:    viper.GetBool("MINIO_USE_SSL"),
		ResultsBucket:  viper.GetString("RESULTS_BUCKET"),
		ServerPort:     viper.GetInt("SERVER_PORT"),
		JWTPublicKey:   viper.GetString("JWT_PUBLIC_KEY"),
	}, nil
}
