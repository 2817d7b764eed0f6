package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	AppURL   string `yaml:"APP_URL"`
	Port     string `yaml:"PORT"`
	Timezone string `yaml:"TIMEZONE"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT key
	JWTSecret string `yaml:"JWT_SECRET"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Clarifai food recognition API
	ClarifaiAPIKey string `yaml:"CLARIFAI_API_KEY"`

	// Recipe APIs
	SpoonacularAPIKey string `yaml:"SPOONACULAR_API_KEY"`
	EdamamAppID       string `yaml:"EDAMAM_APP_ID"`
	EdamamAppKey      string `yaml:"EDAMAM_APP_KEY"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}

	// Keys that should also be reachable via os.Getenv
	os.Setenv("JWT_SECRET", config.JWTSecret)
	os.Setenv("AWS_S3_BUCKET", config.AWSS3Bucket)
	os.Setenv("AWS_S3_REGION", config.AWSS3Region)
	os.Setenv("AWS_ACCESS_KEY", config.AWSAccessKey)
	os.Setenv("AWS_SECRET_KEY", config.AWSSecretKey)
	os.Setenv("CLARIFAI_API_KEY", config.ClarifaiAPIKey)
	os.Setenv("SPOONACULAR_API_KEY", config.SpoonacularAPIKey)
}

// Timezone returns the configured IANA timezone name, defaulting to UTC.
func Timezone() string {
	if tz := GetConfig("TIMEZONE"); tz != "" {
		return tz
	}
	return "UTC"
}

func GetConfig(key string) string {
	if value := getConfigValue(key); value != "" {
		return value
	}
	return os.Getenv(key)
}

func getConfigValue(key string) string {
	switch key {
	case "APP_URL":
		return config.AppURL
	case "PORT":
		return config.Port
	case "TIMEZONE":
		return config.Timezone
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "JWT_SECRET":
		return config.JWTSecret
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "CLARIFAI_API_KEY":
		return config.ClarifaiAPIKey
	case "SPOONACULAR_API_KEY":
		return config.SpoonacularAPIKey
	case "EDAMAM_APP_ID":
		return config.EdamamAppID
	case "EDAMAM_APP_KEY":
		return config.EdamamAppKey
	default:
		return ""
	}
}
