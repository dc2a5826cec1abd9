package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort         string // Application port
	DBUser          string // Database user
	DBPassword      string // Database password
	DBHost          string // Database host
	DBPort          string // Database port
	DBName          string // Database name
	JWTSecret       string // JWT signing secret
	RedisAddr       string // Redis server address
	RedisPass       string // Redis password
	RedisDB         int    // Redis database number
	StripeSecretKey string // Stripe API key; empty enables the local dev intent issuer
	MailgunAPIKey   string // Mailgun API key
	MailgunDomain   string // Mailgun sending domain
	MailFrom        string // Confirmation mail sender address
	IsProd          bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:         os.Getenv("APP_PORT"),            // Application port
		DBUser:          os.Getenv("DB_USER"),             // Database user
		DBPassword:      os.Getenv("DB_PASSWORD"),         // Database password
		DBHost:          os.Getenv("DB_HOST"),             // Database host
		DBPort:          os.Getenv("DB_PORT"),             // Database port
		DBName:          os.Getenv("DB_NAME"),             // Database name
		JWTSecret:       os.Getenv("ACCESS_TOKEN_SECRET"), // JWT signing secret
		RedisAddr:       os.Getenv("REDIS_ADDR"),          // Redis server address
		RedisPass:       os.Getenv("REDIS_PASS"),          // Redis password
		RedisDB:         redisDB,                          // Redis database number
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),   // Stripe API key
		MailgunAPIKey:   os.Getenv("MAIL_GUN_API_KEY"),    // Mailgun API key
		MailgunDomain:   os.Getenv("MAIL_SENDING_DOMAIN"), // Mailgun sending domain
		MailFrom:        os.Getenv("MAIL_FROM"),           // Confirmation mail sender
		IsProd:          os.Getenv("IS_PROD") == "true",   // Is production environment
	}
}
