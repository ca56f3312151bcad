package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Environment string
	Port        string

	// Persistence. DatabaseURL empty means the JSON file backend.
	DataFile      string
	DatabaseURL   string
	PersistStrict bool

	UploadDir string

	JWTSecret   string
	TokenExpiry time.Duration

	AllowedOrigins []string

	OpenAIAPIKey  string
	OpenAIBaseURL string

	EmailProvider    string
	EmailFromAddress string
	EmailFromName    string
	AWSRegion        string
	AWSAccessKeyID   string
	AWSSecretKey     string
}

// Load loads configuration from environment variables.
// Outside production it first attempts to load a .env file; a missing .env is
// not an error because production relies on system environment variables.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:      env,
		Port:             os.Getenv("PORT"),
		DataFile:         os.Getenv("DATA_FILE"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		UploadDir:        os.Getenv("UPLOAD_DIR"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:    os.Getenv("OPENAI_BASE_URL"),
		EmailProvider:    os.Getenv("EMAIL_PROVIDER"),
		EmailFromAddress: os.Getenv("EMAIL_FROM_ADDRESS"),
		EmailFromName:    os.Getenv("EMAIL_FROM_NAME"),
		AWSRegion:        os.Getenv("AWS_REGION"),
		AWSAccessKeyID:   os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretKey:     os.Getenv("AWS_SECRET_ACCESS_KEY"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DataFile == "" {
		cfg.DataFile = "data.json"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}
	if cfg.JWTSecret == "" {
		// Development fallback only; set JWT_SECRET in production.
		cfg.JWTSecret = "dev-secret-change-me"
	}

	cfg.PersistStrict, _ = strconv.ParseBool(os.Getenv("PERSIST_STRICT"))

	expiryMinutes := 60
	if s := os.Getenv("TOKEN_EXPIRY_MINUTES"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			expiryMinutes = n
		}
	}
	cfg.TokenExpiry = time.Duration(expiryMinutes) * time.Minute

	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		origins = "*"
	}
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	return cfg, nil
}
