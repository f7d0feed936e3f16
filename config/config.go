package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var (
	PORT         string
	APP_ENV      string
	APP_URL      string
	FRONTEND_URL string
	CORS_ORIGIN  string
	LOG_LEVEL    string
	DB_URL       string
	JWT_SECRET   string
	JWT_TTL      time.Duration

	GOOGLE_CLIENT_ID         string
	GOOGLE_CLIENT_SECRET     string
	GOOGLE_REDIRECT_URL      string
	GOOGLE_FRONTEND_REDIRECT string

	STRIPE_SECRET_KEY     string
	STRIPE_WEBHOOK_SECRET string
	STRIPE_PRODUCT_ID     string
	DEMO_PAYMENTS         bool
	TRIAL_DAYS            int

	SMTP_HOST     string
	SMTP_PORT     string
	SMTP_FROM     string
	SMTP_PASSWORD string
	CONTACT_TO    string

	STORAGE_DRIVER    string
	LOCAL_STORAGE_DIR string
	S3_BUCKET         string
	S3_ENDPOINT       string
	S3_REGION         string
	S3_ACCESS_KEY_ID  string
	S3_SECRET_KEY     string
	S3_PUBLIC_URL     string

	CHROME_PATH string

	MATERIALS_PRESETS_FILE string

	ADSENSE_PUBLISHER_ID string
	ADSENSE_SLOT_HEADER  string
	ADSENSE_SLOT_INLINE  string
	ADSENSE_SLOT_SIDEBAR string

	METRICS_ENABLED bool
)

func defaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_URL", "http://localhost:8080")
	v.SetDefault("FRONTEND_URL", "http://localhost:5173")
	v.SetDefault("CORS_ORIGIN", "http://localhost:5173")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_URL", "construlab.db")
	v.SetDefault("JWT_TTL", "24h")
	v.SetDefault("SMTP_PORT", "587")
	v.SetDefault("DEMO_PAYMENTS", false)
	v.SetDefault("TRIAL_DAYS", 7)
	v.SetDefault("STORAGE_DRIVER", "local")
	v.SetDefault("LOCAL_STORAGE_DIR", "uploads")
	v.SetDefault("S3_REGION", "auto")
	v.SetDefault("METRICS_ENABLED", true)
}

// LoadEnv reads .env, then the environment, then an optional CONFIG_FILE
// (YAML) for anything the environment does not set. It exits when a required
// value is missing.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found. Using system environment variables.")
	}
	if err := Load(); err != nil {
		log.Fatalf("config: %v", err)
	}
}

func Load() error {
	v := viper.New()
	defaults(v)
	v.AutomaticEnv()

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read %s: %w", file, err)
		}
	}

	PORT = v.GetString("PORT")
	APP_ENV = v.GetString("APP_ENV")
	APP_URL = strings.TrimRight(v.GetString("APP_URL"), "/")
	FRONTEND_URL = strings.TrimRight(v.GetString("FRONTEND_URL"), "/")
	CORS_ORIGIN = v.GetString("CORS_ORIGIN")
	LOG_LEVEL = v.GetString("LOG_LEVEL")
	DB_URL = v.GetString("DB_URL")

	JWT_SECRET = v.GetString("JWT_SECRET")
	if JWT_SECRET == "" {
		return fmt.Errorf("missing required environment variable: JWT_SECRET")
	}
	JWT_TTL = v.GetDuration("JWT_TTL")
	if JWT_TTL <= 0 {
		JWT_TTL = 24 * time.Hour
	}

	GOOGLE_CLIENT_ID = v.GetString("GOOGLE_CLIENT_ID")
	GOOGLE_CLIENT_SECRET = v.GetString("GOOGLE_CLIENT_SECRET")
	GOOGLE_REDIRECT_URL = v.GetString("GOOGLE_REDIRECT_URL")
	GOOGLE_FRONTEND_REDIRECT = v.GetString("GOOGLE_FRONTEND_REDIRECT")

	STRIPE_SECRET_KEY = v.GetString("STRIPE_SECRET_KEY")
	STRIPE_WEBHOOK_SECRET = v.GetString("STRIPE_WEBHOOK_SECRET")
	STRIPE_PRODUCT_ID = v.GetString("STRIPE_PRODUCT_ID")
	DEMO_PAYMENTS = v.GetBool("DEMO_PAYMENTS")
	TRIAL_DAYS = v.GetInt("TRIAL_DAYS")

	SMTP_HOST = v.GetString("SMTP_HOST")
	SMTP_PORT = v.GetString("SMTP_PORT")
	SMTP_FROM = v.GetString("SMTP_FROM")
	SMTP_PASSWORD = v.GetString("SMTP_PASSWORD")
	CONTACT_TO = v.GetString("CONTACT_TO")

	STORAGE_DRIVER = strings.ToLower(v.GetString("STORAGE_DRIVER"))
	LOCAL_STORAGE_DIR = v.GetString("LOCAL_STORAGE_DIR")
	S3_BUCKET = v.GetString("S3_BUCKET")
	S3_ENDPOINT = v.GetString("S3_ENDPOINT")
	S3_REGION = v.GetString("S3_REGION")
	S3_ACCESS_KEY_ID = v.GetString("S3_ACCESS_KEY_ID")
	S3_SECRET_KEY = v.GetString("S3_SECRET_KEY")
	S3_PUBLIC_URL = v.GetString("S3_PUBLIC_URL")

	CHROME_PATH = v.GetString("CHROME_PATH")
	MATERIALS_PRESETS_FILE = v.GetString("MATERIALS_PRESETS_FILE")

	ADSENSE_PUBLISHER_ID = v.GetString("ADSENSE_PUBLISHER_ID")
	ADSENSE_SLOT_HEADER = v.GetString("ADSENSE_SLOT_HEADER")
	ADSENSE_SLOT_INLINE = v.GetString("ADSENSE_SLOT_INLINE")
	ADSENSE_SLOT_SIDEBAR = v.GetString("ADSENSE_SLOT_SIDEBAR")

	METRICS_ENABLED = v.GetBool("METRICS_ENABLED")
	return nil
}

func IsProduction() bool {
	return APP_ENV == "production"
}

// GoogleEnabled reports whether Google sign-in is fully configured.
func GoogleEnabled() bool {
	return GOOGLE_CLIENT_ID != "" && GOOGLE_CLIENT_SECRET != "" && GOOGLE_REDIRECT_URL != ""
}
