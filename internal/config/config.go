package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration, read once at startup.
type Config struct {
	AppPort     string
	AppEnv      string // "development" or "production"
	DatabaseDSN string

	AdminEmail    string
	AdminPassword string
	SessionSecret string
	SessionTTL    time.Duration

	ImageKitPublicKey   string
	ImageKitPrivateKey  string
	ImageKitURLEndpoint string

	RabbitMQURL string
}

// Load reads configuration from environment variables via Viper,
// applying defaults suitable for local development.
func Load() Config {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATABASE_DSN", "host=127.0.0.1 user=postgres password=postgres dbname=etalase port=5432 sslmode=disable")
	viper.SetDefault("SESSION_SECRET", "")
	viper.SetDefault("SESSION_TTL_HOURS", 24)
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	return Config{
		AppPort:             viper.GetString("APP_PORT"),
		AppEnv:              viper.GetString("APP_ENV"),
		DatabaseDSN:         viper.GetString("DATABASE_DSN"),
		AdminEmail:          viper.GetString("ADMIN_EMAIL"),
		AdminPassword:       viper.GetString("ADMIN_PASS"),
		SessionSecret:       viper.GetString("SESSION_SECRET"),
		SessionTTL:          time.Duration(viper.GetInt("SESSION_TTL_HOURS")) * time.Hour,
		ImageKitPublicKey:   viper.GetString("IMAGEKIT_PUBLIC_KEY"),
		ImageKitPrivateKey:  viper.GetString("IMAGEKIT_PRIVATE_KEY"),
		ImageKitURLEndpoint: viper.GetString("IMAGEKIT_URL_ENDPOINT"),
		RabbitMQURL:         viper.GetString("RABBITMQ_URL"),
	}
}

// IsProduction reports whether the app runs in a production-like deployment.
// Session cookies are only marked Secure in that case.
func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}
