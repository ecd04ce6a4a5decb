package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	AppEnv        string
	GinMode       string
	LogLevel      string
	HTTPPort      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	JWTSecret     string
	JWTIssuer     string
	JWTExpiryMins int
}

// Load reads configuration from environment variables, with an optional
// .env file as fallback. Environment variables take priority.
func Load() *Config {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // missing file is fine

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "3306")
	v.SetDefault("DB_USER", "fundraising")
	v.SetDefault("DB_PASSWORD", "fundraising")
	v.SetDefault("DB_NAME", "fundraising")
	v.SetDefault("JWT_SECRET", "default-secret-key-change-me")
	v.SetDefault("JWT_ISSUER", "fundraising-api")
	v.SetDefault("JWT_EXPIRY_MINUTES", 60*24)

	return &Config{
		AppEnv:        v.GetString("APP_ENV"),
		GinMode:       v.GetString("GIN_MODE"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		HTTPPort:      v.GetString("HTTP_PORT"),
		DBHost:        v.GetString("DB_HOST"),
		DBPort:        v.GetString("DB_PORT"),
		DBUser:        v.GetString("DB_USER"),
		DBPassword:    v.GetString("DB_PASSWORD"),
		DBName:        v.GetString("DB_NAME"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		JWTIssuer:     v.GetString("JWT_ISSUER"),
		JWTExpiryMins: v.GetInt("JWT_EXPIRY_MINUTES"),
	}
}
