package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Defaults DefaultsConfig
	Extract  ExtractConfig
	Blob     BlobConfig
}

type ServerConfig struct {
	Port               string
	Env                string
	JWTSecret          string `mapstructure:"jwt_secret"`
	JWTExpirationHours int    `mapstructure:"jwt_expiration_hours"`
}

type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	URL      string
}

type DefaultsConfig struct {
	AdminPassword string `mapstructure:"admin_password"`
	AdminLoginID  string `mapstructure:"admin_login_id"`
	InvoicePrefix string `mapstructure:"invoice_prefix"`
}

type ExtractConfig struct {
	Endpoint       string
	TimeoutSeconds int
}

type BlobConfig struct {
	Region string
	Bucket string
}

var AppConfig *Config

func LoadConfig() {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// Read .env file
	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, checking environment variables: %v", err)
	}

	// Enable reading from OS environment variables as fallback/override
	viper.AutomaticEnv()

	// Explicitly bind environment variables for robustness
	viper.BindEnv("SERVER_PORT", "PORT") // Fallback to PORT if SERVER_PORT is missing
	viper.BindEnv("DATABASE_URL")

	AppConfig = &Config{
		Server: ServerConfig{
			Port:               viper.GetString("SERVER_PORT"),
			Env:                viper.GetString("SERVER_ENV"),
			JWTSecret:          viper.GetString("JWT_SECRET"),
			JWTExpirationHours: viper.GetInt("JWT_EXPIRATION_HOURS"),
		},
		Database: DatabaseConfig{
			Driver:   viper.GetString("DB_DRIVER"),
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
			URL:      viper.GetString("DATABASE_URL"),
		},
		Defaults: DefaultsConfig{
			AdminPassword: viper.GetString("ADMIN_PASSWORD"),
			AdminLoginID:  viper.GetString("ADMIN_LOGIN_ID"),
			InvoicePrefix: viper.GetString("INVOICE_PREFIX"),
		},
		Extract: ExtractConfig{
			Endpoint:       viper.GetString("EXTRACT_ENDPOINT"),
			TimeoutSeconds: viper.GetInt("EXTRACT_TIMEOUT_SECONDS"),
		},
		Blob: BlobConfig{
			Region: viper.GetString("BLOB_REGION"),
			Bucket: viper.GetString("BLOB_BUCKET"),
		},
	}

	log.Printf("Configuration loaded successfully:")
	log.Printf("- Server Port: %s", AppConfig.Server.Port)
	log.Printf("- Server Env: %s", AppConfig.Server.Env)
	log.Printf("- Database Driver: %s", AppConfig.Database.Driver)
	log.Printf("- Database Host: %s", AppConfig.Database.Host)
	log.Printf("- Extract Endpoint: %s", AppConfig.Extract.Endpoint)
	log.Printf("- Blob Bucket: %s", AppConfig.Blob.Bucket)
}

// ExtractTimeout returns the configured extraction timeout as a duration.
func (c *Config) ExtractTimeout() time.Duration {
	return time.Duration(c.Extract.TimeoutSeconds) * time.Second
}
