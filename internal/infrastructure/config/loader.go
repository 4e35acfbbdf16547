package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./.env",
	"../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// Load environment variables from .env file first
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Environment variables override config file values
	v.SetEnvPrefix("EB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	// Non-critical server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	// Database defaults for non-sensitive settings
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	// Payment provider defaults (secrets have no defaults)
	v.SetDefault("bold.apiUrl", "https://api.bold.co/v2/payment-links")

	// Checkout defaults
	v.SetDefault("checkout.orderPrefix", "easybots")
}

// getEnvironment determines the environment to use based on EB_ENV
func getEnvironment() string {
	env := os.Getenv("EB_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values.
// All secret material comes exclusively from the environment.
func processEnvOverrides(v *viper.Viper) {
	// Database credentials
	if dbHost := os.Getenv("EB_DB_HOST"); dbHost != "" {
		v.Set("database.host", dbHost)
	}
	if dbPort := os.Getenv("EB_DB_PORT"); dbPort != "" {
		v.Set("database.port", dbPort)
	}
	if dbUser := os.Getenv("EB_DB_USERNAME"); dbUser != "" {
		v.Set("database.username", dbUser)
	}
	if dbPass := os.Getenv("EB_DB_PASSWORD"); dbPass != "" {
		v.Set("database.password", dbPass)
	}
	if dbName := os.Getenv("EB_DB_NAME"); dbName != "" {
		v.Set("database.database", dbName)
	}
	if sslMode := os.Getenv("EB_DB_SSL_MODE"); sslMode != "" {
		v.Set("database.sslMode", sslMode)
	}

	// Bold provider secrets
	if apiKey := os.Getenv("EB_BOLD_API_KEY"); apiKey != "" {
		v.Set("bold.apiKey", apiKey)
	}
	if secret := os.Getenv("EB_BOLD_WEBHOOK_SECRET"); secret != "" {
		v.Set("bold.webhookSecret", secret)
	}

	// ePayco provider key material
	if custID := os.Getenv("EB_EPAYCO_CUSTOMER_ID"); custID != "" {
		v.Set("epayco.customerId", custID)
	}
	if pubKey := os.Getenv("EB_EPAYCO_PUBLIC_KEY"); pubKey != "" {
		v.Set("epayco.publicKey", pubKey)
	}
	if privKey := os.Getenv("EB_EPAYCO_PRIVATE_KEY"); privKey != "" {
		v.Set("epayco.privateKey", privKey)
	}

	// Notification gateway
	if gatewayURL := os.Getenv("EB_NOTIFICATION_GATEWAY_URL"); gatewayURL != "" {
		v.Set("notification.gatewayUrl", gatewayURL)
	}
	if token := os.Getenv("EB_NOTIFICATION_AUTH_TOKEN"); token != "" {
		v.Set("notification.authToken", token)
	}
	if adminPhone := os.Getenv("EB_NOTIFICATION_ADMIN_PHONE"); adminPhone != "" {
		v.Set("notification.adminPhone", adminPhone)
	}

	// Server settings
	if serverHost := os.Getenv("EB_SERVER_HOST"); serverHost != "" {
		v.Set("server.host", serverHost)
	}
	if serverPort := os.Getenv("EB_SERVER_PORT"); serverPort != "" {
		v.Set("server.port", serverPort)
	}

	// Logger settings
	if logLevel := os.Getenv("EB_LOGGER_LEVEL"); logLevel != "" {
		v.Set("logger.level", logLevel)
	}
}

// processDurations converts duration fields from their raw values
func processDurations(config *Config) {
	// Convert seconds to time.Duration
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	// Convert minutes to time.Duration
	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute

	// Convert seconds to time.Duration
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second
}
