package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment  string             `mapstructure:"environment"`
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Logger       LoggerConfig       `mapstructure:"logger"`
	Bold         BoldConfig         `mapstructure:"bold"`
	Epayco       EpaycoConfig       `mapstructure:"epayco"`
	Notification NotificationConfig `mapstructure:"notification"`
	Checkout     CheckoutConfig     `mapstructure:"checkout"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// BoldConfig contains the Bold payment provider settings. The webhook secret
// and API key are sensitive and come from environment variables.
type BoldConfig struct {
	APIURL        string `mapstructure:"apiUrl"`
	APIKey        string `mapstructure:"apiKey"`
	WebhookSecret string `mapstructure:"webhookSecret"`
}

// EpaycoConfig contains the ePayco payment provider key material
type EpaycoConfig struct {
	CustomerID string `mapstructure:"customerId"`
	PublicKey  string `mapstructure:"publicKey"`
	PrivateKey string `mapstructure:"privateKey"`
}

// NotificationConfig contains the admin notification gateway settings
type NotificationConfig struct {
	GatewayURL string `mapstructure:"gatewayUrl"`
	AuthToken  string `mapstructure:"authToken"`
	AdminPhone string `mapstructure:"adminPhone"`
}

// CheckoutConfig contains storefront checkout settings
type CheckoutConfig struct {
	OrderPrefix     string `mapstructure:"orderPrefix"`
	RedirectURL     string `mapstructure:"redirectUrl"`
	ConfirmationURL string `mapstructure:"confirmationUrl"`
}
