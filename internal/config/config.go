package config

import "fmt"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
// The connection is described by discrete host/port/user/password/name
// fields rather than a single URL so each piece can be supplied by its
// own environment variable.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"     validate:"required"`
	Port     int    `mapstructure:"port"     validate:"required,gt=0,lt=65536"`
	User     string `mapstructure:"user"     validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
	Name     string `mapstructure:"name"     validate:"required"`
}

// URL assembles a postgres connection string from the discrete fields.
func (c DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.Name)
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// TokenAlgorithm selects the HMAC variant used to sign tokens.
	TokenAlgorithm string `mapstructure:"token_algorithm" validate:"required,oneof=HS256 HS384 HS512"`

	// TokenLifetimeMinutes is the access-token TTL handed out at login.
	// A zero value makes the token service fall back to its own shorter
	// internal default; see auth.NewJWTService.
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"gte=0,lte=10080"`

	// BcryptCost controls the work factor for password hashing.
	// Zero means bcrypt.DefaultCost.
	BcryptCost int `mapstructure:"bcrypt_cost" validate:"gte=0,lte=31"`
}

// CORSConfig lists the origins allowed to call the API cross-origin.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}
