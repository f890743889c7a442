package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"   validate:"required"`
	Logger   LoggerConfig   `yaml:"logger"   validate:"required"`
	Gin      GinConfig      `yaml:"gin"      validate:"required"`
	Backend  BackendConfig  `yaml:"backend"  validate:"required"`
	Identity IdentityConfig `yaml:"identity" validate:"required"`
	Booking  BookingConfig  `yaml:"booking"`
	Session  SessionConfig  `yaml:"session"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog" validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info" validate:"required,oneof=debug info warn error"`
}

func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

// BackendConfig points at the ceremony booking API.
type BackendConfig struct {
	BaseURL       string        `yaml:"base_url"       env:"BACKEND_BASE_URL"       env-default:"http://localhost:5000" validate:"required,url"`
	Timeout       time.Duration `yaml:"timeout"        env:"BACKEND_TIMEOUT"        env-default:"15s"                   validate:"gt=0"`
	RetryAttempts int           `yaml:"retry_attempts" env:"BACKEND_RETRY_ATTEMPTS" env-default:"3"                     validate:"min=1"`
	RetryDelay    time.Duration `yaml:"retry_delay"    env:"BACKEND_RETRY_DELAY"    env-default:"300ms"                 validate:"gt=0"`
}

// IdentityConfig points at the hosted identity provider's REST surface.
type IdentityConfig struct {
	BaseURL      string        `yaml:"base_url"       env:"IDENTITY_BASE_URL"      env-default:"https://identitytoolkit.googleapis.com" validate:"required,url"`
	TokenBaseURL string        `yaml:"token_base_url" env:"IDENTITY_TOKEN_BASE_URL" env-default:"https://securetoken.googleapis.com"    validate:"required,url"`
	APIKey       string        `yaml:"api_key"        env:"IDENTITY_API_KEY"        validate:"required"`
	Timeout      time.Duration `yaml:"timeout"        env:"IDENTITY_TIMEOUT"        env-default:"15s" validate:"gt=0"`
}

type BookingConfig struct {
	CancelRequiresPaid bool `yaml:"cancel_requires_paid" env:"BOOKING_CANCEL_REQUIRES_PAID" env-default:"false"`
}

// SessionConfig carries the refresh token restored at startup, if any.
type SessionConfig struct {
	RefreshToken string `yaml:"refresh_token" env:"SESSION_REFRESH_TOKEN" env-default:""`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
