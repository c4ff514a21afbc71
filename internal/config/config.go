package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ServerAddr     string        `envconfig:"SERVER_ADDR" default:":8080"`
	DatabaseURL    string        `envconfig:"DATABASE_URL" required:"true"`
	JWTSecret      string        `envconfig:"JWT_SECRET" required:"true"`
	JWTTTL         time.Duration `envconfig:"JWT_TTL" default:"24h"`
	AuditRetention time.Duration `envconfig:"AUDIT_RETENTION" default:"2160h"`
	GinMode        string        `envconfig:"GIN_MODE" default:"debug"`
}

// MustLoad reads .env if present, then the environment. Panics on missing
// required values so the process fails before serving traffic.
func MustLoad() *Config {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
