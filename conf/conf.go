package conf

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds every knob the server reads from the environment. The
// presence of DatabaseURL decides the storage backend for the whole process
// lifetime: set means Postgres, empty means the JSON snapshot file.
type Config struct {
	Port        int    `env:"PORT" envDefault:"5000"`
	DatabaseURL string `env:"DATABASE_URL"`
	DataFile    string `env:"DATA_FILE" envDefault:"database.json"`
	JwtSecret   string `env:"JWT_SECRET" envDefault:"default_secret"`
	FrontendURL string `env:"FRONTEND_URL"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) UsePostgres() bool {
	return c.DatabaseURL != ""
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// AllowedOrigins returns the CORS origin allowlist: the comma-separated
// FRONTEND_URL entries plus the local dev origins.
func (c Config) AllowedOrigins() []string {
	origins := []string{"http://localhost:5173", "http://localhost:3000"}
	for _, o := range strings.Split(c.FrontendURL, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
