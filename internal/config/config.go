package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

type (
	Properties struct {
		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

		Server  HTTPProperties    `envPrefix:"HTTP_"`
		Storage StorageProperties `envPrefix:"STORAGE_"`
		Admin   AdminProperties   `envPrefix:"ADMIN_"`
		Views   ViewsProperties   `envPrefix:"VIEWS_"`
	}

	HTTPProperties struct {
		Port        string   `env:"PORT" envDefault:"8080"`
		CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	}

	StorageProperties struct {
		SQLitePath string `env:"SQLITE_PATH" envDefault:"./galleria.db"`
	}

	AdminProperties struct {
		// Secret gates the administration surface. Supplied at deployment
		// time, not rotatable at runtime.
		Secret string `env:"SECRET" envDefault:"macroz16"`
	}

	ViewsProperties struct {
		// CounterURL points at the external view-counter service. Empty
		// disables the startup ping and leaves the total unknown.
		CounterURL string `env:"COUNTER_URL"`
	}
)

func ReadProperties() (*Properties, error) {
	props := &Properties{}
	if err := env.Parse(props); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return props, nil
}
