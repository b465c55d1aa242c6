package config

import (
	"go.uber.org/fx"
)

type (
	customConfig struct {
		config *Config
	}

	moduleParams struct {
		fx.In
		CustomConfig *customConfig `optional:"true"`
	}
)

var Module = fx.Provide(newConfig)

// WithCustomConfig overrides the config loaded from the embedded files.
func WithCustomConfig(cfg *Config) fx.Option {
	return fx.Provide(func() *customConfig {
		return &customConfig{config: cfg}
	})
}

func newConfig(params moduleParams) (*Config, error) {
	if params.CustomConfig != nil {
		return params.CustomConfig.config, nil
	}

	return New()
}
