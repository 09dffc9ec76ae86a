// Package recommend wires configuration and the search controller for the commands.
package recommend

import (
	"log/slog"

	"github.com/gigurra/tunetexture/cmd/common/config"
	"github.com/gigurra/tunetexture/cmd/recommend/api"
	"github.com/gigurra/tunetexture/cmd/recommend/render"
	"github.com/gigurra/tunetexture/cmd/recommend/search"
)

// Overrides are command line values that take precedence over the config.
type Overrides struct {
	BaseURL        string
	TimeoutSeconds int
}

// LoadConfig loads the config and applies overrides.
func LoadConfig(o Overrides) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	o.Apply(cfg)
	return cfg, cfg.Validate()
}

// Apply copies the non-zero overrides onto cfg.
func (o Overrides) Apply(cfg *config.Config) {
	if o.BaseURL != "" {
		cfg.BaseURL = o.BaseURL
	}
	if o.TimeoutSeconds > 0 {
		cfg.TimeoutSeconds = o.TimeoutSeconds
	}
}

// NewController creates a search controller backed by the HTTP client for cfg.
func NewController(cfg *config.Config, logger *slog.Logger) *search.Controller {
	client := api.NewClient(cfg.BaseURL, cfg.Timeout())
	return search.NewController(client, logger)
}

// RenderOptions returns the projection options for cfg.
func RenderOptions(cfg *config.Config) render.Options {
	return render.Options{PlaybackTemplate: cfg.PlaybackURLTemplate}
}
