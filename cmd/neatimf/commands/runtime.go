// Package commands implements the neatimf CLI subcommands.
package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/cognitedata/neat-imf-importer/pkg/config"
	"github.com/cognitedata/neat-imf-importer/pkg/observability"
	"github.com/cognitedata/neat-imf-importer/pkg/version"
)

// shutdownGrace bounds telemetry flush on command exit.
const shutdownGrace = 5 * time.Second

// runtime bundles the loaded configuration with initialized observability.
type runtime struct {
	cfg       *config.Config
	providers observability.Providers
}

// setupRuntime loads configuration and initializes observability for a
// command invocation. The returned cleanup flushes telemetry and must be
// deferred by the caller.
func setupRuntime(configPath string, mode observability.AppMode) (*runtime, func(), error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}

	obsCfg := observability.DefaultConfig()
	obsCfg.ServiceVersion = version.Version
	obsCfg.Mode = mode
	obsCfg.OTLPEndpoint = cfg.Observability.OTLPEndpoint
	obsCfg.OTLPInsecure = cfg.Observability.OTLPInsecure
	obsCfg.PrometheusPort = cfg.Observability.PrometheusPort
	obsCfg.LogLevel = cfg.Logging.SlogLevel()
	obsCfg.LogJSON = cfg.Logging.JSON

	providers, err := observability.Init(obsCfg)
	if err != nil {
		return nil, nil, err
	}

	slog.SetDefault(providers.Logger)

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()

		shutdownErr := providers.Shutdown(ctx)
		if shutdownErr != nil {
			providers.Logger.Warn("telemetry shutdown incomplete", slog.String("error", shutdownErr.Error()))
		}
	}

	return &runtime{cfg: cfg, providers: providers}, cleanup, nil
}
