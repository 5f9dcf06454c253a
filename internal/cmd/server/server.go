// Package server parses activities service flags and launches the service.
package server

import (
	"context"
	"flag"
	"fmt"
	"strings"

	entrypoint "github.com/mergington/activities/internal/platform/cmd"
	httpserver "github.com/mergington/activities/internal/server"
)

// Config holds activities command configuration.
type Config struct {
	Port int    `env:"MERGINGTON_ACTIVITIES_PORT" envDefault:"8000"`
	Addr string `env:"MERGINGTON_ACTIVITIES_ADDR"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The activities HTTP server port")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "Listen address overriding the port, e.g. 127.0.0.1:8000")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ListenAddr resolves the effective listen address. An explicit address wins
// over the port shorthand.
func (c Config) ListenAddr() string {
	if addr := strings.TrimSpace(c.Addr); addr != "" {
		return addr
	}
	return fmt.Sprintf(":%d", c.Port)
}

// Run starts the activities HTTP service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceActivities, func(runCtx context.Context) error {
		srv, err := httpserver.New(httpserver.Config{Addr: cfg.ListenAddr()})
		if err != nil {
			return err
		}
		return srv.Serve(runCtx)
	})
}
