// Package connect4 parses connect4 service flags and launches the service.
package connect4

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/connect4.space/internal/platform/cmd"
	server "github.com/louisbranch/connect4.space/internal/services/connect4/app"
)

// Config holds connect4 command configuration.
type Config struct {
	Port int `env:"CONNECT4_PORT" envDefault:"50051"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The connect4 gRPC server port")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the connect4 gRPC API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceConnect4, func(context.Context) error {
		return server.Run(ctx, cfg.Port)
	})
}
