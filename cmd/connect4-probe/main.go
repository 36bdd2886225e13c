// Package main probes a running connect4 server with a single Connect call.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/connect4.space/internal/cmd/probe"
	entrypoint "github.com/louisbranch/connect4.space/internal/platform/cmd"
)

func main() {
	cfg, err := probe.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[CONNECT4-PROBE] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceProbe, func(ctx context.Context) error {
		return probe.Run(ctx, cfg, os.Stdout)
	})
	if err != nil {
		log.Fatalf("probe failed: %v", err)
	}
}
