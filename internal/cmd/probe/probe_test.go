package probe

import (
	"context"
	"flag"
	"strings"
	"testing"
	"time"

	server "github.com/louisbranch/connect4.space/internal/services/connect4/app"
)

func startServer(t *testing.T) string {
	t.Helper()

	srv, err := server.NewWithAddr("127.0.0.1:0")
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	runCtx, runCancel := context.WithCancel(context.Background())
	serveDone := make(chan error, 1)
	go func() {
		serveDone <- srv.Serve(runCtx)
	}()
	t.Cleanup(func() {
		runCancel()
		select {
		case serveErr := <-serveDone:
			if serveErr != nil {
				t.Fatalf("serve: %v", serveErr)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("timeout waiting for server shutdown")
		}
	})
	return srv.Addr()
}

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("connect4-probe", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Addr != "localhost:50051" {
		t.Fatalf("expected default addr localhost:50051, got %q", cfg.Addr)
	}
}

func TestParseConfigFlagOverrides(t *testing.T) {
	fs := flag.NewFlagSet("connect4-probe", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-addr", "127.0.0.1:9", "-client-id", "c1", "-account-id", "a1"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9" || cfg.ClientID != "c1" || cfg.AccountID != "a1" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestRunConnectsSuccessfully(t *testing.T) {
	addr := startServer(t)

	var out strings.Builder
	err := Run(context.Background(), Config{Addr: addr, ClientID: "c1", AccountID: "a1"}, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "connected to") {
		t.Fatalf("expected success output, got %q", out.String())
	}
}

func TestRunReportsRejection(t *testing.T) {
	addr := startServer(t)

	var out strings.Builder
	err := Run(context.Background(), Config{Addr: addr}, &out)
	if err == nil {
		t.Fatal("expected rejection error")
	}
	if !strings.Contains(out.String(), "InvalidArgument") {
		t.Fatalf("expected InvalidArgument in output, got %q", out.String())
	}
	if !strings.Contains(out.String(), "CONNECT_CLIENT_ID_MISSING") {
		t.Fatalf("expected rejection reason in output, got %q", out.String())
	}
}

func TestRunFailsWhenServerUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var out strings.Builder
	err := Run(ctx, Config{Addr: "127.0.0.1:1"}, &out)
	if err == nil {
		t.Fatal("expected dial error")
	}
}
