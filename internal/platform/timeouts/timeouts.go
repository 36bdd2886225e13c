// Package timeouts defines shared timeout constants used across commands.
// Centralizing these values prevents drift between service boundaries and
// makes the durations discoverable.
package timeouts

import "time"

// GRPCDial caps the wait time when dialing a gRPC peer.
const GRPCDial = 2 * time.Second

// GRPCRequest caps the time allowed for a single gRPC request issued by
// operator tooling.
const GRPCRequest = 2 * time.Second

// Shutdown limits how long telemetry providers get to flush during
// graceful shutdown.
const Shutdown = 5 * time.Second
