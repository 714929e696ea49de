package server

import (
	"context"
	"testing"

	"github.com/go-logr/logr"

	"github.com/garunski/telemetry-buffer/pkg/buffer/connectivity"
	"github.com/garunski/telemetry-buffer/pkg/buffer/database"
	"github.com/garunski/telemetry-buffer/pkg/buffer/store"
)

type noopFlusher struct{}

func (noopFlusher) SendEvents(ctx context.Context) error { return nil }
func (noopFlusher) MaxStoredEvents() int                 { return 30 }

func newTestServer(t *testing.T, port string) *Server {
	t.Helper()
	db, err := database.NewTestDB(t)
	if err != nil {
		t.Fatalf("failed to create test DB: %v", err)
	}
	st := store.NewPendingStore(db, logr.Discard())
	signal := connectivity.NewManual(connectivity.StateOffline)

	cfg := &Config{
		AppName:    "test-app",
		AppVersion: "1.0.0",
		Port:       port,
	}

	return NewServer(cfg, logr.Discard(), st, noopFlusher{}, signal)
}

func TestNewServer(t *testing.T) {
	srv := newTestServer(t, "0")

	if srv == nil {
		t.Fatal("NewServer() returned nil")
	}
	if srv.httpServer == nil {
		t.Fatal("NewServer() did not build an HTTP server")
	}
	if srv.httpServer.Addr != ":0" {
		t.Errorf("httpServer.Addr = %v, want :0", srv.httpServer.Addr)
	}
}

func TestServerStartShutdown(t *testing.T) {
	srv := newTestServer(t, "0")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := srv.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if err := srv.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

func TestServerWaitForShutdownOnCancel(t *testing.T) {
	srv := newTestServer(t, "0")

	ctx, cancel := context.WithCancel(context.Background())

	if err := srv.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	cancel()

	if err := srv.WaitForShutdown(ctx); err != nil {
		t.Errorf("WaitForShutdown() error = %v", err)
	}
}
