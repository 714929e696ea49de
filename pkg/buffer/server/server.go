package server

import (
	"net/http"
	"time"

	"github.com/go-logr/logr"

	"github.com/garunski/telemetry-buffer/pkg/buffer/api"
	"github.com/garunski/telemetry-buffer/pkg/buffer/connectivity"
	"github.com/garunski/telemetry-buffer/pkg/buffer/store"
)

const DefaultShutdownTimeout = 10 * time.Second

// Config holds diagnostics server configuration
type Config struct {
	AppName    string
	AppVersion string
	Port       string
}

// Server exposes the buffer's diagnostics endpoints over HTTP. It is an
// optional embedded listener for operators; the buffer itself has no process
// boundary.
type Server struct {
	config     *Config
	logger     logr.Logger
	handler    *api.Handler
	httpServer *http.Server
}

// NewServer creates a diagnostics server over the given store, engine and
// connectivity signal
func NewServer(cfg *Config, logger logr.Logger, st store.EventStore, flusher api.Flusher, signal connectivity.Signal) *Server {
	handler := api.NewHandler(logger, st, flusher, signal)

	return &Server{
		config:  cfg,
		logger:  logger,
		handler: handler,
		httpServer: &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: handler.SetupRoutes(),
		},
	}
}
