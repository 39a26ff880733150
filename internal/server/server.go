// Package server serves the component gallery: an HTML page per registry
// entry, bare fragments, a small JSON API and a websocket that tells open
// pages to reload when the registry changes.
package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/net/netutil"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/conneroisu/italia/internal/accessibility"
	"github.com/conneroisu/italia/internal/catalog"
	"github.com/conneroisu/italia/internal/config"
	"github.com/conneroisu/italia/internal/errors"
	"github.com/conneroisu/italia/internal/logging"
	"github.com/conneroisu/italia/internal/registry"
)

// Server is the gallery HTTP server.
type Server struct {
	config   config.Config
	catalog  *catalog.Catalog
	registry *registry.Registry
	auditor  *accessibility.Engine
	logger   logging.Logger
	errors   *errors.ErrorHandler
	caser    cases.Caser
	hub      *Hub
	alerts   *alertStore

	serverMutex sync.RWMutex
	httpServer  *http.Server
	listener    net.Listener
}

// New creates a gallery server for the entries of cat.
func New(cfg config.Config, cat *catalog.Catalog, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.Nop()
	}
	logger = logger.WithComponent("server")

	tag, err := language.Parse(cfg.Gallery.Lang)
	if err != nil {
		tag = language.Italian
	}

	s := &Server{
		config:   cfg,
		catalog:  cat,
		registry: cat.Registry(),
		auditor:  accessibility.NewEngine(logger),
		logger:   logger,
		errors:   errors.NewErrorHandler(logger),
		caser:    cases.Title(tag),
	}
	s.hub = newHub(logger)
	s.alerts = newAlertStore(s.registry)

	return s
}

// Handler returns the gallery routes wrapped in the server middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /components/{name}", s.handleComponent)
	mux.HandleFunc("GET /render/{name}/{example}", s.handleRender)
	mux.HandleFunc("GET /api/components", s.handleAPIComponents)
	mux.HandleFunc("GET /api/components/{name}/audit", s.handleAudit)
	mux.HandleFunc("GET /api/numeric/step", s.handleStep)
	mux.HandleFunc("POST /api/alerts/{id}/dismiss", s.handleDismissAlert)
	mux.HandleFunc("GET /ws", s.handleWebSocket)
	mux.HandleFunc("GET /health", s.handleHealth)

	return s.middleware(mux)
}

// Hub returns the websocket hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Addr returns the address the server listens on, once started.
func (s *Server) Addr() string {
	s.serverMutex.RLock()
	defer s.serverMutex.RUnlock()

	if s.listener == nil {
		return ""
	}

	return s.listener.Addr().String()
}

// Start listens on the configured address and serves until ctx is done,
// then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Server.Address())
	if err != nil {
		return errors.NewIOError(errors.ErrCodeListenFailed, "cannot listen", err).
			WithContext("address", s.config.Server.Address())
	}

	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done. At most
// server.max_connections connections are served at once.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	if limit := s.config.Server.MaxConnections; limit > 0 {
		ln = netutil.LimitListener(ln, limit)
	}

	server := &http.Server{
		Handler:           s.Handler(),
		ReadTimeout:       s.config.Server.ReadTimeout,
		ReadHeaderTimeout: s.config.Server.ReadTimeout,
		WriteTimeout:      s.config.Server.WriteTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	s.serverMutex.Lock()
	s.httpServer = server
	s.listener = ln
	s.serverMutex.Unlock()

	watchCtx, stopWatch := context.WithCancel(ctx)
	defer stopWatch()
	go s.watchRegistry(watchCtx, s.registry.Watch())

	s.logger.Info(ctx, "Gallery server listening", "address", ln.Addr().String(), "components", s.registry.Count())

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	return s.Shutdown(context.Background())
}

// Shutdown closes websocket clients and stops the HTTP server, waiting at
// most server.shutdown_timeout for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.serverMutex.RLock()
	server := s.httpServer
	s.serverMutex.RUnlock()

	s.logger.Info(ctx, "Shutting down gallery server")
	s.hub.closeAll()

	if server == nil {
		return nil
	}

	if timeout := s.config.Server.ShutdownTimeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}

// NotifyExamplesReloaded tells open pages about the result of an examples
// reload. Failed reloads show the examples error overlay.
func (s *Server) NotifyExamplesReloaded(ctx context.Context, err error) {
	msg := UpdateMessage{Type: MessageReload, Timestamp: time.Now()}
	if err != nil {
		msg.Type = MessageExamplesError
		msg.Content = err.Error()
	}

	s.logger.Debug(ctx, "Broadcasting examples reload", "type", msg.Type)
	s.hub.Broadcast(msg)
}

// watchRegistry turns registry events into reload messages.
func (s *Server) watchRegistry(ctx context.Context, events <-chan registry.Event) {
	defer s.registry.Unwatch(events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			s.alerts.forget(event.Entry.Name)
			s.hub.Broadcast(UpdateMessage{
				Type:      MessageReload,
				Target:    event.Entry.Name,
				Event:     event.Type.String(),
				Timestamp: event.Timestamp,
			})
		}
	}
}
