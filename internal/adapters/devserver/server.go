// Package devserver serves built output over HTTP and pushes live-reload
// events to connected browsers via server-sent events.
package devserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DefaultAddr is used when the configuration declares no dev address.
	DefaultAddr = "127.0.0.1:8787"

	clientBuffer    = 16
	shutdownTimeout = 3 * time.Second
)

var _ ports.ReloadChannel = (*Server)(nil)

// reloadMessage is the SSE payload sent for each transformed asset.
type reloadMessage struct {
	Asset string `json:"asset"`
	Kind  string `json:"kind"`
}

// Server implements ports.ReloadChannel over HTTP. The output directory of
// the first configured target is served statically; /events is the SSE
// stream.
type Server struct {
	logger ports.Logger

	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
	clients  map[chan reloadMessage]struct{}
	started  bool
}

// NewServer creates a dev server.
func NewServer(logger ports.Logger) *Server {
	return &Server{
		logger:  logger,
		clients: make(map[chan reloadMessage]struct{}),
	}
}

// Start binds the listener and begins serving. Binding happens here rather
// than in the serve goroutine so a taken port fails the build setup instead
// of surfacing later.
func (s *Server) Start(_ context.Context, cfg *domain.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	addr := cfg.DevServerAddr
	if addr == "" {
		addr = DefaultAddr
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDevServerStartFailed.Error()), "addr", addr)
	}

	staticDir := filepath.Join(cfg.Root, firstOutputDir(cfg))

	mux := http.NewServeMux()
	mux.HandleFunc("/events", s.handleEvents)
	mux.Handle("/", http.FileServer(http.Dir(staticDir)))

	s.listener = listener
	s.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.started = true

	go func() {
		if serveErr := s.server.Serve(listener); serveErr != nil && serveErr != http.ErrServerClosed {
			s.logger.Error(zerr.Wrap(serveErr, "dev server stopped"))
		}
	}()

	s.logger.Info("dev server listening on http://" + listener.Addr().String())
	return nil
}

// Notify pushes one transformed asset to every connected client. Slow
// clients lose events instead of stalling the build.
func (s *Server) Notify(asset *domain.Asset) {
	if asset == nil {
		return
	}
	msg := reloadMessage{Asset: asset.ID.String(), Kind: string(asset.Kind)}

	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.clients {
		select {
		case ch <- msg:
		default:
		}
	}
}

// Stop shuts the server down and disconnects all clients.
func (s *Server) Stop() error {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return nil
	}
	s.started = false
	server := s.server
	s.server = nil
	s.listener = nil
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(ctx)
}

// Addr returns the bound address, or empty when not started.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// handleEvents streams reload messages to one client until it disconnects.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	flusher.Flush()

	ch := make(chan reloadMessage, clientBuffer)
	s.mu.Lock()
	s.clients[ch] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.clients, ch)
		s.mu.Unlock()
	}()

	for {
		select {
		case <-r.Context().Done():
			return
		case msg := <-ch:
			data, err := json.Marshal(msg)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: reload\ndata: %s\n\n", data)
			flusher.Flush()
		}
	}
}

// firstOutputDir picks the directory to serve. With several targets the
// first one wins; the dev loop is about feedback, not target fan-out.
func firstOutputDir(cfg *domain.Config) string {
	if len(cfg.Targets) == 0 {
		return domain.DefaultTarget().OutputDir
	}
	return cfg.Targets[0].OutputDir
}
