// internal/debugserver/server.go
package debugserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/pprof"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// Server exposes the latest published run snapshot and pprof over HTTP.
// Publish is called from the game loop; handlers only read the last
// encoded document.
type Server struct {
	router  *mux.Router
	http    *http.Server
	latest  atomic.Pointer[[]byte]
	session string
	logger  zerolog.Logger
}

func New(session string, logger zerolog.Logger) *Server {
	s := &Server{session: session, logger: logger}
	r := mux.NewRouter()
	r.HandleFunc("/debug/state", s.handleState).Methods(http.MethodGet)
	r.HandleFunc("/debug/session", s.handleSession).Methods(http.MethodGet)

	r.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	r.HandleFunc("/debug/pprof/profile", pprof.Profile)
	r.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	r.HandleFunc("/debug/pprof/trace", pprof.Trace)
	r.PathPrefix("/debug/pprof/").HandlerFunc(pprof.Index)

	s.router = r
	return s
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Publish encodes v and makes it the document served at /debug/state.
func (s *Server) Publish(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	s.latest.Store(&data)
	return nil
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	data := s.latest.Load()
	if data == nil {
		http.Error(w, "no snapshot yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(*data); err != nil {
		s.logger.Debug().Err(err).Msg("state write failed")
	}
}

func (s *Server) handleSession(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"session": s.session}); err != nil {
		s.logger.Debug().Err(err).Msg("session write failed")
	}
}

// Start listens on addr and serves in the background. The bound address is
// returned so ":0" can be used.
func (s *Server) Start(addr string) (string, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return "", fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.http = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error().Err(err).Msg("debug server stopped")
		}
	}()
	s.logger.Info().Str("addr", ln.Addr().String()).Msg("debug server listening")
	return ln.Addr().String(), nil
}

// Shutdown stops a started server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
