package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrymomot/stuffkit/pkg/logger"
)

// Server runs an http.Handler until its context is cancelled or the process
// receives SIGINT/SIGTERM, then drains in-flight requests.
type Server struct {
	cfg     Config
	handler http.Handler
	log     *slog.Logger
	onStart []func(addr string)
	onStop  []func()

	mu      sync.Mutex
	current *serving
	addr    string
}

// serving is the state of one Run call.
type serving struct {
	srv      *http.Server
	shutdown sync.Once
}

// New returns a Server for handler. A nil handler answers 404 to everything.
func New(handler http.Handler, opts ...Option) *Server {
	if handler == nil {
		handler = http.NotFoundHandler()
	}
	s := &Server{
		cfg:     DefaultConfig(),
		handler: handler,
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("httpserver"))
	return s
}

// Addr returns the bound listen address, or "" while the server is not running.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Run opens the listener and serves until ctx is done or a termination
// signal arrives. A clean shutdown returns nil. Once Run has returned the
// server may be run again.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.mu.Lock()
	if s.current != nil {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, err)
	}
	srv := &http.Server{
		Handler:      s.limitBody(s.handler),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(s.log.Handler(), slog.LevelWarn),
	}
	cur := &serving{srv: srv}
	s.current = cur
	addr := ln.Addr().String()
	s.addr = addr
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		if s.current == cur {
			s.current = nil
			s.addr = ""
		}
		s.mu.Unlock()
	}()

	s.log.InfoContext(ctx, "http server started", slog.String("addr", addr))
	for _, h := range s.onStart {
		h(addr)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case <-ctx.Done():
		if err := s.shutdownRun(context.WithoutCancel(ctx), cur); err != nil {
			return err
		}
		err = <-errCh
	case err = <-errCh:
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrStart, err)
	}
	return nil
}

// Shutdown drains the running server within the configured shutdown timeout.
// Calling it more than once, or while the server is not running, is a no-op.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	cur := s.current
	s.mu.Unlock()
	if cur == nil {
		return nil
	}
	return s.shutdownRun(ctx, cur)
}

func (s *Server) shutdownRun(ctx context.Context, cur *serving) error {
	var err error
	cur.shutdown.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
		defer cancel()

		err = cur.srv.Shutdown(ctx)
		s.log.InfoContext(ctx, "http server stopped", logger.Error(err))
		for _, h := range s.onStop {
			h()
		}
	})
	if err != nil {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}

func (s *Server) limitBody(next http.Handler) http.Handler {
	limit := s.cfg.MaxBodyBytes
	if limit <= 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, limit)
		next.ServeHTTP(w, r)
	})
}
