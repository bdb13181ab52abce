package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync/atomic"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// State is the lifecycle stage of a Server.
type State int32

const (
	StateNotStarted State = iota
	StateListening
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateListening:
		return "listening"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// BindError reports that the listener could not be bound.
type BindError struct {
	Addr string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("failed to bind %s: %v", e.Addr, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// Server owns the listening socket and drives a fiber app over it.
type Server struct {
	cfg    Config
	app    *fiber.App
	logger *zap.Logger
	ln     net.Listener
	state  atomic.Int32
}

// New creates a server for app. Nothing is bound until Listen.
func New(cfg Config, app *fiber.App, logger *zap.Logger) *Server {
	return &Server{
		cfg:    cfg,
		app:    app,
		logger: logger,
	}
}

// State returns the current lifecycle stage.
func (s *Server) State() State {
	return State(s.state.Load())
}

// Addr returns the bound address, or the configured one before Listen.
func (s *Server) Addr() string {
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.cfg.Addr()
}

// Listen binds the TCP listener. A failure moves the server straight to
// StateStopped and returns a *BindError.
func (s *Server) Listen() error {
	if s.State() != StateNotStarted {
		return fmt.Errorf("server already %s", s.State())
	}

	ln, err := net.Listen("tcp4", s.cfg.Addr())
	if err != nil {
		s.state.Store(int32(StateStopped))
		return &BindError{Addr: s.cfg.Addr(), Err: err}
	}

	s.ln = ln
	s.state.Store(int32(StateListening))
	s.logger.Debug("Listener bound", zap.String("addr", ln.Addr().String()))
	return nil
}

// Serve handles requests until ctx is cancelled, then shuts down within the
// configured timeout and releases the socket. Cancellation is a normal stop
// and yields a nil error.
func (s *Server) Serve(ctx context.Context) error {
	if s.State() != StateListening {
		return errors.New("server is not listening")
	}
	defer s.state.Store(int32(StateStopped))

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listener(s.ln)
	}()

	select {
	case err := <-errCh:
		_ = s.ln.Close()
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Debug("Shutting down server", zap.Duration("timeout", s.cfg.ShutdownTimeout()))
	if err := s.app.ShutdownWithTimeout(s.cfg.ShutdownTimeout()); err != nil {
		s.logger.Warn("Graceful shutdown incomplete", zap.Error(err))
	}
	// Shutdown is a no-op if the serve loop has not registered the listener yet.
	_ = s.ln.Close()
	<-errCh
	return nil
}
