package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/abhisek/edostudy/internal/platform/logger"
)

// Options tunes the HTTP server.
type Options struct {
	Addr            string
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Serve runs handler on opts.Addr until ctx is cancelled, then drains
// in-flight requests for at most opts.ShutdownTimeout.
func Serve(ctx context.Context, handler http.Handler, opts Options, log *logger.Logger) error {
	ln, err := net.Listen("tcp", opts.Addr)
	if err != nil {
		return err
	}
	return serveListener(ctx, ln, handler, opts, log)
}

func serveListener(ctx context.Context, ln net.Listener, handler http.Handler, opts Options, log *logger.Logger) error {
	srv := &http.Server{
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "address", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), opts.ShutdownTimeout)
	defer cancel()

	log.Info("shutting down server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
