package fakebackend

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/lightlens/internal/logging"
)

// Listen binds address (e.g. "127.0.0.1:0") and serves b on it until ctx
// is done. It returns the base URL to point a client at.
func Listen(ctx context.Context, b *Backend, address string, log logging.Logger) (string, error) {
	listen, err := net.Listen("tcp", address)
	if err != nil {
		return "", err
	}

	srv := &http.Server{Handler: b, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		log.Info(ctx, "Stopping fake backend...")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	go func() {
		if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "fake backend stopped", "error", err)
		}
	}()

	url := "http://" + listen.Addr().String()
	log.Info(ctx, "Starting fake backend", "address", url)
	return url, nil
}
