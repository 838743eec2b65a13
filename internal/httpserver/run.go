package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"
)

// Run serves until ctx is cancelled, then shuts down gracefully.
func (srv HTTPServer) Run(ctx context.Context) error {
	httpSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", srv.port),
		Handler: srv.gin,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		srv.l.Infof(ctx, "HTTP server listening on %s", httpSrv.Addr)
		err := httpSrv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	group.Go(func() error {
		<-groupCtx.Done()
		srv.l.Infof(ctx, "Shutting down HTTP server (timeout %s)", srv.shutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), srv.shutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	return group.Wait()
}
