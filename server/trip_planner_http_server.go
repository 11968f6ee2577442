package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

type TripPlannerHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	addr      string
	logger    *zap.Logger
}

// NewTripPlannerHttpServer registers the middleware and routes on muxRouter.
func NewTripPlannerHttpServer(router *Router, muxRouter *mux.Router, addr string, logger *zap.Logger) *TripPlannerHttpServer {
	muxRouter.Use(recoverer(logger), requestLogger(logger))
	router.RegisterRoutes()

	return &TripPlannerHttpServer{
		router:    router,
		muxRouter: muxRouter,
		addr:      addr,
		logger:    logger,
	}
}

// Handler returns the root handler.
func (s *TripPlannerHttpServer) Handler() http.Handler {
	return s.muxRouter
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *TripPlannerHttpServer) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", zap.String("addr", s.addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down the server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("server exiting")
	return nil
}
