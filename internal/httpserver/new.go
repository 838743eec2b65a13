package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	chatHTTP "healthsmart-chatbot/internal/chat/delivery/http"
	"healthsmart-chatbot/internal/middleware"
	predictionHTTP "healthsmart-chatbot/internal/prediction/delivery/http"
	"healthsmart-chatbot/pkg/log"
)

const DefaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	mw              middleware.Middleware

	// Chat domain
	chatHandler chatHTTP.Handler

	// Prediction domain (optional)
	predictionHandler predictionHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	Middleware      middleware.Middleware

	// Chat domain
	ChatHandler chatHTTP.Handler

	// Prediction domain (optional)
	PredictionHandler predictionHTTP.Handler
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:                 logger,
		gin:               gin.New(),
		port:              cfg.Port,
		mode:              cfg.Mode,
		environment:       cfg.Environment,
		shutdownTimeout:   cfg.ShutdownTimeout,
		mw:                cfg.Middleware,
		chatHandler:       cfg.ChatHandler,
		predictionHandler: cfg.PredictionHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatHandler == nil {
		return errors.New("chat handler is required")
	}
	return nil
}
