package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "healthsmart-chatbot/internal/chat/delivery/http"
	"healthsmart-chatbot/internal/model"
	predictionHTTP "healthsmart-chatbot/internal/prediction/delivery/http"
)

// Handler exposes the routed engine, mainly for tests.
func (srv HTTPServer) Handler() http.Handler {
	return srv.gin
}

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())
	srv.gin.Use(srv.mw.CORS())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s (all origins allowed)", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.rootCheck)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes behind the rate limiter.
// POST /chat keeps its flat {"error"} body when limited; /api/v1 uses the envelope.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	chatHTTP.RegisterChatRoute(srv.gin.Group("", srv.mw.FlatRateLimit()), srv.chatHandler)
	api := srv.gin.Group("/api/v1", srv.mw.RateLimit())
	chatHTTP.RegisterSessionRoutes(api, srv.chatHandler)
	srv.l.Infof(ctx, "Chat routes registered at POST /chat and /api/v1/sessions")

	if srv.predictionHandler != nil {
		predictionHTTP.RegisterRoutes(api, srv.predictionHandler)
		srv.l.Infof(ctx, "Prediction routes registered at POST /api/v1/predict")
	} else {
		srv.l.Infof(ctx, "Prediction handler not configured, skipping prediction routes")
	}

	return nil
}
