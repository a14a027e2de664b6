package http

import (
	"github.com/gin-gonic/gin"
	"github.com/tunedeck/checkout-service/internal/delivery/http/handlers"
	"github.com/tunedeck/checkout-service/internal/delivery/http/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

type RouterDeps struct {
	Checkout *handlers.CheckoutHandler
	Library  *handlers.LibraryHandler
	Catalog  *handlers.CatalogHandler
	Media    *handlers.MediaHandler

	Logger    *zap.Logger
	JWTSecret string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware("checkout-service"))
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.MetricsMiddleware())

	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", middleware.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/tracks", middleware.OptionalAuth(deps.JWTSecret), deps.Catalog.GetTracks)
		api.GET("/tracks/:id", middleware.OptionalAuth(deps.JWTSecret), deps.Catalog.GetTrack)

		api.POST("/checkout/initiate", middleware.RequireAuth(deps.JWTSecret), deps.Checkout.InitiateSession)
		// The gateway calls back unauthenticated; the reconciler
		// re-verifies everything server-to-server.
		api.POST("/checkout/callback", deps.Checkout.Callback)

		api.GET("/library/purchases", middleware.OptionalAuth(deps.JWTSecret), deps.Library.Purchases)
		api.GET("/library/download/:trackId", middleware.RequireAuth(deps.JWTSecret), deps.Library.Download)
	}

	router.GET("/media/:file", deps.Media.Serve)

	return router
}
