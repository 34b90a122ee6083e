// Package httpapi wires the HTTP transport (Gin) to the action-layer
// gateways, middleware, and route handlers. It centralizes cross-cutting
// concerns: tracing, correlation IDs, logging, panic recovery, metrics,
// compression, CORS, security headers, and rate limiting.
//
// Middleware order:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured access logs
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Gzip compression
//  7. Metrics
//  8. Rate limiter (per client IP)
//  9. CORS and security headers
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/agrilink/agrifinance-backend/internal/config"
	"github.com/agrilink/agrifinance-backend/internal/http/handlers"
	"github.com/agrilink/agrifinance-backend/internal/http/middleware"
	"github.com/agrilink/agrifinance-backend/internal/ids"
	"github.com/agrilink/agrifinance-backend/internal/services"
	"github.com/agrilink/agrifinance-backend/internal/views"
)

// RegisterRoutes attaches all middleware and HTTP endpoints to the given
// Gin engine. The db handle carries the migrated reference schema; the
// action handlers do not write it, but /health pings it so operators see
// when the future persistence layer's database is unreachable.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured access logging
	r.Use(middleware.Logger())

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 6) Response compression
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 7) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 8) Token-bucket rate limiter per client IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByClientIP())
	r.Use(rl.Handler())

	// 9) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: true, // cookies carry the language preference
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health (pings the reference-schema database when present)
	r.GET("/health", func(c *gin.Context) {
		status := "ok"
		if db != nil {
			sqlDB, err := db.DB()
			if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
				status = "degraded"
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": status})
	})

	// Swagger UI (opt-in)
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: gateways ← generator + view registry
	gen := ids.NewRand()
	registry := views.NewRegistry()
	finSvc := services.NewFinancialGateway(cfg.SimulatedDelay, gen, registry)
	marketSvc := services.NewMarketplaceGateway(cfg.SimulatedDelay, gen, registry)
	transportSvc := services.NewTransportGateway(cfg.SimulatedDelay, gen, registry)
	h := handlers.New(finSvc, marketSvc, transportSvc)

	// Public API
	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		// Preferences
		api.PUT("/preferences/language", h.SetLanguage)
		api.GET("/preferences/language", h.GetLanguage)

		// Financial services
		api.POST("/financial-services/applications", h.ApplyFinancialService)
		api.POST("/financial-services/payments", h.MakePayment)

		// Marketplace
		api.POST("/products", h.CreateProductListing)
		api.POST("/products/:id/purchase", h.BuyProduct)

		// Transport
		api.POST("/transport/bookings", h.BookTransport)

		// Staleness signal for the rendering layer
		api.GET("/views/stale", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"views": registry.Stale()})
		})
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
