package http

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/comitanigiacomo/consistency-tracker/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/consistency-tracker/internal/core/services"
)

// HealthCheck probes one backing service.
type HealthCheck func(ctx context.Context) error

type RouterDependencies struct {
	AuthHandler        *AuthHandler
	GoalHandler        *GoalHandler
	StatsHandler       *StatsHandler
	ProgressHandler    *ProgressHandler
	CommunityHandler   *CommunityHandler
	PreferencesHandler *PreferencesHandler
	TokenService       *services.TokenService

	// Redis enables the rate limiter when set.
	Redis      *redis.Client
	RateLimit  int
	RateWindow time.Duration

	Checks    map[string]HealthCheck
	StartTime time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, PATCH, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	if deps.Redis != nil {
		limit, window := deps.RateLimit, deps.RateWindow
		if limit <= 0 {
			limit = 100
		}
		if window <= 0 {
			window = time.Minute
		}
		router.Use(middleware.RateLimiterMiddleware(deps.Redis, limit, window))
	}

	router.GET("/health", healthHandler(deps.Checks, deps.StartTime))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := router.Group("/api/v1")

	deps.AuthHandler.RegisterRoutes(apiV1)

	protected := apiV1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.TokenService))
	{
		deps.AuthHandler.RegisterProtectedRoutes(protected)
		deps.GoalHandler.RegisterRoutes(protected)
		deps.StatsHandler.RegisterRoutes(protected)
		deps.ProgressHandler.RegisterRoutes(protected)
		deps.CommunityHandler.RegisterRoutes(protected)
		deps.PreferencesHandler.RegisterRoutes(protected)
	}

	return router
}

func healthHandler(checks map[string]HealthCheck, start time.Time) gin.HandlerFunc {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		body := gin.H{
			"status": "ok",
			"uptime": time.Since(start).String(),
		}
		statusCode := http.StatusOK
		for _, name := range names {
			state := "connected"
			if err := checks[name](ctx); err != nil {
				state = "unreachable"
				statusCode = http.StatusServiceUnavailable
				body["status"] = "degraded"
			}
			body[name] = state
		}

		c.JSON(statusCode, body)
	}
}
