package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/comitanigiacomo/kanso-drift/docs"
	"github.com/comitanigiacomo/kanso-drift/internal/adapters/handler/http/middleware"
)

const (
	statusConnected   = "connected"
	statusUnreachable = "unreachable"
	statusDisabled    = "disabled"
)

type RouterDependencies struct {
	CheckinHandler  *CheckinHandler
	InsightsHandler *InsightsHandler
	ReviewHandler   *ReviewHandler

	DashboardPasswordHash string
	RateLimit             int

	DB        *sqlx.DB
	Redis     *redis.Client
	Logger    *zap.Logger
	StartTime time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(logger))

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	router.GET("/health", healthHandler(deps))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := router.Group("/api/v1")
	if deps.RateLimit > 0 {
		apiV1.Use(middleware.RateLimit(deps.Redis, deps.RateLimit, time.Minute, logger))
	}

	deps.CheckinHandler.RegisterFormRoute(apiV1)

	owner := apiV1.Group("")
	owner.Use(middleware.DashboardAuth(deps.DashboardPasswordHash))
	{
		deps.CheckinHandler.RegisterRoutes(owner)
		deps.InsightsHandler.RegisterRoutes(owner)
		deps.ReviewHandler.RegisterRoutes(owner)
	}

	return router
}

func healthHandler(deps RouterDependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := statusDisabled
		if deps.DB != nil {
			dbStatus = statusConnected
			if err := deps.DB.PingContext(c.Request.Context()); err != nil {
				dbStatus = statusUnreachable
			}
		}

		redisStatus := statusDisabled
		if deps.Redis != nil {
			redisStatus = statusConnected
			if err := deps.Redis.Ping(c.Request.Context()).Err(); err != nil {
				redisStatus = statusUnreachable
			}
		}

		statusCode := http.StatusOK
		if dbStatus == statusUnreachable || redisStatus == statusUnreachable {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, gin.H{
			"status":   "ok",
			"database": dbStatus,
			"redis":    redisStatus,
			"uptime":   time.Since(deps.StartTime).String(),
		})
	}
}
