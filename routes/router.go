package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/cppla/miniblog/config"
	"github.com/cppla/miniblog/controllers"
	"github.com/cppla/miniblog/metrics"
	"github.com/cppla/miniblog/middleware"
	"github.com/cppla/miniblog/storage"
	"github.com/cppla/miniblog/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(cfg config.AppConfig, store storage.PostStore, tokens utils.TokenSource) *gin.Engine {
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	// Match on the escaped path so ids containing "/" stay one segment.
	r.UseRawPath = true
	r.UnescapePathValues = true

	// Access log goes to its own rolling file when configured, else to the app logger.
	accessLog := utils.Logger
	if cfg.GinPath != "" {
		if gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress); err == nil {
			accessLog = gl
		} else {
			utils.Sugar.Warnf("gin access log %s unavailable, using app logger: %v", cfg.GinPath, err)
		}
	}
	r.Use(utils.Ginzap(accessLog, time.RFC3339, true))
	r.Use(utils.RecoveryWithZap(accessLog, true))

	if cfg.MetricsEnabled {
		r.Use(metrics.GinMiddleware())
		r.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	if len(cfg.AllowedOrigins) > 0 {
		corsCfg := cors.Config{
			AllowMethods:  []string{"GET", "POST"},
			AllowHeaders:  []string{"Content-Type"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		}
		if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
			corsCfg.AllowAllOrigins = true
		} else {
			corsCfg.AllowOrigins = cfg.AllowedOrigins
		}
		r.Use(cors.New(corsCfg))
	}

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	postController := controllers.NewPostController(store, tokens, cfg.StrictValidation)
	limit := middleware.RateLimit(cfg.RateLimitPerMinute)

	r.GET("/", postController.ListPosts)
	r.GET("/new", postController.NewPostForm)
	r.POST("/new", limit, postController.CreatePost)
	r.GET("/edit/:id", postController.EditPostForm)
	r.POST("/edit/:id", limit, postController.UpdatePost)
	r.POST("/delete/:id", limit, postController.DeletePost)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, "There is nothing at this address.")
	})
	r.NoMethod(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusMethodNotAllowed, "This page does not accept that kind of request.")
	})

	return r
}
