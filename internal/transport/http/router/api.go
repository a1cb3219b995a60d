package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-board-api/internal/service"
	"go-board-api/internal/transport/http/handler"
	mdw "go-board-api/internal/transport/http/middleware"
)

// NewAPIEngine 显式装配：依赖在 main 里构造完再传进来，路由层不做组装
func NewAPIEngine(l *zap.Logger, authSvc *service.AuthService, authH *handler.AuthHandler, boardH *handler.BoardHandler) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	// 健康检查 / 指标
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	// 公共：注册 / 登录
	authGroup := api.Group("/auth")
	authGroup.POST("/signup", authH.SignUp)
	authGroup.POST("/signin", authH.SignIn)

	// 鉴权：board 全部操作要求 Bearer token
	boards := api.Group("/boards")
	boards.Use(mdw.AuthBearer(authSvc))
	boards.POST("", boardH.Create)
	boards.GET("", boardH.ListMine)
	boards.GET("/:id", boardH.Get)
	boards.DELETE("/:id", boardH.Delete)
	boards.PATCH("/:id/status", boardH.SetStatus)

	return r
}
