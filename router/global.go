package router

import (
	"net/http"
	"time"

	"github.com/Xushengqwer/go-common/core"
	commonMiddleware "github.com/Xushengqwer/go-common/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	appConfig "github.com/Xushengqwer/trade_site/config"
	"github.com/Xushengqwer/trade_site/constant"
	"github.com/Xushengqwer/trade_site/controller"
)

// Controllers 需要注册到路由的全部控制器
type Controllers struct {
	Product            *controller.ProductController
	Category           *controller.CategoryController
	Blog               *controller.BlogController
	Message            *controller.MessageController
	SEO                *controller.SEOController
	ContentOpportunity *controller.ContentOpportunityController
	Dashboard          *controller.DashboardController
	Feed               *controller.FeedController
}

// SetupRouter 配置 Gin 引擎、全局中间件和路由。
func SetupRouter(logger *core.ZapLogger, cfg *appConfig.SiteConfig, ctrls Controllers) *gin.Engine {
	logger.Info("开始设置 Gin 路由...")

	router := gin.New()

	// 中间件顺序：追踪 → panic 恢复 → 访问日志 → 超时 → 用户上下文
	router.Use(otelgin.Middleware(constant.ServiceName))
	router.Use(commonMiddleware.ErrorHandlingMiddleware(logger))
	if baseLogger := logger.Logger(); baseLogger != nil {
		router.Use(commonMiddleware.RequestLoggerMiddleware(baseLogger))
	}
	requestTimeout := time.Duration(cfg.ServerConfig.RequestTimeout) * time.Second
	router.Use(commonMiddleware.RequestTimeoutMiddleware(logger, requestTimeout))
	router.Use(commonMiddleware.UserContextMiddleware())

	api := router.Group("/api")
	ctrls.Product.RegisterRoutes(api)
	ctrls.Category.RegisterRoutes(api)
	ctrls.Blog.RegisterRoutes(api)
	ctrls.Message.RegisterRoutes(api)
	ctrls.SEO.RegisterRoutes(api)
	ctrls.ContentOpportunity.RegisterRoutes(api)
	ctrls.Dashboard.RegisterRoutes(api)
	ctrls.Feed.RegisterRoutes(router, api)
	logger.Info("所有控制器路由已注册到 /api 分组")

	swaggerURL := ginSwagger.URL("/swagger/doc.json")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, swaggerURL))

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	logger.Info("Gin 路由器设置完成")
	return router
}
