package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Xushengqwer/trade_site/service"
)

// FeedController 站点地图、RSS 与 robots.txt
type FeedController struct {
	feedService service.FeedService
	logger      *zap.Logger
}

func NewFeedController(feedService service.FeedService, logger *zap.Logger) *FeedController {
	return &FeedController{feedService: feedService, logger: logger}
}

// Sitemap 站点地图
// @Summary      sitemap.xml
// @Tags         feeds (订阅)
// @Produce      xml
// @Success      200 {string} string "sitemap XML"
// @Router       /sitemap.xml [get]
func (ctrl *FeedController) Sitemap(c *gin.Context) {
	body, err := ctrl.feedService.Sitemap(c.Request.Context())
	if err != nil {
		ctrl.logger.Error("生成站点地图失败", zap.Error(err))
		c.String(http.StatusInternalServerError, "sitemap unavailable")
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}

// RSS 博客 RSS
// @Summary      rss.xml
// @Tags         feeds (订阅)
// @Produce      xml
// @Success      200 {string} string "RSS 2.0 XML"
// @Router       /rss.xml [get]
func (ctrl *FeedController) RSS(c *gin.Context) {
	body, err := ctrl.feedService.RSS(c.Request.Context())
	if err != nil {
		ctrl.logger.Error("生成 RSS 失败", zap.Error(err))
		c.String(http.StatusInternalServerError, "feed unavailable")
		return
	}
	c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", body)
}

// Robots robots.txt
// @Summary      robots.txt
// @Tags         feeds (订阅)
// @Produce      plain
// @Success      200 {string} string "robots.txt"
// @Router       /robots.txt [get]
func (ctrl *FeedController) Robots(c *gin.Context) {
	c.String(http.StatusOK, ctrl.feedService.Robots())
}

// Publish 立即上传站点地图与 RSS 到对象存储
// @Summary      发布站点地图与 RSS
// @Description  未配置对象存储时不做任何事，响应不含 data。
// @Tags         admin-feeds (后台-订阅)
// @Produce      json
// @Success      200 {object} vo.FeedPublishResponseWrapper "发布成功"
// @Failure      500 {object} vo.BaseResponseWrapper "上传失败"
// @Router       /api/admin/feeds/publish [post]
func (ctrl *FeedController) Publish(c *gin.Context) {
	urls, err := ctrl.feedService.Publish(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "发布站点地图")
		return
	}
	response.RespondSuccess(c, urls, "发布成功")
}

// RegisterRoutes root 为引擎根路由，api 为 /api。
func (ctrl *FeedController) RegisterRoutes(root gin.IRoutes, api *gin.RouterGroup) {
	root.GET("/sitemap.xml", ctrl.Sitemap)
	root.GET("/rss.xml", ctrl.RSS)
	root.GET("/robots.txt", ctrl.Robots)

	api.POST("/admin/feeds/publish", ctrl.Publish)
}
