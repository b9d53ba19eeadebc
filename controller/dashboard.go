package controller

import (
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/trade_site/service"
)

// DashboardController 后台首页统计
type DashboardController struct {
	dashboardService service.DashboardService
}

func NewDashboardController(dashboardService service.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// Stats 后台首页统计
// @Summary      后台统计
// @Description  产品/文章/询盘的状态分布、未读询盘、待处理内容机会与 SEO 任务、浏览量最高的产品。
// @Tags         admin-dashboard (后台-首页)
// @Produce      json
// @Success      200 {object} vo.DashboardResponseWrapper "查询成功"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/admin/dashboard [get]
func (ctrl *DashboardController) Stats(c *gin.Context) {
	stats, err := ctrl.dashboardService.Stats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "查询统计数据")
		return
	}
	response.RespondSuccess(c, stats, "查询成功")
}

// RegisterRoutes group 为 /api。
func (ctrl *DashboardController) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/admin/dashboard", ctrl.Stats)
}
