package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/trade_site/models/dto"
	"github.com/Xushengqwer/trade_site/service"
)

// SEOController 产品 SEO 分析与 SEO 任务
type SEOController struct {
	seoService service.SEOService
}

func NewSEOController(seoService service.SEOService) *SEOController {
	return &SEOController{seoService: seoService}
}

// Overview SEO 总览
// @Summary      SEO 总览
// @Description  全部产品按 SEO 得分升序排列，并给出平均分。
// @Tags         admin-seo (后台-SEO)
// @Produce      json
// @Success      200 {object} vo.SEOOverviewResponseWrapper "查询成功"
// @Router       /api/admin/seo/overview [get]
func (ctrl *SEOController) Overview(c *gin.Context) {
	overview, err := ctrl.seoService.Overview(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "生成 SEO 总览")
		return
	}
	response.RespondSuccess(c, overview, "查询成功")
}

// AnalyzeProduct 单个产品的 SEO 分析
// @Summary      产品 SEO 分析
// @Description  返回得分、关键词密度、反向链接数量与改进建议。
// @Tags         admin-seo (后台-SEO)
// @Produce      json
// @Param        id path int true "产品 ID"
// @Success      200 {object} vo.SEOAnalysisResponseWrapper "分析成功"
// @Failure      404 {object} vo.BaseResponseWrapper "产品不存在"
// @Router       /api/admin/seo/products/{id} [get]
func (ctrl *SEOController) AnalyzeProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	analysis, err := ctrl.seoService.AnalyzeProduct(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "分析产品 SEO")
		return
	}
	if analysis == nil {
		respondNotFound(c, "产品")
		return
	}
	response.RespondSuccess(c, analysis, "分析成功")
}

// ListTasks SEO 任务列表
// @Summary      SEO 任务列表
// @Tags         admin-seo (后台-SEO)
// @Produce      json
// @Param        product_id query int false "产品 ID"
// @Param        status query string false "任务状态" Enums(todo, in_progress, done)
// @Success      200 {object} vo.SEOTaskListResponseWrapper "查询成功"
// @Router       /api/admin/seo/tasks [get]
func (ctrl *SEOController) ListTasks(c *gin.Context) {
	var q dto.SEOTaskQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}
	tasks, err := ctrl.seoService.ListTasks(c.Request.Context(), &q)
	if err != nil {
		respondServiceError(c, err, "查询 SEO 任务")
		return
	}
	response.RespondSuccess(c, tasks, "查询成功")
}

// CreateTask 新建 SEO 任务
// @Summary      新建 SEO 任务
// @Tags         admin-seo (后台-SEO)
// @Accept       json
// @Produce      json
// @Param        request body dto.SEOTaskRequest true "任务信息"
// @Success      200 {object} vo.SEOTaskResponseWrapper "创建成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      404 {object} vo.BaseResponseWrapper "产品不存在"
// @Router       /api/admin/seo/tasks [post]
func (ctrl *SEOController) CreateTask(c *gin.Context) {
	var req dto.SEOTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}
	task, err := ctrl.seoService.CreateTask(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "创建 SEO 任务")
		return
	}
	response.RespondSuccess(c, task, "创建成功")
}

// UpdateTask 修改 SEO 任务
// @Summary      修改 SEO 任务
// @Tags         admin-seo (后台-SEO)
// @Accept       json
// @Produce      json
// @Param        id path int true "任务 ID"
// @Param        request body dto.SEOTaskRequest true "任务信息"
// @Success      200 {object} vo.SEOTaskResponseWrapper "修改成功"
// @Failure      404 {object} vo.BaseResponseWrapper "任务或产品不存在"
// @Router       /api/admin/seo/tasks/{id} [put]
func (ctrl *SEOController) UpdateTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.SEOTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}
	task, err := ctrl.seoService.UpdateTask(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, err, "修改 SEO 任务")
		return
	}
	response.RespondSuccess(c, task, "修改成功")
}

// DeleteTask 删除 SEO 任务
// @Summary      删除 SEO 任务
// @Tags         admin-seo (后台-SEO)
// @Produce      json
// @Param        id path int true "任务 ID"
// @Success      200 {object} vo.BaseResponseWrapper "删除成功"
// @Failure      404 {object} vo.BaseResponseWrapper "任务不存在"
// @Router       /api/admin/seo/tasks/{id} [delete]
func (ctrl *SEOController) DeleteTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.seoService.DeleteTask(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "删除 SEO 任务")
		return
	}
	response.RespondSuccess[any](c, nil, "删除成功")
}

// RegisterRoutes 注册 SEO 路由，group 为 /api。
func (ctrl *SEOController) RegisterRoutes(group *gin.RouterGroup) {
	seo := group.Group("/admin/seo")
	{
		seo.GET("/overview", ctrl.Overview)
		seo.GET("/products/:id", ctrl.AnalyzeProduct)
		seo.GET("/tasks", ctrl.ListTasks)
		seo.POST("/tasks", ctrl.CreateTask)
		seo.PUT("/tasks/:id", ctrl.UpdateTask)
		seo.DELETE("/tasks/:id", ctrl.DeleteTask)
	}
}
