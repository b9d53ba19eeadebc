package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/trade_site/models/dto"
	"github.com/Xushengqwer/trade_site/models/entities"
	"github.com/Xushengqwer/trade_site/service"
)

// ContentOpportunityController 内容机会（话题聚类）接口
type ContentOpportunityController struct {
	opportunityService service.ContentOpportunityService
}

func NewContentOpportunityController(opportunityService service.ContentOpportunityService) *ContentOpportunityController {
	return &ContentOpportunityController{opportunityService: opportunityService}
}

// List 内容机会列表
// @Summary      内容机会列表
// @Tags         admin-content-opportunities (后台-内容机会)
// @Produce      json
// @Param        status query string false "状态过滤" Enums(open, planned, covered)
// @Success      200 {object} vo.ContentOpportunityListResponseWrapper "查询成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的状态"
// @Router       /api/admin/content-opportunities [get]
func (ctrl *ContentOpportunityController) List(c *gin.Context) {
	var status *entities.OpportunityStatus
	if raw := c.Query("status"); raw != "" {
		s := entities.OpportunityStatus(raw)
		if !s.Valid() {
			response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的状态: "+raw)
			return
		}
		status = &s
	}
	items, err := ctrl.opportunityService.List(c.Request.Context(), status)
	if err != nil {
		respondServiceError(c, err, "查询内容机会")
		return
	}
	response.RespondSuccess(c, items, "查询成功")
}

// Regenerate 重新生成内容机会
// @Summary      重新生成内容机会
// @Description  对全部产品的相关话题重新聚类，并自动关联已覆盖这些话题的文章。
// @Tags         admin-content-opportunities (后台-内容机会)
// @Produce      json
// @Success      200 {object} vo.RegenerateResponseWrapper "生成完成"
// @Router       /api/admin/content-opportunities/regenerate [post]
func (ctrl *ContentOpportunityController) Regenerate(c *gin.Context) {
	result, err := ctrl.opportunityService.Regenerate(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "生成内容机会")
		return
	}
	response.RespondSuccess(c, result, "生成完成")
}

// UpdateStatus 修改内容机会状态
// @Summary      修改内容机会状态
// @Tags         admin-content-opportunities (后台-内容机会)
// @Accept       json
// @Produce      json
// @Param        id path int true "内容机会 ID"
// @Param        request body dto.OpportunityStatusRequest true "目标状态"
// @Success      200 {object} vo.BaseResponseWrapper "修改成功"
// @Failure      404 {object} vo.BaseResponseWrapper "内容机会不存在"
// @Router       /api/admin/content-opportunities/{id}/status [put]
func (ctrl *ContentOpportunityController) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.OpportunityStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}
	if err := ctrl.opportunityService.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		respondServiceError(c, err, "修改内容机会状态")
		return
	}
	response.RespondSuccess[any](c, nil, "修改成功")
}

// LinkPost 关联文章
// @Summary      关联文章
// @Tags         admin-content-opportunities (后台-内容机会)
// @Accept       json
// @Produce      json
// @Param        id path int true "内容机会 ID"
// @Param        request body dto.OpportunityLinkRequest true "文章 ID"
// @Success      200 {object} vo.BaseResponseWrapper "关联成功"
// @Failure      404 {object} vo.BaseResponseWrapper "内容机会或文章不存在"
// @Router       /api/admin/content-opportunities/{id}/posts [post]
func (ctrl *ContentOpportunityController) LinkPost(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.OpportunityLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}
	if err := ctrl.opportunityService.LinkPost(c.Request.Context(), id, req.BlogPostID); err != nil {
		respondServiceError(c, err, "关联文章")
		return
	}
	response.RespondSuccess[any](c, nil, "关联成功")
}

// UnlinkPost 取消关联文章
// @Summary      取消关联文章
// @Tags         admin-content-opportunities (后台-内容机会)
// @Produce      json
// @Param        id path int true "内容机会 ID"
// @Param        postId path int true "文章 ID"
// @Success      200 {object} vo.BaseResponseWrapper "已取消关联"
// @Failure      404 {object} vo.BaseResponseWrapper "内容机会不存在"
// @Router       /api/admin/content-opportunities/{id}/posts/{postId} [delete]
func (ctrl *ContentOpportunityController) UnlinkPost(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}
	if err := ctrl.opportunityService.UnlinkPost(c.Request.Context(), id, postID); err != nil {
		respondServiceError(c, err, "取消关联文章")
		return
	}
	response.RespondSuccess[any](c, nil, "已取消关联")
}

// Delete 删除内容机会
// @Summary      删除内容机会
// @Tags         admin-content-opportunities (后台-内容机会)
// @Produce      json
// @Param        id path int true "内容机会 ID"
// @Success      200 {object} vo.BaseResponseWrapper "删除成功"
// @Failure      404 {object} vo.BaseResponseWrapper "内容机会不存在"
// @Router       /api/admin/content-opportunities/{id} [delete]
func (ctrl *ContentOpportunityController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.opportunityService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "删除内容机会")
		return
	}
	response.RespondSuccess[any](c, nil, "删除成功")
}

// Prompt 博客写作提示词
// @Summary      博客写作提示词
// @Description  围绕该话题撰写博客文章的 AI 提示词，附带相关产品。
// @Tags         admin-content-opportunities (后台-内容机会)
// @Produce      json
// @Param        id path int true "内容机会 ID"
// @Success      200 {object} vo.PromptResponseWrapper "生成成功"
// @Failure      404 {object} vo.BaseResponseWrapper "内容机会不存在"
// @Router       /api/admin/content-opportunities/{id}/prompt [get]
func (ctrl *ContentOpportunityController) Prompt(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	prompt, err := ctrl.opportunityService.Prompt(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "生成提示词")
		return
	}
	if prompt == nil {
		respondNotFound(c, "内容机会")
		return
	}
	response.RespondSuccess(c, prompt, "生成成功")
}

// RegisterRoutes 注册内容机会路由，group 为 /api。
func (ctrl *ContentOpportunityController) RegisterRoutes(group *gin.RouterGroup) {
	admin := group.Group("/admin/content-opportunities")
	{
		admin.GET("", ctrl.List)
		admin.POST("/regenerate", ctrl.Regenerate)
		admin.DELETE("/:id", ctrl.Delete)
		admin.PUT("/:id/status", ctrl.UpdateStatus)
		admin.GET("/:id/prompt", ctrl.Prompt)
		admin.POST("/:id/posts", ctrl.LinkPost)
		admin.DELETE("/:id/posts/:postId", ctrl.UnlinkPost)
	}
}
