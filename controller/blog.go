package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/trade_site/models/dto"
	"github.com/Xushengqwer/trade_site/models/vo"
	"github.com/Xushengqwer/trade_site/service"
)

// BlogController 博客文章接口
type BlogController struct {
	blogService service.BlogService
}

func NewBlogController(blogService service.BlogService) *BlogController {
	return &BlogController{blogService: blogService}
}

// ListPublic 前台文章列表
// @Summary      文章列表
// @Description  只返回已发布文章，按发布时间倒序。
// @Tags         blog (博客)
// @Produce      json
// @Param        page query int false "页码（从 1 开始）" minimum(1)
// @Param        page_size query int false "每页数量" minimum(1) maximum(100)
// @Param        category query string false "文章分类"
// @Param        tag query string false "标签"
// @Param        search query string false "标题关键词"
// @Success      200 {object} vo.BlogPostPageResponseWrapper "查询成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Router       /api/blog [get]
func (ctrl *BlogController) ListPublic(c *gin.Context) {
	ctrl.list(c, true)
}

// ListAdmin 后台文章列表
// @Summary      文章列表 (后台)
// @Tags         admin-blog (后台-博客)
// @Produce      json
// @Param        page query int false "页码（从 1 开始）" minimum(1)
// @Param        page_size query int false "每页数量" minimum(1) maximum(100)
// @Param        status query string false "文章状态" Enums(draft, published, archived)
// @Param        category query string false "文章分类"
// @Param        tag query string false "标签"
// @Param        search query string false "标题关键词"
// @Success      200 {object} vo.BlogPostPageResponseWrapper "查询成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Router       /api/admin/blog [get]
func (ctrl *BlogController) ListAdmin(c *gin.Context) {
	ctrl.list(c, false)
}

func (ctrl *BlogController) list(c *gin.Context, publicOnly bool) {
	var q dto.BlogListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}
	page, err := ctrl.blogService.List(c.Request.Context(), &q, publicOnly)
	if err != nil {
		respondServiceError(c, err, "查询文章列表")
		return
	}
	response.RespondSuccess(c, page, "查询成功")
}

// GetBySlug 文章详情页
// @Summary      文章详情
// @Description  返回已发布文章、相关文章与 JSON-LD，并记录一次浏览。
// @Tags         blog (博客)
// @Produce      json
// @Param        slug path string true "文章 slug"
// @Success      200 {object} vo.BlogPostDetailResponseWrapper "查询成功"
// @Failure      404 {object} vo.BaseResponseWrapper "文章不存在"
// @Router       /api/blog/slug/{slug} [get]
func (ctrl *BlogController) GetBySlug(c *gin.Context) {
	post, err := ctrl.blogService.GetBySlug(c.Request.Context(), c.Param("slug"), c.ClientIP())
	if err != nil {
		respondServiceError(c, err, "查询文章")
		return
	}
	if post == nil {
		respondNotFound(c, "文章")
		return
	}
	response.RespondSuccess(c, post, "查询成功")
}

// Like 文章点赞
// @Summary      文章点赞
// @Tags         blog (博客)
// @Produce      json
// @Param        id path int true "文章 ID"
// @Success      200 {object} vo.LikesResponseWrapper "点赞成功"
// @Failure      404 {object} vo.BaseResponseWrapper "文章不存在"
// @Router       /api/blog/{id}/like [post]
func (ctrl *BlogController) Like(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	likes, err := ctrl.blogService.Like(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "点赞")
		return
	}
	response.RespondSuccess(c, vo.LikesVO{Likes: likes}, "点赞成功")
}

// Categories 文章分类
// @Summary      文章分类
// @Description  已发布文章使用过的分类名称。
// @Tags         blog (博客)
// @Produce      json
// @Success      200 {object} vo.StringListResponseWrapper "查询成功"
// @Router       /api/blog/categories [get]
func (ctrl *BlogController) Categories(c *gin.Context) {
	cats, err := ctrl.blogService.Categories(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "查询文章分类")
		return
	}
	response.RespondSuccess(c, cats, "查询成功")
}

// Get 后台文章详情
// @Summary      文章详情 (后台)
// @Tags         admin-blog (后台-博客)
// @Produce      json
// @Param        id path int true "文章 ID"
// @Success      200 {object} vo.BlogPostResponseWrapper "查询成功"
// @Failure      404 {object} vo.BaseResponseWrapper "文章不存在"
// @Router       /api/admin/blog/{id} [get]
func (ctrl *BlogController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	post, err := ctrl.blogService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "查询文章")
		return
	}
	if post == nil {
		respondNotFound(c, "文章")
		return
	}
	response.RespondSuccess(c, post, "查询成功")
}

// Create 新建文章
// @Summary      新建文章
// @Description  提供 blocks 时由内容块生成正文 HTML，忽略 content。
// @Tags         admin-blog (后台-博客)
// @Accept       json
// @Produce      json
// @Param        request body dto.BlogPostRequest true "文章信息"
// @Success      200 {object} vo.BlogPostResponseWrapper "创建成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载或内容块"
// @Failure      409 {object} vo.BaseResponseWrapper "slug 已被占用"
// @Router       /api/admin/blog [post]
func (ctrl *BlogController) Create(c *gin.Context) {
	var req dto.BlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}
	post, err := ctrl.blogService.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "创建文章")
		return
	}
	response.RespondSuccess(c, post, "创建成功")
}

// Update 修改文章
// @Summary      修改文章
// @Tags         admin-blog (后台-博客)
// @Accept       json
// @Produce      json
// @Param        id path int true "文章 ID"
// @Param        request body dto.BlogPostRequest true "文章信息"
// @Success      200 {object} vo.BlogPostResponseWrapper "修改成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载或内容块"
// @Failure      404 {object} vo.BaseResponseWrapper "文章不存在"
// @Failure      409 {object} vo.BaseResponseWrapper "slug 已被占用"
// @Router       /api/admin/blog/{id} [put]
func (ctrl *BlogController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.BlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}
	post, err := ctrl.blogService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, err, "修改文章")
		return
	}
	response.RespondSuccess(c, post, "修改成功")
}

// Delete 删除文章
// @Summary      删除文章
// @Tags         admin-blog (后台-博客)
// @Produce      json
// @Param        id path int true "文章 ID"
// @Success      200 {object} vo.BaseResponseWrapper "删除成功"
// @Failure      404 {object} vo.BaseResponseWrapper "文章不存在"
// @Router       /api/admin/blog/{id} [delete]
func (ctrl *BlogController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.blogService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "删除文章")
		return
	}
	response.RespondSuccess[any](c, nil, "删除成功")
}

// PreviewBlocks 内容块预览
// @Summary      内容块预览
// @Description  把内容块转换为 HTML，不保存。未知类型按段落处理。
// @Tags         admin-blog (后台-博客)
// @Accept       json
// @Produce      json
// @Param        request body dto.BlocksPreviewRequest true "内容块"
// @Success      200 {object} vo.HTMLResponseWrapper "转换成功"
// @Failure      400 {object} vo.BaseResponseWrapper "内容块格式错误"
// @Router       /api/admin/blog/blocks/preview [post]
func (ctrl *BlogController) PreviewBlocks(c *gin.Context) {
	var req dto.BlocksPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}
	html, err := ctrl.blogService.PreviewBlocks(req.Blocks)
	if err != nil {
		respondServiceError(c, err, "转换内容块")
		return
	}
	response.RespondSuccess(c, html, "转换成功")
}

// RegisterRoutes 注册博客路由，group 为 /api。
func (ctrl *BlogController) RegisterRoutes(group *gin.RouterGroup) {
	public := group.Group("/blog")
	{
		public.GET("", ctrl.ListPublic)
		public.GET("/categories", ctrl.Categories)
		public.GET("/slug/:slug", ctrl.GetBySlug)
		public.POST("/:id/like", ctrl.Like)
	}

	admin := group.Group("/admin/blog")
	{
		admin.GET("", ctrl.ListAdmin)
		admin.POST("", ctrl.Create)
		admin.POST("/blocks/preview", ctrl.PreviewBlocks)
		admin.GET("/:id", ctrl.Get)
		admin.PUT("/:id", ctrl.Update)
		admin.DELETE("/:id", ctrl.Delete)
	}
}
