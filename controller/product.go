package controller

import (
	"io"
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/trade_site/constant"
	"github.com/Xushengqwer/trade_site/models/dto"
	"github.com/Xushengqwer/trade_site/models/vo"
	"github.com/Xushengqwer/trade_site/service"
)

// maxImportBody JSON 导入请求体上限
const maxImportBody = 8 << 20

// ProductController 产品的前台查询与后台管理接口
type ProductController struct {
	productService service.ProductService
	blogService    service.BlogService
}

func NewProductController(productService service.ProductService, blogService service.BlogService) *ProductController {
	return &ProductController{productService: productService, blogService: blogService}
}

// ListPublic 前台产品列表
// @Summary      产品列表
// @Description  只返回已上架产品，支持按分类、关键词过滤和排序。
// @Tags         products (产品)
// @Produce      json
// @Param        page query int false "页码（从 1 开始）" minimum(1)
// @Param        page_size query int false "每页数量" minimum(1) maximum(100)
// @Param        category query string false "分类 slug"
// @Param        category_id query int false "分类 ID"
// @Param        featured query bool false "只看精选"
// @Param        search query string false "名称/制造商关键词"
// @Param        sort query string false "排序方式" Enums(newest, views, name)
// @Success      200 {object} vo.ProductPageResponseWrapper "查询成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/products [get]
func (ctrl *ProductController) ListPublic(c *gin.Context) {
	ctrl.list(c, true)
}

// ListAdmin 后台产品列表
// @Summary      产品列表 (后台)
// @Description  返回全部状态的产品，可按状态过滤。
// @Tags         admin-products (后台-产品)
// @Produce      json
// @Param        page query int false "页码（从 1 开始）" minimum(1)
// @Param        page_size query int false "每页数量" minimum(1) maximum(100)
// @Param        status query string false "产品状态" Enums(draft, active, archived)
// @Param        category_id query int false "分类 ID"
// @Param        search query string false "名称/制造商关键词"
// @Param        sort query string false "排序方式" Enums(newest, views, name)
// @Success      200 {object} vo.ProductPageResponseWrapper "查询成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/admin/products [get]
func (ctrl *ProductController) ListAdmin(c *gin.Context) {
	ctrl.list(c, false)
}

func (ctrl *ProductController) list(c *gin.Context, publicOnly bool) {
	var q dto.ProductListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}
	page, err := ctrl.productService.List(c.Request.Context(), &q, publicOnly)
	if err != nil {
		respondServiceError(c, err, "查询产品列表")
		return
	}
	response.RespondSuccess(c, page, "查询成功")
}

// Featured 精选产品
// @Summary      精选产品
// @Tags         products (产品)
// @Produce      json
// @Param        limit query int false "返回条数" minimum(1) maximum(50)
// @Success      200 {object} vo.ProductListResponseWrapper "查询成功"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/products/featured [get]
func (ctrl *ProductController) Featured(c *gin.Context) {
	var q dto.LimitQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}
	items, err := ctrl.productService.Featured(c.Request.Context(), q.LimitOr(constant.DefaultPageSize))
	if err != nil {
		respondServiceError(c, err, "查询精选产品")
		return
	}
	response.RespondSuccess(c, items, "查询成功")
}

// Popular 热门产品
// @Summary      热门产品
// @Description  按浏览量排行，数据来自定时刷新的热门快照。
// @Tags         products (产品)
// @Produce      json
// @Param        limit query int false "返回条数" minimum(1) maximum(50)
// @Success      200 {object} vo.ProductListResponseWrapper "查询成功"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/products/popular [get]
func (ctrl *ProductController) Popular(c *gin.Context) {
	var q dto.LimitQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}
	items, err := ctrl.productService.Popular(c.Request.Context(), q.LimitOr(constant.DefaultPageSize))
	if err != nil {
		respondServiceError(c, err, "查询热门产品")
		return
	}
	response.RespondSuccess(c, items, "查询成功")
}

// GetBySlug 产品详情页
// @Summary      产品详情
// @Description  按 slug 获取已上架产品，并记录一次浏览。
// @Tags         products (产品)
// @Produce      json
// @Param        slug path string true "产品 slug"
// @Success      200 {object} vo.ProductResponseWrapper "查询成功"
// @Failure      404 {object} vo.BaseResponseWrapper "产品不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/products/slug/{slug} [get]
func (ctrl *ProductController) GetBySlug(c *gin.Context) {
	product, err := ctrl.productService.GetBySlug(c.Request.Context(), c.Param("slug"), c.ClientIP())
	if err != nil {
		respondServiceError(c, err, "查询产品")
		return
	}
	if product == nil {
		respondNotFound(c, "产品")
		return
	}
	response.RespondSuccess(c, product, "查询成功")
}

// Related 相关产品
// @Summary      相关产品
// @Description  同分类下的其他已上架产品。
// @Tags         products (产品)
// @Produce      json
// @Param        id path int true "产品 ID"
// @Param        limit query int false "返回条数" minimum(1) maximum(50)
// @Success      200 {object} vo.ProductListResponseWrapper "查询成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的 ID"
// @Failure      404 {object} vo.BaseResponseWrapper "产品不存在"
// @Router       /api/products/{id}/related [get]
func (ctrl *ProductController) Related(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var q dto.LimitQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}
	items, err := ctrl.productService.Related(c.Request.Context(), id, q.LimitOr(constant.RelatedProductsSize))
	if err != nil {
		respondServiceError(c, err, "查询相关产品")
		return
	}
	if items == nil {
		respondNotFound(c, "产品")
		return
	}
	response.RespondSuccess(c, items, "查询成功")
}

// Get 后台产品详情
// @Summary      产品详情 (后台)
// @Tags         admin-products (后台-产品)
// @Produce      json
// @Param        id path int true "产品 ID"
// @Success      200 {object} vo.ProductResponseWrapper "查询成功"
// @Failure      404 {object} vo.BaseResponseWrapper "产品不存在"
// @Router       /api/admin/products/{id} [get]
func (ctrl *ProductController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	product, err := ctrl.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "查询产品")
		return
	}
	if product == nil {
		respondNotFound(c, "产品")
		return
	}
	response.RespondSuccess(c, product, "查询成功")
}

// Create 新建产品
// @Summary      新建产品
// @Description  未指定 slug 时由名称生成，重复时自动追加序号；未提供结构化数据时自动生成 JSON-LD。
// @Tags         admin-products (后台-产品)
// @Accept       json
// @Produce      json
// @Param        request body dto.ProductRequest true "产品信息"
// @Success      200 {object} vo.ProductResponseWrapper "创建成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      404 {object} vo.BaseResponseWrapper "分类不存在"
// @Failure      409 {object} vo.BaseResponseWrapper "slug 已被占用"
// @Router       /api/admin/products [post]
func (ctrl *ProductController) Create(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}
	product, err := ctrl.productService.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "创建产品")
		return
	}
	response.RespondSuccess(c, product, "创建成功")
}

// Update 修改产品
// @Summary      修改产品
// @Description  只更新请求中出现的字段；category_id 传 0 表示移出分类。
// @Tags         admin-products (后台-产品)
// @Accept       json
// @Produce      json
// @Param        id path int true "产品 ID"
// @Param        request body dto.ProductUpdateRequest true "需要修改的字段"
// @Success      200 {object} vo.ProductResponseWrapper "修改成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      404 {object} vo.BaseResponseWrapper "产品不存在"
// @Failure      409 {object} vo.BaseResponseWrapper "slug 已被占用"
// @Router       /api/admin/products/{id} [put]
func (ctrl *ProductController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.ProductUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}
	product, err := ctrl.productService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, err, "修改产品")
		return
	}
	response.RespondSuccess(c, product, "修改成功")
}

// Delete 删除产品
// @Summary      删除产品
// @Tags         admin-products (后台-产品)
// @Produce      json
// @Param        id path int true "产品 ID"
// @Success      200 {object} vo.BaseResponseWrapper "删除成功"
// @Failure      404 {object} vo.BaseResponseWrapper "产品不存在"
// @Router       /api/admin/products/{id} [delete]
func (ctrl *ProductController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.productService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "删除产品")
		return
	}
	response.RespondSuccess[any](c, nil, "删除成功")
}

// BulkStatus 批量修改产品状态
// @Summary      批量修改产品状态
// @Description  逐条执行，部分失败不影响其他记录，失败明细见 failed。
// @Tags         admin-products (后台-产品)
// @Accept       json
// @Produce      json
// @Param        request body dto.BulkProductStatusRequest true "产品 ID 与目标状态"
// @Success      200 {object} vo.BulkResultResponseWrapper "执行完成"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Router       /api/admin/products/bulk/status [post]
func (ctrl *ProductController) BulkStatus(c *gin.Context) {
	var req dto.BulkProductStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}
	result, err := ctrl.productService.BulkUpdateStatus(c.Request.Context(), req.IDs, req.Status)
	if err != nil {
		respondServiceError(c, err, "批量修改产品状态")
		return
	}
	response.RespondSuccess(c, result, "执行完成")
}

// BulkDelete 批量删除产品
// @Summary      批量删除产品
// @Tags         admin-products (后台-产品)
// @Accept       json
// @Produce      json
// @Param        request body dto.IDsRequest true "产品 ID 列表"
// @Success      200 {object} vo.BulkResultResponseWrapper "执行完成"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Router       /api/admin/products/bulk/delete [post]
func (ctrl *ProductController) BulkDelete(c *gin.Context) {
	var req dto.IDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}
	result, err := ctrl.productService.BulkDelete(c.Request.Context(), req.IDs)
	if err != nil {
		respondServiceError(c, err, "批量删除产品")
		return
	}
	response.RespondSuccess(c, result, "执行完成")
}

// Import 从 JSON 数组导入产品
// @Summary      导入产品
// @Description  请求体为产品数组。校验遇到第一处错误即返回 400，不写入任何数据。
// @Tags         admin-products (后台-产品)
// @Accept       json
// @Produce      json
// @Param        request body []dto.ProductRequest true "产品数组"
// @Success      200 {object} vo.ImportResponseWrapper "导入成功"
// @Failure      400 {object} vo.BaseResponseWrapper "数据校验失败"
// @Router       /api/admin/products/import [post]
func (ctrl *ProductController) Import(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportBody))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "读取请求体失败: "+err.Error())
		return
	}
	n, err := ctrl.productService.Import(c.Request.Context(), raw)
	if err != nil {
		respondServiceError(c, err, "导入产品")
		return
	}
	response.RespondSuccess(c, vo.ImportResultVO{Imported: n}, "导入成功")
}

// Prompt 产品 AI 提示词
// @Summary      产品 AI 提示词
// @Description  kind=description 生成产品描述提示词，kind=seo 生成 SEO 元数据提示词。
// @Tags         admin-products (后台-产品)
// @Produce      json
// @Param        id path int true "产品 ID"
// @Param        kind query string false "提示词类型" Enums(description, seo) default(description)
// @Success      200 {object} vo.PromptResponseWrapper "生成成功"
// @Failure      404 {object} vo.BaseResponseWrapper "产品不存在"
// @Router       /api/admin/products/{id}/prompt [get]
func (ctrl *ProductController) Prompt(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var q dto.PromptQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}
	prompt, err := ctrl.productService.Prompt(c.Request.Context(), id, q.Kind)
	if err != nil {
		respondServiceError(c, err, "生成提示词")
		return
	}
	if prompt == nil {
		respondNotFound(c, "产品")
		return
	}
	response.RespondSuccess(c, prompt, "生成成功")
}

// Posts 推荐了该产品的已发布文章
// @Summary      产品的关联文章
// @Tags         admin-products (后台-产品)
// @Produce      json
// @Param        id path int true "产品 ID"
// @Success      200 {object} vo.BlogPostListResponseWrapper "查询成功"
// @Router       /api/admin/products/{id}/posts [get]
func (ctrl *ProductController) Posts(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	posts, err := ctrl.blogService.PostsForProduct(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "查询关联文章")
		return
	}
	if posts == nil {
		posts = []*vo.BlogPostSummaryVO{}
	}
	response.RespondSuccess(c, posts, "查询成功")
}

// RegisterRoutes 注册产品相关路由，group 为 /api。
func (ctrl *ProductController) RegisterRoutes(group *gin.RouterGroup) {
	public := group.Group("/products")
	{
		public.GET("", ctrl.ListPublic)
		public.GET("/featured", ctrl.Featured)
		public.GET("/popular", ctrl.Popular)
		public.GET("/slug/:slug", ctrl.GetBySlug)
		public.GET("/:id/related", ctrl.Related)
	}

	admin := group.Group("/admin/products")
	{
		admin.GET("", ctrl.ListAdmin)
		admin.POST("", ctrl.Create)
		admin.POST("/bulk/status", ctrl.BulkStatus)
		admin.POST("/bulk/delete", ctrl.BulkDelete)
		admin.POST("/import", ctrl.Import)
		admin.GET("/:id", ctrl.Get)
		admin.PUT("/:id", ctrl.Update)
		admin.DELETE("/:id", ctrl.Delete)
		admin.GET("/:id/prompt", ctrl.Prompt)
		admin.GET("/:id/posts", ctrl.Posts)
	}
}
