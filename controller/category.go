package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/trade_site/models/dto"
	"github.com/Xushengqwer/trade_site/service"
)

// CategoryController 产品分类接口
type CategoryController struct {
	categoryService service.CategoryService
}

func NewCategoryController(categoryService service.CategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

// List 分类列表
// @Summary      分类列表
// @Description  按展示顺序返回全部分类及其产品数量。
// @Tags         categories (分类)
// @Produce      json
// @Success      200 {object} vo.CategoryListResponseWrapper "查询成功"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/categories [get]
func (ctrl *CategoryController) List(c *gin.Context) {
	cats, err := ctrl.categoryService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "查询分类列表")
		return
	}
	response.RespondSuccess(c, cats, "查询成功")
}

// GetBySlug 按 slug 查询分类
// @Summary      分类详情
// @Tags         categories (分类)
// @Produce      json
// @Param        slug path string true "分类 slug"
// @Success      200 {object} vo.CategoryResponseWrapper "查询成功"
// @Failure      404 {object} vo.BaseResponseWrapper "分类不存在"
// @Router       /api/categories/slug/{slug} [get]
func (ctrl *CategoryController) GetBySlug(c *gin.Context) {
	cat, err := ctrl.categoryService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondServiceError(c, err, "查询分类")
		return
	}
	if cat == nil {
		respondNotFound(c, "分类")
		return
	}
	response.RespondSuccess(c, cat, "查询成功")
}

// Get 后台分类详情
// @Summary      分类详情 (后台)
// @Tags         admin-categories (后台-分类)
// @Produce      json
// @Param        id path int true "分类 ID"
// @Success      200 {object} vo.CategoryResponseWrapper "查询成功"
// @Failure      404 {object} vo.BaseResponseWrapper "分类不存在"
// @Router       /api/admin/categories/{id} [get]
func (ctrl *CategoryController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	cat, err := ctrl.categoryService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "查询分类")
		return
	}
	if cat == nil {
		respondNotFound(c, "分类")
		return
	}
	response.RespondSuccess(c, cat, "查询成功")
}

// Create 新建分类
// @Summary      新建分类
// @Description  未指定 display_order 时排在最后。
// @Tags         admin-categories (后台-分类)
// @Accept       json
// @Produce      json
// @Param        request body dto.CategoryRequest true "分类信息"
// @Success      200 {object} vo.CategoryResponseWrapper "创建成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      409 {object} vo.BaseResponseWrapper "slug 已被占用"
// @Router       /api/admin/categories [post]
func (ctrl *CategoryController) Create(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}
	cat, err := ctrl.categoryService.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "创建分类")
		return
	}
	response.RespondSuccess(c, cat, "创建成功")
}

// Update 修改分类
// @Summary      修改分类
// @Tags         admin-categories (后台-分类)
// @Accept       json
// @Produce      json
// @Param        id path int true "分类 ID"
// @Param        request body dto.CategoryRequest true "分类信息"
// @Success      200 {object} vo.CategoryResponseWrapper "修改成功"
// @Failure      404 {object} vo.BaseResponseWrapper "分类不存在"
// @Failure      409 {object} vo.BaseResponseWrapper "slug 已被占用"
// @Router       /api/admin/categories/{id} [put]
func (ctrl *CategoryController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}
	cat, err := ctrl.categoryService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, err, "修改分类")
		return
	}
	response.RespondSuccess(c, cat, "修改成功")
}

// Delete 删除分类
// @Summary      删除分类
// @Description  分类下的产品保留，不再属于任何分类。
// @Tags         admin-categories (后台-分类)
// @Produce      json
// @Param        id path int true "分类 ID"
// @Success      200 {object} vo.BaseResponseWrapper "删除成功"
// @Failure      404 {object} vo.BaseResponseWrapper "分类不存在"
// @Router       /api/admin/categories/{id} [delete]
func (ctrl *CategoryController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.categoryService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "删除分类")
		return
	}
	response.RespondSuccess[any](c, nil, "删除成功")
}

// Reorder 调整分类顺序
// @Summary      调整分类顺序
// @Description  按 ids 的先后顺序写入 display_order。
// @Tags         admin-categories (后台-分类)
// @Accept       json
// @Produce      json
// @Param        request body dto.ReorderCategoriesRequest true "排好序的分类 ID"
// @Success      200 {object} vo.BulkResultResponseWrapper "执行完成"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Router       /api/admin/categories/reorder [post]
func (ctrl *CategoryController) Reorder(c *gin.Context) {
	var req dto.ReorderCategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}
	result, err := ctrl.categoryService.Reorder(c.Request.Context(), req.IDs)
	if err != nil {
		respondServiceError(c, err, "调整分类顺序")
		return
	}
	response.RespondSuccess(c, result, "执行完成")
}

// RegisterRoutes 注册分类路由，group 为 /api。
func (ctrl *CategoryController) RegisterRoutes(group *gin.RouterGroup) {
	public := group.Group("/categories")
	{
		public.GET("", ctrl.List)
		public.GET("/slug/:slug", ctrl.GetBySlug)
	}

	admin := group.Group("/admin/categories")
	{
		admin.GET("", ctrl.List)
		admin.POST("", ctrl.Create)
		admin.POST("/reorder", ctrl.Reorder)
		admin.GET("/:id", ctrl.Get)
		admin.PUT("/:id", ctrl.Update)
		admin.DELETE("/:id", ctrl.Delete)
	}
}
