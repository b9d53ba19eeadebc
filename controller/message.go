package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/trade_site/models/dto"
	"github.com/Xushengqwer/trade_site/models/vo"
	"github.com/Xushengqwer/trade_site/service"
)

// MessageController 联系表单提交与后台询盘管理
type MessageController struct {
	messageService service.MessageService
	contactLimit   gin.HandlerFunc // 可为 nil，表示不限流
}

func NewMessageController(messageService service.MessageService, contactLimit gin.HandlerFunc) *MessageController {
	return &MessageController{messageService: messageService, contactLimit: contactLimit}
}

// Submit 提交联系表单
// @Summary      提交询盘
// @Description  访客提交联系/报价表单，按 IP 限流。新询盘状态为 Yeni。
// @Tags         contact (联系)
// @Accept       json
// @Produce      json
// @Param        request body dto.ContactRequest true "询盘内容"
// @Success      200 {object} vo.MessageResponseWrapper "提交成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      429 {object} vo.BaseResponseWrapper "提交过于频繁"
// @Router       /api/contact [post]
func (ctrl *MessageController) Submit(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}
	msg, err := ctrl.messageService.Submit(c.Request.Context(), &req, c.ClientIP())
	if err != nil {
		respondServiceError(c, err, "提交询盘")
		return
	}
	response.RespondSuccess(c, msg, "提交成功")
}

// List 询盘列表
// @Summary      询盘列表
// @Tags         admin-messages (后台-询盘)
// @Produce      json
// @Param        page query int false "页码（从 1 开始）" minimum(1)
// @Param        page_size query int false "每页数量" minimum(1) maximum(100)
// @Param        status query string false "询盘状态" Enums(Yeni, Okundu, Yanıtlandı, Arşivlendi)
// @Param        search query string false "姓名/邮箱/公司关键词"
// @Success      200 {object} vo.MessagePageResponseWrapper "查询成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Router       /api/admin/messages [get]
func (ctrl *MessageController) List(c *gin.Context) {
	var q dto.MessageListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}
	page, err := ctrl.messageService.List(c.Request.Context(), &q)
	if err != nil {
		respondServiceError(c, err, "查询询盘列表")
		return
	}
	response.RespondSuccess(c, page, "查询成功")
}

// Get 询盘详情
// @Summary      询盘详情
// @Description  查看新询盘会自动标记为已读。
// @Tags         admin-messages (后台-询盘)
// @Produce      json
// @Param        id path int true "询盘 ID"
// @Success      200 {object} vo.MessageResponseWrapper "查询成功"
// @Failure      404 {object} vo.BaseResponseWrapper "询盘不存在"
// @Router       /api/admin/messages/{id} [get]
func (ctrl *MessageController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	msg, err := ctrl.messageService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "查询询盘")
		return
	}
	if msg == nil {
		respondNotFound(c, "询盘")
		return
	}
	response.RespondSuccess(c, msg, "查询成功")
}

// UpdateStatus 修改询盘状态
// @Summary      修改询盘状态
// @Description  状态只能沿 Yeni → Okundu → Yanıtlandı → Arşivlendi 的允许路径流转。
// @Tags         admin-messages (后台-询盘)
// @Accept       json
// @Produce      json
// @Param        id path int true "询盘 ID"
// @Param        request body dto.MessageStatusRequest true "目标状态"
// @Success      200 {object} vo.MessageResponseWrapper "修改成功"
// @Failure      400 {object} vo.BaseResponseWrapper "状态流转不合法"
// @Failure      404 {object} vo.BaseResponseWrapper "询盘不存在"
// @Router       /api/admin/messages/{id}/status [put]
func (ctrl *MessageController) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.MessageStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}
	msg, err := ctrl.messageService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondServiceError(c, err, "修改询盘状态")
		return
	}
	response.RespondSuccess(c, msg, "修改成功")
}

// BulkStatus 批量修改询盘状态
// @Summary      批量修改询盘状态
// @Tags         admin-messages (后台-询盘)
// @Accept       json
// @Produce      json
// @Param        request body dto.BulkMessageStatusRequest true "询盘 ID 与目标状态"
// @Success      200 {object} vo.BulkResultResponseWrapper "执行完成"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Router       /api/admin/messages/bulk/status [post]
func (ctrl *MessageController) BulkStatus(c *gin.Context) {
	var req dto.BulkMessageStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}
	result, err := ctrl.messageService.BulkUpdateStatus(c.Request.Context(), req.IDs, req.Status)
	if err != nil {
		respondServiceError(c, err, "批量修改询盘状态")
		return
	}
	response.RespondSuccess(c, result, "执行完成")
}

// Delete 删除询盘
// @Summary      删除询盘
// @Tags         admin-messages (后台-询盘)
// @Produce      json
// @Param        id path int true "询盘 ID"
// @Success      200 {object} vo.BaseResponseWrapper "删除成功"
// @Failure      404 {object} vo.BaseResponseWrapper "询盘不存在"
// @Router       /api/admin/messages/{id} [delete]
func (ctrl *MessageController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.messageService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "删除询盘")
		return
	}
	response.RespondSuccess[any](c, nil, "删除成功")
}

// BulkDelete 批量删除询盘
// @Summary      批量删除询盘
// @Tags         admin-messages (后台-询盘)
// @Accept       json
// @Produce      json
// @Param        request body dto.IDsRequest true "询盘 ID 列表"
// @Success      200 {object} vo.BulkResultResponseWrapper "执行完成"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Router       /api/admin/messages/bulk/delete [post]
func (ctrl *MessageController) BulkDelete(c *gin.Context) {
	var req dto.IDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}
	result, err := ctrl.messageService.BulkDelete(c.Request.Context(), req.IDs)
	if err != nil {
		respondServiceError(c, err, "批量删除询盘")
		return
	}
	response.RespondSuccess(c, result, "执行完成")
}

// UnreadCount 未读询盘数量
// @Summary      未读询盘数量
// @Tags         admin-messages (后台-询盘)
// @Produce      json
// @Success      200 {object} vo.UnreadCountResponseWrapper "查询成功"
// @Router       /api/admin/messages/unread-count [get]
func (ctrl *MessageController) UnreadCount(c *gin.Context) {
	n, err := ctrl.messageService.UnreadCount(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "查询未读数量")
		return
	}
	response.RespondSuccess(c, vo.UnreadCountVO{Count: n}, "查询成功")
}

// WhatsApp 生成 WhatsApp 回复链接
// @Summary      WhatsApp 回复链接
// @Description  优先使用询盘中的电话号码，没有时使用站点号码。
// @Tags         admin-messages (后台-询盘)
// @Produce      json
// @Param        id path int true "询盘 ID"
// @Success      200 {object} vo.LinkResponseWrapper "生成成功"
// @Failure      404 {object} vo.BaseResponseWrapper "询盘不存在"
// @Router       /api/admin/messages/{id}/whatsapp [get]
func (ctrl *MessageController) WhatsApp(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	link, err := ctrl.messageService.WhatsAppLink(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "生成 WhatsApp 链接")
		return
	}
	if link == nil {
		respondNotFound(c, "询盘")
		return
	}
	response.RespondSuccess(c, link, "生成成功")
}

// RegisterRoutes 注册询盘路由，group 为 /api。
func (ctrl *MessageController) RegisterRoutes(group *gin.RouterGroup) {
	if ctrl.contactLimit != nil {
		group.POST("/contact", ctrl.contactLimit, ctrl.Submit)
	} else {
		group.POST("/contact", ctrl.Submit)
	}

	admin := group.Group("/admin/messages")
	{
		admin.GET("", ctrl.List)
		admin.GET("/unread-count", ctrl.UnreadCount)
		admin.POST("/bulk/status", ctrl.BulkStatus)
		admin.POST("/bulk/delete", ctrl.BulkDelete)
		admin.GET("/:id", ctrl.Get)
		admin.DELETE("/:id", ctrl.Delete)
		admin.PUT("/:id/status", ctrl.UpdateStatus)
		admin.GET("/:id/whatsapp", ctrl.WhatsApp)
	}
}
