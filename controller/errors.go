package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/trade_site/myErrors"
)

// respondServiceError 把服务层错误映射为 HTTP 状态码和统一响应。
// action 是失败操作的中文描述，例如 "更新产品"。
func respondServiceError(c *gin.Context, err error, action string) {
	var importErr *myErrors.ImportError
	switch {
	case errors.Is(err, commonerrors.ErrRepoNotFound):
		response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, action+"失败: 记录不存在")
	case errors.Is(err, myErrors.ErrSlugTaken):
		response.RespondError(c, http.StatusConflict, response.ErrCodeClientInvalidInput, action+"失败: "+err.Error())
	case errors.As(err, &importErr):
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, action+"失败: "+importErr.Error())
	case errors.Is(err, myErrors.ErrInvalidStatusTransition),
		errors.Is(err, myErrors.ErrInvalidStatus),
		errors.Is(err, myErrors.ErrInvalidContent),
		errors.Is(err, myErrors.ErrMissingField),
		errors.Is(err, myErrors.ErrInvalidSlug),
		errors.Is(err, myErrors.ErrEmptySelection):
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, action+"失败: "+err.Error())
	case errors.Is(err, myErrors.ErrRateLimited):
		response.RespondError(c, http.StatusTooManyRequests, response.ErrCodeClientInvalidInput, err.Error())
	default:
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, action+"失败: "+err.Error())
	}
}

// parseIDParam 解析路径中的 uint64 ID，失败时直接写入 400 响应并返回 false。
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的 "+name+" 参数")
		return 0, false
	}
	return id, true
}

// respondNotFound 服务层以 (nil, nil) 表示记录不存在。
func respondNotFound(c *gin.Context, what string) {
	response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, what+"不存在")
}
