package myErrors

import (
	"errors"
	"fmt"
)

// ErrCacheMiss 表示在缓存层未找到对应的键值
var ErrCacheMiss = errors.New("cache: key not found (miss)")

// ErrSlugTaken slug 已被其他记录占用
var ErrSlugTaken = errors.New("slug already in use")

// ErrInvalidStatusTransition 询盘状态流转不合法
var ErrInvalidStatusTransition = errors.New("invalid status transition")

// ErrRateLimited 联系表单提交过于频繁
var ErrRateLimited = errors.New("too many submissions, try again later")

// ErrEmptySelection 批量操作未选择任何记录
var ErrEmptySelection = errors.New("no records selected")

// ErrImportInvalid JSON 导入数据校验失败，具体位置见 ImportError
var ErrImportInvalid = errors.New("import data invalid")

// ImportError 描述 JSON 导入时发现的第一处违规。
type ImportError struct {
	Index int    // 数组下标，-1 表示整体格式问题
	Field string // 出问题的字段
	Msg   string
}

func (e *ImportError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("import: %s", e.Msg)
	}
	return fmt.Sprintf("import: item %d field %q: %s", e.Index, e.Field, e.Msg)
}

func (e *ImportError) Unwrap() error { return ErrImportInvalid }

// ErrInvalidContent 内容块 JSON 无法解析
var ErrInvalidContent = errors.New("invalid content blocks")

// ErrInvalidStatus 状态值不在允许的取值范围内
var ErrInvalidStatus = errors.New("invalid status value")

// ErrInvalidSlug 显式指定的 slug 规范化后为空
var ErrInvalidSlug = errors.New("slug has no usable characters")

// ErrMissingField 必填字段为空
var ErrMissingField = errors.New("required field missing")
