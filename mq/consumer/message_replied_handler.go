package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/trade_site/models/entities"
	"github.com/Xushengqwer/trade_site/models/events"
	"github.com/Xushengqwer/trade_site/models/vo"
	"github.com/Xushengqwer/trade_site/myErrors"
)

// MessageStatusUpdater 由 service.MessageService 实现
type MessageStatusUpdater interface {
	UpdateStatus(ctx context.Context, id uint64, status entities.MessageStatus) (*vo.MessageVO, error)
}

// MessageRepliedHandler 通知渠道回传“已回复”后，将询盘标记为 Yanıtlandı。
type MessageRepliedHandler struct {
	logger   *zap.Logger
	messages MessageStatusUpdater
}

func NewMessageRepliedHandler(logger *zap.Logger, messages MessageStatusUpdater) *MessageRepliedHandler {
	return &MessageRepliedHandler{logger: logger, messages: messages}
}

// Handle 无法解析的消息、不存在的询盘以及不允许的状态流转（如已归档）都直接丢弃，不重试。
func (h *MessageRepliedHandler) Handle(ctx context.Context, msg kafka.Message) error {
	var event events.MessageRepliedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.Error("反序列化询盘回复事件失败", zap.Error(err), zap.ByteString("value", msg.Value))
		return nil
	}
	if event.MessageID == 0 {
		h.logger.Warn("询盘回复事件缺少 message_id", zap.String("event_id", event.EventID))
		return nil
	}

	_, err := h.messages.UpdateStatus(ctx, event.MessageID, entities.MessageStatusReplied)
	switch {
	case err == nil:
		h.logger.Info("询盘已标记为已回复",
			zap.String("event_id", event.EventID),
			zap.Uint64("message_id", event.MessageID),
			zap.String("channel", event.Channel))
		return nil
	case errors.Is(err, commonerrors.ErrRepoNotFound):
		h.logger.Warn("询盘不存在或已删除，忽略回复事件", zap.Uint64("message_id", event.MessageID))
		return nil
	case errors.Is(err, myErrors.ErrInvalidStatusTransition):
		h.logger.Warn("询盘当前状态不允许标记为已回复，忽略", zap.Uint64("message_id", event.MessageID), zap.Error(err))
		return nil
	}
	return fmt.Errorf("标记询盘(ID: %d)为已回复失败: %w", event.MessageID, err)
}
