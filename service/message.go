package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"go.uber.org/zap"

	"github.com/Xushengqwer/trade_site/config"
	"github.com/Xushengqwer/trade_site/content"
	"github.com/Xushengqwer/trade_site/models/dto"
	"github.com/Xushengqwer/trade_site/models/entities"
	"github.com/Xushengqwer/trade_site/models/vo"
	"github.com/Xushengqwer/trade_site/myErrors"
	"github.com/Xushengqwer/trade_site/repo/mysql"
)

// MessageService 联系表单/询价消息的处理流程。
type MessageService interface {
	// Submit 前台提交，新消息状态为 Yeni，并异步发送 message.received 事件。
	Submit(ctx context.Context, req *dto.ContactRequest, ip string) (*vo.MessageVO, error)
	List(ctx context.Context, q *dto.MessageListQuery) (*vo.PageVO[*vo.MessageVO], error)
	// Get 后台查看详情；新消息会被标记为已读。未找到返回 (nil, nil)。
	Get(ctx context.Context, id uint64) (*vo.MessageVO, error)
	// UpdateStatus 按 MessageStatus.CanTransitionTo 校验流转，不合法时返回 myErrors.ErrInvalidStatusTransition。
	UpdateStatus(ctx context.Context, id uint64, status entities.MessageStatus) (*vo.MessageVO, error)
	BulkUpdateStatus(ctx context.Context, ids []uint64, status entities.MessageStatus) (*vo.BulkResult, error)
	Delete(ctx context.Context, id uint64) error
	BulkDelete(ctx context.Context, ids []uint64) (*vo.BulkResult, error)
	UnreadCount(ctx context.Context) (int64, error)
	// WhatsAppLink 生成带默认问候语的 WhatsApp 回复链接，优先使用消息中的电话号码。
	WhatsAppLink(ctx context.Context, id uint64) (*vo.LinkVO, error)
}

type messageService struct {
	messageRepo mysql.MessageRepository
	events      EventPublisher
	site        config.SiteInfo
	logger      *zap.Logger
	now         func() time.Time
}

func NewMessageService(messageRepo mysql.MessageRepository, events EventPublisher, site config.SiteInfo, logger *zap.Logger) MessageService {
	return &messageService{
		messageRepo: messageRepo,
		events:      events,
		site:        site,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *messageService) Submit(ctx context.Context, req *dto.ContactRequest, ip string) (*vo.MessageVO, error) {
	msg := &entities.Message{
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:     strings.TrimSpace(req.Phone),
		Company:   strings.TrimSpace(req.Company),
		Country:   strings.TrimSpace(req.Country),
		Subject:   strings.TrimSpace(req.Subject),
		Message:   strings.TrimSpace(req.Message),
		ProductID: req.ProductID,
		Status:    entities.MessageStatusNew,
		IP:        ip,
	}
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return nil, fmt.Errorf("姓名、邮箱与留言内容不能为空: %w", myErrors.ErrMissingField)
	}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("保存询盘失败: %w", err)
	}
	s.logger.Info("收到新询盘", zap.Uint64("messageID", msg.ID), zap.String("country", msg.Country))

	if s.events != nil {
		snapshot := *msg
		publishAsync(s.logger, "message.received", func(ctx context.Context) error {
			return s.events.SendMessageReceivedEvent(ctx, &snapshot)
		})
	}
	return vo.NewMessageVO(msg), nil
}

func (s *messageService) List(ctx context.Context, q *dto.MessageListQuery) (*vo.PageVO[*vo.MessageVO], error) {
	q.Normalize()
	msgs, total, err := s.messageRepo.List(ctx, mysql.MessageFilter{
		Status: q.Status,
		Search: strings.TrimSpace(q.Search),
		Offset: q.GetOffset(),
		Limit:  q.PageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("查询询盘列表失败: %w", err)
	}
	page := vo.NewPageVO(vo.NewMessageVOs(msgs), total, q.Page, q.PageSize)
	return &page, nil
}

func (s *messageService) Get(ctx context.Context, id uint64) (*vo.MessageVO, error) {
	msg, err := s.messageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("查询询盘(ID: %d)失败: %w", id, err)
	}
	if msg == nil {
		return nil, nil
	}
	if msg.Status == entities.MessageStatusNew {
		updates := s.transitionUpdates(msg, entities.MessageStatusRead)
		if err := s.messageRepo.Update(ctx, id, updates); err != nil {
			// 标记已读失败不影响查看
			s.logger.Warn("标记询盘为已读失败", zap.Uint64("messageID", id), zap.Error(err))
		} else {
			applyTransition(msg, updates)
		}
	}
	return vo.NewMessageVO(msg), nil
}

// transitionUpdates 计算流转到 next 需要写入的字段；首次进入已读/已回复时记录时间。
func (s *messageService) transitionUpdates(msg *entities.Message, next entities.MessageStatus) map[string]interface{} {
	now := s.now()
	updates := map[string]interface{}{"status": next}
	switch next {
	case entities.MessageStatusRead:
		if msg.ReadAt == nil {
			updates["read_at"] = &now
		}
	case entities.MessageStatusReplied:
		if msg.ReadAt == nil {
			updates["read_at"] = &now
		}
		if msg.RepliedAt == nil {
			updates["replied_at"] = &now
		}
	}
	return updates
}

func applyTransition(msg *entities.Message, updates map[string]interface{}) {
	if v, ok := updates["status"].(entities.MessageStatus); ok {
		msg.Status = v
	}
	if v, ok := updates["read_at"].(*time.Time); ok {
		msg.ReadAt = v
	}
	if v, ok := updates["replied_at"].(*time.Time); ok {
		msg.RepliedAt = v
	}
}

func (s *messageService) UpdateStatus(ctx context.Context, id uint64, status entities.MessageStatus) (*vo.MessageVO, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("询盘状态 %q: %w", status, myErrors.ErrInvalidStatus)
	}
	msg, err := s.messageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("查询询盘(ID: %d)失败: %w", id, err)
	}
	if msg == nil {
		return nil, fmt.Errorf("询盘(ID: %d): %w", id, commonerrors.ErrRepoNotFound)
	}
	if !msg.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("询盘(ID: %d) %s -> %s: %w", id, msg.Status, status, myErrors.ErrInvalidStatusTransition)
	}
	if msg.Status == status {
		return vo.NewMessageVO(msg), nil
	}

	updates := s.transitionUpdates(msg, status)
	if err := s.messageRepo.Update(ctx, id, updates); err != nil {
		return nil, fmt.Errorf("更新询盘(ID: %d)状态失败: %w", id, err)
	}
	applyTransition(msg, updates)
	s.logger.Info("询盘状态已更新", zap.Uint64("messageID", id), zap.String("status", string(status)))
	return vo.NewMessageVO(msg), nil
}

func (s *messageService) BulkUpdateStatus(ctx context.Context, ids []uint64, status entities.MessageStatus) (*vo.BulkResult, error) {
	if len(ids) == 0 {
		return nil, myErrors.ErrEmptySelection
	}
	if !status.Valid() {
		return nil, fmt.Errorf("询盘状态 %q: %w", status, myErrors.ErrInvalidStatus)
	}
	result := vo.NewBulkResult()
	for _, id := range ids {
		if _, err := s.UpdateStatus(ctx, id, status); err != nil {
			s.logger.Warn("批量修改询盘状态：单条失败", zap.Uint64("messageID", id), zap.Error(err))
			result.Fail(id, err)
			continue
		}
		result.Ok(id)
	}
	return result, nil
}

func (s *messageService) Delete(ctx context.Context, id uint64) error {
	if err := s.messageRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("删除询盘(ID: %d)失败: %w", id, err)
	}
	return nil
}

func (s *messageService) BulkDelete(ctx context.Context, ids []uint64) (*vo.BulkResult, error) {
	if len(ids) == 0 {
		return nil, myErrors.ErrEmptySelection
	}
	result := vo.NewBulkResult()
	for _, id := range ids {
		if err := s.Delete(ctx, id); err != nil {
			result.Fail(id, err)
			continue
		}
		result.Ok(id)
	}
	return result, nil
}

func (s *messageService) UnreadCount(ctx context.Context) (int64, error) {
	n, err := s.messageRepo.CountUnread(ctx)
	if err != nil {
		return 0, fmt.Errorf("统计未读询盘失败: %w", err)
	}
	return n, nil
}

func (s *messageService) WhatsAppLink(ctx context.Context, id uint64) (*vo.LinkVO, error) {
	msg, err := s.messageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("查询询盘(ID: %d)失败: %w", id, err)
	}
	if msg == nil {
		return nil, nil
	}
	number := msg.Phone
	if number == "" {
		number = s.site.WhatsAppNumber
	}
	return &vo.LinkVO{URL: content.WhatsAppLink(number, content.ReplyGreeting(msg.Name, msg.Subject))}, nil
}
