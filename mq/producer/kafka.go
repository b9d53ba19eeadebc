package producer

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/trade_site/config"
	"github.com/Xushengqwer/trade_site/models/entities"
	"github.com/Xushengqwer/trade_site/models/events"
)

// MessageWriter kafka.Writer 中生产者用到的部分，测试时可替换。
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaProducer Kafka 消息生产者
type KafkaProducer struct {
	writer MessageWriter
	logger *zap.Logger
	topics config.Topics
}

// NewKafkaProducer 创建生产者，brokers 为空时返回的生产者只记录日志不发送。
func NewKafkaProducer(cfg config.KafkaConfig, logger *zap.Logger) *KafkaProducer {
	var writer MessageWriter
	if len(cfg.Brokers) > 0 {
		writer = &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		}
	}
	return NewKafkaProducerWithWriter(writer, cfg.Topics, logger)
}

// NewKafkaProducerWithWriter 使用给定的 writer 创建生产者。
func NewKafkaProducerWithWriter(writer MessageWriter, topics config.Topics, logger *zap.Logger) *KafkaProducer {
	return &KafkaProducer{writer: writer, logger: logger, topics: topics}
}

// SendEvent 序列化事件并写入指定主题，key 决定分区。
func (p *KafkaProducer) SendEvent(ctx context.Context, topic, key string, event interface{}) error {
	if p.writer == nil || topic == "" {
		p.logger.Debug("Kafka 未配置，跳过事件发送", zap.String("topic", topic))
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("序列化 Kafka 事件失败", zap.String("topic", topic), zap.Error(err))
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
	})
	if err != nil {
		p.logger.Error("写入 Kafka 消息失败", zap.String("topic", topic), zap.Error(err))
		return err
	}
	p.logger.Info("Kafka 事件已发送", zap.String("topic", topic), zap.String("key", key))
	return nil
}

// SendMessageReceivedEvent 新询盘事件，key 为询盘 ID。
func (p *KafkaProducer) SendMessageReceivedEvent(ctx context.Context, msg *entities.Message) error {
	event := events.MessageReceivedEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		MessageID: msg.ID,
		Name:      msg.Name,
		Email:     msg.Email,
		Phone:     msg.Phone,
		Company:   msg.Company,
		Country:   msg.Country,
		Subject:   msg.Subject,
		Message:   msg.Message,
		ProductID: msg.ProductID,
	}
	return p.SendEvent(ctx, p.topics.MessageReceived, uuidKey(msg.ID), event)
}

// SendProductChangedEvent 产品变更事件，同一产品的事件落在同一分区以保证顺序。
func (p *KafkaProducer) SendProductChangedEvent(ctx context.Context, action events.ProductAction, product *entities.Product) error {
	event := events.ProductChangedEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		Action:    action,
		ProductID: product.ID,
		Slug:      product.Slug,
		Status:    string(product.Status),
	}
	return p.SendEvent(ctx, p.topics.ProductChanged, uuidKey(product.ID), event)
}

// Close 关闭底层 writer。
func (p *KafkaProducer) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

func uuidKey(id uint64) string {
	// 以 ID 派生稳定的 key，保证同一实体的事件分区一致
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(strconv.FormatUint(id, 10))).String()
}
