package consumer

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/trade_site/config"
)

// handleTimeout 单条消息的处理超时
const handleTimeout = 30 * time.Second

// MessageHandler 处理单条 Kafka 消息。返回 error 只记录日志，不会阻塞后续消息。
type MessageHandler interface {
	Handle(ctx context.Context, msg kafka.Message) error
}

// MessageReader 消费者读取消息所需的能力，由 *kafka.Reader 实现。
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// Consumer Kafka 消费循环
type Consumer struct {
	reader  MessageReader
	handler MessageHandler
	logger  *zap.Logger
	topic   string
}

// NewConsumer 创建订阅 topicName 的消费者组成员。
func NewConsumer(cfg *appConfig.KafkaConfig, topicName string, handler MessageHandler, logger *zap.Logger) (*Consumer, error) {
	if topicName == "" {
		return nil, errors.New("kafka topic 名称不能为空")
	}
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka brokers 配置不能为空")
	}

	logger.Info("初始化 Kafka 消费者",
		zap.Strings("brokers", cfg.Brokers),
		zap.String("topic", topicName),
		zap.String("group_id", cfg.ConsumerGroupID))

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		Topic:          topicName,
		GroupID:        cfg.ConsumerGroupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	return NewConsumerWithReader(reader, topicName, handler, logger), nil
}

// NewConsumerWithReader 使用自定义 reader 创建消费者，便于测试。
func NewConsumerWithReader(reader MessageReader, topicName string, handler MessageHandler, logger *zap.Logger) *Consumer {
	return &Consumer{
		reader:  reader,
		handler: handler,
		logger:  logger,
		topic:   topicName,
	}
}

// Start 阻塞读取并处理消息，直到 ctx 取消或 reader 关闭。
func (c *Consumer) Start(ctx context.Context) {
	c.logger.Info("Kafka 消费者已启动", zap.String("topic", c.topic))
	defer c.logger.Info("Kafka 消费者已停止", zap.String("topic", c.topic))

	for {
		select {
		case <-ctx.Done():
			c.logger.Warn("消费者上下文已取消，正在退出...", zap.String("topic", c.topic))
			return
		default:
		}

		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) || errors.Is(err, os.ErrClosed) {
				c.logger.Warn("消费者读取循环退出", zap.String("topic", c.topic), zap.Error(err))
				return
			}
			c.logger.Error("读取 Kafka 消息失败", zap.String("topic", c.topic), zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
			}
			continue
		}

		handleCtx, cancel := context.WithTimeout(ctx, handleTimeout)
		handleErr := c.handler.Handle(handleCtx, msg)
		cancel()

		if handleErr != nil {
			c.logger.Error("处理 Kafka 消息时发生错误",
				zap.Error(handleErr),
				zap.String("topic", msg.Topic),
				zap.Int64("offset", msg.Offset))
		}
	}
}

func (c *Consumer) Close() error {
	c.logger.Info("正在关闭 Kafka 消费者...", zap.String("topic", c.topic))
	if err := c.reader.Close(); err != nil {
		c.logger.Error("关闭 Kafka Reader 失败", zap.Error(err), zap.String("topic", c.topic))
		return err
	}
	return nil
}
