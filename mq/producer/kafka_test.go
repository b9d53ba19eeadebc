package producer

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/trade_site/config"
	"github.com/Xushengqwer/trade_site/models/entities"
	"github.com/Xushengqwer/trade_site/models/events"
)

type recordingWriter struct {
	msgs []kafka.Message
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error { return nil }

func TestSendProductChangedEvent(t *testing.T) {
	w := &recordingWriter{}
	p := NewKafkaProducerWithWriter(w, config.Topics{ProductChanged: "product.changed"}, zap.NewNop())

	product := &entities.Product{Slug: "steel-pipe", Status: entities.ProductStatusActive}
	product.ID = 42
	if err := p.SendProductChangedEvent(context.Background(), events.ProductUpdated, product); err != nil {
		t.Fatalf("SendProductChangedEvent: %v", err)
	}
	if err := p.SendProductChangedEvent(context.Background(), events.ProductDeleted, product); err != nil {
		t.Fatalf("SendProductChangedEvent: %v", err)
	}
	if len(w.msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(w.msgs))
	}
	if w.msgs[0].Topic != "product.changed" {
		t.Errorf("topic = %q", w.msgs[0].Topic)
	}
	if string(w.msgs[0].Key) != string(w.msgs[1].Key) {
		t.Errorf("events for one product must share a partition key")
	}

	var event events.ProductChangedEvent
	if err := json.Unmarshal(w.msgs[0].Value, &event); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if event.ProductID != 42 || event.Action != events.ProductUpdated || event.EventID == "" {
		t.Errorf("unexpected event %+v", event)
	}
}

func TestSendEventWithoutBrokersIsNoop(t *testing.T) {
	p := NewKafkaProducer(config.KafkaConfig{}, zap.NewNop())
	msg := &entities.Message{Name: "Ayşe"}
	if err := p.SendMessageReceivedEvent(context.Background(), msg); err != nil {
		t.Errorf("unconfigured producer should not fail: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
