package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/DRSN-tech/frag-avenue/internal/cfg"
	"github.com/DRSN-tech/frag-avenue/internal/domain"
	"github.com/DRSN-tech/frag-avenue/internal/usecase"
	"github.com/DRSN-tech/frag-avenue/pkg/e"
	"github.com/DRSN-tech/frag-avenue/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/segmentio/kafka-go"
)

// currency — валюта цен каталога
const currency = "BDT"

// Producer публикует события об оформленных заказах. Ключом сообщения служит id заказа,
// поэтому события одного заказа попадают в одну партицию.
type Producer struct {
	writer *kafka.Writer
	logger logger.Logger
	cfg    *cfg.KafkaCfg
}

func NewProducer(logger logger.Logger, cfg *cfg.KafkaCfg) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchSize:    10,
		BatchTimeout: 50 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
	}

	return &Producer{
		writer: writer,
		logger: logger,
		cfg:    cfg,
	}
}

func (p *Producer) PublishOrderPlaced(ctx context.Context, event *usecase.OrderPlacedEvent) error {
	value, err := OrderPlacedPayload(event)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Order.ID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	p.logger.Debugf("published %s for order %s to %s", event.EventType, event.Order.ID, p.cfg.Topic)

	return nil
}

// EnsureTopic создаёт топик заказов, если его ещё нет.
func (p *Producer) EnsureTopic(timeout time.Duration) error {
	conn, err := kafka.Dial(p.cfg.NetworkMode, p.cfg.Brokers[0])
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions(p.cfg.Topic)
	if err == nil && len(partitions) > 0 {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		done <- conn.CreateTopics(kafka.TopicConfig{
			Topic:             p.cfg.Topic,
			NumPartitions:     p.cfg.Partitions,
			ReplicationFactor: p.cfg.ReplicationFactor,
		})
	}()

	select {
	case err := <-done:
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), fmt.Errorf("failed to create topic %s: %w", p.cfg.Topic, err))
		}
		p.logger.Infof("kafka topic %s created", p.cfg.Topic)
		return nil
	case <-time.After(timeout):
		_ = conn.Close()
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("timeout: %v, topic: %s", timeout, p.cfg.Topic))
	}
}

func (p *Producer) Close(_ context.Context) error {
	return p.writer.Close()
}

type orderPlacedMessage struct {
	EventID    string             `json:"eventId"`
	EventType  string             `json:"eventType"`
	OccurredAt time.Time          `json:"occurredAt"`
	SessionID  string             `json:"sessionId"`
	Order      orderPlacedPayload `json:"order"`
}

type orderPlacedPayload struct {
	ID       string             `json:"id"`
	PlacedAt time.Time          `json:"placedAt"`
	Status   string             `json:"status"`
	Total    int64              `json:"total"`
	Currency string             `json:"currency"`
	Items    []orderItemPayload `json:"items"`
	City     string             `json:"city,omitempty"`
}

type orderItemPayload struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
}

// OrderPlacedPayload сериализует событие в JSON. Контактные данные доставки,
// кроме города, в событие не попадают.
func OrderPlacedPayload(event *usecase.OrderPlacedEvent) ([]byte, error) {
	msg := orderPlacedMessage{
		EventID:    event.EventID,
		EventType:  event.EventType,
		OccurredAt: event.OccurredAt.UTC(),
		SessionID:  event.SessionID,
		Order: orderPlacedPayload{
			ID:       event.Order.ID,
			PlacedAt: event.Order.PlacedAt.UTC(),
			Status:   string(event.Order.Status),
			Total:    event.Order.Total,
			Currency: currency,
			Items:    toItemPayloads(event.Order.Items),
			City:     event.Order.Delivery.City,
		},
	}

	return json.Marshal(msg)
}

func toItemPayloads(items []domain.OrderItem) []orderItemPayload {
	res := make([]orderItemPayload, len(items))
	for i, item := range items {
		res[i] = orderItemPayload{
			ProductID: item.ProductID,
			Size:      string(item.Size),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	return res
}
