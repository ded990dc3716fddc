package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"food-ordering/models"

	"github.com/segmentio/kafka-go"
)

// OrderEventType marks an order placed event
const OrderEventType = "order.placed"

// OrderPublisher announces placed orders
type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, event models.OrderPlacedEvent) error
}

// KafkaPublisher writes order events to a Kafka topic keyed by order id
type KafkaPublisher struct {
	Writer *kafka.Writer
}

// NewKafkaWriter creates a writer for topic on broker
func NewKafkaWriter(broker, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(broker),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
	}
}

// NewKafkaPublisher creates a new KafkaPublisher
func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

// PublishOrderPlaced writes event as JSON
func (p *KafkaPublisher) PublishOrderPlaced(ctx context.Context, event models.OrderPlacedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
	})
}

// NewOrderPlacedEvent describes order for publishing
func NewOrderPlacedEvent(order models.Order) models.OrderPlacedEvent {
	items := 0
	for _, item := range order.OrderItems {
		items += item.Qty
	}
	return models.OrderPlacedEvent{
		Type:       OrderEventType,
		OrderID:    order.ID.Hex(),
		UserID:     order.User.Hex(),
		Items:      items,
		TotalPrice: order.TotalPrice,
		Timestamp:  time.Now(),
	}
}
