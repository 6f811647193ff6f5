package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"duka/internal/config"
	"duka/internal/entities"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// StatusNotification is the payload published on order status changes.
type StatusNotification struct {
	OrderID    uuid.UUID `json:"order_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

type kafkaNotifier struct {
	writer       *kafka.Writer
	logger       *slog.Logger
	writeTimeout time.Duration
}

func NewKafkaNotifier(logger *slog.Logger, cfg config.Kafka) *kafkaNotifier {
	return &kafkaNotifier{
		logger: logger.With(slog.String("notifier", "kafka")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		writeTimeout: cfg.WriteTimeout,
	}
}

// NotifyStatusChange publishes one message per transition, keyed by
// order id so per-order ordering is preserved. Delivery is best
// effort: the caller has already committed the state change and only
// logs the error.
func (n *kafkaNotifier) NotifyStatusChange(ctx context.Context, orderID uuid.UUID, status entities.Status) error {
	payload, err := json.Marshal(StatusNotification{
		OrderID:    orderID,
		Status:     status.String(),
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		notificationsFailed.Inc()
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	if n.writeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.writeTimeout)
		defer cancel()
	}

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(orderID.String()),
		Value: payload,
	})
	if err != nil {
		notificationsFailed.Inc()
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	notificationsSent.Inc()
	n.logger.Debug("notification published",
		slog.String("order_id", orderID.String()),
		slog.String("status", status.String()),
	)
	return nil
}

func (n *kafkaNotifier) Close() error {
	return n.writer.Close()
}
