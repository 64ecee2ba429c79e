package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"petbhai-backend/internal/domain"
)

const publishRetries = 3

type NatsPublisher struct {
	nc     *nats.Conn
	logger *zap.Logger
}

func NewNatsPublisher(url string, logger *zap.Logger) (*NatsPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("petbhai-backend"),
		nats.MaxReconnects(5),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn("NATS disconnected", zap.Error(err))
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", zap.String("url", nc.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	logger.Info("Connected to NATS", zap.String("url", url))
	return &NatsPublisher{nc: nc, logger: logger}, nil
}

func (p *NatsPublisher) PublishOrderCreated(ctx context.Context, order *domain.Order) error {
	event := OrderCreatedEvent{
		EventID:   uuid.New().String(),
		OrderID:   order.ID,
		UserID:    order.UserID,
		Total:     order.Total,
		ItemCount: len(order.Items),
		Timestamp: time.Now().UTC(),
	}
	return p.publish(ctx, SubjectOrderCreated, event)
}

func (p *NatsPublisher) PublishOrderStatusChanged(ctx context.Context, order *domain.Order, from domain.OrderStatus, note string) error {
	event := OrderStatusChangedEvent{
		EventID:   uuid.New().String(),
		OrderID:   order.ID,
		From:      from,
		To:        order.Status,
		Note:      note,
		Timestamp: time.Now().UTC(),
	}
	return p.publish(ctx, SubjectOrderStatusChanged, event)
}

func (p *NatsPublisher) publish(ctx context.Context, subject string, event interface{}) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	for attempt := 1; attempt <= publishRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := p.nc.Publish(subject, data); err != nil {
			p.logger.Warn("failed to publish event",
				zap.String("subject", subject),
				zap.Int("attempt", attempt),
				zap.Error(err))
			time.Sleep(time.Second)
			continue
		}
		if err := p.nc.FlushTimeout(2 * time.Second); err != nil {
			p.logger.Warn("failed to flush NATS connection", zap.Error(err))
			continue
		}
		return nil
	}
	return fmt.Errorf("failed to publish %s after %d attempts", subject, publishRetries)
}

func (p *NatsPublisher) Close() {
	if p.nc != nil && p.nc.IsConnected() {
		p.nc.Close()
		p.logger.Info("NATS connection closed")
	}
}
