package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"carepass-service/internal/pkg/constvars"
	"carepass-service/internal/pkg/exceptions"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// PaymentRecordedEvent is the payload published after a payment is persisted.
type PaymentRecordedEvent struct {
	ReferenceID        string    `json:"referenceId"`
	UserID             string    `json:"userId"`
	PromoCode          string    `json:"promoCode,omitempty"`
	DiscountPercentage float64   `json:"discountPercentage"`
	Amount             string    `json:"amount"`
	RecordedAt         time.Time `json:"recordedAt"`
}

type PaymentEventPublisher interface {
	PublishPaymentRecorded(ctx context.Context, event *PaymentRecordedEvent) error
}

type paymentEventPublisher struct {
	ch    *amqp.Channel
	log   *zap.Logger
	queue string
	mu    sync.Mutex
}

// NewPaymentEventPublisher opens a channel on the given connection and
// declares the payment queue as durable.
func NewPaymentEventPublisher(conn *amqp.Connection, log *zap.Logger, queue string) (PaymentEventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, exceptions.ErrRabbitMQPublish(err, queue)
	}

	_, err = ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return nil, exceptions.ErrRabbitMQPublish(err, queue)
	}

	return &paymentEventPublisher{
		ch:    ch,
		log:   log,
		queue: queue,
	}, nil
}

func (p *paymentEventPublisher) PublishPaymentRecorded(ctx context.Context, event *PaymentRecordedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}
	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublish(err, p.queue)
	}

	p.log.Info("published payment recorded event",
		zap.String("queue", p.queue),
		zap.String("referenceId", event.ReferenceID),
	)
	return nil
}
