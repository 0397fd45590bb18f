package notification

import (
	"context"
	"fmt"
	"sync"

	"barangay-health-service/internal/app/contracts"
	"barangay-health-service/internal/app/models"
	"barangay-health-service/internal/pkg/constvars"
	"barangay-health-service/internal/pkg/exceptions"
	"barangay-health-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// channel is the subset of *amqp.Channel used by the publisher.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type Publisher struct {
	ch        channel
	queueName string
	log       *zap.Logger
	mu        sync.Mutex
}

// NewPublisher opens a channel on conn and declares the durable notification queue.
func NewPublisher(conn *amqp.Connection, queueName string, log *zap.Logger) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, exceptions.ErrRabbitMQOpenChannel(err)
	}

	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		ch.Close()
		return nil, exceptions.ErrRabbitMQOpenChannel(err)
	}

	return newPublisher(ch, queueName, log), nil
}

func newPublisher(ch channel, queueName string, log *zap.Logger) *Publisher {
	return &Publisher{ch: ch, queueName: queueName, log: log}
}

func (p *Publisher) Publish(ctx context.Context, notification *models.Notification) error {
	requestID := utils.GetRequestID(ctx)
	p.log.Info("Publisher.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, p.queueName),
	)

	if notification == nil {
		return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("nil notification"), p.queueName)
	}

	body, err := json.Marshal(notification)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Type:         notification.Type,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.PublishWithContext(ctx, "", p.queueName, false, false, msg); err != nil {
		p.log.Error("Publisher.Publish error calling PublishWithContext",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}

	p.log.Info("Publisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, p.queueName),
	)
	return nil
}

func (p *Publisher) Close() error {
	return p.ch.Close()
}

var _ contracts.NotificationPublisher = (*Publisher)(nil)
