package notification

import (
	"context"
	"recognition-service/internal/app/contracts"
	"recognition-service/internal/pkg/constvars"
	"recognition-service/internal/pkg/dto/requests"
	"recognition-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher is satisfied by *amqp091.Channel.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type notificationService struct {
	Publisher Publisher
	Queue     string
	APIKey    string
	Log       *zap.Logger
}

func NewNotificationService(rabbitMQConnection *amqp091.Connection, queue, apiKey string, logger *zap.Logger) (contracts.NotificationService, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return NewNotificationServiceWithPublisher(channel, queue, apiKey, logger), nil
}

func NewNotificationServiceWithPublisher(publisher Publisher, queue, apiKey string, logger *zap.Logger) contracts.NotificationService {
	return &notificationService{
		Publisher: publisher,
		Queue:     queue,
		APIKey:    apiKey,
		Log:       logger,
	}
}

func (s *notificationService) Publish(ctx context.Context, payload *requests.NotificationPayload) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("notificationService.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.Queue),
		zap.String(constvars.LoggingTemplateIDKey, payload.TemplateID),
	)

	body, err := json.Marshal(payload)
	if err != nil {
		s.Log.Error("notificationService.Publish error marshaling payload",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     constvars.NotificationMessageType,
		"requeue_strategy": constvars.NotificationRequeueStrategy,
	}
	if s.APIKey != "" {
		headers["api_key"] = s.APIKey
	}

	message := amqp091.Publishing{
		ContentType:   constvars.MIMEApplicationJSON,
		Body:          body,
		DeliveryMode:  amqp091.Persistent,
		Priority:      0,
		Headers:       headers,
		CorrelationId: requestID,
	}

	err = s.Publisher.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		s.Log.Error("notificationService.Publish error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, s.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	s.Log.Info("notificationService.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.Queue),
	)
	return nil
}
