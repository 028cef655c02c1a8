package notification

import (
	"context"
	"errors"
	"net/http"
	"recognition-service/internal/pkg/constvars"
	"recognition-service/internal/pkg/dto/requests"
	"recognition-service/internal/pkg/exceptions"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func TestNotificationService_Publish(t *testing.T) {
	payload := &requests.NotificationPayload{
		TemplateID:   "tpl-1",
		EmailAddress: "recognition@example.org",
		Reference:    "RCGN-20240501-3F2A9C1B",
	}
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")

	t.Run("Publishes JSON To Queue", func(t *testing.T) {
		publisher := new(MockPublisher)
		publisher.On("PublishWithContext", mock.Anything, "", "notifications", false, false, mock.MatchedBy(func(msg amqp091.Publishing) bool {
			var decoded requests.NotificationPayload
			if err := json.Unmarshal(msg.Body, &decoded); err != nil {
				return false
			}
			return decoded.TemplateID == "tpl-1" &&
				msg.ContentType == constvars.MIMEApplicationJSON &&
				msg.DeliveryMode == amqp091.Persistent &&
				msg.Headers["message_type"] == constvars.NotificationMessageType &&
				msg.Headers["api_key"] == "secret" &&
				msg.CorrelationId == "req-1"
		})).Return(nil)

		service := NewNotificationServiceWithPublisher(publisher, "notifications", "secret", zap.NewNop())
		require.NoError(t, service.Publish(ctx, payload))
		publisher.AssertExpectations(t)
	})

	t.Run("Publish Failure", func(t *testing.T) {
		publisher := new(MockPublisher)
		publisher.On("PublishWithContext", mock.Anything, "", "notifications", false, false, mock.Anything).Return(errors.New("channel closed"))

		service := NewNotificationServiceWithPublisher(publisher, "notifications", "", zap.NewNop())
		err := service.Publish(ctx, payload)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusInternalServerError, customErr.StatusCode)
	})
}
