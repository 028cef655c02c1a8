package contracts

import (
	"context"
	"recognition-service/internal/pkg/dto/requests"
)

type NotificationService interface {
	Publish(ctx context.Context, payload *requests.NotificationPayload) error
}
