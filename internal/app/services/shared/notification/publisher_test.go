package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"barangay-health-service/internal/app/models"
	"barangay-health-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockChannel struct {
	mock.Mock
}

func (m *mockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func (m *mockChannel) Close() error {
	return m.Called().Error(0)
}

func TestPublisher_Publish(t *testing.T) {
	notification := &models.Notification{
		Type:       constvars.NotificationVaccinationDue,
		Recipient:  "parent-1",
		Subject:    "BCG due",
		Payload:    map[string]string{"babyId": "baby-1"},
		OccurredAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("Publishes Persistent JSON", func(t *testing.T) {
		ch := new(mockChannel)
		ch.On("PublishWithContext", mock.Anything, "", "health.notifications", false, false, mock.MatchedBy(func(msg amqp.Publishing) bool {
			var decoded models.Notification
			if err := json.Unmarshal(msg.Body, &decoded); err != nil {
				return false
			}
			return msg.DeliveryMode == amqp.Persistent &&
				msg.ContentType == constvars.MIMEApplicationJSON &&
				decoded.Recipient == "parent-1"
		})).Return(nil)

		p := newPublisher(ch, "health.notifications", zap.NewNop())
		err := p.Publish(context.Background(), notification)

		require.NoError(t, err)
		ch.AssertExpectations(t)
	})

	t.Run("Wraps Broker Error", func(t *testing.T) {
		ch := new(mockChannel)
		ch.On("PublishWithContext", mock.Anything, "", "health.notifications", false, false, mock.Anything).
			Return(errors.New("channel closed"))

		p := newPublisher(ch, "health.notifications", zap.NewNop())
		err := p.Publish(context.Background(), notification)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "channel closed")
	})

	t.Run("Rejects Nil Notification", func(t *testing.T) {
		ch := new(mockChannel)
		p := newPublisher(ch, "health.notifications", zap.NewNop())

		assert.Error(t, p.Publish(context.Background(), nil))
		ch.AssertNotCalled(t, "PublishWithContext")
	})
}
