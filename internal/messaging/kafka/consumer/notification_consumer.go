package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-leaveflow/internal/events"
	"go-leaveflow/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type Deliverer interface {
	Deliver(ctx context.Context, event events.LeaveNotificationEvent) error
}

var (
	initialBackoff = time.Second
	maxBackoff     = time.Minute
)

// retryBackoff doubles the wait after every failure up to maxBackoff.
type retryBackoff struct {
	next time.Duration
}

func newRetryBackoff() *retryBackoff {
	return &retryBackoff{next: initialBackoff}
}

func (b *retryBackoff) current() time.Duration { return b.next }

func (b *retryBackoff) reset() { b.next = initialBackoff }

// wait sleeps for the current delay and reports false if ctx ended first.
func (b *retryBackoff) wait(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(b.next):
	}
	b.next *= 2
	if b.next > maxBackoff {
		b.next = maxBackoff
	}
	return true
}

// ConsumeLeaveNotifications sends every relayed notification and commits its
// offset only once the mail went out. A failed send is retried with backoff
// until it succeeds or ctx is done.
func ConsumeLeaveNotifications(
	ctx context.Context,
	reader MessageReader,
	deliverer Deliverer,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_notifications")
	log.Info("leave notification consumer started")

	fetchBackoff := newRetryBackoff()
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave notification consumer stopped")
				return
			}
			log.Error("fetch leave notification message failed",
				zap.Duration("retry_in", fetchBackoff.current()),
				zap.Error(err),
			)
			if !fetchBackoff.wait(ctx) {
				log.Info("leave notification consumer stopped")
				return
			}
			continue
		}
		fetchBackoff.reset()

		if !handleNotification(ctx, msg, deliverer, log) {
			return
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit leave notification message failed", zap.Error(err))
			continue
		}
	}
}

// handleNotification reports false only when ctx ended before delivery.
func handleNotification(ctx context.Context, msg kafkago.Message, deliverer Deliverer, log *zap.Logger) bool {
	var event events.LeaveNotificationEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode leave notification event failed",
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		return true
	}

	backoff := newRetryBackoff()
	for attempt := 1; ; attempt++ {
		err := deliverer.Deliver(ctx, event)
		if err == nil {
			return true
		}
		if errors.Is(err, notification.ErrNoRecipients) {
			log.Warn("leave notification without recipients, skipping",
				zap.String("leave_id", event.LeaveID),
				zap.String("kind", event.Kind),
			)
			return true
		}

		log.Error("deliver leave notification failed",
			zap.String("leave_id", event.LeaveID),
			zap.String("kind", event.Kind),
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", backoff.current()),
			zap.Error(err),
		)

		if !backoff.wait(ctx) {
			return false
		}
	}
}
