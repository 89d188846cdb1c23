package notification

import (
	"context"
	"errors"

	"go-leaveflow/internal/events"
	"go-leaveflow/internal/metrics"

	"go.uber.org/zap"
)

var ErrNoRecipients = errors.New("notification has no recipients")

// Dispatcher delivers relayed notification events through a Mailer.
type Dispatcher struct {
	mailer Mailer
	logger *zap.Logger
}

func NewDispatcher(mailer Mailer, logger ...*zap.Logger) *Dispatcher {
	l := zap.L().Named("notification.dispatcher")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.dispatcher")
	}
	return &Dispatcher{mailer: mailer, logger: l}
}

func (d *Dispatcher) Deliver(ctx context.Context, event events.LeaveNotificationEvent) error {
	if len(event.To) == 0 {
		return ErrNoRecipients
	}

	msg := Message{
		Kind:    event.Kind,
		LeaveID: event.LeaveID,
		To:      event.To,
		Subject: event.Subject,
		Body:    event.Body,
	}
	if err := d.mailer.Send(ctx, msg); err != nil {
		metrics.NotificationsTotal.WithLabelValues(event.Kind, "failed").Inc()
		return err
	}

	metrics.NotificationsTotal.WithLabelValues(event.Kind, "sent").Inc()
	d.logger.Info("notification delivered",
		zap.String("kind", event.Kind),
		zap.String("leave_id", event.LeaveID),
		zap.String("request_id", event.RequestID),
	)
	return nil
}
