package notification

import (
	"context"
	"database/sql"
	"time"

	"go-leaveflow/internal/config"
	"go-leaveflow/internal/events"
	"go-leaveflow/internal/messaging/kafka"
	"go-leaveflow/internal/metrics"
	"go-leaveflow/internal/shared/apperror"
	"go-leaveflow/internal/shared/contextutil"

	"go.uber.org/zap"
)

const aggregateLeaveRequest = "leave_request"

// Publisher hands a rendered message to the delivery path. It runs inside
// the caller's transaction; a nil message is a no-op.
type Publisher interface {
	Publish(ctx context.Context, tx *sql.Tx, msg *Message) error
}

// NewPublisher returns the outbox publisher unless mode is direct.
func NewPublisher(mode string, outbox kafka.OutboxRepository, mailer Mailer, logger ...*zap.Logger) Publisher {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	if mode == config.NotificationDirect {
		return &DirectPublisher{mailer: mailer, logger: l.Named("notification.direct")}
	}
	return &OutboxPublisher{outbox: outbox, logger: l.Named("notification.outbox")}
}

// OutboxPublisher writes the message to outbox_events in tx, so the message
// exists if and only if the state change commits.
type OutboxPublisher struct {
	outbox kafka.OutboxRepository
	logger *zap.Logger
	now    func() time.Time
}

func (p *OutboxPublisher) Publish(ctx context.Context, tx *sql.Tx, msg *Message) error {
	if msg == nil {
		return nil
	}
	log := contextutil.GetLogger(ctx, p.logger)

	rid := contextutil.GetRequestID(ctx)
	now := time.Now
	if p.now != nil {
		now = p.now
	}

	payload := events.LeaveNotificationEvent{
		EventType:  events.EventLeaveNotificationRequested,
		RequestID:  rid,
		Kind:       msg.Kind,
		LeaveID:    msg.LeaveID,
		To:         msg.To,
		Subject:    msg.Subject,
		Body:       msg.Body,
		OccurredAt: now().UTC(),
	}

	event, err := kafka.NewOutboxEvent(
		rid,
		aggregateLeaveRequest,
		msg.LeaveID,
		events.EventLeaveNotificationRequested,
		events.LeaveNotificationTopic,
		payload,
	)
	if err != nil {
		return err
	}

	if err := p.outbox.WithTx(tx).Create(ctx, event); err != nil {
		log.Error("enqueue notification failed",
			zap.String("kind", msg.Kind),
			zap.String("leave_id", msg.LeaveID),
			zap.Error(err),
		)
		return err
	}

	metrics.NotificationsTotal.WithLabelValues(msg.Kind, "enqueued").Inc()
	log.Debug("notification enqueued",
		zap.String("kind", msg.Kind),
		zap.String("outbox_id", event.ID),
		zap.Int("recipients", len(msg.To)),
	)
	return nil
}

// DirectPublisher sends before the caller commits. A transport failure is
// returned so the caller rolls the state change back.
type DirectPublisher struct {
	mailer Mailer
	logger *zap.Logger
}

func (p *DirectPublisher) Publish(ctx context.Context, _ *sql.Tx, msg *Message) error {
	if msg == nil {
		return nil
	}
	log := contextutil.GetLogger(ctx, p.logger)

	if err := p.mailer.Send(ctx, *msg); err != nil {
		metrics.NotificationsTotal.WithLabelValues(msg.Kind, "failed").Inc()
		log.Error("send notification failed",
			zap.String("kind", msg.Kind),
			zap.String("leave_id", msg.LeaveID),
			zap.Error(err),
		)
		return apperror.Wrap(err,
			apperror.ErrServiceUnavailable.Code,
			apperror.ErrServiceUnavailable.Message,
			apperror.ErrServiceUnavailable.HTTPStatus,
		)
	}

	metrics.NotificationsTotal.WithLabelValues(msg.Kind, "sent").Inc()
	log.Info("notification sent", zap.String("kind", msg.Kind), zap.Strings("to", msg.To))
	return nil
}
