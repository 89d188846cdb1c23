package events

import "time"

const LeaveNotificationTopic = "leave.notifications.v1"

const EventLeaveNotificationRequested = "leave.notification.requested"

// LeaveNotificationEvent carries a fully rendered mail. Recipients are
// resolved when the event is written, not when it is delivered.
type LeaveNotificationEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	Kind       string    `json:"kind"`
	LeaveID    string    `json:"leave_id"`
	To         []string  `json:"to"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	OccurredAt time.Time `json:"occurred_at"`
}
