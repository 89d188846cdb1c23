// Package notification renders and delivers the leave workflow mails.
package notification

import (
	"fmt"
	"strings"
	"time"
)

const (
	KindSubmission         = "leave_submitted"
	KindSupervisorApproved = "supervisor_approved"
	KindSupervisorRejected = "supervisor_rejected"
	KindHRDecision         = "hr_decision"
)

const dateLayout = "2006-01-02"

type Message struct {
	Kind    string
	LeaveID string
	To      []string
	Subject string
	Body    string
}

// LeaveDetails is the snapshot of a leave request the mails are rendered from.
type LeaveDetails struct {
	LeaveID         string
	EmployeeName    string
	EmployeeEmail   string
	SupervisorName  string
	SupervisorEmail string
	StartDate       time.Time
	EndDate         time.Time
	Reason          string
	Status          string
}

func (d LeaveDetails) start() string { return d.StartDate.Format(dateLayout) }
func (d LeaveDetails) end() string   { return d.EndDate.Format(dateLayout) }

func recipients(addrs ...string) []string {
	out := make([]string, 0, len(addrs))
	for _, a := range addrs {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}

// BuildSubmission notifies the assigned supervisor of a new request.
func BuildSubmission(d LeaveDetails) *Message {
	to := recipients(d.SupervisorEmail)
	if len(to) == 0 {
		return nil
	}
	return &Message{
		Kind:    KindSubmission,
		LeaveID: d.LeaveID,
		To:      to,
		Subject: fmt.Sprintf("New Leave Request from %s", d.EmployeeName),
		Body: fmt.Sprintf(
			"Dear %s,\n\n"+
				"%s has submitted a leave request.\n\n"+
				"📅 Period: %s to %s\n"+
				"📝 Reason: %s\n\n"+
				"Please log in to the system to review and approve or reject this request.\n\n"+
				"Thank you",
			d.SupervisorName, d.EmployeeName, d.start(), d.end(), d.Reason,
		),
	}
}

// BuildSupervisorApproved notifies the HR pool. An empty pool yields nil.
func BuildSupervisorApproved(d LeaveDetails, hrEmails []string) *Message {
	to := recipients(hrEmails...)
	if len(to) == 0 {
		return nil
	}
	return &Message{
		Kind:    KindSupervisorApproved,
		LeaveID: d.LeaveID,
		To:      to,
		Subject: fmt.Sprintf("Supervisor Approved Leave for %s", d.EmployeeName),
		Body: fmt.Sprintf(
			"Dear HR Team,\n\n"+
				"The supervisor %s has approved a leave request for %s.\n\n"+
				"📅 Period: %s to %s\n"+
				"📝 Reason: %s\n\n"+
				"Please log in to complete the final HR review.\n\n"+
				"Thank you,\nSystem Notification",
			d.SupervisorName, d.EmployeeName, d.start(), d.end(), d.Reason,
		),
	}
}

func BuildSupervisorRejected(d LeaveDetails) *Message {
	to := recipients(d.EmployeeEmail)
	if len(to) == 0 {
		return nil
	}
	return &Message{
		Kind:    KindSupervisorRejected,
		LeaveID: d.LeaveID,
		To:      to,
		Subject: "Leave Request Rejected",
		Body: fmt.Sprintf(
			"Dear %s,\n\n"+
				"Your leave request from %s to %s has been rejected by your supervisor, %s.\n\n"+
				"Please contact your supervisor for more details.\n\n"+
				"Best regards,\nHR Department",
			d.EmployeeName, d.start(), d.end(), d.SupervisorName,
		),
	}
}

// BuildHRDecision uses d.Status, the status after the HR decision.
func BuildHRDecision(d LeaveDetails) *Message {
	to := recipients(d.EmployeeEmail)
	if len(to) == 0 {
		return nil
	}
	return &Message{
		Kind:    KindHRDecision,
		LeaveID: d.LeaveID,
		To:      to,
		Subject: fmt.Sprintf("Leave Request %s by HR", strings.ToUpper(d.Status)),
		Body: fmt.Sprintf(
			"Dear %s,\n\n"+
				"Your leave request from %s to %s has been %s by HR.\n\n"+
				"Thank you.",
			d.EmployeeName, d.start(), d.end(), strings.ToLower(d.Status),
		),
	}
}
