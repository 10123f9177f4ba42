package models

import (
	"sort"
	"time"
)

// NotificationType distinguishes what a notification is about.
type NotificationType string

const (
	NotificationDeadline        NotificationType = "deadline"
	NotificationMissingDocument NotificationType = "missing_document"
	NotificationSetupIncomplete NotificationType = "setup_incomplete"
)

// NotificationPriority orders notifications for display.
type NotificationPriority string

const (
	PriorityUrgent NotificationPriority = "urgent"
	PriorityHigh   NotificationPriority = "high"
	PriorityMedium NotificationPriority = "medium"
	PriorityLow    NotificationPriority = "low"
)

// NotificationAction is an optional UI navigation hint. The engine only
// carries it; it has no UI dependency of its own.
type NotificationAction struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// Notification is an advisory reminder derived from profile and
// completeness state. It is never persisted as a tax-authority record.
type Notification struct {
	ID            string               `json:"id"`
	Type          NotificationType     `json:"type"`
	Priority      NotificationPriority `json:"priority"`
	Title         string               `json:"title"`
	Message       string               `json:"message"`
	DueDate       *time.Time           `json:"due_date,omitempty"`
	DaysRemaining *int                 `json:"days_remaining,omitempty"`
	Action        *NotificationAction  `json:"action,omitempty"`
	IsRead        bool                 `json:"is_read"`
	CreatedAt     time.Time            `json:"created_at"`
}

// PriorityRank maps priority to a sortable rank; lower sorts first.
func (n *Notification) PriorityRank() int {
	switch n.Priority {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	default:
		return 3
	}
}

// SortNotifications orders by priority rank, then ascending days remaining.
// Notifications without a days-remaining value sort after dated ones within
// the same priority.
func SortNotifications(ns []Notification) {
	sort.SliceStable(ns, func(i, j int) bool {
		ri, rj := ns[i].PriorityRank(), ns[j].PriorityRank()
		if ri != rj {
			return ri < rj
		}
		di, dj := ns[i].DaysRemaining, ns[j].DaysRemaining
		switch {
		case di == nil && dj == nil:
			return false
		case di == nil:
			return false
		case dj == nil:
			return true
		default:
			return *di < *dj
		}
	})
}
