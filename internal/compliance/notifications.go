// Package compliance derives the rolling filing calendar from a company
// profile and turns it into prioritized, deduplicated notifications.
//
// The rule logic is a pure function of an evaluation state and a clock
// reading; the timing mechanism lives separately in Scheduler so the rules
// are unit-testable without fake timers.
package compliance

import (
	"fmt"
	"time"

	"uaetax/pkg/models"
)

// VATDueDay is the day of month a VAT return falls due: the 28th of the
// month following each calendar month.
const VATDueDay = 28

// Notification windows, in days before the due date.
const (
	vatWindow = 7
	vatUrgent = 3
	citWindow = 30
	citUrgent = 7
)

// Mandatory compliance documents checked by the missing-document rule,
// keyed by upload flag.
var mandatoryDocuments = map[string]string{
	"agent_certificate":      "Tax agent certificate",
	"bank_verification_slip": "Bank verification slip",
}

// EvaluationState is everything the notification rules read: the company
// profile and the upload flags of mandatory documents.
type EvaluationState struct {
	Profile           models.CompanyProfile
	UploadedDocuments map[string]bool
}

// NextVATDueDate returns the first VAT deadline on or after now: the next
// occurrence of the 28th.
func NextVATDueDate(now time.Time) time.Time {
	due := time.Date(now.Year(), now.Month(), VATDueDay, 0, 0, 0, 0, now.Location())
	if due.Before(startOfDay(now)) {
		due = due.AddDate(0, 1, 0)
	}
	return due
}

// Generate derives the active notification list for a state at a moment in
// time. Identifiers are stable across runs (they embed the due date or the
// document key), which makes regeneration idempotent: applying the same
// output twice cannot duplicate a notification.
func Generate(state EvaluationState, now time.Time) []models.Notification {
	var out []models.Notification

	// VAT filing deadline
	vatDue := NextVATDueDate(now)
	if d := daysBetween(now, vatDue); d > 0 && d <= vatWindow {
		priority := models.PriorityHigh
		if d <= vatUrgent {
			priority = models.PriorityUrgent
		}
		out = append(out, models.Notification{
			ID:            fmt.Sprintf("vat-deadline-%s", vatDue.Format("2006-01-02")),
			Type:          models.NotificationDeadline,
			Priority:      priority,
			Title:         "VAT return due",
			Message:       fmt.Sprintf("Your VAT return is due on %s (%d days remaining).", vatDue.Format("2 Jan 2006"), d),
			DueDate:       &vatDue,
			DaysRemaining: &d,
			Action:        &models.NotificationAction{Label: "Go to VAT filing", Path: "/vat/filing"},
			CreatedAt:     now,
		})
	}

	// CIT filing deadline
	if state.Profile.CITSubmissionDate != nil {
		citDue := *state.Profile.CITSubmissionDate
		if d := daysBetween(now, citDue); d > 0 && d <= citWindow {
			priority := models.PriorityHigh
			if d <= citUrgent {
				priority = models.PriorityUrgent
			}
			out = append(out, models.Notification{
				ID:            fmt.Sprintf("cit-deadline-%s", citDue.Format("2006-01-02")),
				Type:          models.NotificationDeadline,
				Priority:      priority,
				Title:         "Corporate tax return due",
				Message:       fmt.Sprintf("Your corporate tax return is due on %s (%d days remaining).", citDue.Format("2 Jan 2006"), d),
				DueDate:       &citDue,
				DaysRemaining: &d,
				Action:        &models.NotificationAction{Label: "Go to CIT filing", Path: "/cit/filing"},
				CreatedAt:     now,
			})
		}
	}

	// Profile completeness — persists until the mandatory fields are set.
	if !state.Profile.SetupComplete() {
		out = append(out, models.Notification{
			ID:        "setup-incomplete-profile",
			Type:      models.NotificationSetupIncomplete,
			Priority:  models.PriorityMedium,
			Title:     "Complete your company profile",
			Message:   "Company name and TRN are required before any return can be filed.",
			Action:    &models.NotificationAction{Label: "Open settings", Path: "/settings/profile"},
			CreatedAt: now,
		})
	}

	// Mandatory documents
	for key, title := range mandatoryDocuments {
		if state.UploadedDocuments[key] {
			continue
		}
		out = append(out, models.Notification{
			ID:        "missing-document-" + key,
			Type:      models.NotificationMissingDocument,
			Priority:  models.PriorityMedium,
			Title:     "Missing document: " + title,
			Message:   fmt.Sprintf("%s has not been uploaded yet.", title),
			Action:    &models.NotificationAction{Label: "Upload documents", Path: "/documents"},
			CreatedAt: now,
		})
	}

	return out
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween counts whole calendar days from now until due, both truncated
// to midnight in now's location.
func daysBetween(now, due time.Time) int {
	from := startOfDay(now)
	to := startOfDay(due.In(now.Location()))
	return int(to.Sub(from) / (24 * time.Hour))
}
