package compliance_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uaetax/internal/compliance"
	"uaetax/pkg/models"
)

func incompleteState() compliance.EvaluationState {
	return compliance.EvaluationState{
		Profile:           models.CompanyProfile{},
		UploadedDocuments: map[string]bool{},
	}
}

// Applying the same generation twice must not grow the set.
func TestSetApplyDeduplicates(t *testing.T) {
	set := compliance.NewSet()
	now := time.Date(2026, time.September, 25, 12, 0, 0, 0, time.UTC)

	generated := compliance.Generate(incompleteState(), now)
	require.NotEmpty(t, generated)

	set.Apply(generated)
	count := len(set.Active())

	set.Apply(compliance.Generate(incompleteState(), now))
	assert.Equal(t, count, len(set.Active()), "re-applying the same state must not duplicate notifications")
}

func TestSetApplyPreservesReadState(t *testing.T) {
	set := compliance.NewSet()
	now := time.Date(2026, time.September, 2, 12, 0, 0, 0, time.UTC)

	set.Apply(compliance.Generate(incompleteState(), now))
	set.MarkRead("setup-incomplete-profile")

	set.Apply(compliance.Generate(incompleteState(), now.Add(time.Minute)))

	for _, n := range set.Active() {
		if n.ID == "setup-incomplete-profile" {
			assert.True(t, n.IsRead, "regeneration must not reset the read flag")
			return
		}
	}
	t.Fatal("setup notification not found")
}

func TestSetDismissSuppressesRegeneration(t *testing.T) {
	set := compliance.NewSet()
	now := time.Date(2026, time.September, 2, 12, 0, 0, 0, time.UTC)

	set.Apply(compliance.Generate(incompleteState(), now))
	before := len(set.Active())
	require.Greater(t, before, 0)

	set.Dismiss("setup-incomplete-profile")
	assert.Equal(t, before-1, len(set.Active()))

	// The condition persists, so regeneration keeps producing the id; the
	// dismissal must keep suppressing it.
	set.Apply(compliance.Generate(incompleteState(), now.Add(time.Minute)))
	assert.Equal(t, before-1, len(set.Active()))
}

func TestSetResolvedNotificationsRemoved(t *testing.T) {
	set := compliance.NewSet()
	now := time.Date(2026, time.September, 2, 12, 0, 0, 0, time.UTC)

	set.Apply(compliance.Generate(incompleteState(), now))
	require.NotNil(t, findActive(set, "setup-incomplete-profile"))

	resolved := compliance.EvaluationState{
		Profile: models.CompanyProfile{
			CompanyName: "Gulf Trading LLC",
			TRNNumber:   "100123456789012",
		},
		UploadedDocuments: map[string]bool{
			"agent_certificate":      true,
			"bank_verification_slip": true,
		},
	}
	set.Apply(compliance.Generate(resolved, now))
	assert.Nil(t, findActive(set, "setup-incomplete-profile"))
}

func TestSetActiveSorted(t *testing.T) {
	set := compliance.NewSet()
	due := time.Date(2026, time.September, 30, 0, 0, 0, 0, time.UTC)
	profile := models.CompanyProfile{CITSubmissionDate: &due}
	state := compliance.EvaluationState{Profile: profile, UploadedDocuments: map[string]bool{}}

	// 5 days before both the CIT date and the VAT 28th: urgent deadlines
	// plus medium setup/document notifications.
	now := time.Date(2026, time.September, 25, 12, 0, 0, 0, time.UTC)
	set.Apply(compliance.Generate(state, now))

	active := set.Active()
	require.NotEmpty(t, active)
	for i := 1; i < len(active); i++ {
		assert.LessOrEqual(t, active[i-1].PriorityRank(), active[i].PriorityRank())
	}
}

func TestSetUnread(t *testing.T) {
	set := compliance.NewSet()
	now := time.Date(2026, time.September, 2, 12, 0, 0, 0, time.UTC)

	set.Apply(compliance.Generate(incompleteState(), now))
	total := len(set.Active())
	assert.Equal(t, total, set.Unread())

	set.MarkRead("setup-incomplete-profile")
	assert.Equal(t, total-1, set.Unread())
}

// Concurrent Apply calls (timer tick vs. profile-change trigger) must not
// race or duplicate.
func TestSetConcurrentApply(t *testing.T) {
	set := compliance.NewSet()
	now := time.Date(2026, time.September, 25, 12, 0, 0, 0, time.UTC)
	generated := compliance.Generate(incompleteState(), now)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			set.Apply(generated)
		}()
	}
	wg.Wait()

	assert.Equal(t, len(generated), len(set.Active()))
}

func TestSchedulerRunAndTrigger(t *testing.T) {
	set := compliance.NewSet()
	scheduler := compliance.NewScheduler(set, incompleteState, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		scheduler.Run(ctx)
		close(done)
	}()

	// The initial evaluation populates the set.
	assert.Eventually(t, func() bool {
		return len(set.Active()) > 0
	}, time.Second, 10*time.Millisecond)

	count := len(set.Active())
	scheduler.Trigger()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, count, len(set.Active()), "triggered re-evaluation must not duplicate")

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancellation")
	}
}

func findActive(set *compliance.Set, id string) *models.Notification {
	for _, n := range set.Active() {
		if n.ID == id {
			cp := n
			return &cp
		}
	}
	return nil
}
