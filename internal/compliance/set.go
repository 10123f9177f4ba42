package compliance

import (
	"sync"

	"uaetax/pkg/models"
)

// Set is the in-memory notification set. All mutation funnels through one
// mutex so concurrent triggers (timer tick vs. profile-change tick) always
// see a consistent prior state for de-duplication.
//
// Lifecycle per id: absent -> active(unread) -> read -> dismissed(removed).
// A dismissed id stays suppressed for as long as regeneration keeps
// producing it; once the underlying condition clears and the id drops out
// of a generation pass, the suppression is forgotten.
type Set struct {
	mu        sync.Mutex
	active    map[string]models.Notification
	dismissed map[string]bool
}

func NewSet() *Set {
	return &Set{
		active:    make(map[string]models.Notification),
		dismissed: make(map[string]bool),
	}
}

// Apply reconciles a freshly generated notification list against the set.
// Generated ids already present keep their read state and creation time;
// new ids are added unread; active ids the generator no longer produces are
// removed (their condition has resolved). Applying the same generation
// twice is a no-op.
func (s *Set) Apply(generated []models.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[string]models.Notification, len(generated))
	seen := make(map[string]bool, len(generated))
	for _, n := range generated {
		seen[n.ID] = true
		if s.dismissed[n.ID] {
			continue
		}
		if prev, ok := s.active[n.ID]; ok {
			n.IsRead = prev.IsRead
			n.CreatedAt = prev.CreatedAt
		}
		next[n.ID] = n
	}
	s.active = next

	for id := range s.dismissed {
		if !seen[id] {
			delete(s.dismissed, id)
		}
	}
}

// MarkRead flags a notification as read. Unknown ids are ignored.
func (s *Set) MarkRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n, ok := s.active[id]; ok {
		n.IsRead = true
		s.active[id] = n
	}
}

// Dismiss removes a notification and suppresses regeneration of its id
// while the underlying condition persists.
func (s *Set) Dismiss(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.active[id]; ok {
		delete(s.active, id)
		s.dismissed[id] = true
	}
}

// Active returns the current notifications sorted by priority rank, then
// ascending days remaining.
func (s *Set) Active() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Notification, 0, len(s.active))
	for _, n := range s.active {
		out = append(out, n)
	}
	models.SortNotifications(out)
	return out
}

// Unread counts the active notifications not yet read.
func (s *Set) Unread() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, n := range s.active {
		if !n.IsRead {
			count++
		}
	}
	return count
}
