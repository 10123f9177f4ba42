package document

import (
	"fmt"
	"sync"
	"time"
)

// NumberAllocator issues sequential invoice numbers in the tenant format
// INV-YYYYMMDD-NNNN. Safe for concurrent use; counters are per issue date.
type NumberAllocator struct {
	mu       sync.Mutex
	counters map[string]int
}

func NewNumberAllocator() *NumberAllocator {
	return &NumberAllocator{counters: make(map[string]int)}
}

// Next returns the next unused invoice number for the given issue date.
func (a *NumberAllocator) Next(issueDate time.Time) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	day := issueDate.Format("20060102")
	a.counters[day]++
	return fmt.Sprintf("INV-%s-%04d", day, a.counters[day])
}

// Seed advances a date's counter to at least n, for resuming after the
// highest previously issued number has been loaded from storage.
func (a *NumberAllocator) Seed(issueDate time.Time, n int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	day := issueDate.Format("20060102")
	if a.counters[day] < n {
		a.counters[day] = n
	}
}
