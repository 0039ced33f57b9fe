package scheduler

import (
	"sort"
	"sync"
	"time"
)

// Manual is a Scheduler driven by explicit Advance calls. Callbacks run on the
// advancing goroutine in due order, which makes timer-heavy logic testable
// without sleeping.
type Manual struct {
	mu      sync.Mutex
	now     time.Duration
	nextID  int
	pending map[int]*manualEntry
}

type manualEntry struct {
	due time.Duration
	fn  func()
}

func NewManual() *Manual {
	return &Manual{pending: make(map[int]*manualEntry)}
}

func (m *Manual) AfterFunc(d time.Duration, fn func()) CancelFunc {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.pending[id] = &manualEntry{due: m.now + d, fn: fn}

	return func() bool {
		m.mu.Lock()
		defer m.mu.Unlock()
		_, ok := m.pending[id]
		delete(m.pending, id)
		return ok
	}
}

// Advance moves the clock forward and fires every callback that came due.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now += d
	now := m.now

	type firing struct {
		id  int
		due time.Duration
		fn  func()
	}
	var due []firing
	for id, e := range m.pending {
		if e.due <= now {
			due = append(due, firing{id: id, due: e.due, fn: e.fn})
			delete(m.pending, id)
		}
	}
	m.mu.Unlock()

	sort.Slice(due, func(i, j int) bool { return due[i].due < due[j].due })
	for _, f := range due {
		f.fn()
	}
}

// Pending returns how many callbacks are scheduled but not yet fired.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}
