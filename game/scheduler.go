package game

import (
	"sort"
	"time"
)

// Scheduler runs fn once after d. The returned cancel stops a task that has not fired yet
type Scheduler interface {
	After(d time.Duration, fn func()) (cancel func())
}

// MockScheduler is a manually advanced Scheduler for tests
// Tasks fire synchronously on the goroutine calling Advance
type MockScheduler struct {
	now   time.Duration
	seq   int
	tasks []*mockTask
}

type mockTask struct {
	at        time.Duration
	seq       int
	fn        func()
	cancelled bool
}

// NewMockScheduler creates a scheduler at virtual time zero
func NewMockScheduler() *MockScheduler {
	return &MockScheduler{}
}

// After implements Scheduler
func (m *MockScheduler) After(d time.Duration, fn func()) func() {
	m.seq++
	task := &mockTask{at: m.now + d, seq: m.seq, fn: fn}
	m.tasks = append(m.tasks, task)
	return func() { task.cancelled = true }
}

// Advance moves virtual time forward and runs every task that came due, in deadline order
func (m *MockScheduler) Advance(d time.Duration) {
	m.now += d

	for {
		due := m.popDue()
		if due == nil {
			return
		}
		if !due.cancelled {
			due.fn()
		}
	}
}

// Pending returns the number of tasks not yet fired or cancelled
func (m *MockScheduler) Pending() int {
	n := 0
	for _, task := range m.tasks {
		if !task.cancelled {
			n++
		}
	}
	return n
}

// popDue removes and returns the earliest due task, nil if none
func (m *MockScheduler) popDue() *mockTask {
	sort.SliceStable(m.tasks, func(i, j int) bool {
		if m.tasks[i].at != m.tasks[j].at {
			return m.tasks[i].at < m.tasks[j].at
		}
		return m.tasks[i].seq < m.tasks[j].seq
	})

	if len(m.tasks) == 0 || m.tasks[0].at > m.now {
		return nil
	}
	task := m.tasks[0]
	m.tasks = m.tasks[1:]
	return task
}
