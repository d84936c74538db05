package app

import (
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

// deferredTask is the payload of an interrupt event carrying scheduled work
type deferredTask struct {
	fn        func()
	cancelled atomic.Bool
}

// LoopScheduler delivers deferred work onto the screen's event queue
// The timer fires on its own goroutine; fn runs on whichever goroutine handles the interrupt
type LoopScheduler struct {
	screen tcell.Screen
	log    zerolog.Logger
}

// NewLoopScheduler creates a scheduler posting to screen
func NewLoopScheduler(screen tcell.Screen, logger zerolog.Logger) *LoopScheduler {
	return &LoopScheduler{screen: screen, log: logger}
}

// After implements game.Scheduler
func (s *LoopScheduler) After(d time.Duration, fn func()) func() {
	task := &deferredTask{fn: fn}
	timer := time.AfterFunc(d, func() {
		if task.cancelled.Load() {
			return
		}
		if err := s.screen.PostEvent(tcell.NewEventInterrupt(task)); err != nil {
			s.log.Warn().Err(err).Msg("deferred task dropped")
		}
	})

	return func() {
		task.cancelled.Store(true)
		timer.Stop()
	}
}

// runDeferred executes an interrupt payload if it is a live deferred task
func runDeferred(ev *tcell.EventInterrupt) bool {
	task, ok := ev.Data().(*deferredTask)
	if !ok || task.cancelled.Load() {
		return false
	}
	task.fn()
	return true
}
