// Package game holds the state and rules of a color guessing session
package game

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/color-guess/constants"
	"github.com/lixenwraith/color-guess/palette"
)

// Snapshot is a read-only copy of session state for rendering
type Snapshot struct {
	Target  palette.Color
	Options []palette.Color
	Score   int
	Status  Status
	Round   int
}

// Session owns the target, options, score and status of one game
// Not safe for concurrent use; the host serializes all calls on its event loop
type Session struct {
	rng       *rand.Rand
	scheduler Scheduler
	delay     time.Duration
	log       zerolog.Logger

	target  palette.Color
	options []palette.Color
	score   int
	status  Status
	round   int

	// Deferred round starts that have not fired, keyed by issue order
	pending map[int]func()
	nextID  int
	closed  bool
}

// NewSession creates a session and starts its first round
// A nil rng uses the process-wide source; a non-positive delay uses constants.RevealDelay
func NewSession(rng *rand.Rand, scheduler Scheduler, delay time.Duration, logger zerolog.Logger) *Session {
	if delay <= 0 {
		delay = constants.RevealDelay
	}

	s := &Session{
		rng:       rng,
		scheduler: scheduler,
		delay:     delay,
		log:       logger.With().Str("component", "session").Logger(),
		pending:   make(map[int]func()),
	}
	s.NewRound()
	return s
}

// NewRound replaces target and options with a fresh set and clears the status
// Score is never touched
func (s *Session) NewRound() {
	if s.closed {
		return
	}

	target := palette.Random(s.rng)
	options := make([]palette.Color, 0, constants.OptionCount)
	options = append(options, target)

	seen := map[palette.Color]struct{}{target: {}}
	for len(options) < constants.OptionCount {
		c := palette.Random(s.rng)
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		options = append(options, c)
	}

	s.shuffle(options)

	s.target = target
	s.options = options
	s.status = StatusEmpty
	s.round++

	s.log.Debug().Int("round", s.round).Str("target", string(target)).Msg("round started")
}

// Select compares choice to the target and returns the resulting status
// A match scores a point and schedules the next round after the reveal delay
func (s *Session) Select(choice palette.Color) Status {
	if choice != s.target {
		s.status = StatusIncorrect
		s.log.Debug().Int("round", s.round).Str("choice", string(choice)).Msg("wrong guess")
		return s.status
	}

	s.score++
	s.status = StatusCorrect
	s.log.Debug().Int("round", s.round).Int("score", s.score).Msg("correct guess")

	if s.scheduler != nil && !s.closed {
		s.nextID++
		id := s.nextID
		s.pending[id] = s.scheduler.After(s.delay, func() {
			delete(s.pending, id)
			s.NewRound()
		})
	}
	return s.status
}

// SelectIndex selects the option at index i in display order
// Returns false without changing state when i is out of range
func (s *Session) SelectIndex(i int) (Status, bool) {
	if i < 0 || i >= len(s.options) {
		return StatusEmpty, false
	}
	return s.Select(s.options[i]), true
}

// Snapshot copies the current state
func (s *Session) Snapshot() Snapshot {
	opts := make([]palette.Color, len(s.options))
	copy(opts, s.options)
	return Snapshot{
		Target:  s.target,
		Options: opts,
		Score:   s.score,
		Status:  s.status,
		Round:   s.round,
	}
}

// Target returns the color to identify this round
func (s *Session) Target() palette.Color { return s.target }

// Score returns the number of correct guesses so far
func (s *Session) Score() int { return s.score }

// Status returns the outcome of the latest selection
func (s *Session) Status() Status { return s.status }

// Delay returns the reveal delay between a correct guess and the next round
func (s *Session) Delay() time.Duration { return s.delay }

// Close cancels deferred round starts; later NewRound calls are no-ops
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for id, cancel := range s.pending {
		cancel()
		delete(s.pending, id)
	}
}

// shuffle is a Fisher-Yates shuffle over the session's random source
func (s *Session) shuffle(options []palette.Color) {
	swap := func(i, j int) { options[i], options[j] = options[j], options[i] }
	if s.rng == nil {
		rand.Shuffle(len(options), swap)
		return
	}
	s.rng.Shuffle(len(options), swap)
}
