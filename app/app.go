// Package app runs the color guessing session on a terminal screen
package app

import (
	"context"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/color-guess/constants"
	"github.com/lixenwraith/color-guess/core"
	"github.com/lixenwraith/color-guess/game"
	"github.com/lixenwraith/color-guess/render"
)

// Sound plays guess feedback; *audio.SoundManager satisfies it
type Sound interface {
	PlayCorrect()
	PlayWrong()
	ToggleMute() bool
	IsMuted() bool
}

// Options configures an App
type Options struct {
	Rand  *rand.Rand
	Delay time.Duration

	// Sound is optional; nil plays nothing
	Sound Sound

	// Scheduler is optional; nil posts deferred rounds onto the screen's event queue
	Scheduler game.Scheduler

	Logger zerolog.Logger
}

// App owns the screen, the session and the keyboard focus
// All methods except Run's poller goroutine run on the event loop
type App struct {
	screen  tcell.Screen
	session *game.Session
	sound   Sound
	log     zerolog.Logger

	layout    render.Layout
	focus     int
	mouseDown bool
}

// New creates the app and starts the first round; the screen must already be initialized
func New(screen tcell.Screen, opts Options) *App {
	sched := opts.Scheduler
	if sched == nil {
		sched = NewLoopScheduler(screen, opts.Logger)
	}

	sound := opts.Sound
	if sound == nil {
		sound = &silentSound{}
	}

	a := &App{
		screen:  screen,
		session: game.NewSession(opts.Rand, sched, opts.Delay, opts.Logger),
		sound:   sound,
		log:     opts.Logger.With().Str("component", "app").Logger(),
	}
	a.layout = render.NewLayout(screen.Size())
	return a
}

// Session exposes the game state
func (a *App) Session() *game.Session { return a.session }

// Focus returns the focused option index
func (a *App) Focus() int { return a.focus }

// Layout returns the current element placement
func (a *App) Layout() render.Layout { return a.layout }

// Run draws the first frame and processes events until quit, ctx cancellation, or screen closure
func (a *App) Run(ctx context.Context) error {
	a.screen.EnableMouse()
	a.redraw()

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.HandleEvent(ev) {
				return nil
			}
		}
	}
}

// Close cancels deferred rounds so nothing runs against a torn-down session
func (a *App) Close() {
	a.session.Close()
}

// HandleEvent applies one event and redraws; returns false when the player quits
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if !a.handleKey(ev) {
			return false
		}

	case *tcell.EventMouse:
		a.handleMouse(ev)

	case *tcell.EventResize:
		a.layout = render.NewLayout(a.screen.Size())
		a.screen.Sync()

	case *tcell.EventInterrupt:
		if !runDeferred(ev) {
			return true
		}
	}

	a.redraw()
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		a.selectOption(a.focus)
	case tcell.KeyLeft:
		a.moveFocus(-1, 0)
	case tcell.KeyRight:
		a.moveFocus(1, 0)
	case tcell.KeyUp:
		a.moveFocus(0, -1)
	case tcell.KeyDown:
		a.moveFocus(0, 1)
	case tcell.KeyRune:
		r := ev.Rune()
		switch {
		case r >= '1' && r < '1'+constants.OptionCount:
			a.selectOption(int(r - '1'))
		case r == ' ':
			a.selectOption(a.focus)
		case r == 'h':
			a.moveFocus(-1, 0)
		case r == 'l':
			a.moveFocus(1, 0)
		case r == 'k':
			a.moveFocus(0, -1)
		case r == 'j':
			a.moveFocus(0, 1)
		case r == constants.KeyNewGame || r == constants.KeyRestart:
			a.newGame()
		case r == constants.KeyToggleSound:
			muted := a.sound.ToggleMute()
			a.log.Debug().Bool("muted", muted).Msg("sound toggled")
		case r == constants.KeyQuit:
			return false
		}
	}
	return true
}

// handleMouse acts on the press edge of the primary button only
func (a *App) handleMouse(ev *tcell.EventMouse) {
	pressed := ev.Buttons()&tcell.Button1 != 0
	if !pressed {
		a.mouseDown = false
		return
	}
	if a.mouseDown {
		return
	}
	a.mouseDown = true

	x, y := ev.Position()
	switch control, idx := a.layout.HitTest(x, y); control {
	case render.ControlOption:
		a.selectOption(idx)
	case render.ControlNewGame:
		a.newGame()
	}
}

func (a *App) selectOption(idx int) {
	status, ok := a.session.SelectIndex(idx)
	if !ok {
		return
	}
	a.focus = idx

	switch status {
	case game.StatusCorrect:
		a.sound.PlayCorrect()
	case game.StatusIncorrect:
		a.sound.PlayWrong()
	}
}

func (a *App) newGame() {
	a.session.NewRound()
	a.log.Debug().Int("score", a.session.Score()).Msg("manual restart")
}

// moveFocus steps through the option grid, stopping at its edges
func (a *App) moveFocus(dx, dy int) {
	cols := constants.GridColumns
	col, row := a.focus%cols, a.focus/cols
	col += dx
	row += dy

	rows := (constants.OptionCount + cols - 1) / cols
	if col < 0 || col >= cols || row < 0 || row >= rows {
		return
	}
	if next := row*cols + col; next < constants.OptionCount {
		a.focus = next
	}
}

func (a *App) redraw() {
	render.Draw(a.screen, a.layout, a.session.Snapshot(), render.View{
		Focus: a.focus,
		Muted: a.sound.IsMuted(),
	})
	a.screen.Show()
}

// silentSound is used when no audio device is wired in
type silentSound struct {
	muted bool
}

func (s *silentSound) PlayCorrect() {}
func (s *silentSound) PlayWrong() {}
func (s *silentSound) ToggleMute() bool { s.muted = !s.muted; return s.muted }
func (s *silentSound) IsMuted() bool { return s.muted }
