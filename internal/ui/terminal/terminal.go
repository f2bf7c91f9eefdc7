package terminal

import (
	"context"
	"fmt"

	"snake/internal/app"
	"snake/internal/domain"

	"github.com/gdamore/tcell/v2"
)

// Game is the part of the app the terminal frontend talks to.
type Game interface {
	Events() <-chan app.AppEvent
	GetState() domain.Snapshot
	SendSteer(dir domain.Direction) bool
}

type Frontend struct {
	screen   tcell.Screen
	renderer *Renderer
}

func New(screen tcell.Screen) *Frontend {
	return &Frontend{
		screen:   screen,
		renderer: NewRenderer(screen),
	}
}

// NewScreen opens the real terminal.
func NewScreen() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create terminal screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init terminal screen: %w", err)
	}
	s.HideCursor()
	return s, nil
}

// Run draws every state update and forwards keys until the player quits or
// ctx is cancelled. The final frame stays on screen after game over.
func (f *Frontend) Run(ctx context.Context, game Game) error {
	events := make(chan tcell.Event, 32)
	quit := make(chan struct{})
	defer close(quit)
	go f.screen.ChannelEvents(events, quit)

	f.renderer.Draw(game.GetState())

	appEvents := game.Events()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				f.screen.Sync()
				f.renderer.Draw(game.GetState())
			case *tcell.EventKey:
				if IsQuit(ev) {
					return nil
				}
				if dir := KeyDirection(ev); dir != domain.DirectionNone {
					game.SendSteer(dir)
				}
			}

		case ev, ok := <-appEvents:
			if !ok {
				appEvents = nil
				continue
			}
			switch ev.Type {
			case app.AppEventStateUpdated:
				if snap, ok := ev.Payload.(domain.Snapshot); ok {
					f.renderer.Draw(snap)
				}
			case app.AppEventGameOver:
				f.renderer.Draw(game.GetState())
			}
		}
	}
}
