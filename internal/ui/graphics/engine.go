package graphics

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"snake/internal/domain"
	"snake/internal/ui/graphics/screens"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

const windowTitle = "Snake"

type Engine struct {
	width  int
	height int

	screen types.Screen

	state  domain.Snapshot
	dataMu sync.RWMutex

	eventCh chan types.UIEvent
	quit    atomic.Bool
}

func NewEngine(field *domain.Field, tileSize int, initial domain.Snapshot) *Engine {
	types.InitFonts()

	e := &Engine{
		width:   field.Width * tileSize,
		height:  field.Height * tileSize,
		state:   initial,
		eventCh: make(chan types.UIEvent, 100),
	}
	e.screen = screens.NewGameScreen(e, field, tileSize)

	return e
}

func (e *Engine) Run() error {
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle(windowTitle)

	if err := ebiten.RunGame(e); err != nil {
		return fmt.Errorf("run game window: %w", err)
	}
	return nil
}

func (e *Engine) Update() error {
	if e.quit.Load() {
		return ebiten.Termination
	}

	e.pushState()

	e.handleEvent(e.screen.Update())

	if e.quit.Load() {
		return ebiten.Termination
	}
	return nil
}

func (e *Engine) Draw(screen *ebiten.Image) {
	e.pushState()

	e.screen.Draw(screen)
}

func (e *Engine) pushState() {
	if updater, ok := e.screen.(GameStateUpdater); ok {
		e.dataMu.RLock()
		updater.SetState(e.state)
		e.dataMu.RUnlock()
	}
}

func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.width, e.height
}

func (e *Engine) Size() (int, int) {
	return e.width, e.height
}

func (e *Engine) Events() <-chan types.UIEvent {
	return e.eventCh
}

func (e *Engine) SetState(state domain.Snapshot) {
	e.dataMu.Lock()
	e.state = state
	e.dataMu.Unlock()
}

// Close asks the window to shut down on the next frame.
func (e *Engine) Close() {
	e.quit.Store(true)
}

func (e *Engine) handleEvent(event types.UIEvent) {
	switch event.Type {
	case types.UIEventNone:
		return

	case types.UIEventQuit:
		e.quit.Store(true)
		select {
		case e.eventCh <- event:
		default:
		}

	default:
		select {
		case e.eventCh <- event:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
}

type GameStateUpdater interface {
	SetState(state domain.Snapshot)
}
