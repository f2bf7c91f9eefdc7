package app

import (
	"context"
	"log"
	"sync"
	"time"

	"snake/internal/domain"
)

type App struct {
	state    *domain.GameState
	interval time.Duration

	latest   domain.Snapshot
	latestMu sync.RWMutex

	eventCh chan AppEvent
	done    chan struct{}

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

type AppEvent struct {
	Type    AppEventType
	Payload interface{}
}

type AppEventType int

const (
	AppEventStateUpdated AppEventType = iota
	AppEventGameOver
)

// GameOverPayload rides on AppEventGameOver.
type GameOverPayload struct {
	Score int
	Ticks int
}

func New(state *domain.GameState, interval time.Duration) *App {
	return &App{
		state:    state,
		interval: interval,
		latest:   state.Snapshot(),
		eventCh:  make(chan AppEvent, 100),
		done:     make(chan struct{}),
	}
}

func NewFromConfig(config *domain.GameConfig) (*App, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return New(domain.NewGameState(config), config.TickInterval), nil
}

func (a *App) Start(ctx context.Context) error {
	a.ctx, a.cancel = context.WithCancel(ctx)

	a.wg.Add(1)
	go a.tickLoop(a.ctx)

	log.Printf("APP: started, board %dx%d, tick %v", a.state.Field.Width, a.state.Field.Height, a.interval)

	return nil
}

func (a *App) Stop() {
	if a.cancel != nil {
		a.cancel()
	}
	a.wg.Wait()
}

// Done is closed once the tick loop has exited.
func (a *App) Done() <-chan struct{} {
	return a.done
}

func (a *App) Events() <-chan AppEvent {
	return a.eventCh
}

func (a *App) GetState() domain.Snapshot {
	a.latestMu.RLock()
	defer a.latestMu.RUnlock()
	return a.latest
}

func (a *App) SendSteer(dir domain.Direction) bool {
	return a.state.SetDirection(dir)
}

func (a *App) tickLoop(ctx context.Context) {
	defer a.wg.Done()
	defer close(a.done)

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if over := a.doTick(ctx); over {
				return
			}
		}
	}
}

func (a *App) doTick(ctx context.Context) bool {
	result := a.state.Tick()
	snap := a.state.Snapshot()

	a.latestMu.Lock()
	a.latest = snap
	a.latestMu.Unlock()

	a.emit(AppEvent{Type: AppEventStateUpdated, Payload: snap})

	if !result.GameOver {
		return false
	}

	log.Printf("APP: game over after %d ticks, score %d", snap.Tick, result.Score)

	payload := GameOverPayload{Score: result.Score, Ticks: snap.Tick}
	select {
	case a.eventCh <- AppEvent{Type: AppEventGameOver, Payload: payload}:
	case <-ctx.Done():
	}
	return true
}

func (a *App) emit(event AppEvent) {
	select {
	case a.eventCh <- event:
	default:
		log.Println("APP: event channel full, dropping state update")
	}
}
