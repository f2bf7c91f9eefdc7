package terminal

import (
	"context"
	"sync"
	"testing"
	"time"

	"snake/internal/app"
	"snake/internal/domain"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(60, 30)
	t.Cleanup(s.Fini)
	return s
}

func runeAt(s tcell.Screen, c domain.Coord) rune {
	col, row := Cell(c)
	ch, _, _, _ := s.GetContent(col, row)
	return ch
}

func textAt(s tcell.Screen, x, y, n int) string {
	out := make([]rune, 0, n)
	for i := 0; i < n; i++ {
		ch, _, _, _ := s.GetContent(x+i, y)
		out = append(out, ch)
	}
	return string(out)
}

func TestRendererDrawsEntities(t *testing.T) {
	s := newSimScreen(t)
	r := NewRenderer(s)

	snap := domain.Snapshot{
		Width:  10,
		Height: 8,
		Head:   domain.Coord{X: 3, Y: 2},
		Body:   []domain.Coord{{X: 2, Y: 2}, {X: 1, Y: 2}},
		Food:   domain.Coord{X: 7, Y: 5},
	}
	r.Draw(snap)

	if got := runeAt(s, snap.Head); got != runeHead {
		t.Fatalf("expected head rune, got %q", got)
	}
	for _, part := range snap.Body {
		if got := runeAt(s, part); got != runeBody {
			t.Fatalf("expected body rune at %v, got %q", part, got)
		}
	}
	if got := runeAt(s, snap.Food); got != runeFood {
		t.Fatalf("expected food rune, got %q", got)
	}
	if got := runeAt(s, domain.Coord{X: 0, Y: 0}); got != runeEmpty {
		t.Fatalf("expected empty tile, got %q", got)
	}
	if got := textAt(s, 0, 0, 8); got != "Score: 2" {
		t.Fatalf("unexpected status %q", got)
	}
}

func TestRendererGameOverStatus(t *testing.T) {
	s := newSimScreen(t)
	r := NewRenderer(s)

	r.Draw(domain.Snapshot{
		Width:    10,
		Height:   8,
		Head:     domain.Coord{X: 1, Y: 1},
		Body:     []domain.Coord{{X: 1, Y: 1}},
		GameOver: true,
	})

	if got := textAt(s, 0, 0, 12); got != "Game Over: 1" {
		t.Fatalf("unexpected status %q", got)
	}
}

func TestKeyDirection(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want domain.Direction
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), domain.DirectionUp},
		{"arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), domain.DirectionDown},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), domain.DirectionLeft},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), domain.DirectionRight},
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), domain.DirectionUp},
		{"S", tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModNone), domain.DirectionDown},
		{"a", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), domain.DirectionLeft},
		{"d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), domain.DirectionRight},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), domain.DirectionNone},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), domain.DirectionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyDirection(tt.ev); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestIsQuit(t *testing.T) {
	if !IsQuit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape should quit")
	}
	if !IsQuit(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatal("q should quit")
	}
	if IsQuit(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)) {
		t.Fatal("arrows must not quit")
	}
}

type fakeGame struct {
	events chan app.AppEvent
	state  domain.Snapshot

	mu     sync.Mutex
	steers []domain.Direction
}

func (g *fakeGame) Events() <-chan app.AppEvent { return g.events }

func (g *fakeGame) GetState() domain.Snapshot { return g.state }

func (g *fakeGame) SendSteer(dir domain.Direction) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.steers = append(g.steers, dir)
	return true
}

func TestFrontendForwardsKeysAndQuits(t *testing.T) {
	s := newSimScreen(t)
	game := &fakeGame{
		events: make(chan app.AppEvent, 4),
		state:  domain.Snapshot{Width: 10, Height: 8, Head: domain.Coord{X: 5, Y: 5}},
	}

	done := make(chan error, 1)
	go func() {
		done <- New(s).Run(context.Background(), game)
	}()

	s.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("frontend did not quit")
	}

	game.mu.Lock()
	defer game.mu.Unlock()
	want := []domain.Direction{domain.DirectionRight, domain.DirectionUp}
	if len(game.steers) != len(want) {
		t.Fatalf("expected steers %v, got %v", want, game.steers)
	}
	for i := range want {
		if game.steers[i] != want[i] {
			t.Fatalf("expected steers %v, got %v", want, game.steers)
		}
	}
}

func TestFrontendDrawsStateUpdates(t *testing.T) {
	s := newSimScreen(t)
	game := &fakeGame{
		events: make(chan app.AppEvent, 4),
		state:  domain.Snapshot{Width: 10, Height: 8, Head: domain.Coord{X: 5, Y: 5}},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- New(s).Run(ctx, game)
	}()

	game.events <- app.AppEvent{
		Type: app.AppEventStateUpdated,
		Payload: domain.Snapshot{
			Width:  10,
			Height: 8,
			Head:   domain.Coord{X: 6, Y: 5},
			Food:   domain.Coord{X: 0, Y: 0},
		},
	}

	deadline := time.Now().Add(2 * time.Second)
	for runeAt(s, domain.Coord{X: 6, Y: 5}) != runeHead {
		if time.Now().After(deadline) {
			t.Fatal("state update was not drawn")
		}
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("frontend ignored cancellation")
	}
}
