package graphics

import (
	"testing"

	"snake/internal/domain"
	"snake/internal/ui/types"
)

func newTestEngine() *Engine {
	field := domain.NewField(625, 500, 25)
	return NewEngine(field, 25, domain.Snapshot{Width: field.Width, Height: field.Height})
}

func TestEngineLayoutMatchesBoard(t *testing.T) {
	e := newTestEngine()

	w, h := e.Layout(1920, 1080)
	if w != 625 || h != 500 {
		t.Fatalf("expected layout 625x500, got %dx%d", w, h)
	}
	if sw, sh := e.Size(); sw != w || sh != h {
		t.Fatalf("size %dx%d differs from layout", sw, sh)
	}
}

func TestEngineForwardsEvents(t *testing.T) {
	e := newTestEngine()

	e.handleEvent(types.UIEvent{Type: types.UIEventNone})
	e.handleEvent(types.UIEvent{
		Type:    types.UIEventSteer,
		Payload: types.SteerData{Direction: domain.DirectionLeft},
	})

	select {
	case ev := <-e.Events():
		data, ok := ev.Payload.(types.SteerData)
		if ev.Type != types.UIEventSteer || !ok || data.Direction != domain.DirectionLeft {
			t.Fatalf("unexpected event %+v", ev)
		}
	default:
		t.Fatal("steer event was not forwarded")
	}

	select {
	case ev := <-e.Events():
		t.Fatalf("none events must not be forwarded, got %+v", ev)
	default:
	}
}

func TestEngineQuit(t *testing.T) {
	e := newTestEngine()
	e.handleEvent(types.UIEvent{Type: types.UIEventQuit})

	if !e.quit.Load() {
		t.Fatal("quit event should stop the engine")
	}
	if ev := <-e.Events(); ev.Type != types.UIEventQuit {
		t.Fatalf("expected quit event, got %+v", ev)
	}
}
