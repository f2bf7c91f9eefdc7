package screens

import (
	"snake/internal/domain"
	"snake/internal/ui/graphics/components"
	"snake/internal/ui/graphics/input"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

type GameScreen struct {
	ctx types.ScreenContext

	fieldRenderer *components.FieldRenderer
	statusBar     *components.StatusBar
	keyboard      *input.KeyboardHandler

	field *domain.Field
	state domain.Snapshot
}

func NewGameScreen(ctx types.ScreenContext, field *domain.Field, tileSize int) *GameScreen {
	return &GameScreen{
		ctx:           ctx,
		fieldRenderer: components.NewFieldRenderer(tileSize),
		statusBar:     components.NewStatusBar(tileSize),
		keyboard:      input.NewKeyboardHandler(),
		field:         field,
	}
}

func (s *GameScreen) SetState(state domain.Snapshot) {
	s.state = state
}

func (s *GameScreen) Update() types.UIEvent {
	if input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventQuit}
	}

	if s.state.GameOver {
		if input.IsCopyPressed() {
			return types.UIEvent{
				Type:    types.UIEventCopyStatus,
				Payload: types.CopyStatusData{Status: s.state.Status()},
			}
		}
		return types.UIEvent{Type: types.UIEventNone}
	}

	if dir := s.keyboard.Update(); dir != domain.DirectionNone {
		return types.UIEvent{
			Type:    types.UIEventSteer,
			Payload: types.SteerData{Direction: dir},
		}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	s.fieldRenderer.DrawField(screen, s.field)
	s.fieldRenderer.DrawFood(screen, s.state.Food)
	s.fieldRenderer.DrawSnake(screen, s.state)
	s.statusBar.Draw(screen, s.state)
}
