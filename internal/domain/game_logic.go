package domain

type TickResult struct {
	Ate        bool
	FoodPlaced bool
	GameOver   bool
	Score      int
}

// Tick advances the snake one cell. Once the game is over it only reports
// the final score.
func (gs *GameState) Tick() TickResult {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.gameOver {
		return TickResult{GameOver: true, Score: len(gs.body)}
	}

	if gs.hasPending {
		gs.velocity = gs.pending
		gs.hasPending = false
	}
	gs.ticks++

	result := TickResult{}

	if gs.head.Equals(gs.food) {
		gs.body = append(gs.body, gs.food)
		result.Ate = true
		result.FoodPlaced = gs.placeFoodUnlocked()
	}

	for i := len(gs.body) - 1; i >= 0; i-- {
		if i == 0 {
			gs.body[i] = gs.head
		} else {
			gs.body[i] = gs.body[i-1]
		}
	}

	gs.head = gs.Field.Wrap(gs.head.Add(gs.velocity))

	for _, part := range gs.body {
		if part.Equals(gs.head) {
			gs.gameOver = true
		}
	}

	result.GameOver = gs.gameOver
	result.Score = len(gs.body)
	return result
}

// SetDirection queues a turn for the next tick. The reversal guard checks the
// velocity in effect, not the queued one, so two quick presses inside a tick
// cannot turn the snake back onto itself.
func (gs *GameState) SetDirection(dir Direction) bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.gameOver {
		return false
	}

	v := gs.velocity
	switch dir {
	case DirectionUp:
		if v.Y == 1 {
			return false
		}
	case DirectionDown:
		if v.Y == -1 {
			return false
		}
	case DirectionLeft:
		if v.X == 1 {
			return false
		}
	case DirectionRight:
		if v.X == -1 {
			return false
		}
	default:
		return false
	}

	gs.pending = dir.Delta()
	gs.hasPending = true
	return true
}

// PlaceFood moves the food to a random free cell. It reports false and keeps
// the old food when the snake covers the whole board.
func (gs *GameState) PlaceFood() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.placeFoodUnlocked()
}

func (gs *GameState) placeFoodUnlocked() bool {
	valid := make([]Coord, 0, gs.Field.Size())
	for _, cell := range gs.Field.Cells() {
		if !gs.isCollisionWithSnakeUnlocked(cell) {
			valid = append(valid, cell)
		}
	}

	if len(valid) == 0 {
		return false
	}
	gs.food = valid[gs.rng.Intn(len(valid))]
	return true
}
