package domain

import (
	"math/rand"
	"sync"
	"time"
)

var (
	InitialHead = Coord{X: 5, Y: 5}
	InitialFood = Coord{X: 10, Y: 10}
)

// GameState is the whole simulation. All access goes through its methods,
// which serialize on mu, so input callbacks may run on any goroutine.
type GameState struct {
	Field *Field

	head       Coord
	body       []Coord
	food       Coord
	velocity   Coord
	pending    Coord
	hasPending bool
	gameOver   bool
	ticks      int

	rng *rand.Rand
	mu  sync.Mutex
}

func NewGameState(config *GameConfig) *GameState {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewGameStateWithRand(config.Field(), rand.New(rand.NewSource(seed)))
}

func NewGameStateWithRand(field *Field, rng *rand.Rand) *GameState {
	gs := &GameState{
		Field: field,
		head:  InitialHead,
		body:  make([]Coord, 0),
		food:  InitialFood,
		rng:   rng,
	}
	gs.placeFoodUnlocked()
	return gs
}

// RestoreGameState rebuilds a state from a snapshot. Food is taken as is.
func RestoreGameState(field *Field, snap Snapshot, rng *rand.Rand) *GameState {
	body := make([]Coord, len(snap.Body))
	copy(body, snap.Body)

	return &GameState{
		Field:    field,
		head:     snap.Head,
		body:     body,
		food:     snap.Food,
		velocity: snap.Velocity,
		gameOver: snap.GameOver,
		ticks:    snap.Tick,
		rng:      rng,
	}
}

func (gs *GameState) Snapshot() Snapshot {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	body := make([]Coord, len(gs.body))
	copy(body, gs.body)

	return Snapshot{
		Width:    gs.Field.Width,
		Height:   gs.Field.Height,
		Head:     gs.head,
		Body:     body,
		Food:     gs.food,
		Velocity: gs.velocity,
		GameOver: gs.gameOver,
		Tick:     gs.ticks,
	}
}

func (gs *GameState) Score() int {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return len(gs.body)
}

func (gs *GameState) IsGameOver() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.gameOver
}

func (gs *GameState) Velocity() Coord {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.velocity
}

func (gs *GameState) isCollisionWithSnakeUnlocked(pos Coord) bool {
	if gs.head.Equals(pos) {
		return true
	}
	for _, part := range gs.body {
		if part.Equals(pos) {
			return true
		}
	}
	return false
}
