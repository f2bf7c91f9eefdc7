package domain

import "fmt"

// Snapshot is a read-only copy of the game taken between ticks.
type Snapshot struct {
	Width    int
	Height   int
	Head     Coord
	Body     []Coord
	Food     Coord
	Velocity Coord
	GameOver bool
	Tick     int
}

func (s Snapshot) Score() int {
	return len(s.Body)
}

func (s Snapshot) Status() string {
	if s.GameOver {
		return fmt.Sprintf("Game Over: %d", s.Score())
	}
	return fmt.Sprintf("Score: %d", s.Score())
}

func (s Snapshot) Occupied(c Coord) bool {
	if s.Head.Equals(c) {
		return true
	}
	for _, part := range s.Body {
		if part.Equals(c) {
			return true
		}
	}
	return false
}
