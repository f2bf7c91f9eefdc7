package domain

import (
	"errors"
	"fmt"
	"time"
)

const (
	DefaultTileSize     = 25
	DefaultBoardWidth   = 25 * DefaultTileSize
	DefaultBoardHeight  = 25 * DefaultTileSize
	DefaultTickInterval = 75 * time.Millisecond

	minTiles        = 6
	maxTiles        = 200
	minTickInterval = 10 * time.Millisecond
	maxTickInterval = 3 * time.Second
)

var ErrInvalidConfig = errors.New("invalid game config")

type GameConfig struct {
	BoardWidth   int
	BoardHeight  int
	TileSize     int
	TickInterval time.Duration
	// Seed feeds food placement. Zero picks a time based seed.
	Seed int64
}

func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		BoardWidth:   DefaultBoardWidth,
		BoardHeight:  DefaultBoardHeight,
		TileSize:     DefaultTileSize,
		TickInterval: DefaultTickInterval,
	}
}

func (c *GameConfig) Validate() error {
	if c.TileSize <= 0 {
		return fmt.Errorf("%w: tile size %d must be positive", ErrInvalidConfig, c.TileSize)
	}
	f := c.Field()
	if f.Width < minTiles || f.Width > maxTiles {
		return fmt.Errorf("%w: board is %d tiles wide, want %d..%d", ErrInvalidConfig, f.Width, minTiles, maxTiles)
	}
	if f.Height < minTiles || f.Height > maxTiles {
		return fmt.Errorf("%w: board is %d tiles high, want %d..%d", ErrInvalidConfig, f.Height, minTiles, maxTiles)
	}
	if c.TickInterval < minTickInterval || c.TickInterval > maxTickInterval {
		return fmt.Errorf("%w: tick interval %v outside %v..%v", ErrInvalidConfig, c.TickInterval, minTickInterval, maxTickInterval)
	}
	return nil
}

func (c *GameConfig) Field() *Field {
	return NewField(c.BoardWidth, c.BoardHeight, c.TileSize)
}

func (c *GameConfig) Copy() *GameConfig {
	return &GameConfig{
		BoardWidth:   c.BoardWidth,
		BoardHeight:  c.BoardHeight,
		TileSize:     c.TileSize,
		TickInterval: c.TickInterval,
		Seed:         c.Seed,
	}
}
