package main

import (
	"flag"
	"fmt"
	"math/rand"

	"snake/internal/domain"
)

type runStats struct {
	runIndex int
	seed     int64
	ticks    int
	score    int
	ate      int
	gameOver bool
}

type summary struct {
	runs      int
	gameOvers int
	maxScore  int
	meanScore float64
	meanTicks float64
}

var directions = []domain.Direction{
	domain.DirectionUp,
	domain.DirectionDown,
	domain.DirectionLeft,
	domain.DirectionRight,
}

func main() {
	var runs int
	var ticks int
	var turnEvery int
	var seedBase int64
	var seedStep int64

	flag.IntVar(&runs, "runs", 5, "number of headless games")
	flag.IntVar(&ticks, "ticks", 2000, "tick limit per game")
	flag.IntVar(&turnEvery, "turn-every", 4, "autopilot steers every N ticks")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if turnEvery <= 0 {
		fmt.Println("error: -turn-every must be > 0")
		return
	}

	cfg := domain.DefaultGameConfig()

	fmt.Printf("=== Headless Snake Report ===\n")
	fmt.Printf("board=%dx%d runs=%d ticks=%d turn_every=%d seed_base=%d seed_step=%d\n\n",
		cfg.Field().Width, cfg.Field().Height, runs, ticks, turnEvery, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs := runGame(cfg, i+1, seed, ticks, turnEvery)
		all = append(all, rs)
		printRun(rs)
	}

	s := summarize(all)
	fmt.Printf("\n--- summary ---\n")
	fmt.Printf("game_overs=%d/%d max_score=%d mean_score=%.2f mean_ticks=%.1f\n",
		s.gameOvers, s.runs, s.maxScore, s.meanScore, s.meanTicks)
}

func runGame(cfg *domain.GameConfig, index int, seed int64, maxTicks, turnEvery int) runStats {
	c := cfg.Copy()
	c.Seed = seed
	state := domain.NewGameState(c)
	pilot := rand.New(rand.NewSource(seed ^ 0x5eed))

	rs := runStats{runIndex: index, seed: seed}
	for rs.ticks < maxTicks {
		if rs.ticks%turnEvery == 0 {
			state.SetDirection(directions[pilot.Intn(len(directions))])
		}

		res := state.Tick()
		rs.ticks++
		if res.Ate {
			rs.ate++
		}
		rs.score = res.Score
		if res.GameOver {
			rs.gameOver = true
			break
		}
	}
	return rs
}

func printRun(rs runStats) {
	fmt.Printf("run=%d seed=%d ticks=%d score=%d over=%t\n", rs.runIndex, rs.seed, rs.ticks, rs.score, rs.gameOver)
}

func summarize(all []runStats) summary {
	s := summary{runs: len(all)}
	if len(all) == 0 {
		return s
	}

	totalScore := 0
	totalTicks := 0
	for _, rs := range all {
		if rs.gameOver {
			s.gameOvers++
		}
		if rs.score > s.maxScore {
			s.maxScore = rs.score
		}
		totalScore += rs.score
		totalTicks += rs.ticks
	}
	s.meanScore = float64(totalScore) / float64(len(all))
	s.meanTicks = float64(totalTicks) / float64(len(all))
	return s
}
