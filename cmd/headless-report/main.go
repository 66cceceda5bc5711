package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/Garsondee/Tank-Skirmish/internal/game"
)

// autopilotPeriod is one full left-right sweep of the scripted player.
const autopilotPeriod = 240

type runStats struct {
	runIndex int
	seed     int64

	ticks      int
	score      int
	livesLeft  int
	waves      int
	defeatTick int // -1 when the player survived the budget

	playerShots int
	enemyShots  int
	shotKills   int
	ramKills    int
	hitsTaken   int
}

type aggregate struct {
	runs        int
	defeats     int
	bestScore   int
	meanScore   float64
	meanTicks   float64
	meanKills   float64
	meanRamKill float64
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64

	flag.IntVar(&runs, "runs", 5, "number of headless runs")
	flag.IntVar(&ticks, "ticks", 3600, "tick budget per run")
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

	fmt.Printf("=== Headless Skirmish Report ===\n")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d\n\n", runs, ticks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs := runSkirmish(i+1, seed, ticks)
		all = append(all, rs)
		printRun(rs)
	}
	printAggregate(summarize(all))
}

// runSkirmish plays one seeded game with a scripted player that holds fire
// and sweeps left and right along the bottom of the field.
func runSkirmish(runIndex int, seed int64, ticks int) runStats {
	keys := game.NewKeySet(game.KeyFire)
	w := game.NewWorld(keys, game.WithSeed(seed))
	w.Start()

	rs := runStats{runIndex: runIndex, seed: seed, defeatTick: -1}
	rs.tally(w.Events().Drain())

	clock := time.Unix(0, 0)
	loop := game.NewFrameLoop(func(dt float64) {
		steerAutopilot(keys, w.Tick())
		w.Update(dt)
		w.StepEffects(dt)
	})
	loop.Now = func() time.Time {
		clock = clock.Add(time.Second / 60)
		return clock
	}

	for i := 0; i < ticks && w.Phase() != game.PhaseGameOver; i++ {
		loop.Step()
		rs.tally(w.Events().Drain())
	}

	rs.ticks = w.Tick()
	rs.score = w.Score()
	rs.livesLeft = w.Lives()
	rs.waves = w.Waves()
	return rs
}

// steerAutopilot holds left for the first half of each sweep and right for the second.
func steerAutopilot(keys *game.KeySet, tick int) {
	left := tick%autopilotPeriod < autopilotPeriod/2
	if left {
		keys.Press(game.KeyLeft)
		keys.Release(game.KeyRight)
	} else {
		keys.Press(game.KeyRight)
		keys.Release(game.KeyLeft)
	}
}

func (rs *runStats) tally(events []game.Event) {
	for _, e := range events {
		switch e.Kind {
		case game.EventShot:
			if e.Owner == game.OwnerPlayer {
				rs.playerShots++
			} else {
				rs.enemyShots++
			}
		case game.EventEnemyDestroyed:
			if e.Detail == "rammed" {
				rs.ramKills++
			} else {
				rs.shotKills++
			}
		case game.EventPlayerHit:
			rs.hitsTaken++
		case game.EventDefeat:
			rs.hitsTaken++
			rs.defeatTick = e.Tick
		}
	}
}

func summarize(all []runStats) aggregate {
	agg := aggregate{runs: len(all)}
	if len(all) == 0 {
		return agg
	}
	for _, rs := range all {
		if rs.defeatTick >= 0 {
			agg.defeats++
		}
		if rs.score > agg.bestScore {
			agg.bestScore = rs.score
		}
		agg.meanScore += float64(rs.score)
		agg.meanTicks += float64(rs.ticks)
		agg.meanKills += float64(rs.shotKills + rs.ramKills)
		agg.meanRamKill += float64(rs.ramKills)
	}
	n := float64(len(all))
	agg.meanScore /= n
	agg.meanTicks /= n
	agg.meanKills /= n
	agg.meanRamKill /= n
	return agg
}

func printRun(rs runStats) {
	outcome := "survived"
	if rs.defeatTick >= 0 {
		outcome = fmt.Sprintf("defeated@T=%d", rs.defeatTick)
	}
	fmt.Printf("run %d seed=%d  %s\n", rs.runIndex, rs.seed, outcome)
	fmt.Printf("  score=%d lives_left=%d ticks=%d waves=%d\n", rs.score, rs.livesLeft, rs.ticks, rs.waves)
	fmt.Printf("  kills: shot=%d rammed=%d  hits_taken=%d\n", rs.shotKills, rs.ramKills, rs.hitsTaken)
	fmt.Printf("  shots: player=%d enemy=%d\n\n", rs.playerShots, rs.enemyShots)
}

func printAggregate(agg aggregate) {
	fmt.Printf("=== Aggregate (%d runs) ===\n", agg.runs)
	fmt.Printf("defeats=%d/%d best_score=%d\n", agg.defeats, agg.runs, agg.bestScore)
	fmt.Printf("mean: score=%.1f ticks=%.1f kills=%.2f ram_kills=%.2f\n",
		agg.meanScore, agg.meanTicks, agg.meanKills, agg.meanRamKill)
}
