package main

import (
	"testing"

	"github.com/Garsondee/Tank-Skirmish/internal/game"
)

func TestSteerAutopilot_AlternatesSides(t *testing.T) {
	keys := game.NewKeySet()
	steerAutopilot(keys, 0)
	if !keys.Pressed(game.KeyLeft) || keys.Pressed(game.KeyRight) {
		t.Fatalf("expected left held at tick 0")
	}
	steerAutopilot(keys, autopilotPeriod/2)
	if keys.Pressed(game.KeyLeft) || !keys.Pressed(game.KeyRight) {
		t.Fatalf("expected right held at half period")
	}
	steerAutopilot(keys, autopilotPeriod)
	if !keys.Pressed(game.KeyLeft) {
		t.Fatalf("expected left held again after a full period")
	}
}

func TestTally_CountsByCause(t *testing.T) {
	rs := runStats{defeatTick: -1}
	rs.tally([]game.Event{
		{Kind: game.EventShot, Owner: game.OwnerPlayer},
		{Kind: game.EventShot, Owner: game.OwnerPlayer},
		{Kind: game.EventShot, Owner: game.OwnerEnemy},
		{Kind: game.EventEnemyDestroyed, Detail: "shot"},
		{Kind: game.EventEnemyDestroyed, Detail: "rammed"},
		{Kind: game.EventPlayerHit, Detail: "shot"},
		{Kind: game.EventDefeat, Tick: 321},
	})
	if rs.playerShots != 2 || rs.enemyShots != 1 {
		t.Fatalf("expected shots player=2 enemy=1, got player=%d enemy=%d", rs.playerShots, rs.enemyShots)
	}
	if rs.shotKills != 1 || rs.ramKills != 1 {
		t.Fatalf("expected kills shot=1 rammed=1, got shot=%d rammed=%d", rs.shotKills, rs.ramKills)
	}
	if rs.hitsTaken != 2 || rs.defeatTick != 321 {
		t.Fatalf("expected hits=2 defeat=321, got hits=%d defeat=%d", rs.hitsTaken, rs.defeatTick)
	}
}

func TestSummarize_Averages(t *testing.T) {
	agg := summarize([]runStats{
		{score: 300, ticks: 1000, shotKills: 2, ramKills: 1, defeatTick: 1000},
		{score: 100, ticks: 3000, shotKills: 1, defeatTick: -1},
	})
	if agg.runs != 2 || agg.defeats != 1 || agg.bestScore != 300 {
		t.Fatalf("unexpected aggregate %+v", agg)
	}
	if agg.meanScore != 200 || agg.meanTicks != 2000 || agg.meanKills != 2 || agg.meanRamKill != 0.5 {
		t.Fatalf("unexpected means %+v", agg)
	}
}

func TestSummarize_EmptyIsZero(t *testing.T) {
	agg := summarize(nil)
	if agg != (aggregate{}) {
		t.Fatalf("expected zero aggregate, got %+v", agg)
	}
}

func TestRunSkirmish_DeterministicPerSeed(t *testing.T) {
	a := runSkirmish(1, 99, 900)
	b := runSkirmish(1, 99, 900)
	if a != b {
		t.Fatalf("expected identical runs for one seed:\n%+v\n%+v", a, b)
	}
	if a.ticks == 0 || a.playerShots == 0 {
		t.Fatalf("expected the run to play out, got %+v", a)
	}
	if a.score != 100*(a.shotKills+a.ramKills) {
		t.Fatalf("expected score to be 100 per kill, got score=%d kills=%d", a.score, a.shotKills+a.ramKills)
	}
}
