package main

import (
	"testing"

	"github.com/vovakirdan/gravity-dodge/internal/config"
	"github.com/vovakirdan/gravity-dodge/internal/core"
	"github.com/vovakirdan/gravity-dodge/internal/dodge"
)

func TestSimulateIsDeterministic(t *testing.T) {
	run := func() core.GameState {
		return simulate(dodge.NewWorld(config.DefaultDodgeConfig(), 7), 400, 15)
	}

	first, second := run(), run()
	if first != second {
		t.Errorf("simulate diverged: %+v vs %+v", first, second)
	}
	if first.Tick != 400 {
		t.Errorf("Tick = %d, expected 400", first.Tick)
	}
	if first.Phase == core.PhaseStart {
		t.Error("the first press should start the run")
	}
}
