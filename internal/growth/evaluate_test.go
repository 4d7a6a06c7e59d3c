package growth

import (
	"testing"

	"github.com/verdantapp/verdant/internal/reward"
)

func TestEvaluate_EmptyInventory(t *testing.T) {
	if got := Evaluate(reward.NewBundle()); got != StagePot {
		t.Errorf("empty inventory: got %s, want pot", got)
	}
}

func TestEvaluate_SeedOnly(t *testing.T) {
	inv := reward.Bundle{reward.ItemSeed: 1}
	if got := Evaluate(inv); got != StageSeed {
		t.Errorf("seed-only inventory: got %s, want seed", got)
	}
}

func TestEvaluate_NoStageSkipping(t *testing.T) {
	// Plenty of water and sunlight but no seed keeps the tree in the pot.
	inv := reward.Bundle{reward.ItemWater: 50, reward.ItemSunlight: 50}
	if got := Evaluate(inv); got != StagePot {
		t.Errorf("seedless inventory: got %s, want pot", got)
	}

	// Meeting the sapling thresholds advances exactly one stage past seed.
	inv = reward.Bundle{reward.ItemSeed: 1, reward.ItemWater: 2}
	if got := Evaluate(inv); got != StageSapling {
		t.Errorf("got %s, want sapling", got)
	}

	// One short of the growing sunlight threshold stays at sapling.
	inv = reward.Bundle{reward.ItemSeed: 1, reward.ItemWater: 5, reward.ItemSunlight: 2}
	if got := Evaluate(inv); got != StageSapling {
		t.Errorf("got %s, want sapling", got)
	}
}

func TestEvaluate_HighestSatisfiedStage(t *testing.T) {
	inv := reward.Bundle{
		reward.ItemSeed:       3,
		reward.ItemWater:      100,
		reward.ItemSunlight:   100,
		reward.ItemNutrients:  100,
		reward.ItemFertilizer: 100,
		reward.ItemLove:       100,
	}
	if got := Evaluate(inv); got != StageForest {
		t.Errorf("abundant inventory: got %s, want forest", got)
	}
}

func TestEvaluate_MonotonicAcrossAdditions(t *testing.T) {
	inv := reward.NewBundle()
	last := Evaluate(inv)
	additions := []reward.Bundle{
		{reward.ItemSeed: 1},
		{reward.ItemWater: 2},
		{reward.ItemWater: 3, reward.ItemSunlight: 3},
		{reward.ItemWater: 5, reward.ItemSunlight: 3, reward.ItemNutrients: 3},
		{reward.ItemWater: 35, reward.ItemSunlight: 25, reward.ItemNutrients: 20, reward.ItemFertilizer: 10, reward.ItemLove: 5},
		{reward.ItemSeed: 2},
	}
	for _, add := range additions {
		inv.Add(add)
		got := Evaluate(inv)
		if got < last {
			t.Fatalf("stage regressed from %s to %s", last, got)
		}
		last = got
	}
	if last != StageForest {
		t.Errorf("final stage %s, want forest", last)
	}
}

func TestStageTable_ThresholdsNonDecreasing(t *testing.T) {
	for i := 1; i < len(stageTable); i++ {
		prev, cur := stageTable[i-1], stageTable[i]
		for _, item := range reward.AllItemTypes() {
			if cur.min.Get(item) < prev.min.Get(item) {
				t.Errorf("stage %s lowers the %s threshold below stage %s",
					cur.stage, item, prev.stage)
			}
		}
	}
}

func TestRequirementAndNext(t *testing.T) {
	req := Requirement(StageSapling)
	if req.Get(reward.ItemWater) != 2 || req.Get(reward.ItemSeed) != 1 {
		t.Errorf("sapling requirement = %v", req)
	}

	next, ok := Next(StagePot)
	if !ok || next != StageSeed {
		t.Errorf("Next(pot) = %s, %v", next, ok)
	}
	if _, ok := Next(StageForest); ok {
		t.Error("forest should have no next stage")
	}
}

func TestProgressToward(t *testing.T) {
	inv := reward.Bundle{reward.ItemSeed: 1, reward.ItemWater: 1}
	got := ProgressToward(inv, StageSapling) // needs seed 1 + water 2
	want := 2.0 / 3.0
	if got < want-0.001 || got > want+0.001 {
		t.Errorf("ProgressToward = %f, want %f", got, want)
	}

	if got := ProgressToward(reward.NewBundle(), StagePot); got != 1 {
		t.Errorf("pot progress = %f, want 1", got)
	}
}
