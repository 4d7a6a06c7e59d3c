package growth

import "github.com/verdantapp/verdant/internal/reward"

// stageTable holds the minimum cumulative inventory for each stage, in
// ascending order. Thresholds are non-decreasing per item across stages, so
// with a monotonic inventory a reached stage can never be lost. Leaving the
// pot requires having ever obtained a seed.
var stageTable = []struct {
	stage Stage
	min   reward.Bundle
}{
	{StagePot, reward.Bundle{}},
	{StageSeed, reward.Bundle{reward.ItemSeed: 1}},
	{StageSapling, reward.Bundle{reward.ItemSeed: 1, reward.ItemWater: 2}},
	{StageGrowing, reward.Bundle{reward.ItemSeed: 1, reward.ItemWater: 5, reward.ItemSunlight: 3}},
	{StageMature, reward.Bundle{reward.ItemSeed: 1, reward.ItemWater: 10, reward.ItemSunlight: 6, reward.ItemNutrients: 3}},
	{StageBlooming, reward.Bundle{reward.ItemSeed: 1, reward.ItemWater: 15, reward.ItemSunlight: 10, reward.ItemNutrients: 6, reward.ItemFertilizer: 2}},
	{StageTree, reward.Bundle{reward.ItemSeed: 1, reward.ItemWater: 25, reward.ItemSunlight: 15, reward.ItemNutrients: 10, reward.ItemFertilizer: 4, reward.ItemLove: 1}},
	{StageForest, reward.Bundle{reward.ItemSeed: 3, reward.ItemWater: 40, reward.ItemSunlight: 25, reward.ItemNutrients: 15, reward.ItemFertilizer: 8, reward.ItemLove: 3}},
}

// Evaluate returns the highest stage whose thresholds are all satisfied by
// the cumulative inventory. It is pure and is re-run in full after every
// mutation rather than patched incrementally.
func Evaluate(inventory reward.Bundle) Stage {
	current := StagePot
	for _, entry := range stageTable {
		if !inventory.Covers(entry.min) {
			break
		}
		current = entry.stage
	}
	return current
}

// Requirement returns the minimum inventory for the given stage.
func Requirement(s Stage) reward.Bundle {
	for _, entry := range stageTable {
		if entry.stage == s {
			return entry.min.Clone()
		}
	}
	return reward.NewBundle()
}

// Next returns the stage after s, or s and false if s is the final stage.
func Next(s Stage) (Stage, bool) {
	if s >= StageForest {
		return s, false
	}
	return s + 1, true
}

// ProgressToward returns how far the inventory is toward the given stage's
// thresholds, as a fraction in [0, 1]. A stage with no requirements is
// always fully satisfied.
func ProgressToward(inventory reward.Bundle, s Stage) float64 {
	req := Requirement(s)
	needed := req.Total()
	if needed == 0 {
		return 1
	}
	have := 0
	for t, n := range req {
		got := inventory.Get(t)
		if got > n {
			got = n
		}
		have += got
	}
	return float64(have) / float64(needed)
}
