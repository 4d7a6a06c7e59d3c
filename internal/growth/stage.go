package growth

// Stage is a rank in the tree's maturity sequence.
type Stage int

const (
	StagePot Stage = iota
	StageSeed
	StageSapling
	StageGrowing
	StageMature
	StageBlooming
	StageTree
	StageForest
)

// AllStages returns all stages in ascending order.
func AllStages() []Stage {
	return []Stage{
		StagePot, StageSeed, StageSapling, StageGrowing,
		StageMature, StageBlooming, StageTree, StageForest,
	}
}

// String returns the stable identifier used in snapshots and display.
func (s Stage) String() string {
	switch s {
	case StagePot:
		return "pot"
	case StageSeed:
		return "seed"
	case StageSapling:
		return "sapling"
	case StageGrowing:
		return "growing"
	case StageMature:
		return "mature"
	case StageBlooming:
		return "blooming"
	case StageTree:
		return "tree"
	case StageForest:
		return "forest"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable label for the stage.
func (s Stage) DisplayName() string {
	switch s {
	case StagePot:
		return "Empty Pot"
	case StageSeed:
		return "Planted Seed"
	case StageSapling:
		return "Sapling"
	case StageGrowing:
		return "Growing Tree"
	case StageMature:
		return "Mature Tree"
	case StageBlooming:
		return "Blooming Tree"
	case StageTree:
		return "Grand Tree"
	case StageForest:
		return "Forest"
	default:
		return "Unknown"
	}
}

// Icon returns the display icon for the stage.
func (s Stage) Icon() string {
	switch s {
	case StagePot:
		return "🪴"
	case StageSeed:
		return "🌰"
	case StageSapling:
		return "🌱"
	case StageGrowing:
		return "🌿"
	case StageMature:
		return "🌳"
	case StageBlooming:
		return "🌸"
	case StageTree:
		return "🌲"
	case StageForest:
		return "🏞️"
	default:
		return "✦"
	}
}
