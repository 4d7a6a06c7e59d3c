package reward

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidOutcome indicates a malformed scored-completion payload.
var ErrInvalidOutcome = errors.New("invalid outcome")

// Spec describes what completing a unit grants.
// Fixed specs (lessons, challenges, games, bosses) carry a configured bundle
// and point value. Scored specs (quizzes) are computed from the outcome.
type Spec struct {
	Scored   bool
	Points   int    // configured points, unused for scored specs
	MaxScore int    // declared maximum score, scored specs only
	Items    Bundle // configured bundle, unused for scored specs
}

// Outcome carries the learner's performance on a scored unit.
type Outcome struct {
	ScoreEarned int
	MaxScore    int
	Streak      int // longest run of consecutive correct answers in the attempt
}

// Grant is the result of a completion: points plus an item bundle.
type Grant struct {
	Points int    `json:"points"`
	Items  Bundle `json:"items"`
}

// Quiz threshold rules, evaluated in order. Every rule that qualifies is
// granted, not just the highest.
var quizRules = []struct {
	minPercent int
	minStreak  int
	item       ItemType
}{
	{60, 0, ItemWater},
	{80, 0, ItemSunlight},
	{90, 0, ItemNutrients},
	{90, 3, ItemFertilizer},
}

// Compute produces the grant for a completion.
//
// For fixed specs the outcome is ignored and the configured bundle and points
// are returned verbatim. For scored specs the outcome is validated, then the
// threshold rules are applied to round(100*earned/max). firstQuiz marks the
// very first quiz ever completed on the ledger and awards the one-off seed
// bonus.
func Compute(spec Spec, outcome *Outcome, firstQuiz bool) (Grant, error) {
	if !spec.Scored {
		return Grant{Points: spec.Points, Items: spec.Items.Clone()}, nil
	}

	if outcome == nil {
		return Grant{}, fmt.Errorf("%w: scored unit requires an outcome", ErrInvalidOutcome)
	}
	if err := validateOutcome(spec, *outcome); err != nil {
		return Grant{}, err
	}

	percent := Percent(outcome.ScoreEarned, outcome.MaxScore)

	items := NewBundle()
	if firstQuiz {
		items.AddItem(ItemSeed, 1)
	}
	for _, rule := range quizRules {
		if percent >= rule.minPercent && outcome.Streak >= rule.minStreak {
			items.AddItem(rule.item, 1)
		}
	}
	if percent == 100 {
		items.AddItem(ItemLove, 1)
	}

	return Grant{Points: outcome.ScoreEarned, Items: items}, nil
}

func validateOutcome(spec Spec, o Outcome) error {
	if o.MaxScore <= 0 {
		return fmt.Errorf("%w: max score must be positive, got %d", ErrInvalidOutcome, o.MaxScore)
	}
	if o.ScoreEarned < 0 {
		return fmt.Errorf("%w: negative score earned %d", ErrInvalidOutcome, o.ScoreEarned)
	}
	if o.Streak < 0 {
		return fmt.Errorf("%w: negative streak %d", ErrInvalidOutcome, o.Streak)
	}
	if o.ScoreEarned > o.MaxScore {
		return fmt.Errorf("%w: score earned %d exceeds max score %d", ErrInvalidOutcome, o.ScoreEarned, o.MaxScore)
	}
	if spec.MaxScore > 0 && o.MaxScore != spec.MaxScore {
		return fmt.Errorf("%w: outcome max score %d does not match the unit's declared max score %d",
			ErrInvalidOutcome, o.MaxScore, spec.MaxScore)
	}
	return nil
}

// Percent returns round(100 * earned / max). max must be positive.
func Percent(earned, max int) int {
	return int(math.Round(100 * float64(earned) / float64(max)))
}
