// Package progress rolls individual unit completions up into group-level
// progress figures.
package progress

import (
	"math"

	"github.com/verdantapp/verdant/internal/catalog"
)

// CompletionSet answers membership queries over the union of all per-kind
// completed sets.
type CompletionSet interface {
	Completed(id string) bool
}

// Summary is a group's rollup: how many of its leaf units are done.
type Summary struct {
	CompletedCount int
	TotalCount     int
	Percent        int
	Completed      bool
}

// GroupProgress computes the rollup for a group. TotalCount comes from the
// graph's precomputed leaf cache; a group with no leaves reports 0 percent.
// Completion additionally requires the terminal boss when one is declared.
func GroupProgress(g *catalog.Graph, groupID string, done CompletionSet) (Summary, error) {
	grp, err := g.Group(groupID)
	if err != nil {
		return Summary{}, err
	}
	leaves, err := g.LeafUnits(groupID)
	if err != nil {
		return Summary{}, err
	}

	completed := 0
	for _, id := range leaves {
		if done.Completed(id) {
			completed++
		}
	}

	s := Summary{
		CompletedCount: completed,
		TotalCount:     len(leaves),
	}
	if s.TotalCount > 0 {
		s.Percent = int(math.Round(100 * float64(completed) / float64(s.TotalCount)))
	}
	s.Completed = s.TotalCount > 0 && completed == s.TotalCount
	if s.Completed && grp.BossID != "" {
		s.Completed = done.Completed(grp.BossID)
	}
	return s, nil
}
