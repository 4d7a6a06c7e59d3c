// Package ledger holds the mutable per-learner record of completions,
// inventory, points, and the derived growth stage. All mutation goes through
// Service.CompleteUnit.
package ledger

import (
	"sort"

	"github.com/verdantapp/verdant/internal/catalog"
	"github.com/verdantapp/verdant/internal/growth"
	"github.com/verdantapp/verdant/internal/reward"
)

// Ledger is the learner's progress record. Completed ids are kept in
// per-kind sets; prerequisite resolution uses the union via Completed.
// Inventory and points only ever grow, so the derived stage never regresses.
type Ledger struct {
	completed   map[catalog.UnitKind]map[string]struct{}
	grants      map[string]reward.Grant
	inventory   reward.Bundle
	totalPoints int
	stage       growth.Stage
}

// New creates an empty ledger in the initial pot stage.
func New() *Ledger {
	return &Ledger{
		completed: make(map[catalog.UnitKind]map[string]struct{}),
		grants:    make(map[string]reward.Grant),
		inventory: reward.NewBundle(),
		stage:     growth.StagePot,
	}
}

// Completed reports whether id appears in any kind's completed set.
func (l *Ledger) Completed(id string) bool {
	for _, set := range l.completed {
		if _, ok := set[id]; ok {
			return true
		}
	}
	return false
}

// CompletedOfKind reports whether id appears in the given kind's set.
func (l *Ledger) CompletedOfKind(kind catalog.UnitKind, id string) bool {
	_, ok := l.completed[kind][id]
	return ok
}

// CompletedIDs returns the sorted completed ids for a kind.
func (l *Ledger) CompletedIDs(kind catalog.UnitKind) []string {
	set := l.completed[kind]
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// CompletedCount returns the number of completions for a kind.
func (l *Ledger) CompletedCount(kind catalog.UnitKind) int {
	return len(l.completed[kind])
}

// Grant returns the recorded grant for a completed unit.
func (l *Ledger) Grant(unitID string) (reward.Grant, bool) {
	g, ok := l.grants[unitID]
	return g, ok
}

// Inventory returns a copy of the cumulative item inventory.
func (l *Ledger) Inventory() reward.Bundle {
	return l.inventory.Clone()
}

// TotalPoints returns the cumulative point total.
func (l *Ledger) TotalPoints() int {
	return l.totalPoints
}

// Stage returns the current growth stage.
func (l *Ledger) Stage() growth.Stage {
	return l.stage
}

// apply records a completion and its grant as one step: completed-set add,
// inventory add, points add, full stage re-evaluation.
func (l *Ledger) apply(unit catalog.Unit, grant reward.Grant) {
	set := l.completed[unit.Kind]
	if set == nil {
		set = make(map[string]struct{})
		l.completed[unit.Kind] = set
	}
	set[unit.ID] = struct{}{}
	l.grants[unit.ID] = grant
	l.inventory.Add(grant.Items)
	l.totalPoints += grant.Points
	l.stage = growth.Evaluate(l.inventory)
}
