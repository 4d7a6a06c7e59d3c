package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/verdantapp/verdant/internal/catalog"
	"github.com/verdantapp/verdant/internal/growth"
	"github.com/verdantapp/verdant/internal/reward"
	"github.com/verdantapp/verdant/internal/store"
	"github.com/verdantapp/verdant/internal/unlock"
)

// Service serializes all ledger access. CompleteUnit is the single mutating
// operation; rapid double-submission from a UI serializes on the mutex so
// idempotence holds.
type Service struct {
	mu       sync.Mutex
	graph    *catalog.Graph
	resolver *unlock.Resolver
	ledger   *Ledger
	events   store.EventRepo // optional; appends are best-effort
}

// NewService builds a service over a fresh or snapshot-restored ledger.
func NewService(g *catalog.Graph, r *unlock.Resolver, snap *store.SnapshotData, events store.EventRepo) *Service {
	return &Service{
		graph:    g,
		resolver: r,
		ledger:   FromSnapshot(snap),
		events:   events,
	}
}

// CompleteUnit records the completion of an accessible unit and returns the
// grant it earned. For already-completed units it returns the previously
// recorded grant together with ErrAlreadyCompleted and changes nothing.
func (s *Service) CompleteUnit(ctx context.Context, unitID string, outcome *reward.Outcome) (reward.Grant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	unit, err := s.graph.Unit(unitID)
	if err != nil {
		return reward.Grant{}, err
	}

	if s.ledger.CompletedOfKind(unit.Kind, unit.ID) {
		prior, _ := s.ledger.Grant(unit.ID)
		return prior, fmt.Errorf("%q: %w", unit.ID, ErrAlreadyCompleted)
	}

	ok, err := s.resolver.CanAccess(unit.ID, s.ledger)
	if err != nil {
		return reward.Grant{}, err
	}
	if !ok {
		return reward.Grant{}, fmt.Errorf("%q: %w", unit.ID, ErrNotUnlocked)
	}

	// The one-off seed bonus goes with the first quiz ever completed,
	// keyed on the quiz completed set rather than the point total.
	firstQuiz := unit.Kind == catalog.UnitQuiz && s.ledger.CompletedCount(catalog.UnitQuiz) == 0

	grant, err := reward.Compute(unit.RewardSpec(), outcome, firstQuiz)
	if err != nil {
		return reward.Grant{}, err
	}

	s.ledger.apply(unit, grant)
	s.appendEvent(ctx, unit, grant, outcome)
	return grant, nil
}

// appendEvent records the completion in the event log. Failures are not
// surfaced: the ledger mutation already happened and the snapshot is the
// durable source of truth.
func (s *Service) appendEvent(ctx context.Context, unit catalog.Unit, grant reward.Grant, outcome *reward.Outcome) {
	if s.events == nil {
		return
	}
	items := make(map[string]int, len(grant.Items))
	for t, n := range grant.Items {
		items[string(t)] = n
	}
	data := store.CompletionEventData{
		UnitID:   unit.ID,
		UnitKind: string(unit.Kind),
		Points:   grant.Points,
		Items:    items,
	}
	if unit.Kind.Scored() && outcome != nil {
		p := reward.Percent(outcome.ScoreEarned, outcome.MaxScore)
		data.Percent = &p
	}
	_ = s.events.AppendCompletion(ctx, data)
}

// Completed reports whether id is in any completed set.
func (s *Service) Completed(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Completed(id)
}

// CanAccess evaluates the unlock rule for id against the current ledger.
func (s *Service) CanAccess(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolver.CanAccess(id, s.ledger)
}

// Inventory returns a copy of the current inventory.
func (s *Service) Inventory() reward.Bundle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Inventory()
}

// TotalPoints returns the cumulative point total.
func (s *Service) TotalPoints() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.TotalPoints()
}

// Stage returns the current growth stage.
func (s *Service) Stage() growth.Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Stage()
}

// CompletedCounts returns completion counts per unit kind.
func (s *Service) CompletedCounts() map[catalog.UnitKind]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := make(map[catalog.UnitKind]int)
	for _, k := range catalog.AllUnitKinds() {
		counts[k] = s.ledger.CompletedCount(k)
	}
	return counts
}

// SnapshotData captures the current ledger state for persistence.
func (s *Service) SnapshotData() store.SnapshotData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ToSnapshot(s.ledger)
}
