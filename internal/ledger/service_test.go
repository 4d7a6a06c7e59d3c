package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/verdantapp/verdant/internal/catalog"
	"github.com/verdantapp/verdant/internal/growth"
	"github.com/verdantapp/verdant/internal/reward"
	"github.com/verdantapp/verdant/internal/store"
	"github.com/verdantapp/verdant/internal/unlock"
)

// mockEventRepo records appended events in memory.
type mockEventRepo struct {
	appended []store.CompletionEventData
	fail     error
}

func (m *mockEventRepo) AppendCompletion(_ context.Context, data store.CompletionEventData) error {
	if m.fail != nil {
		return m.fail
	}
	m.appended = append(m.appended, data)
	return nil
}

func (m *mockEventRepo) QueryCompletions(context.Context, store.QueryOpts) ([]store.CompletionEventRecord, error) {
	return nil, nil
}

func (m *mockEventRepo) CompletionCounts(context.Context) (map[string]int, int, error) {
	return nil, 0, nil
}

func testGraph(t *testing.T) *catalog.Graph {
	t.Helper()
	g, err := catalog.NewGraph(catalog.Catalog{
		Version: "1.0.0",
		Units: []catalog.Unit{
			{ID: "soil", Name: "Soil", Kind: catalog.UnitLesson, Points: 10,
				Reward: reward.Bundle{reward.ItemWater: 1}},
			{ID: "soil-quiz", Name: "Soil Quiz", Kind: catalog.UnitQuiz, MaxScore: 100,
				Prerequisites: []string{"soil"}},
			{ID: "second-quiz", Name: "Second Quiz", Kind: catalog.UnitQuiz, MaxScore: 100,
				Prerequisites: []string{"soil"}},
			{ID: "compost", Name: "Compost", Kind: catalog.UnitChallenge, Points: 20,
				Prerequisites: []string{"soil-quiz"},
				Reward:        reward.Bundle{reward.ItemNutrients: 1}},
		},
		Groups: []catalog.Group{
			{ID: "roots", Name: "Roots", Kind: catalog.GroupModule, Order: 0,
				Children: []string{"soil", "soil-quiz", "second-quiz", "compost"}},
		},
	})
	if err != nil {
		t.Fatalf("build graph: %v", err)
	}
	return g
}

func newTestService(t *testing.T, events store.EventRepo) *Service {
	t.Helper()
	g := testGraph(t)
	return NewService(g, unlock.New(g), nil, events)
}

func TestCompleteUnit_FixedGrant(t *testing.T) {
	s := newTestService(t, nil)

	grant, err := s.CompleteUnit(context.Background(), "soil", nil)
	if err != nil {
		t.Fatalf("CompleteUnit: %v", err)
	}
	if grant.Points != 10 || grant.Items.Get(reward.ItemWater) != 1 {
		t.Errorf("grant = %+v", grant)
	}
	if !s.Completed("soil") {
		t.Error("soil not recorded as completed")
	}
	if s.TotalPoints() != 10 {
		t.Errorf("total points = %d, want 10", s.TotalPoints())
	}
}

func TestCompleteUnit_Idempotent(t *testing.T) {
	s := newTestService(t, nil)
	ctx := context.Background()

	first, err := s.CompleteUnit(ctx, "soil", nil)
	if err != nil {
		t.Fatalf("first completion: %v", err)
	}

	again, err := s.CompleteUnit(ctx, "soil", nil)
	if !errors.Is(err, ErrAlreadyCompleted) {
		t.Fatalf("second completion err = %v, want ErrAlreadyCompleted", err)
	}
	if again.Points != first.Points {
		t.Errorf("repeat returned different grant: %+v vs %+v", again, first)
	}
	if s.TotalPoints() != first.Points {
		t.Errorf("total points %d changed on repeat completion", s.TotalPoints())
	}
	if inv := s.Inventory(); inv.Get(reward.ItemWater) != 1 {
		t.Errorf("inventory changed on repeat completion: %v", inv)
	}
}

func TestCompleteUnit_LockedAndUnknown(t *testing.T) {
	s := newTestService(t, nil)
	ctx := context.Background()

	_, err := s.CompleteUnit(ctx, "soil-quiz", &reward.Outcome{ScoreEarned: 90, MaxScore: 100})
	if !errors.Is(err, ErrNotUnlocked) {
		t.Errorf("locked unit err = %v, want ErrNotUnlocked", err)
	}

	_, err = s.CompleteUnit(ctx, "ghost", nil)
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("unknown unit err = %v, want ErrNotFound", err)
	}
}

func TestCompleteUnit_InvalidOutcomeLeavesLedgerUntouched(t *testing.T) {
	s := newTestService(t, nil)
	ctx := context.Background()

	if _, err := s.CompleteUnit(ctx, "soil", nil); err != nil {
		t.Fatalf("setup: %v", err)
	}
	before := s.TotalPoints()

	_, err := s.CompleteUnit(ctx, "soil-quiz", &reward.Outcome{ScoreEarned: 120, MaxScore: 100})
	if !errors.Is(err, reward.ErrInvalidOutcome) {
		t.Fatalf("err = %v, want ErrInvalidOutcome", err)
	}
	if s.Completed("soil-quiz") {
		t.Error("failed completion still recorded")
	}
	if s.TotalPoints() != before {
		t.Error("failed completion changed the point total")
	}

	// The quiz stays completable after a rejected outcome.
	if _, err := s.CompleteUnit(ctx, "soil-quiz", &reward.Outcome{ScoreEarned: 70, MaxScore: 100}); err != nil {
		t.Fatalf("retry after invalid outcome: %v", err)
	}
}

func TestCompleteUnit_FirstQuizBonusOnce(t *testing.T) {
	s := newTestService(t, nil)
	ctx := context.Background()

	if _, err := s.CompleteUnit(ctx, "soil", nil); err != nil {
		t.Fatalf("setup: %v", err)
	}

	first, err := s.CompleteUnit(ctx, "soil-quiz", &reward.Outcome{ScoreEarned: 95, MaxScore: 100})
	if err != nil {
		t.Fatalf("first quiz: %v", err)
	}
	if first.Items.Get(reward.ItemSeed) != 1 {
		t.Errorf("first quiz grant lacks the seed: %v", first.Items)
	}

	second, err := s.CompleteUnit(ctx, "second-quiz", &reward.Outcome{ScoreEarned: 95, MaxScore: 100})
	if err != nil {
		t.Fatalf("second quiz: %v", err)
	}
	if second.Items.Get(reward.ItemSeed) != 0 {
		t.Errorf("second quiz grant repeats the seed: %v", second.Items)
	}
}

func TestCompleteUnit_StageAdvances(t *testing.T) {
	s := newTestService(t, nil)
	ctx := context.Background()

	if s.Stage() != growth.StagePot {
		t.Fatalf("initial stage = %s, want pot", s.Stage())
	}

	if _, err := s.CompleteUnit(ctx, "soil", nil); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if _, err := s.CompleteUnit(ctx, "soil-quiz", &reward.Outcome{ScoreEarned: 95, MaxScore: 100}); err != nil {
		t.Fatalf("quiz: %v", err)
	}

	// Seed from the first quiz bonus lifts the tree out of the pot.
	if s.Stage() != growth.StageSeed {
		t.Errorf("stage = %s, want seed", s.Stage())
	}
}

func TestCompleteUnit_AppendsEvents(t *testing.T) {
	repo := &mockEventRepo{}
	s := newTestService(t, repo)
	ctx := context.Background()

	if _, err := s.CompleteUnit(ctx, "soil", nil); err != nil {
		t.Fatalf("lesson: %v", err)
	}
	if _, err := s.CompleteUnit(ctx, "soil-quiz", &reward.Outcome{ScoreEarned: 80, MaxScore: 100}); err != nil {
		t.Fatalf("quiz: %v", err)
	}

	if len(repo.appended) != 2 {
		t.Fatalf("appended %d events, want 2", len(repo.appended))
	}
	lesson := repo.appended[0]
	if lesson.UnitID != "soil" || lesson.UnitKind != "lesson" || lesson.Points != 10 {
		t.Errorf("lesson event = %+v", lesson)
	}
	if lesson.Percent != nil {
		t.Error("lesson event carries a percent")
	}
	quiz := repo.appended[1]
	if quiz.Percent == nil || *quiz.Percent != 80 {
		t.Errorf("quiz event percent = %v, want 80", quiz.Percent)
	}
}

func TestCompleteUnit_EventFailureDoesNotBlock(t *testing.T) {
	repo := &mockEventRepo{fail: errors.New("db gone")}
	s := newTestService(t, repo)

	if _, err := s.CompleteUnit(context.Background(), "soil", nil); err != nil {
		t.Fatalf("completion failed on event append error: %v", err)
	}
	if !s.Completed("soil") {
		t.Error("completion not recorded despite event failure")
	}
}

func TestSnapshotRoundtrip(t *testing.T) {
	g := testGraph(t)
	s := NewService(g, unlock.New(g), nil, nil)
	ctx := context.Background()

	if _, err := s.CompleteUnit(ctx, "soil", nil); err != nil {
		t.Fatalf("lesson: %v", err)
	}
	if _, err := s.CompleteUnit(ctx, "soil-quiz", &reward.Outcome{ScoreEarned: 100, MaxScore: 100}); err != nil {
		t.Fatalf("quiz: %v", err)
	}

	snap := s.SnapshotData()
	restored := NewService(g, unlock.New(g), &snap, nil)

	if restored.TotalPoints() != s.TotalPoints() {
		t.Errorf("points = %d, want %d", restored.TotalPoints(), s.TotalPoints())
	}
	if restored.Stage() != s.Stage() {
		t.Errorf("stage = %s, want %s", restored.Stage(), s.Stage())
	}
	if !restored.Completed("soil") || !restored.Completed("soil-quiz") {
		t.Error("completions lost across the snapshot roundtrip")
	}

	// The restored ledger still refuses repeat completions and returns the
	// original grant.
	grant, err := restored.CompleteUnit(ctx, "soil-quiz", &reward.Outcome{ScoreEarned: 50, MaxScore: 100})
	if !errors.Is(err, ErrAlreadyCompleted) {
		t.Fatalf("err = %v, want ErrAlreadyCompleted", err)
	}
	if grant.Points != 100 {
		t.Errorf("restored prior grant points = %d, want 100", grant.Points)
	}

	// And the restored ledger has not double-granted the first-quiz seed.
	next, err := restored.CompleteUnit(ctx, "second-quiz", &reward.Outcome{ScoreEarned: 95, MaxScore: 100})
	if err != nil {
		t.Fatalf("second quiz after restore: %v", err)
	}
	if next.Items.Get(reward.ItemSeed) != 0 {
		t.Errorf("restored ledger repeated the first-quiz seed: %v", next.Items)
	}
}

func TestCompletedCounts(t *testing.T) {
	s := newTestService(t, nil)
	ctx := context.Background()

	if _, err := s.CompleteUnit(ctx, "soil", nil); err != nil {
		t.Fatalf("lesson: %v", err)
	}
	if _, err := s.CompleteUnit(ctx, "soil-quiz", &reward.Outcome{ScoreEarned: 60, MaxScore: 100}); err != nil {
		t.Fatalf("quiz: %v", err)
	}

	counts := s.CompletedCounts()
	if counts[catalog.UnitLesson] != 1 || counts[catalog.UnitQuiz] != 1 || counts[catalog.UnitChallenge] != 0 {
		t.Errorf("counts = %v", counts)
	}
}
