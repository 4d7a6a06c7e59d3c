package progress

import (
	"errors"
	"testing"

	"github.com/verdantapp/verdant/internal/catalog"
)

type doneSet map[string]bool

func (d doneSet) Completed(id string) bool { return d[id] }

func testGraph(t *testing.T) *catalog.Graph {
	t.Helper()
	g, err := catalog.NewGraph(catalog.Catalog{
		Version: "1.0.0",
		Units: []catalog.Unit{
			{ID: "u1", Name: "U1", Kind: catalog.UnitLesson, Points: 5},
			{ID: "u2", Name: "U2", Kind: catalog.UnitLesson, Points: 5},
			{ID: "u3", Name: "U3", Kind: catalog.UnitChallenge, Points: 10},
			{ID: "u4", Name: "U4", Kind: catalog.UnitQuiz, MaxScore: 50},
			{ID: "u5", Name: "U5", Kind: catalog.UnitBoss, Points: 25},
		},
		Groups: []catalog.Group{
			{ID: "mod-a", Name: "Module A", Kind: catalog.GroupModule, Order: 0,
				Children: []string{"u1", "u2", "u3"}},
			{ID: "mod-b", Name: "Module B", Kind: catalog.GroupModule, Order: 1,
				Children: []string{"u4", "u5"}, BossID: "u5"},
			{ID: "level", Name: "Level", Kind: catalog.GroupSubLevel, Order: 0,
				Children: []string{"mod-a", "mod-b"}},
			{ID: "mod-empty", Name: "Empty Module", Kind: catalog.GroupModule, Order: 2,
				Children: []string{}},
		},
	})
	if err != nil {
		t.Fatalf("build graph: %v", err)
	}
	return g
}

func TestGroupProgress(t *testing.T) {
	g := testGraph(t)

	tests := []struct {
		name string
		id   string
		done doneSet
		want Summary
	}{
		{
			name: "nothing done",
			id:   "mod-a",
			done: doneSet{},
			want: Summary{CompletedCount: 0, TotalCount: 3, Percent: 0},
		},
		{
			name: "two of five",
			id:   "level",
			done: doneSet{"u1": true, "u2": true},
			want: Summary{CompletedCount: 2, TotalCount: 5, Percent: 40},
		},
		{
			name: "rounding up",
			id:   "mod-a",
			done: doneSet{"u1": true},
			want: Summary{CompletedCount: 1, TotalCount: 3, Percent: 33},
		},
		{
			name: "empty group",
			id:   "mod-empty",
			done: doneSet{"u1": true},
			want: Summary{CompletedCount: 0, TotalCount: 0, Percent: 0},
		},
		{
			name: "all done",
			id:   "mod-a",
			done: doneSet{"u1": true, "u2": true, "u3": true},
			want: Summary{CompletedCount: 3, TotalCount: 3, Percent: 100, Completed: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GroupProgress(g, tt.id, tt.done)
			if err != nil {
				t.Fatalf("GroupProgress: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGroupProgress_BossGate(t *testing.T) {
	g := testGraph(t)

	// All leaves except the boss: not complete even at high percent.
	s, err := GroupProgress(g, "mod-b", doneSet{"u4": true})
	if err != nil {
		t.Fatalf("GroupProgress: %v", err)
	}
	if s.Completed {
		t.Error("group complete without its boss")
	}
	if s.Percent != 50 {
		t.Errorf("percent = %d, want 50", s.Percent)
	}

	s, err = GroupProgress(g, "mod-b", doneSet{"u4": true, "u5": true})
	if err != nil {
		t.Fatalf("GroupProgress: %v", err)
	}
	if !s.Completed || s.Percent != 100 {
		t.Errorf("got %+v, want completed at 100", s)
	}
}

func TestGroupProgress_UnknownGroup(t *testing.T) {
	g := testGraph(t)
	if _, err := GroupProgress(g, "ghost", doneSet{}); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
