package quests

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/verdantapp/verdant/internal/catalog"
	"github.com/verdantapp/verdant/internal/ledger"
	"github.com/verdantapp/verdant/internal/router"
	"github.com/verdantapp/verdant/internal/unlock"
)

func newTestScreen(t *testing.T) (*QuestsScreen, *ledger.Service) {
	t.Helper()
	g, err := catalog.NewGraph(catalog.Catalog{
		Version: "1.0.0",
		Units: []catalog.Unit{
			{ID: "soil", Name: "Soil Basics", Kind: catalog.UnitLesson, Points: 10},
			{ID: "soil-quiz", Name: "Soil Quiz", Kind: catalog.UnitQuiz, MaxScore: 100,
				Prerequisites: []string{"soil"}},
			{ID: "canopy", Name: "Canopy Lesson", Kind: catalog.UnitLesson, Points: 10},
		},
		Groups: []catalog.Group{
			{ID: "roots", Name: "Roots", Kind: catalog.GroupModule, Order: 0,
				Children: []string{"soil", "soil-quiz"}},
			{ID: "canopy-mod", Name: "Canopy", Kind: catalog.GroupModule, Order: 1,
				Children: []string{"canopy"}},
			{ID: "level", Name: "Level One", Kind: catalog.GroupSubLevel, Order: 0,
				Children: []string{"roots", "canopy-mod"}},
		},
	})
	if err != nil {
		t.Fatalf("build graph: %v", err)
	}
	service := ledger.NewService(g, unlock.New(g), nil, nil)
	return New(g, service), service
}

func TestLeafGroupsSkipContainers(t *testing.T) {
	s, _ := newTestScreen(t)

	if len(s.modules) != 2 {
		t.Fatalf("got %d modules, want 2", len(s.modules))
	}
	if s.modules[0].ID != "roots" || s.modules[1].ID != "canopy-mod" {
		t.Errorf("modules = %v", s.modules)
	}
}

func TestViewShowsLockStates(t *testing.T) {
	s, service := newTestScreen(t)

	view := s.View(100, 30)
	if !strings.Contains(view, "Soil Basics") {
		t.Fatal("view does not list the first unit")
	}
	if !strings.Contains(view, "🔒 Soil Quiz") {
		t.Error("locked quiz not marked as locked")
	}

	if _, err := service.CompleteUnit(context.Background(), "soil", nil); err != nil {
		t.Fatalf("complete: %v", err)
	}
	view = s.View(100, 30)
	if !strings.Contains(view, "✓ Soil Basics") {
		t.Error("completed unit not marked done")
	}
	if strings.Contains(view, "🔒 Soil Quiz") {
		t.Error("quiz still locked after its prerequisite completed")
	}
}

func TestSelectionKeys(t *testing.T) {
	s, _ := newTestScreen(t)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 1 {
		t.Errorf("selected = %d after down, want 1", s.selected)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 1 {
		t.Errorf("selected = %d at bottom, want 1", s.selected)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.selected != 0 {
		t.Errorf("selected = %d after up, want 0", s.selected)
	}
}

func TestEscPops(t *testing.T) {
	s, _ := newTestScreen(t)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command from esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("esc did not emit PopScreenMsg")
	}
}
