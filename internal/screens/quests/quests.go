// Package quests renders the quest log: every module with its rollup
// progress, and the units inside the selected module with their lock state.
package quests

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/verdantapp/verdant/internal/catalog"
	"github.com/verdantapp/verdant/internal/ledger"
	"github.com/verdantapp/verdant/internal/progress"
	"github.com/verdantapp/verdant/internal/router"
	"github.com/verdantapp/verdant/internal/screen"
	"github.com/verdantapp/verdant/internal/ui/components"
	"github.com/verdantapp/verdant/internal/ui/layout"
	"github.com/verdantapp/verdant/internal/ui/theme"
)

// QuestsScreen lists leaf groups and their units.
type QuestsScreen struct {
	graph    *catalog.Graph
	service  *ledger.Service
	modules  []catalog.Group
	selected int
}

var _ screen.Screen = (*QuestsScreen)(nil)
var _ screen.KeyHintProvider = (*QuestsScreen)(nil)

// New creates a quests screen.
func New(graph *catalog.Graph, service *ledger.Service) *QuestsScreen {
	return &QuestsScreen{
		graph:   graph,
		service: service,
		modules: leafGroups(graph),
	}
}

// leafGroups walks the group tree in display order and returns the groups
// whose children are all units.
func leafGroups(g *catalog.Graph) []catalog.Group {
	var out []catalog.Group
	var walk func(grp catalog.Group)
	walk = func(grp catalog.Group) {
		leaf := true
		for _, child := range grp.Children {
			if g.IsGroup(child) {
				leaf = false
				sub, err := g.Group(child)
				if err == nil {
					walk(sub)
				}
			}
		}
		if leaf {
			out = append(out, grp)
		}
	}
	for _, root := range g.RootGroups() {
		walk(root)
	}
	return out
}

func (s *QuestsScreen) Init() tea.Cmd {
	return nil
}

func (s *QuestsScreen) Title() string {
	return "Quest Log"
}

func (s *QuestsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select module"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *QuestsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.modules)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *QuestsScreen) View(width, height int) string {
	if len(s.modules) == 0 {
		return theme.Subtitle.Width(width).Render("The catalog has no modules.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, mod := range s.modules {
		summary, err := progress.GroupProgress(s.graph, mod.ID, s.service)
		if err != nil {
			continue
		}

		label := "  " + mod.Name
		if i == s.selected {
			label = theme.Selected.Render("▸ " + mod.Name)
		}
		bar := components.ProgressBar{
			Label:     label,
			Completed: summary.CompletedCount,
			Total:     summary.TotalCount,
			Percent:   summary.Percent,
			ShowCount: true,
			Width:     width - 6,
		}
		b.WriteString("  " + bar.View() + "\n")
	}

	b.WriteString("\n")
	b.WriteString(s.renderUnits(s.modules[s.selected], width))
	return b.String()
}

func (s *QuestsScreen) renderUnits(mod catalog.Group, width int) string {
	var lines []string
	for _, childID := range mod.Children {
		unit, err := s.graph.Unit(childID)
		if err != nil {
			continue
		}

		var line string
		switch {
		case s.service.Completed(unit.ID):
			line = theme.Done.Render(fmt.Sprintf("✓ %s  —  %s", unit.Name, unit.Kind.DisplayName()))
		default:
			ok, err := s.service.CanAccess(unit.ID)
			if err == nil && ok {
				line = theme.Body.Render(fmt.Sprintf("▸ %s  —  %s", unit.Name, unit.Kind.DisplayName()))
			} else {
				line = theme.LockedStyle.Render(fmt.Sprintf("🔒 %s  —  %s", unit.Name, unit.Kind.DisplayName()))
			}
		}
		if mod.BossID == unit.ID {
			line += theme.Hint.Render("  (boss)")
		}
		lines = append(lines, "    "+line)
	}

	card := theme.Card.Width(width - 8).Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().PaddingLeft(2).Render(card)
}
