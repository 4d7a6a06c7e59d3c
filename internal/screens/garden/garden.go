// Package garden renders the learner's tree: its growth stage, the item
// inventory feeding it, and what the next stage needs.
package garden

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/progress"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/verdantapp/verdant/internal/growth"
	"github.com/verdantapp/verdant/internal/ledger"
	"github.com/verdantapp/verdant/internal/reward"
	"github.com/verdantapp/verdant/internal/router"
	"github.com/verdantapp/verdant/internal/screen"
	"github.com/verdantapp/verdant/internal/ui/layout"
	"github.com/verdantapp/verdant/internal/ui/theme"
)

// GardenScreen is the home screen: the tree and its resources.
type GardenScreen struct {
	service *ledger.Service
	meter   progress.Model
	quests  func() screen.Screen // factory for the quests screen
}

var _ screen.Screen = (*GardenScreen)(nil)
var _ screen.KeyHintProvider = (*GardenScreen)(nil)

// New creates a garden screen over the ledger service. quests builds the
// screen pushed when the learner opens the quest log.
func New(service *ledger.Service, quests func() screen.Screen) *GardenScreen {
	return &GardenScreen{
		service: service,
		meter:   progress.New(progress.WithDefaultBlend(), progress.WithoutPercentage()),
		quests:  quests,
	}
}

func (s *GardenScreen) Init() tea.Cmd {
	return nil
}

func (s *GardenScreen) Title() string {
	return "Garden"
}

func (s *GardenScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Q", Description: "Quest log"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *GardenScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "Q", "enter":
			next := s.quests()
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}
	}
	return s, nil
}

func (s *GardenScreen) View(width, height int) string {
	stage := s.service.Stage()
	inventory := s.service.Inventory()

	var b strings.Builder

	art := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render(treeArt(stage))
	b.WriteString("\n" + art + "\n")

	title := theme.Title.Width(width).Render(stage.Icon() + " " + stage.DisplayName())
	b.WriteString(title + "\n\n")

	b.WriteString(renderInventory(inventory, width) + "\n\n")
	b.WriteString(s.renderNextStage(stage, inventory, width))

	return b.String()
}

func renderInventory(inv reward.Bundle, width int) string {
	parts := make([]string, 0, len(reward.AllItemTypes()))
	for _, t := range reward.AllItemTypes() {
		style := theme.Body
		if inv.Get(t) == 0 {
			style = theme.LockedStyle
		}
		parts = append(parts, style.Render(fmt.Sprintf("%s %s ×%d", t.Icon(), t.DisplayName(), inv.Get(t))))
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(strings.Join(parts, "   "))
}

func (s *GardenScreen) renderNextStage(stage growth.Stage, inv reward.Bundle, width int) string {
	next, ok := growth.Next(stage)
	if !ok {
		return theme.Subtitle.Width(width).Render("Your forest is complete. 🌟")
	}

	var lines []string
	lines = append(lines, theme.Subtitle.Render(fmt.Sprintf("Next: %s %s", next.Icon(), next.DisplayName())))

	barWidth := width / 2
	if barWidth > 48 {
		barWidth = 48
	}
	s.meter.SetWidth(barWidth)
	lines = append(lines, s.meter.ViewAs(growth.ProgressToward(inv, next)))

	var needs []string
	for _, t := range reward.AllItemTypes() {
		if missing := growth.Requirement(next).Get(t) - inv.Get(t); missing > 0 {
			needs = append(needs, fmt.Sprintf("%s ×%d", t.Icon(), missing))
		}
	}
	if len(needs) > 0 {
		lines = append(lines, theme.Hint.Render("Still needs  "+strings.Join(needs, "  ")))
	}

	block := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(block)
}
