package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/partyplanner/internal/party"
	"github.com/rshade/partyplanner/internal/render"
	"github.com/rshade/partyplanner/internal/state"
	"github.com/rshade/partyplanner/internal/tui/detail"
	"github.com/rshade/partyplanner/internal/tui/theme"
)

const helpText = "↑/↓ move • enter select • click select • q quit"

// View renders the model. The whole screen is rebuilt from the snapshot on
// every call.
func (m PartyPlannerModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateLoading:
		return theme.TitleStyle.Render(render.Title) + "\n\n" + RenderLoading(m.loadingState)
	case ViewStateList:
		return m.renderScreen()
	default:
		return ""
	}
}

func (m PartyPlannerModel) renderScreen() string {
	listWidth := m.listWidth()

	var listPane string
	if m.snap.HasParties() {
		listPane = m.list.View()
	} else {
		listPane = theme.SubtleStyle.Render(render.EmptyListMessage)
	}

	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render(render.Title))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(listWidth).Render(theme.HeaderStyle.Render(render.ListHeading)+"\n"+listPane),
		renderDetailPane(m.snap.Selected, m.width-listWidth),
	))
	b.WriteString("\n\n")
	b.WriteString(theme.SubtleStyle.Render(helpText + " • " + render.PartyCount(len(m.snap.Parties))))
	return b.String()
}

// RenderStatic renders the list and details once, without a cursor, for
// styled non-interactive output.
func RenderStatic(snap state.Snapshot, width int) string {
	listWidth := width * listPaneRatio / 100 //nolint:mnd // Percentage calculation.
	if listWidth < minListWidth {
		listWidth = minListWidth
	}

	var rows []string
	for _, p := range snap.Parties {
		rows = append(rows, theme.RowStyle.MaxWidth(listWidth).Render("  "+p.Name))
	}
	listPane := strings.Join(rows, "\n")
	if !snap.HasParties() {
		listPane = theme.SubtleStyle.Render(render.EmptyListMessage)
	}

	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render(render.Title))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(listWidth).Render(theme.HeaderStyle.Render(render.ListHeading)+"\n"+listPane),
		renderDetailPane(snap.Selected, width-listWidth),
	))
	b.WriteString("\n")
	return b.String()
}

func renderDetailPane(p *party.Party, width int) string {
	inner := width - borderPadding*2
	if inner < minListWidth {
		inner = minListWidth
	}
	return theme.BoxStyle.Width(width - borderPadding).Render(detail.Render(p, inner))
}

// renderRow renders one list row truncated to width.
func renderRow(p party.Party, cursor bool, width int) string {
	if cursor {
		return theme.SelectedRowStyle.MaxWidth(width).Render("> " + p.Name)
	}
	return theme.RowStyle.MaxWidth(width).Render("  " + p.Name)
}
