package detail

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/partyplanner/internal/party"
	"github.com/rshade/partyplanner/internal/render"
	"github.com/rshade/partyplanner/internal/tui/theme"
)

// Render returns the details pane for p, or the selection prompt when p is
// nil. Long values wrap at width columns; a non-positive width disables
// wrapping.
func Render(p *party.Party, width int) string {
	var b strings.Builder
	b.WriteString(theme.HeaderStyle.Render(render.DetailsHeading))
	b.WriteString("\n\n")

	if p == nil {
		b.WriteString(wrap(theme.SubtleStyle, width).Render(render.SelectPrompt))
		return b.String()
	}

	b.WriteString(wrap(theme.NameStyle, width).Render(p.Name))
	b.WriteString("\n")
	writeField(&b, render.DateLabel, p.Date, width)
	writeField(&b, render.LocationLabel, p.Location, width)
	writeField(&b, render.DescriptionLabel, p.Description, width)
	if p.HasGuestList() {
		writeField(&b, render.GuestListLabel, p.GuestList, width)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func writeField(b *strings.Builder, label, value string, width int) {
	line := theme.LabelStyle.Render(label) + " " + value
	b.WriteString(wrap(lipgloss.NewStyle(), width).Render(line))
	b.WriteString("\n")
}

func wrap(s lipgloss.Style, width int) lipgloss.Style {
	if width <= 0 {
		return s
	}
	return s.Width(width)
}
