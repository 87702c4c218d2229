package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/rshade/partyplanner/internal/party"
	"github.com/rshade/partyplanner/internal/state"
)

// Text writes the page as plain text.
func Text(w io.Writer, snap state.Snapshot) error {
	var sb strings.Builder

	sb.WriteString(Title + "\n")
	sb.WriteString(strings.Repeat("=", len(Title)) + "\n\n")

	sb.WriteString(ListHeading + "\n")
	if snap.HasParties() {
		for _, p := range snap.Parties {
			sb.WriteString("  " + p.Name + "\n")
		}
	} else {
		sb.WriteString(EmptyListMessage + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString(DetailsHeading + "\n")
	if snap.HasSelection() {
		sb.WriteString(CardText(*snap.Selected))
	} else {
		sb.WriteString(SelectPrompt + "\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// CardText formats a party's details as labelled lines.
func CardText(p party.Party) string {
	var sb strings.Builder
	sb.WriteString(p.Name + "\n")
	fmt.Fprintf(&sb, "%s %s\n", DateLabel, p.Date)
	fmt.Fprintf(&sb, "%s %s\n", LocationLabel, p.Location)
	fmt.Fprintf(&sb, "%s %s\n", DescriptionLabel, p.Description)
	if p.HasGuestList() {
		fmt.Fprintf(&sb, "%s %s\n", GuestListLabel, p.GuestList)
	}
	return sb.String()
}
