package render

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/rshade/partyplanner/internal/party"
	"github.com/rshade/partyplanner/internal/state"
)

// PartyHref is the link a list row points at. Following it selects the party.
func PartyHref(id int) string {
	return "/parties/" + strconv.Itoa(id)
}

// Page renders the contents of the mount point: the title and the list and
// details sections.
func Page(snap state.Snapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, "<h1>%s</h1><main><section><h2>%s</h2>",
			templ.EscapeString(Title), templ.EscapeString(ListHeading)); err != nil {
			return err
		}

		if snap.HasParties() {
			if err := PartyList(snap.Parties).Render(ctx, w); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprintf(w, "<p>%s</p>", templ.EscapeString(EmptyListMessage)); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, `</section><section id="party-details"><h2>%s</h2>`,
			templ.EscapeString(DetailsHeading)); err != nil {
			return err
		}

		var details templ.Component
		if snap.HasSelection() {
			details = PartyCard(*snap.Selected)
		} else {
			details = NoPartySelected()
		}
		if err := details.Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, "</section></main>")
		return err
	})
}

// PartyList renders one clickable row per party showing only its name.
func PartyList(parties []party.Party) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<ul class="party-list">`); err != nil {
			return err
		}
		for _, p := range parties {
			href := templ.URL(PartyHref(p.ID))
			if _, err := fmt.Fprintf(w, `<li data-party-id="%d"><a href="%s">%s</a></li>`,
				p.ID, templ.EscapeString(string(href)), templ.EscapeString(p.Name)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</ul>")
		return err
	})
}

// PartyCard renders the details of one party. The guest list row appears only
// when the record carries one.
func PartyCard(p party.Party) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<article class="party-card"><h3>%s</h3>`, templ.EscapeString(p.Name)); err != nil {
			return err
		}

		rows := []struct{ label, value string }{
			{DateLabel, p.Date},
			{LocationLabel, p.Location},
			{DescriptionLabel, p.Description},
		}
		if p.HasGuestList() {
			rows = append(rows, struct{ label, value string }{GuestListLabel, p.GuestList})
		}
		for _, row := range rows {
			if _, err := fmt.Fprintf(w, "<p><strong>%s</strong> %s</p>",
				templ.EscapeString(row.label), templ.EscapeString(row.value)); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "</article>")
		return err
	})
}

// NoPartySelected renders the prompt shown before any party is selected.
func NoPartySelected() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "<p>%s</p>", templ.EscapeString(SelectPrompt))
		return err
	})
}

// Document renders a complete HTML document whose mount element holds Page.
func Document(snap state.Snapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
				`<meta name="viewport" content="width=device-width, initial-scale=1">`+
				`<title>%s</title></head><body><div id="%s">`,
			templ.EscapeString(Title), MountID); err != nil {
			return err
		}
		if err := Page(snap).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</div></body></html>")
		return err
	})
}
