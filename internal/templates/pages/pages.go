// Package pages assembles full HTML documents around the layout.
package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/caffeinetrackr/caffeinetrackr/internal/layout"
)

const fontAwesomeURL = "https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.1/css/all.min.css"

// Home renders the landing page.
func Home(l *layout.Layout, p layout.Page) templ.Component {
	return page("CaffeineTrackr", l.Render(p, hero()))
}

// Account renders the signed-in user's account card.
func Account(l *layout.Layout, p layout.Page) templ.Component {
	return page("Account | CaffeineTrackr", l.Render(p, accountCard(p)))
}

// page renders Document with body as its children.
func page(title string, body g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Document(title).Render(templ.WithChildren(ctx, Fragment(body)), w)
	})
}

// Document is the HTML skeleton. The body is whatever children the
// context carries; rendering stops early once ctx is done.
func Document(title string) templ.Component {
	head := h.Head(
		h.Meta(h.Charset("utf-8")),
		h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1.0")),
		h.TitleEl(g.Text(title)),
		h.Link(h.Rel("stylesheet"), h.Href(fontAwesomeURL)),
		h.Link(h.Rel("stylesheet"), h.Href("/static/styles.css")),
	)

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<!doctype html><html lang="en">`); err != nil {
			return err
		}
		if err := head.Render(w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "<body>"); err != nil {
			return err
		}
		if err := templ.GetChildren(ctx).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}

// Fragment adapts a gomponents node to templ.
func Fragment(n g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return n.Render(w)
	})
}

func hero() g.Node {
	return h.Section(h.Class("hero"),
		h.H1(g.Text("Coffee Tracking for Coffee "), h.Span(h.Class("text-gradient"), g.Text("Fiends")), g.Text("!")),
		h.Div(h.Class("benefits-list"),
			h.H3(h.Class("font-bolder"), g.Text("Try "), h.Span(h.Class("text-gradient"), g.Text("CaffeineTrackr")), g.Text(" and start...")),
			h.P(g.Text("✅ Tracking every coffee")),
			h.P(g.Text("✅ Measuring your blood caffeine levels")),
			h.P(g.Text("✅ Costing and quantifying your addiction")),
		),
		h.Div(h.Class("card info-card"),
			h.Div(
				h.I(h.Class("fa-solid fa-circle-info")),
				h.H3(g.Text("Did you know...")),
			),
			h.H5(g.Text("That caffeine's half-life is about 5 hours?")),
			h.P(g.Text("This means that after 5 hours, half the caffeine you consumed is still in your system, keeping you alert longer!")),
		),
	)
}

func accountCard(p layout.Page) g.Node {
	if p.Session == nil {
		return h.Section(h.Class("card"), h.P(g.Text("You are not signed in.")))
	}

	return h.Section(h.Class("card account-card"),
		h.H2(g.Text("Your account")),
		h.P(g.Text("Signed in as "), h.Strong(g.Text(p.Session.Email))),
		h.P(g.Textf("Member since %s", p.Session.MemberSince.Format("January 2, 2006"))),
	)
}
