package render

import (
	"context"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/dkeye/Waterdeep/internal/core"
)

// HTML renders a standalone lobby page with one join button per game.
type HTML struct {
	Title string
}

func (h HTML) Render(ctx context.Context, w io.Writer, cards []core.GameCard) error {
	title := h.Title
	if title == "" {
		title = "Waterdeep lobby"
	}
	return Page(title, cards).Render(ctx, w)
}

func Page(title string, cards []core.GameCard) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <title>`+html.EscapeString(title)+`</title>
    <link rel="stylesheet" href="/static/holder.css"/>
  </head>
  <body>
    <main class="games">
`); err != nil {
			return err
		}
		if len(cards) == 0 {
			if _, err := io.WriteString(w, "      <p class=\"empty\">No games in progress.</p>\n"); err != nil {
				return err
			}
		}
		for _, c := range cards {
			if err := GameButton(c).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `    </main>
  </body>
</html>
`)
		return err
	})
}

// GameButton is the markup of one game: its name and a marker per player.
func GameButton(card core.GameCard) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class := "game-button"
		if card.Started {
			class += " started"
		}
		out := `      <button class="` + class + `" data-game="` + html.EscapeString(card.ID) + `">
        <span class="game-name">` + html.EscapeString(card.Name) + `</span>
        <ul class="players">
`
		for _, p := range card.Players {
			out += `          <li><span class="` + html.EscapeString(p.IconClass) + `"></span>` + html.EscapeString(p.Name) + "</li>\n"
		}
		out += "        </ul>\n      </button>\n"
		_, err := io.WriteString(w, out)
		return err
	})
}
