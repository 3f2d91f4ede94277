// Package render draws game cards as plain text or as an HTML page.
package render

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dkeye/Waterdeep/internal/core"
)

// Text writes one row per game: its position, name, state and players.
// The marker class is shown next to each player so colors survive a
// monochrome terminal.
type Text struct{}

func (Text) Render(_ context.Context, w io.Writer, cards []core.GameCard) error {
	if len(cards) == 0 {
		_, err := fmt.Fprintln(w, "No games in progress.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tGAME\tSTATE\tPLAYERS")
	for i, c := range cards {
		players := make([]string, len(c.Players))
		for j, p := range c.Players {
			name := p.Name
			if name == "" {
				name = "(unnamed)"
			}
			players[j] = fmt.Sprintf("%s [%s]", name, p.IconClass)
		}
		state := "open"
		if c.Started {
			state = "started"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, c.Name, state, strings.Join(players, ", "))
	}
	return tw.Flush()
}
