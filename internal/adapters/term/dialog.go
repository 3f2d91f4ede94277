// Package term implements the join dialog on a text terminal.
package term

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Waterdeep/internal/core"
	"github.com/dkeye/Waterdeep/internal/domain"
)

type line struct {
	text string
	err  error
}

// Dialog asks for a name and a color line by line. An empty answer or end of
// input cancels. Input is read by a single background goroutine so a prompt
// abandoned through its context does not lose the next line.
type Dialog struct {
	in  io.Reader
	out io.Writer

	once  sync.Once
	lines chan line
	mu    sync.Mutex
}

func NewDialog(in io.Reader, out io.Writer) *Dialog {
	return &Dialog{in: in, out: out}
}

func (d *Dialog) start() {
	d.lines = make(chan line)
	go func() {
		defer close(d.lines)
		sc := bufio.NewScanner(d.in)
		for sc.Scan() {
			d.lines <- line{text: sc.Text()}
		}
		if err := sc.Err(); err != nil {
			d.lines <- line{err: err}
		}
	}()
}

func (d *Dialog) Prompt(ctx context.Context, req core.PromptRequest) (core.PromptResult, error) {
	d.once.Do(d.start)
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(req.Colors) == 0 {
		return core.PromptResult{}, errors.New("term: no colors to choose from")
	}

	fmt.Fprintf(d.out, "== %s ==\n", req.Title)

	var name string
	for {
		text, err := d.ask(ctx, "Name (empty to cancel): ")
		if err != nil {
			return core.PromptResult{}, err
		}
		if text == "" {
			return core.PromptResult{}, core.ErrDialogCanceled
		}
		if err := domain.ValidateName(text); err != nil {
			fmt.Fprintf(d.out, "  %v\n", err)
			continue
		}
		name = text
		break
	}

	for i, c := range req.Colors {
		fmt.Fprintf(d.out, "  %d) %s\n", i+1, c)
	}
	var color domain.Color
	for {
		text, err := d.ask(ctx, fmt.Sprintf("Color [1-%d] (empty to cancel): ", len(req.Colors)))
		if err != nil {
			return core.PromptResult{}, err
		}
		if text == "" {
			return core.PromptResult{}, core.ErrDialogCanceled
		}
		c, ok := pickColor(text, req.Colors)
		if !ok {
			fmt.Fprintf(d.out, "  %q is not one of the offered colors\n", text)
			continue
		}
		color = c
		break
	}

	text, err := d.ask(ctx, fmt.Sprintf("%s as %s (%s)? [y/N]: ", req.Confirm, name, color))
	if err != nil {
		return core.PromptResult{}, err
	}
	if a := strings.ToLower(strings.TrimSpace(text)); a != "y" && a != "yes" {
		return core.PromptResult{}, core.ErrDialogCanceled
	}
	return core.PromptResult{Name: name, Color: color}, nil
}

// ask writes question and waits for one line. End of input is a cancel.
func (d *Dialog) ask(ctx context.Context, question string) (string, error) {
	fmt.Fprint(d.out, question)
	select {
	case <-ctx.Done():
		fmt.Fprintln(d.out)
		return "", ctx.Err()
	case l, ok := <-d.lines:
		if !ok {
			fmt.Fprintln(d.out)
			return "", core.ErrDialogCanceled
		}
		if l.err != nil {
			log.Error().Str("module", "adapters.term").Err(l.err).Msg("read input failed")
			return "", fmt.Errorf("read input: %w", l.err)
		}
		return l.text, nil
	}
}

// pickColor accepts either a 1-based index into offered or a color token
// that is in offered.
func pickColor(text string, offered []domain.Color) (domain.Color, bool) {
	text = strings.TrimSpace(text)
	if n, err := strconv.Atoi(text); err == nil {
		if n < 1 || n > len(offered) {
			return 0, false
		}
		return offered[n-1], true
	}
	c, ok := domain.ParseColor(strings.ToLower(text))
	if !ok {
		return 0, false
	}
	for _, o := range offered {
		if o == c {
			return c, true
		}
	}
	return 0, false
}
