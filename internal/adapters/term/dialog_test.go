package term

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkeye/Waterdeep/internal/core"
	"github.com/dkeye/Waterdeep/internal/domain"
)

func joinRequest(colors ...domain.Color) core.PromptRequest {
	if len(colors) == 0 {
		colors = domain.AllColors()
	}
	return core.PromptRequest{Title: "Join game", Confirm: "Join", Colors: colors}
}

func TestDialog_Confirm(t *testing.T) {
	var out bytes.Buffer
	d := NewDialog(strings.NewReader("Alice\n2\ny\n"), &out)

	res, err := d.Prompt(context.Background(), joinRequest())
	require.NoError(t, err)
	require.Equal(t, core.PromptResult{Name: "Alice", Color: domain.Blue}, res)
	require.Contains(t, out.String(), "== Join game ==")
	require.Contains(t, out.String(), "Join as Alice (blue)?")
}

func TestDialog_ColorByToken(t *testing.T) {
	d := NewDialog(strings.NewReader("Bob\nYellow\nyes\n"), io.Discard)

	res, err := d.Prompt(context.Background(), joinRequest())
	require.NoError(t, err)
	require.Equal(t, domain.Yellow, res.Color)
}

func TestDialog_RepromptsOnBadInput(t *testing.T) {
	var out bytes.Buffer
	long := strings.Repeat("x", domain.MaxNameLen+1)
	d := NewDialog(strings.NewReader("   \n"+long+"\nAlice\n9\nred\ngreen\ny\n"), &out)

	res, err := d.Prompt(context.Background(), joinRequest(domain.Blue, domain.Green))
	require.NoError(t, err)
	require.Equal(t, core.PromptResult{Name: "Alice", Color: domain.Green}, res)
	require.Contains(t, out.String(), domain.ErrNameEmpty.Error())
	require.Contains(t, out.String(), domain.ErrNameTooLong.Error())
	require.Contains(t, out.String(), `"red" is not one of the offered colors`)
}

func TestDialog_Cancel(t *testing.T) {
	cases := map[string]string{
		"empty name":  "\n",
		"empty color": "Alice\n\n",
		"declined":    "Alice\n1\nn\n",
		"eof":         "Alice\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			d := NewDialog(strings.NewReader(input), io.Discard)
			_, err := d.Prompt(context.Background(), joinRequest())
			require.ErrorIs(t, err, core.ErrDialogCanceled)
		})
	}
}

func TestDialog_ContextCanceled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	d := NewDialog(pr, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := d.Prompt(ctx, joinRequest())
	require.ErrorIs(t, err, context.Canceled)
}

func TestDialog_NoColors(t *testing.T) {
	d := NewDialog(strings.NewReader(""), io.Discard)
	_, err := d.Prompt(context.Background(), core.PromptRequest{Title: "Join game"})
	require.Error(t, err)
	require.NotErrorIs(t, err, core.ErrDialogCanceled)
}

func TestPickColor(t *testing.T) {
	offered := []domain.Color{domain.Red, domain.Black}

	c, ok := pickColor("2", offered)
	require.True(t, ok)
	require.Equal(t, domain.Black, c)

	c, ok = pickColor(" RED ", offered)
	require.True(t, ok)
	require.Equal(t, domain.Red, c)

	for _, bad := range []string{"0", "3", "blue", "purple"} {
		_, ok = pickColor(bad, offered)
		require.False(t, ok, bad)
	}
}
