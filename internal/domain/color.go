package domain

import "fmt"

// Color is one of the fixed set of player colors.
type Color int

const (
	Black Color = iota
	Blue
	Green
	Red
	Yellow

	numColors
)

// NumColors is the size of the color set. Tables indexed by Color use it as length.
const NumColors = int(numColors)

var colorNames = [NumColors]string{
	Black:  "black",
	Blue:   "blue",
	Green:  "green",
	Red:    "red",
	Yellow: "yellow",
}

// AllColors returns every color in declaration order.
func AllColors() []Color {
	out := make([]Color, 0, NumColors)
	for c := Color(0); c < numColors; c++ {
		out = append(out, c)
	}
	return out
}

// ParseColor matches s case-sensitively against the color tokens.
func ParseColor(s string) (Color, bool) {
	for i, name := range colorNames {
		if name == s {
			return Color(i), true
		}
	}
	return 0, false
}

func (c Color) Valid() bool { return c >= 0 && c < numColors }

func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid color %d", int(c))
	}
	return []byte(colorNames[c]), nil
}

func (c *Color) UnmarshalText(b []byte) error {
	parsed, ok := ParseColor(string(b))
	if !ok {
		return &DecodeError{Record: "color", Field: "color", Value: string(b), Err: ErrUnknownColor}
	}
	*c = parsed
	return nil
}
