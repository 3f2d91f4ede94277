package view

import (
	"fmt"

	"github.com/dkeye/Waterdeep/internal/domain"
)

// iconClasses maps every color to its player marker CSS class.
var iconClasses = [domain.NumColors]string{
	domain.Black:  "holder-black-22",
	domain.Blue:   "holder-blue-22",
	domain.Green:  "holder-green-22",
	domain.Red:    "holder-red-22",
	domain.Yellow: "holder-yellow-22",
}

func init() {
	for i, class := range iconClasses {
		if class == "" {
			panic(fmt.Sprintf("view: no icon class for %s", domain.Color(i)))
		}
	}
}

// IconClass returns the marker class for c; false if c is not a known color.
func IconClass(c domain.Color) (string, bool) {
	if !c.Valid() {
		return "", false
	}
	return iconClasses[c], true
}

// PlayerMarker is what a game button shows for one player.
type PlayerMarker struct {
	Name      string
	IconClass string
}
