package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}

// TypeColor returns the display color for an elemental type. Creatures restored
// from a save carry only their type, so the renderer colors them through this.
func TypeColor(elementalType string) tcell.Color {
	switch strings.ToLower(elementalType) {
	case "fire":
		return tcell.ColorOrangeRed
	case "water":
		return tcell.ColorDarkCyan
	case "grass":
		return tcell.ColorGreenYellow
	case "rock":
		return tcell.ColorTan
	case "electric":
		return tcell.ColorGold
	case "ghost":
		return tcell.ColorMediumPurple
	default:
		return tcell.ColorWhite
	}
}
