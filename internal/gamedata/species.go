package gamedata

import "github.com/gdamore/tcell/v2"

// SpeciesDef defines a wild creature species loaded from JSON.
type SpeciesDef struct {
	ID     string `json:"id"`     // Unique identifier (e.g., "flameling")
	Name   string `json:"name"`   // Display name (e.g., "Flameling")
	Type   string `json:"type"`   // Elemental type (e.g., "fire")
	Attack int    `json:"attack"` // Base attack power
	HP     int    `json:"hp"`     // Maximum hit points
	Color  string `json:"color"`  // Hex color code (e.g., "#FF6B35")
}

// TCellColor returns the color as a tcell.Color.
func (s *SpeciesDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(s.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// SpeciesFile represents the structure of species.json.
type SpeciesFile struct {
	Species []SpeciesDef `json:"species"`
}

// LoadSpecies loads species definitions from the embedded species.json file.
func LoadSpecies() ([]SpeciesDef, error) {
	file, err := Load[SpeciesFile]("species.json")
	if err != nil {
		return nil, err
	}
	return file.Species, nil
}
