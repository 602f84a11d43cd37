// Package gamedata provides embedded game data and utilities for loading it.
package gamedata

import "embed"

// dataFS holds the species table and any other JSON data shipped with the binary.
//
//go:embed *.json
var dataFS embed.FS
