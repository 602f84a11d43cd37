package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/terracreatures/internal/battle"
	"github.com/samdwyer/terracreatures/internal/entity"
	"github.com/samdwyer/terracreatures/internal/game"
	"github.com/samdwyer/terracreatures/internal/gamedata"
	"github.com/samdwyer/terracreatures/internal/world"
)

const (
	// cellsPerTile is how many terminal columns one map tile spans, which
	// keeps tiles roughly square.
	cellsPerTile = 2

	statusRows   = 1
	dialogueRows = 4

	hpBarWidth = 20
)

var (
	styleDefault = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	styleDim     = styleDefault.Foreground(tcell.ColorGray)
	styleBorder  = styleDefault.Foreground(tcell.ColorSilver)
	styleTitle   = styleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Renderer draws game views to the screen.
type Renderer struct {
	screen  *Screen
	species *gamedata.SpeciesRegistry
}

// NewRenderer creates a renderer for the given screen. species supplies
// creature colors; nil falls back to type colors.
func NewRenderer(screen *Screen, species *gamedata.SpeciesRegistry) *Renderer {
	return &Renderer{screen: screen, species: species}
}

// viewportFor returns the map area, in tiles, for a terminal of w x h cells.
func viewportFor(w, h int) (cols, rows int) {
	cols = max(w/cellsPerTile, 1)
	rows = max(h-statusRows-dialogueRows, 1)
	return cols, rows
}

// Render draws a full frame.
func (r *Renderer) Render(v game.View) {
	r.screen.Clear()
	w, h := r.screen.Size()

	if v.Battle != nil {
		r.renderBattle(v.Battle, w, h)
	} else {
		r.renderMap(v, w, h)
		r.renderStatus(v, h-dialogueRows-statusRows)
		if v.InventoryOpen {
			r.renderInventory(v, w, h)
		}
	}

	if v.DialogueText != "" {
		r.renderDialogue(v.DialogueText, v.DialogueRevealed, w, h)
	}

	r.screen.Show()
}

// =============================================================================
// Exploration
// =============================================================================

func (r *Renderer) renderMap(v game.View, w, h int) {
	if v.Map == nil {
		return
	}
	_, rows := viewportFor(w, h)

	for y := 0; y < v.Map.Height; y++ {
		sy := toCell(float64(y)*game.TileSize, v.CameraY, 1)
		if sy < 0 || sy >= rows {
			continue
		}
		for x := 0; x < v.Map.Width; x++ {
			sx := toCell(float64(x)*game.TileSize, v.CameraX, cellsPerTile)
			if sx+cellsPerTile <= 0 || sx >= w {
				continue
			}
			tile := v.Map.Tile(x, y)
			style := tileStyle(tile)
			for i := 0; i < cellsPerTile; i++ {
				r.screen.SetContent(sx+i, sy, tile.Rune(), style)
			}
		}
	}

	px := toCell(v.PlayerX, v.CameraX, cellsPerTile)
	py := toCell(v.PlayerY, v.CameraY, 1)
	if py >= 0 && py < rows {
		style := styleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorDarkGreen)
		if v.Moving && v.WalkFrame == 1 {
			style = style.Bold(true)
		}
		r.screen.SetContent(px, py, '@', style)
		r.screen.SetContent(px+1, py, facingRune(v.Facing), style)
	}
}

// toCell converts a render-unit coordinate to a terminal cell relative to the
// camera. cells is the number of terminal cells per tile on that axis.
func toCell(pos, camera float64, cells int) int {
	return int(math.Round((pos - camera) / game.TileSize * float64(cells)))
}

func tileStyle(t world.TileKind) tcell.Style {
	switch t {
	case world.TileGrass:
		return styleDefault.Foreground(tcell.ColorLimeGreen).Background(tcell.ColorDarkGreen)
	case world.TileFloor:
		return styleDefault.Foreground(tcell.ColorTan).Background(tcell.ColorDarkGreen)
	case world.TileWall:
		return styleDefault.Foreground(tcell.ColorDarkGray).Background(tcell.ColorGray)
	case world.TileWater:
		return styleDefault.Foreground(tcell.ColorLightBlue).Background(tcell.ColorNavy)
	default:
		return styleDefault
	}
}

func facingRune(d entity.Direction) rune {
	switch d {
	case entity.DirectionUp:
		return '^'
	case entity.DirectionLeft:
		return '<'
	case entity.DirectionRight:
		return '>'
	default:
		return 'v'
	}
}

func (r *Renderer) renderStatus(v game.View, y int) {
	status := fmt.Sprintf(" HP %d/%d  Lv %d  EXP %d/%d  [i] team  [q] quit",
		v.HP, v.MaxHP, v.Level, v.Exp, v.Level*50)
	r.screen.SetString(0, y, status, styleDim)
}

// =============================================================================
// Inventory overlay
// =============================================================================

func (r *Renderer) renderInventory(v game.View, w, h int) {
	boxW := min(44, w-2)
	boxH := min(entity.InventoryCapacity+6, h-dialogueRows)
	x0 := (w - boxW) / 2
	y0 := max((h-dialogueRows-boxH)/2, 0)
	r.drawBox(x0, y0, boxW, boxH)

	r.screen.SetString(x0+2, y0+1, "TEAM", styleTitle)
	r.screen.SetString(x0+2, y0+2,
		fmt.Sprintf("Trainer  Lv %d  HP %d/%d", v.Level, v.HP, v.MaxHP), styleDim)

	if len(v.Creatures) == 0 {
		r.screen.SetString(x0+2, y0+4, "No creatures yet. Walk in tall grass!", styleDim)
	}
	for i, c := range v.Creatures {
		style := styleDefault.Foreground(r.creatureColor(c.Name, c.Type))
		if i == v.InventoryCursor {
			style = style.Reverse(true)
		}
		line := fmt.Sprintf("%d. %-10s Lv %-2d %-8s %3d/%-3d", i+1, c.Name, c.Level, c.Type, c.HP, c.MaxHP)
		r.screen.SetString(x0+2, y0+4+i, truncate(line, boxW-4), style)
	}

	r.screen.SetString(x0+2, y0+boxH-2, "[x] release  [esc] close", styleDim)
}

// =============================================================================
// Battle
// =============================================================================

func (r *Renderer) renderBattle(b *battle.View, w, h int) {
	r.drawFighter(b.Enemy, max(w-hpBarWidth-16, 1), 1)

	defender := b.Defender
	if !b.HasAlly {
		defender.Name = "You"
	}
	r.drawFighter(defender, 2, 5)
	if b.HasAlly {
		r.screen.SetString(2, 8, fmt.Sprintf("Trainer HP %d/%d", b.PlayerHP, b.PlayerMaxHP), styleDim)
	}

	logTop := 10
	for i, line := range b.Log {
		r.screen.SetString(2, logTop+i, truncate(line, w-4), styleDefault)
	}

	menuTop := logTop + battle.MaxLogLines + 1
	if menuTop >= h-dialogueRows {
		menuTop = max(h-dialogueRows-len(battle.Actions), 0)
	}
	for i, a := range battle.Actions {
		style := styleDefault
		prefix := "  "
		if b.CanAct && a == b.Selected {
			style = styleTitle
			prefix = "▶ "
		}
		if !b.CanAct {
			style = styleDim
		}
		r.screen.SetString(2, menuTop+i, prefix+a.String(), style)
	}
}

func (r *Renderer) drawFighter(f battle.Fighter, x, y int) {
	nameStyle := styleDefault.Foreground(r.creatureColor(f.Name, f.Type)).Bold(true)
	next := r.screen.SetString(x, y, f.Name, nameStyle)
	if f.Level > 0 {
		r.screen.SetString(next+1, y, fmt.Sprintf("Lv %d", f.Level), styleDim)
	}

	frac := fraction(f.HP, f.MaxHP)
	next = r.screen.SetString(x, y+1, "HP ", styleDim)
	r.screen.SetString(next, y+1, hpBar(frac, hpBarWidth), styleDefault.Foreground(hpColor(frac)))
	r.screen.SetString(x, y+2, fmt.Sprintf("%d/%d", f.HP, f.MaxHP), styleDefault)
}

func (r *Renderer) creatureColor(name, elementalType string) tcell.Color {
	if r.species != nil {
		if def := r.species.GetByName(name); def != nil {
			return def.TCellColor()
		}
	}
	return gamedata.TypeColor(elementalType)
}

func fraction(hp, maxHP int) float64 {
	if maxHP <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, float64(hp)/float64(maxHP)))
}

// hpBar renders frac as a bar of filled and empty blocks.
func hpBar(frac float64, width int) string {
	filled := int(math.Round(frac * float64(width)))
	filled = max(0, min(filled, width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func hpColor(frac float64) tcell.Color {
	switch {
	case frac > 0.5:
		return tcell.ColorGreen
	case frac > 0.25:
		return tcell.ColorYellow
	default:
		return tcell.ColorRed
	}
}

// =============================================================================
// Dialogue
// =============================================================================

func (r *Renderer) renderDialogue(text string, revealed bool, w, h int) {
	y0 := h - dialogueRows
	if y0 < 0 {
		return
	}
	r.drawBox(0, y0, w, dialogueRows)

	for i, line := range wrap(text, w-4) {
		if i >= dialogueRows-2 {
			break
		}
		r.screen.SetString(2, y0+1+i, line, styleDefault)
	}
	if revealed {
		const hint = "▼ ENTER"
		r.screen.SetString(w-len([]rune(hint))-2, y0+dialogueRows-1, hint, styleTitle)
	}
}

// wrap breaks text into lines of at most width runes at spaces. Words longer
// than width are split.
func wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var cur []rune
	for _, word := range strings.Fields(text) {
		wr := []rune(word)
		for len(wr) > width {
			if len(cur) > 0 {
				lines = append(lines, string(cur))
				cur = nil
			}
			lines = append(lines, string(wr[:width]))
			wr = wr[width:]
		}
		switch {
		case len(cur) == 0:
			cur = append(cur, wr...)
		case len(cur)+1+len(wr) <= width:
			cur = append(append(cur, ' '), wr...)
		default:
			lines = append(lines, string(cur))
			cur = append([]rune(nil), wr...)
		}
	}
	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	return lines
}

func truncate(s string, width int) string {
	rs := []rune(s)
	if width <= 0 {
		return ""
	}
	if len(rs) <= width {
		return s
	}
	return string(rs[:width])
}

func (r *Renderer) drawBox(x, y, w, h int) {
	if w < 2 || h < 2 {
		return
	}
	r.screen.Fill(x, y, w, h, ' ', styleDefault)
	for col := x + 1; col < x+w-1; col++ {
		r.screen.SetContent(col, y, '─', styleBorder)
		r.screen.SetContent(col, y+h-1, '─', styleBorder)
	}
	for row := y + 1; row < y+h-1; row++ {
		r.screen.SetContent(x, row, '│', styleBorder)
		r.screen.SetContent(x+w-1, row, '│', styleBorder)
	}
	r.screen.SetContent(x, y, '┌', styleBorder)
	r.screen.SetContent(x+w-1, y, '┐', styleBorder)
	r.screen.SetContent(x, y+h-1, '└', styleBorder)
	r.screen.SetContent(x+w-1, y+h-1, '┘', styleBorder)
}
