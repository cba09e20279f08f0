package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/tomswanson/triviamaze/internal/entity"
	"github.com/tomswanson/triviamaze/internal/game"
	"github.com/tomswanson/triviamaze/internal/maze"
	"github.com/tomswanson/triviamaze/internal/trivia"
)

// Room cell dimensions on screen, borders shared between neighbors.
const (
	cellWidth  = 6
	cellHeight = 3
)

// Dialog carries the transient input state of the question dialog. The
// controller owns it; the renderer only draws it.
type Dialog struct {
	// Input is the typed answer so far (short answer questions).
	Input string
	// Hint is the hint text bought with a suggestion potion, if any.
	Hint string
}

// Renderer draws the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the maze map, the status bar, the latest message, and (when
// a trivia challenge is pending) the question dialog. With showFullMap set,
// undiscovered rooms are drawn too.
func (r *Renderer) Render(model *game.Model, dialog *Dialog, message string, showFullMap bool) {
	r.screen.Clear()

	m := model.Maze()
	for row := 0; row < m.Rows(); row++ {
		for col := 0; col < m.Cols(); col++ {
			room, err := m.Room(maze.Coord{Row: row, Col: col})
			if err != nil {
				continue
			}
			if !room.Visited && !room.Revealed && !showFullMap {
				continue
			}
			r.drawRoom(room, model)
		}
	}

	mapHeight := m.Rows()*cellHeight + 1
	r.drawStatus(model, mapHeight+1)
	if message != "" {
		r.screen.DrawText(0, mapHeight+3, message, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	}
	r.drawHelp(mapHeight + 5)

	if q := model.Pending(); q != nil {
		r.drawDialog(q, dialog)
	}

	if model.Status().Terminal() {
		r.drawOutcome(model, mapHeight+4)
	}

	r.screen.Show()
}

// drawRoom draws one room cell with its four sides and its content symbol.
func (r *Renderer) drawRoom(room *maze.Room, model *game.Model) {
	c := room.Coord()
	x0 := c.Col * cellWidth
	y0 := c.Row * cellHeight

	wallStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)

	// Corners.
	for _, p := range [4][2]int{{x0, y0}, {x0 + cellWidth, y0}, {x0, y0 + cellHeight}, {x0 + cellWidth, y0 + cellHeight}} {
		r.screen.SetContent(p[0], p[1], '+', wallStyle)
	}

	// Horizontal sides with the door glyph in the middle.
	for x := x0 + 1; x < x0+cellWidth; x++ {
		r.screen.SetContent(x, y0, '-', wallStyle)
		r.screen.SetContent(x, y0+cellHeight, '-', wallStyle)
	}
	midX := x0 + cellWidth/2
	r.drawDoorGlyph(midX, y0, room.Door(maze.North))
	r.drawDoorGlyph(midX, y0+cellHeight, room.Door(maze.South))

	// Vertical sides.
	for y := y0 + 1; y < y0+cellHeight; y++ {
		r.screen.SetContent(x0, y, '|', wallStyle)
		r.screen.SetContent(x0+cellWidth, y, '|', wallStyle)
	}
	midY := y0 + cellHeight/2
	r.drawDoorGlyph(x0, midY, room.Door(maze.West))
	r.drawDoorGlyph(x0+cellWidth, midY, room.Door(maze.East))

	symbol, style := roomSymbol(room, model.Position() == c)
	r.screen.SetContent(midX, midY, symbol, style)
}

func (r *Renderer) drawDoorGlyph(x, y int, door *maze.Door) {
	if door == nil {
		return
	}
	switch door.State() {
	case maze.Open:
		r.screen.SetContent(x, y, ' ', tcell.StyleDefault)
	case maze.Locked:
		r.screen.SetContent(x, y, '?', tcell.StyleDefault.Foreground(tcell.ColorOrange))
	case maze.PermLocked:
		r.screen.SetContent(x, y, 'X', tcell.StyleDefault.Foreground(tcell.ColorRed))
	}
}

// roomSymbol picks the single character shown in the middle of a room.
func roomSymbol(room *maze.Room, occupied bool) (rune, tcell.Style) {
	switch {
	case occupied:
		return '@', tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	case room.IsEntrance():
		return 'i', tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case room.IsExit():
		return 'O', tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	case room.Pit() != nil && len(room.Items()) > 0:
		return 'M', tcell.StyleDefault.Foreground(tcell.ColorPurple)
	case room.Pit() != nil:
		return 'X', tcell.StyleDefault.Foreground(tcell.ColorRed)
	case len(room.Items()) > 1:
		return 'M', tcell.StyleDefault.Foreground(tcell.ColorPurple)
	case len(room.Items()) == 1:
		return itemSymbol(room.Items()[0]), tcell.StyleDefault.Foreground(tcell.ColorAqua)
	default:
		return ' ', tcell.StyleDefault
	}
}

func itemSymbol(item entity.Item) rune {
	switch item.Kind {
	case entity.HealingPotion:
		return 'H'
	case entity.VisionPotion:
		return 'V'
	case entity.SuggestionPotion:
		return 'S'
	case entity.MagicKey:
		return 'K'
	case entity.Pillar:
		return []rune(item.PillarType.String())[0]
	default:
		return '?'
	}
}

func (r *Renderer) drawStatus(model *game.Model, y int) {
	adv := model.Adventurer()

	pillars := make([]string, 0, 4)
	for _, pt := range adv.PillarsFound() {
		pillars = append(pillars, pt.String()[:1])
	}
	pillarStr := strings.Join(pillars, " ")
	if pillarStr == "" {
		pillarStr = "none"
	}

	status := fmt.Sprintf("%s  HP:%3d  Heal:%d Vision:%d Sugg:%d Keys:%d  Pillars: %s",
		adv.Name(), adv.HitPoints(),
		adv.HealingPotionCount(), adv.VisionPotionCount(),
		adv.SuggestionPotionCount(), adv.MagicKeyCount(), pillarStr)
	r.screen.DrawText(0, y, status, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
}

func (r *Renderer) drawHelp(y int) {
	help := "move: arrows/wasd  p: heal  v: vision  k: key  m: full map  q: quit"
	r.screen.DrawText(0, y, help, tcell.StyleDefault.Foreground(tcell.ColorDarkGray))
}

// drawDialog draws the modal trivia question box centered on screen.
func (r *Renderer) drawDialog(q *trivia.Question, dialog *Dialog) {
	width, height := r.screen.Size()
	boxW := min(64, width-4)
	if boxW < 20 {
		boxW = width
	}

	lines := wrapText(q.Text, boxW-4)
	lines = append(lines, "")
	switch q.Kind {
	case trivia.MultipleChoice:
		for i, opt := range q.Options {
			lines = append(lines, fmt.Sprintf("%d) %s", i+1, opt))
		}
		lines = append(lines, "", "press 1-"+fmt.Sprint(len(q.Options))+" to answer, F1 for hint")
	case trivia.TrueFalse:
		lines = append(lines, "t) True", "f) False")
	case trivia.ShortAnswer:
		lines = append(lines, "> "+dialog.Input+"_", "", "type your answer, Enter to submit, F1 for hint")
	}
	if dialog.Hint != "" {
		lines = append(lines, "")
		lines = append(lines, wrapText(dialog.Hint, boxW-4)...)
	}

	boxH := len(lines) + 4
	x0 := (width - boxW) / 2
	y0 := (height - boxH) / 2
	if y0 < 0 {
		y0 = 0
	}

	border := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	fill := tcell.StyleDefault.Background(tcell.ColorBlack)
	for y := y0; y < y0+boxH; y++ {
		for x := x0; x < x0+boxW; x++ {
			r.screen.SetContent(x, y, ' ', fill)
		}
	}
	for x := x0; x < x0+boxW; x++ {
		r.screen.SetContent(x, y0, '-', border)
		r.screen.SetContent(x, y0+boxH-1, '-', border)
	}
	for y := y0; y < y0+boxH; y++ {
		r.screen.SetContent(x0, y, '|', border)
		r.screen.SetContent(x0+boxW-1, y, '|', border)
	}

	title := fmt.Sprintf("[ %s: %s ]", q.Category, q.Kind)
	r.screen.DrawText(x0+2, y0, title, border.Bold(true))
	for i, line := range lines {
		r.screen.DrawText(x0+2, y0+2+i, line, tcell.StyleDefault)
	}
}

func (r *Renderer) drawOutcome(model *game.Model, y int) {
	var text string
	var style tcell.Style
	switch model.Status() {
	case game.Won:
		text = "You win! Press q to exit."
		style = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	case game.Lost:
		text = "You died. Press q to exit."
		style = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	}
	r.screen.DrawText(0, y, text, style)
}

// wrapText splits text into lines no longer than width runes, breaking on
// spaces.
func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	var lines []string
	var current string
	for _, word := range strings.Fields(text) {
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
