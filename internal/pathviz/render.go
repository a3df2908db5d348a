package pathviz

import (
	"fmt"

	"github.com/vovakirdan/tui-pathfinder/internal/core"
	"github.com/vovakirdan/tui-pathfinder/internal/pathfind"
)

// cellKind classifies a grid cell for drawing. Later kinds win.
type cellKind int

const (
	cellOpen cellKind = iota
	cellWall
	cellFrontier
	cellExplored
	cellPath
	cellStart
	cellGoal
)

// cellGlyph is how one cell kind is drawn.
type cellGlyph struct {
	text  string
	color core.Color
}

var glyphs = map[cellKind]cellGlyph{
	cellOpen:     {" ·", core.ColorDarkGray},
	cellWall:     {"██", core.ColorGray},
	cellFrontier: {"▒▒", core.ColorGreen},
	cellExplored: {"░░", core.ColorRed},
	cellPath:     {"▓▓", core.ColorBrightBlue},
	cellStart:    {"S ", core.ColorYellow},
	cellGoal:     {"G ", core.ColorYellow},
}

// Render draws the HUD, board and footer to the screen.
func (v *Visualizer) Render(dst *core.Screen) {
	dst.Clear()

	v.renderHUD(dst)

	if v.tooSmall {
		w, h := v.RequiredSize()
		v.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d, resize to continue", w, h))
		return
	}
	if v.search == nil {
		msg := "no grid"
		if v.err != nil {
			msg = v.err.Error()
		}
		v.renderOverlay(dst, "Cannot start search", msg)
		return
	}

	board := v.renderBoard(dst)
	v.renderFooter(dst, board.Bottom())
}

// renderHUD draws the top status bar.
func (v *Visualizer) renderHUD(dst *core.Screen) {
	hud := " " + v.title
	if v.search != nil {
		s := v.search
		hud = fmt.Sprintf(" %s | %s | step %d | frontier %d | explored %d | speed %d",
			v.title, s.Status(), s.Steps(), s.FrontierLen(), s.ExploredLen(), v.stepsPerTick)
		if v.fixed == nil {
			hud += fmt.Sprintf(" | seed %d", v.seed)
		}
	}
	dst.DrawTextColored(0, 0, hud, core.ColorWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws the framed grid centered below the HUD and returns its frame.
func (v *Visualizer) renderBoard(dst *core.Screen) core.Rect {
	grid := v.search.Grid()
	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight-footerH)
	frame := area.CenterIn(grid.Cols()*cellWidth+2, grid.Rows()+2)
	dst.DrawBox(frame)

	kinds := classify(v.search)
	for y := 0; y < grid.Rows(); y++ {
		for x := 0; x < grid.Cols(); x++ {
			g := glyphs[kinds[pathfind.P(x, y)]]
			dst.DrawTextColored(frame.X+1+x*cellWidth, frame.Y+1+y, g.text, g.color)
		}
	}
	return frame
}

// classify assigns a cell kind to every position that is not plain open floor.
func classify(s *pathfind.State) map[pathfind.Position]cellKind {
	kinds := make(map[pathfind.Position]cellKind)
	for _, p := range s.ObstaclePositions() {
		kinds[p] = cellWall
	}
	for _, p := range s.FrontierPositions() {
		kinds[p] = cellFrontier
	}
	for _, p := range s.ExploredPositions() {
		kinds[p] = cellExplored
	}
	for _, p := range s.PathPositions() {
		kinds[p] = cellPath
	}
	kinds[s.Grid().Start()] = cellStart
	kinds[s.Grid().Goal()] = cellGoal
	return kinds
}

// renderFooter draws the run status under the board.
func (v *Visualizer) renderFooter(dst *core.Screen, y int) {
	s := v.search
	var text string
	var color core.Color

	switch {
	case s.Status() == pathfind.StatusSucceeded:
		text = fmt.Sprintf("Path found: %d cells, cost %.2f", len(s.PathPositions()), s.PathCost())
		color = core.ColorBrightGreen
	case s.Status() == pathfind.StatusFailed:
		text = "No path found"
		color = core.ColorBrightRed
	case v.paused:
		text = "Paused: p to resume, n to single-step"
		color = core.ColorYellow
	default:
		text = fmt.Sprintf("Searching... %d expanded", s.Expansions())
		color = core.ColorCyan
	}

	dst.DrawTextCentered(y, text, color)
}

// renderOverlay draws a centered two-line message box.
func (v *Visualizer) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := dst.Bounds().CenterIn(boxW, 5)
	dst.DrawBox(box)

	draw := func(text string, y int) {
		x := box.X + (box.W-len([]rune(text)))/2
		dst.DrawText(x, y, text)
	}
	draw(line1, box.Y+1)
	draw(line2, box.Y+3)
}
