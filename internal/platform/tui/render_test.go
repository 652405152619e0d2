package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/game"
)

func TestScreenRendererProjectsRects(t *testing.T) {
	// An 80x80 canvas onto a 40x20 grid: one logical unit is half a cell in
	// x and a quarter cell in y
	screen := core.NewScreen(40, 20)
	r := NewScreenRenderer(screen, 80, 80)

	r.FillRect(0, 0, 40, 40, core.ColorGreen)

	if cell := screen.GetCell(0, 0); cell.Rune != '█' {
		t.Errorf("top-left cell = %q, expected filled", cell.Rune)
	}
	if cell := screen.GetCell(19, 9); cell.Rune != '█' {
		t.Errorf("cell inside projected rect = %q, expected filled", cell.Rune)
	}
	if cell := screen.GetCell(20, 10); cell.Rune == '█' {
		t.Error("cell outside projected rect should be empty")
	}
}

func TestScreenRendererMinimumCellSize(t *testing.T) {
	// A 2x4 logical rocket on a coarse grid must still occupy a cell
	screen := core.NewScreen(40, 20)
	r := NewScreenRenderer(screen, 400, 300)

	r.FillRect(200, 150, 2, 4, core.ColorBrightWhite)

	found := false
	for y := 0; y < 20 && !found; y++ {
		for x := 0; x < 40; x++ {
			if screen.GetCell(x, y).Rune == '█' {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("sub-cell rectangle vanished from the grid")
	}
}

func TestScreenRendererTextAlignment(t *testing.T) {
	screen := core.NewScreen(40, 10)
	r := NewScreenRenderer(screen, 40, 10)

	r.Text("hi", 20, 5, game.AlignCenter, core.ColorWhite)
	if row := screen.Row(5); !strings.Contains(row, "hi") {
		t.Errorf("row 5 = %q, expected centered text", row)
	}
	if screen.GetCell(19, 5).Rune != 'h' {
		t.Errorf("centered text misplaced: row = %q", screen.Row(5))
	}

	r.Text("end", 40, 7, game.AlignRight, core.ColorWhite)
	if screen.GetCell(37, 7).Rune != 'e' || screen.GetCell(39, 7).Rune != 'd' {
		t.Errorf("right-aligned text misplaced: row = %q", screen.Row(7))
	}
}

func TestRenderScreenPlainContent(t *testing.T) {
	screen := core.NewScreen(10, 2)
	screen.DrawText(0, 0, "abc", core.ColorDefault)
	screen.DrawText(0, 1, "xyz", core.ColorDefault)

	out := RenderScreen(screen)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "abc") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "xyz") {
		t.Errorf("line 1 = %q", lines[1])
	}
}
