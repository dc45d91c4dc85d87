package canvas

import (
	"bytes"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/gravity-dodge/internal/core"
)

func TestRecorderKeepsOrderAndReplays(t *testing.T) {
	rec := NewRecorder(800, 400)
	rec.FillVerticalGradient(core.NewRect(0, 0, 800, 400), core.ColorSkyTop, core.ColorSkyBottom)
	rec.FillCircle(50, 50, 30, core.ColorCloud, 0.3)
	rec.FillRect(core.NewRect(100, 200, 40, 40), core.ColorPlayer, 1)

	cmds := rec.Commands()
	if len(cmds) != 3 {
		t.Fatalf("expected 3 commands, got %d", len(cmds))
	}
	kinds := []Kind{KindGradient, KindCircle, KindRect}
	for i, k := range kinds {
		if cmds[i].Kind != k {
			t.Errorf("command %d kind = %v, expected %v", i, cmds[i].Kind, k)
		}
	}
	if cmds[1].Rect != core.NewRect(20, 20, 60, 60) {
		t.Errorf("circle bounds = %+v", cmds[1].Rect)
	}

	copyRec := NewRecorder(800, 400)
	rec.Replay(copyRec)
	for i, c := range copyRec.Commands() {
		if c != cmds[i] {
			t.Errorf("replayed command %d = %+v, expected %+v", i, c, cmds[i])
		}
	}

	rec.Reset()
	if len(rec.Commands()) != 0 {
		t.Error("Reset should drop commands")
	}
}

func TestCellCanvasFillRect(t *testing.T) {
	screen := core.NewScreen(80, 20)
	cc := NewCellCanvas(screen, 800, 400)

	cc.FillRect(core.NewRect(100, 200, 40, 40), core.ColorPlayer, 1)

	for y := 0; y < 20; y++ {
		for x := 0; x < 80; x++ {
			inside := x >= 10 && x < 14 && y >= 10 && y < 12
			painted := screen.GetCell(x, y).BG == core.ColorPlayer
			if inside != painted {
				t.Errorf("cell (%d, %d) painted = %v, expected %v", x, y, painted, inside)
			}
		}
	}
}

func TestCellCanvasTinyShapesStayVisible(t *testing.T) {
	screen := core.NewScreen(80, 20)
	cc := NewCellCanvas(screen, 800, 400)

	cc.FillRect(core.NewRect(401, 201, 2, 2), core.ColorObstacle, 1)
	if screen.GetCell(40, 10).BG != core.ColorObstacle {
		t.Error("a sub-cell rect should paint the cell under its centre")
	}

	cc.FillCircle(555, 155, 1, core.ColorCloud, 1)
	if screen.GetCell(55, 7).BG != core.ColorCloud {
		t.Error("a sub-cell circle should paint the cell under its centre")
	}
}

func TestCellCanvasGradient(t *testing.T) {
	screen := core.NewScreen(10, 10)
	cc := NewCellCanvas(screen, 100, 100)
	top := core.Color{R: 0, G: 0, B: 0}
	bottom := core.Color{R: 200, G: 200, B: 200}

	cc.FillVerticalGradient(core.NewRect(0, 0, 100, 100), top, bottom)

	prev := -1
	for y := 0; y < 10; y++ {
		r := int(screen.GetCell(5, y).BG.R)
		if r <= prev {
			t.Errorf("gradient should brighten downwards, row %d R=%d after %d", y, r, prev)
		}
		prev = r
	}
}

func TestCellCanvasTranslucentCircle(t *testing.T) {
	screen := core.NewScreen(80, 20)
	cc := NewCellCanvas(screen, 800, 400)

	cc.FillCircle(400, 200, 30, core.ColorCloud, 0.5)
	bg := screen.GetCell(40, 10).BG
	if bg.R != 128 {
		t.Errorf("half-opaque white over black = %v, expected mid grey", bg)
	}
}

func TestRasterDrawsPixels(t *testing.T) {
	r := NewRaster(100, 50, 1)
	r.FillVerticalGradient(core.NewRect(0, 0, 100, 50), core.ColorSkyTop, core.ColorSkyBottom)
	r.FillRect(core.NewRect(10, 10, 20, 20), core.ColorObstacle, 1)

	img := r.Image()
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 50 {
		t.Fatalf("image size = %v, expected 100x50", b)
	}

	cr, cg, cb, _ := img.At(15, 15).RGBA()
	if uint8(cr>>8) != core.ColorObstacle.R || uint8(cg>>8) != core.ColorObstacle.G || uint8(cb>>8) != core.ColorObstacle.B {
		t.Errorf("pixel (15,15) = %d,%d,%d, expected obstacle red", cr>>8, cg>>8, cb>>8)
	}

	sr, _, _, _ := img.At(90, 1).RGBA()
	if d := int(sr>>8) - int(core.ColorSkyTop.R); d < -3 || d > 3 {
		t.Errorf("top pixel R = %d, expected close to %d", sr>>8, core.ColorSkyTop.R)
	}
}

func TestRasterScaleAndSave(t *testing.T) {
	r := NewRaster(80, 40, 2)
	if b := r.Image().Bounds(); b.Dx() != 160 || b.Dy() != 80 {
		t.Errorf("scaled raster size = %v, expected 160x80", b)
	}
	if b := r.Scaled(40).Bounds(); b.Dx() != 40 || b.Dy() != 20 {
		t.Errorf("Scaled(40) size = %v, expected 40x20", b)
	}

	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Errorf("EncodePNG produced invalid png: %v", err)
	}

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := r.SavePNG(path, 0); err != nil {
		t.Errorf("SavePNG failed: %v", err)
	}
}
