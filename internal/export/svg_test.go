package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/ballpit/internal/pit"
)

func testPalette(t *testing.T) []colorful.Color {
	t.Helper()
	red, err := colorful.Hex("#ff0000")
	if err != nil {
		t.Fatal(err)
	}
	blue, err := colorful.Hex("#0000ff")
	if err != nil {
		t.Fatal(err)
	}
	return []colorful.Color{red, blue}
}

func TestSnapshotSVG(t *testing.T) {
	b := pit.NewBounds(16, 8, 4)
	ps := []pit.Particle{
		{Pos: pit.Vec3{X: 0, Y: 0}, Radius: 1, Color: 0},
		{Pos: pit.Vec3{X: -8, Y: 4}, Radius: 0.5, Color: 1},
	}

	svg := SnapshotSVG(ps, b, testPalette(t), 800)

	if !strings.Contains(svg, `width="800" height="400"`) {
		t.Error("height must follow the bounds aspect ratio")
	}
	if got := strings.Count(svg, "<circle"); got != 2 {
		t.Errorf("expected 2 circles, got %d", got)
	}
	// Center of the bounds lands at the center of the image.
	if !strings.Contains(svg, `cx="400.00" cy="200.00"`) {
		t.Error("bounds center must project to the image center")
	}
	// The min-X/max-Y corner lands at the image origin.
	if !strings.Contains(svg, `cx="0.00" cy="0.00"`) {
		t.Error("top-left corner must project to the image origin")
	}
	if !strings.Contains(svg, `fill="#ff0000"`) || !strings.Contains(svg, `fill="#0000ff"`) {
		t.Error("palette colors must appear as fills")
	}
}

func TestSnapshotSVGEmptyPaletteFallsBack(t *testing.T) {
	b := pit.NewBounds(10, 10, 10)
	ps := []pit.Particle{{Radius: 1}}

	svg := SnapshotSVG(ps, b, nil, 100)
	if !strings.Contains(svg, `fill="#ffffff"`) {
		t.Error("empty palette must fall back to white")
	}
}

func TestSnapshotSVGDegenerateInput(t *testing.T) {
	if SnapshotSVG(nil, pit.Bounds{}, nil, 800) != "" {
		t.Error("zero-size bounds must produce no output")
	}
	if SnapshotSVG(nil, pit.NewBounds(10, 10, 10), nil, 0) != "" {
		t.Error("zero width must produce no output")
	}
}

func TestWriteSnapshot(t *testing.T) {
	b := pit.NewBounds(10, 10, 10)
	ps := []pit.Particle{{Radius: 1}}
	path := filepath.Join(t.TempDir(), "frame.svg")

	if err := WriteSnapshot(path, ps, b, testPalette(t), 200); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "<?xml") {
		t.Error("expected an XML document")
	}

	if err := WriteSnapshot(filepath.Join(t.TempDir(), "bad.svg"), ps, pit.Bounds{}, nil, 200); err == nil {
		t.Error("degenerate snapshot must error instead of writing an empty file")
	}
}
