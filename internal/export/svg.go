// Package export serializes a single frame of the simulation to SVG.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/ballpit/internal/pit"
)

const background = "#0c0c10"

// SnapshotSVG renders the X/Y plane of one frame as colored circles.
// widthPx fixes the output width; height follows the bounds aspect.
func SnapshotSVG(ps []pit.Particle, bounds pit.Bounds, palette []colorful.Color, widthPx float64) string {
	size := bounds.Size()
	if size.X <= 0 || size.Y <= 0 || widthPx <= 0 {
		return ""
	}
	scale := widthPx / size.X
	heightPx := size.Y * scale

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, widthPx, heightPx, widthPx, heightPx, background)

	for _, p := range ps {
		cx := (p.Pos.X - bounds.Min.X) * scale
		cy := (bounds.Max.Y - p.Pos.Y) * scale
		fill := "#ffffff"
		if len(palette) > 0 {
			fill = palette[p.Color%len(palette)].Hex()
		}
		fmt.Fprintf(&sb, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`+"\n",
			cx, cy, p.Radius*scale, fill)
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// WriteSnapshot writes the SVG for one frame to path.
func WriteSnapshot(path string, ps []pit.Particle, bounds pit.Bounds, palette []colorful.Color, widthPx float64) error {
	svg := SnapshotSVG(ps, bounds, palette, widthPx)
	if svg == "" {
		return fmt.Errorf("export: empty snapshot for %q", path)
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
