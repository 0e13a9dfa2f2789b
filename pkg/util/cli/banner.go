package cli

import (
	"io"
	"strings"

	"github.com/aybabtme/rgbterm"
	"github.com/fatih/color"
)

const (
	startColor = 0x51d6ff
	endColor   = 0x3d4df6
)

// GradientBanner writes the banner line by line, shading from startColor to
// endColor. Colors are skipped when the output is not a terminal.
func GradientBanner(banner string, w io.Writer) error {
	lines := strings.Split(strings.TrimRight(banner, "\n"), "\n")
	var b strings.Builder
	for i, line := range lines {
		if color.NoColor || len(lines) == 1 {
			b.WriteString(line)
		} else {
			progress := float64(i) / float64(len(lines)-1)
			b.WriteString(rgbterm.FgString(line,
				gradient(startColor, endColor, 16, progress),
				gradient(startColor, endColor, 8, progress),
				gradient(startColor, endColor, 0, progress),
			))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Header writes a bold section title.
func Header(w io.Writer, title string) error {
	_, err := color.New(color.Bold, color.FgCyan).Fprintln(w, title)
	return err
}

func gradient(start, end, offset int, progress float64) uint8 {
	start = (start >> offset) & 0xff
	end = (end >> offset) & 0xff
	return uint8(start + int(float64(end-start)*progress))
}
