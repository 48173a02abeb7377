package report

import (
	"fmt"
	"io"

	"github.com/mmuldo/viscm/colormap"
	"github.com/mmuldo/viscm/palette"
	"github.com/muesli/termenv"
)

// Terminal draws colors on a terminal, degrading to plain text when the
// output does not support color.
type Terminal struct {
	out *termenv.Output
	w   io.Writer
}

// NewTerminal wraps w. Options are passed through to termenv.
func NewTerminal(w io.Writer, opts ...termenv.OutputOption) *Terminal {
	return &Terminal{termenv.NewOutput(w, opts...), w}
}

// Strip draws a ramp as a row of width cells, picking the nearest color for
// each cell.
func (t *Terminal) Strip(colors []palette.RGB, width int) {
	if len(colors) == 0 || width < 1 {
		fmt.Fprintln(t.w)
		return
	}
	cm, _ := colormap.New("strip", colors, colormap.Metadata{})
	for i := 0; i < width; i++ {
		pos := 0.0
		if width > 1 {
			pos = float64(i) / float64(width-1)
		}
		c := cm.Nearest(pos)
		fmt.Fprint(t.w, t.out.String(" ").Background(t.out.Color(c.Hex())))
	}
	fmt.Fprintln(t.w)
}

// Entries prints every color of cm on its own line, colored with itself.
func (t *Terminal) Entries(cm colormap.Colormap) {
	for i, c := range cm.Colors() {
		hex := c.Hex()
		line := fmt.Sprintf(" color%d = %s", i, hex)
		fmt.Fprintln(t.w, t.out.String(line).Foreground(t.out.Color(hex)))
	}
}
