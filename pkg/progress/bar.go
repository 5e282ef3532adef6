// Package progress draws a single-line terminal progress bar for renders.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// defaultWidth is used when the output is not a terminal
const defaultWidth = 80

// reservedColumns is the space kept for the indent, label padding, percentage and slack
const reservedColumns = 5 + 4 + 2 + 2 + 1 + 24

// Bar implements renderer.ProgressReporter by redrawing one line in place
type Bar struct {
	mu       sync.Mutex
	out      io.Writer
	width    int
	styled   bool
	finished bool
}

// New creates a bar on a file, sized to its terminal when it is one
func New(file *os.File) *Bar {
	fd := int(file.Fd())
	if !term.IsTerminal(fd) {
		return &Bar{out: file, width: defaultWidth}
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		width = defaultWidth
	}
	return &Bar{out: file, width: width, styled: true}
}

// NewWithWidth creates an unstyled bar of a fixed terminal width
func NewWithWidth(out io.Writer, width int) *Bar {
	return &Bar{out: out, width: width}
}

// Report redraws the bar. Write errors are ignored so progress can never fail a render.
func (b *Bar) Report(done, total int, label string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.finished {
		return
	}

	line := Line(done, total, b.width, label)
	if b.styled {
		line = strings.Replace(line, label, "\x1b[1m"+label+"\x1b[0m", 1)
	}
	fmt.Fprint(b.out, "\r"+line)

	if total > 0 && done >= total {
		fmt.Fprintln(b.out)
		b.finished = true
	}
}

// Line formats the bar for a terminal of the given width, without styling
func Line(done, total, width int, label string) string {
	if total <= 0 {
		total = 1
	}
	done = max(0, min(done, total))

	percent := done * 100 / total
	barWidth := max(1, width-reservedColumns-len(label))
	filled := done * barWidth / total

	var bar string
	switch {
	case done == total:
		bar = strings.Repeat("=", barWidth)
	case filled > 0:
		bar = strings.Repeat("=", filled-1) + ">" + strings.Repeat(" ", barWidth-filled)
	default:
		bar = ">" + strings.Repeat(" ", barWidth-1)
	}

	return fmt.Sprintf("     %s [%s] %3d%%", label, bar, percent)
}
