package app

import (
	"fmt"
	"io"
	"strings"

	"donut/hal"
)

// showCursor undoes the cursor hiding done by the terminal sink.
const showCursor = "\x1b[?25h"

// ReportPanic logs a recovered panic with its stack and restores the terminal
// cursor so the shell stays usable.
func ReportPanic(h hal.HAL, v any, stack []byte) {
	if term := h.Terminal(); term != nil {
		if w := term.Writer(); w != nil {
			_, _ = io.WriteString(w, showCursor+"\n")
		}
	}

	l := h.Logger()
	if l == nil {
		return
	}
	l.WriteLineString(fmt.Sprintf("donut panic: %v", v))
	if len(stack) == 0 {
		l.WriteLineString("stack: unavailable")
		return
	}
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		l.WriteLineString(line)
	}
}
