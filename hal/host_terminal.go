package hal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

type hostTerminal struct {
	out *os.File
}

func (t *hostTerminal) Writer() io.Writer { return t.out }

func (t *hostTerminal) Size() (int, int, error) {
	fd := int(t.out.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, fmt.Errorf("%w: %s is not a terminal", ErrNoTerminal, t.out.Name())
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrNoTerminal, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%w: reported %dx%d", ErrNoTerminal, w, h)
	}
	return w, h, nil
}
