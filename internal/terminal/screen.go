package terminal

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/rocketscienceinc/ricracroe/internal/apperror"
)

// NewScreen returns a screen bound to the process terminal.
func NewScreen() (tcell.Screen, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, apperror.ErrNotATerminal
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create screen: %w", apperror.ErrTerminal, err)
	}

	return screen, nil
}
