package terminal

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/rocketscienceinc/ricracroe/internal/apperror"
	"github.com/rocketscienceinc/ricracroe/internal/coord"
	"github.com/rocketscienceinc/ricracroe/internal/render"
)

var highlightStyle = tcell.StyleDefault.Reverse(true).Bold(true)

type Session struct {
	logger   *slog.Logger
	screen   tcell.Screen
	settings render.Settings

	// activeCell is the keyboard highlight; nil means (0, 0).
	activeCell *coord.Coord

	closeOnce sync.Once
}

// New puts the screen into raw mode on the alternate screen buffer.
// A screen too small for every region is restored and rejected.
// The returned Session must be closed.
func New(logger *slog.Logger, screen tcell.Screen, settings render.Settings) (*Session, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("%w: failed to enter raw mode: %w", apperror.ErrTerminal, err)
	}

	width, height := screen.Size()
	if uint(width) < settings.GetRequiredWidth() || uint(height) < settings.GetRequiredHeight() {
		screen.Fini()
		return nil, fmt.Errorf("%w: terminal is %dx%d, the board needs at least %dx%d",
			apperror.ErrTerminal, width, height, settings.GetRequiredWidth(), settings.GetRequiredHeight())
	}

	return &Session{
		logger:   logger.With("component", "terminal"),
		screen:   screen,
		settings: settings,
	}, nil
}

// Close disables mouse capture, restores the cursor, leaves the alternate screen
// and returns the terminal to cooked mode. Safe to call more than once.
func (that *Session) Close() {
	that.closeOnce.Do(func() {
		that.screen.DisableMouse()
		that.screen.SetCursorStyle(tcell.CursorStyleDefault)
		that.screen.Show()
		// Fini shows the cursor, leaves the alternate screen and flushes.
		that.screen.Fini()
		that.logger.Debug("terminal restored")
	})
}

// ResetDisplay enables mouse capture, hides the cursor and clears the screen.
func (that *Session) ResetDisplay() {
	that.screen.EnableMouse(tcell.MouseButtonEvents)
	that.screen.HideCursor()
	that.screen.Clear()
}

// Interrupt makes a blocked GetGameAction return Quit.
func (that *Session) Interrupt() error {
	if err := that.screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
		return fmt.Errorf("%w: failed to post interrupt: %w", apperror.ErrTerminal, err)
	}

	return nil
}

func (that *Session) ClearLine(at coord.Coord) {
	width, _ := that.screen.Size()
	for x := 0; x < width; x++ {
		that.screen.SetContent(x, int(at.Y), ' ', nil, tcell.StyleDefault)
	}
}

// DrawLine clears the terminal row and writes text starting at at.
func (that *Session) DrawLine(at coord.Coord, text string) {
	that.ClearLine(at)

	x := int(at.X)
	for _, r := range text {
		width := runewidth.RuneWidth(r)
		if width == 0 {
			continue
		}
		that.screen.SetContent(x, int(at.Y), r, nil, tcell.StyleDefault)
		x += width
	}
}

func (that *Session) WriteTitle(title string) {
	that.DrawLine(that.settings.GetTitleOrigin(), title)
}

func (that *Session) WriteStatus(status string) {
	that.DrawLine(that.settings.GetStatusOrigin(), status)
}

// ClearMsgLog blanks every message log line.
func (that *Session) ClearMsgLog() {
	for line := uint(0); line < render.MaxMsgLogLines; line++ {
		that.ClearLine(that.settings.GetMsgLogLineOrigin(line))
	}
}

// WriteMsgLog writes up to MaxMsgLogLines lines of text into the message log.
func (that *Session) WriteMsgLog(text string) {
	that.ClearMsgLog()

	if text == "" {
		return
	}

	for i, line := range strings.Split(text, "\n") {
		if i >= render.MaxMsgLogLines {
			break
		}
		that.DrawLine(that.settings.GetMsgLogLineOrigin(uint(i)), line)
	}
}

// WriteRenderedBoardRow draws one grid line; row counts terminal rows, not cells.
func (that *Session) WriteRenderedBoardRow(row uint, line string) {
	that.DrawLine(that.settings.GetBoardRowOrigin(row), line)
}

// HighlightCells redraws the given board cells in reverse video.
func (that *Session) HighlightCells(cells []coord.Coord) {
	for _, cell := range cells {
		at := that.settings.CellCoordToTermCoord(cell)
		r, combining, _, _ := that.screen.GetContent(int(at.X), int(at.Y))
		that.screen.SetContent(int(at.X), int(at.Y), r, combining, highlightStyle)
	}
}

func (that *Session) BlinkCursor(at coord.Coord) {
	that.screen.SetCursorStyle(tcell.CursorStyleBlinkingBlock)
	that.screen.ShowCursor(int(at.X), int(at.Y))
}

func (that *Session) HideCursor() {
	that.screen.HideCursor()
}

// Commit flushes pending drawing to the terminal.
func (that *Session) Commit() {
	that.screen.Show()
}

func (that *Session) GetActiveBoardCell() coord.Coord {
	if that.activeCell == nil {
		return coord.Coord{}
	}
	return *that.activeCell
}

// UpdateActiveBoardCell moves the highlight and clamps it to the board.
func (that *Session) UpdateActiveBoardCell(update func(coord.Coord) coord.Coord) {
	next := update(that.GetActiveBoardCell())
	last := that.settings.GetBoardSize() - 1

	if next.X > last {
		next.X = last
	}
	if next.Y > last {
		next.Y = last
	}

	that.activeCell = &next
}

// GetInputEvent blocks for the next event. A closed input stream is ErrInvalidGameInput.
func (that *Session) GetInputEvent() (tcell.Event, error) {
	ev := that.screen.PollEvent()
	if ev == nil {
		return nil, apperror.ErrInvalidGameInput
	}

	return ev, nil
}
