package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/ricracroe/internal/coord"
)

const pressButtons = tcell.Button1 | tcell.Button2 | tcell.Button3

var (
	stepX = coord.New(1, 0)
	stepY = coord.New(0, 1)
)

// GetGameAction blocks until keyboard or mouse input resolves to an action.
// The blinking cursor tracks the keyboard highlight before every read.
func (that *Session) GetGameAction() (GameAction, error) {
	for {
		cursor := that.settings.CellCoordToTermCoord(that.GetActiveBoardCell())
		that.BlinkCursor(cursor)
		that.Commit()

		ev, err := that.GetInputEvent()
		if err != nil {
			return GameAction{}, err
		}

		if action, ok := that.resolve(ev); ok {
			that.logger.Debug("action resolved", "action", action.String())
			that.HideCursor()
			that.Commit()

			return action, nil
		}
	}
}

// WaitForKey blocks until any key or mouse press.
func (that *Session) WaitForKey() error {
	that.HideCursor()
	that.Commit()

	for {
		ev, err := that.GetInputEvent()
		if err != nil {
			return err
		}

		switch ev := ev.(type) {
		case *tcell.EventKey, *tcell.EventInterrupt:
			return nil
		case *tcell.EventMouse:
			if ev.Buttons()&pressButtons != 0 {
				return nil
			}
		case *tcell.EventResize:
			that.screen.Sync()
		}
	}
}

func (that *Session) resolve(ev tcell.Event) (GameAction, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return that.resolveKey(ev)

	case *tcell.EventMouse:
		if ev.Buttons()&pressButtons == 0 {
			return GameAction{}, false
		}
		x, y := ev.Position()
		if x < 0 || y < 0 {
			return GameAction{}, false
		}

		return TakeTurn(that.settings.TermCoordToCellCoord(coord.New(uint(x), uint(y)))), true

	case *tcell.EventInterrupt:
		return Quit(), true

	case *tcell.EventResize:
		that.screen.Sync()
	}

	return GameAction{}, false
}

func (that *Session) resolveKey(ev *tcell.EventKey) (GameAction, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		that.UpdateActiveBoardCell(func(c coord.Coord) coord.Coord { return c.Sub(stepX) })
	case tcell.KeyRight:
		that.UpdateActiveBoardCell(func(c coord.Coord) coord.Coord { return c.Add(stepX) })
	case tcell.KeyUp:
		that.UpdateActiveBoardCell(func(c coord.Coord) coord.Coord { return c.Sub(stepY) })
	case tcell.KeyDown:
		that.UpdateActiveBoardCell(func(c coord.Coord) coord.Coord { return c.Add(stepY) })
	case tcell.KeyEnter:
		return TakeTurn(that.GetActiveBoardCell()), true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Quit(), true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return TakeTurn(that.GetActiveBoardCell()), true
		case 'q', 'Q':
			return Quit(), true
		}
	}

	return GameAction{}, false
}
