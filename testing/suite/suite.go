package suite

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

const (
	maxWaitDuration = 30 * time.Second

	screenWidth  = 80
	screenHeight = 24
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	// Screen is not initialised; the code under test calls Init.
	Screen tcell.SimulationScreen
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Screen: tcell.NewSimulationScreen("UTF-8"),
	}
}

// Resize sets the simulated terminal to 80x24. Call it after Init.
func (that *Suite) Resize() {
	that.Screen.SetSize(screenWidth, screenHeight)
}

// Post queues input events for the screen.
func (that *Suite) Post(events ...tcell.Event) {
	that.Helper()

	for _, ev := range events {
		if err := that.Screen.PostEvent(ev); err != nil {
			that.Fatalf("could not post event: %v", err)
		}
	}
}

// Row returns the text of terminal row y with trailing blanks removed.
func (that *Suite) Row(y int) string {
	width, _ := that.Screen.Size()

	var row strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := that.Screen.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		row.WriteRune(r)
	}

	return strings.TrimRight(row.String(), " ")
}

// Style returns the style of the terminal cell at (x, y).
func (that *Suite) Style(x, y int) tcell.Style {
	_, _, style, _ := that.Screen.GetContent(x, y)
	return style
}

func Key(key tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(key, 0, tcell.ModNone)
}

func Rune(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func Click(x, y int) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone)
}

func Release(x, y int) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone)
}
