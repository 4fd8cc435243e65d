package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/ricracroe/internal/apperror"
	"github.com/rocketscienceinc/ricracroe/internal/coord"
	"github.com/rocketscienceinc/ricracroe/internal/entity"
	"github.com/rocketscienceinc/ricracroe/internal/render"
	"github.com/rocketscienceinc/ricracroe/internal/terminal"
	"github.com/rocketscienceinc/ricracroe/internal/tictactoe"
)

const exitHint = "Press any key to exit."

type terminalSession interface {
	ResetDisplay()
	WriteTitle(title string)
	WriteRenderedBoardRow(row uint, line string)
	WriteStatus(status string)
	WriteMsgLog(text string)
	HighlightCells(cells []coord.Coord)
	Commit()

	GetGameAction() (terminal.GameAction, error)
	WaitForKey() error
}

type soundPlayer interface {
	Accepted()
	Rejected()
	Finished(outcome *entity.Outcome)
}

// GameManager drives one game: it redraws the screen, asks the terminal for an
// action and applies it until the game is decided or the player quits.
type GameManager struct {
	logger *slog.Logger
	term   terminalSession
	sound  soundPlayer

	game   *tictactoe.Game
	title  string
	msgLog *MessageLog
}

func NewGameManager(logger *slog.Logger, term terminalSession, sound soundPlayer, game *tictactoe.Game, title string) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		term:   term,
		sound:  sound,

		game:   game,
		title:  title,
		msgLog: NewMessageLog(render.MaxMsgLogLines),
	}
}

// Play runs the game loop. It returns the outcome, or nil when the player quit.
func (that *GameManager) Play(ctx context.Context) (*entity.Outcome, error) {
	log := that.logger.With("method", "Play")

	that.term.ResetDisplay()
	log.Info("game started", "size", that.game.Board().Size())

	for !that.game.Over() {
		if err := ctx.Err(); err != nil {
			log.Info("game interrupted", "reason", err)
			return nil, nil
		}

		player := that.game.GetTurn()
		that.draw(fmt.Sprintf("It's %s's turn.", player))

		action, err := that.term.GetGameAction()
		if err != nil {
			return nil, fmt.Errorf("failed to get game action: %w", err)
		}

		switch action.Kind {
		case terminal.ActionQuit:
			log.Info("player quit", "player", player.String())
			return nil, nil
		case terminal.ActionTakeTurn:
			that.takeTurn(action.Cell)
		}
	}

	return that.finish(), nil
}

func (that *GameManager) takeTurn(cell coord.Coord) {
	log := that.logger.With("method", "takeTurn")

	mover, err := that.game.TakeTurn(cell)
	if err != nil {
		if !errors.Is(err, apperror.ErrInvalidCellPosition) && !errors.Is(err, apperror.ErrCellAlreadySet) {
			log.Error("unexpected turn failure", "player", mover.String(), "cell", cell.String(), "error", err)
		} else {
			log.Info("move rejected", "player", mover.String(), "cell", cell.String(), "error", err)
		}

		that.msgLog.Add(err.Error())
		that.sound.Rejected()

		return
	}

	log.Info("turn taken", "player", mover.String(), "cell", cell.String())
	log.Debug("board", "board", that.game.Board().String())

	that.msgLog.Add(fmt.Sprintf("%s played %s.", mover, cell))
	that.sound.Accepted()
}

// finish shows the decided board until the player presses a key.
func (that *GameManager) finish() *entity.Outcome {
	log := that.logger.With("method", "finish")

	outcome := that.game.Outcome()
	log.Info("game over", "outcome", outcome.String())

	that.msgLog.Add(exitHint)
	that.draw(outcome.String())
	if len(outcome.WinningCells) > 0 {
		that.term.HighlightCells(outcome.WinningCells)
		that.term.Commit()
	}
	that.sound.Finished(outcome)

	if err := that.term.WaitForKey(); err != nil {
		log.Warn("could not wait for key", "error", err)
	}

	return outcome
}

// draw redraws every region and flushes before the next blocking read.
func (that *GameManager) draw(status string) {
	board := that.game.Board()

	that.term.WriteTitle(that.title)
	for row, line := range board.RenderLines() {
		that.term.WriteRenderedBoardRow(uint(row), line)
	}
	that.term.WriteStatus(status)
	that.term.WriteMsgLog(that.msgLog.String())
	that.term.Commit()
}
