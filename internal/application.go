package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/rocketscienceinc/ricracroe/internal/config"
	"github.com/rocketscienceinc/ricracroe/internal/entity"
	"github.com/rocketscienceinc/ricracroe/internal/render"
	"github.com/rocketscienceinc/ricracroe/internal/report"
	"github.com/rocketscienceinc/ricracroe/internal/sound"
	"github.com/rocketscienceinc/ricracroe/internal/terminal"
	"github.com/rocketscienceinc/ricracroe/internal/tictactoe"
	"github.com/rocketscienceinc/ricracroe/internal/usecase"
)

// RunApp - runs one game on the controlling terminal and prints the result once it is restored.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	screen, err := terminal.NewScreen()
	if err != nil {
		return fmt.Errorf("could not open terminal: %w", err)
	}

	return run(context.Background(), logger, conf, screen, os.Stdout)
}

func run(ctx context.Context, logger *slog.Logger, conf *config.Config, screen tcell.Screen, out io.Writer) error {
	logger = logger.With("session", uuid.NewString())
	log := logger.With("component", "app")

	game := tictactoe.NewGame(conf.Board.Size)

	outcome, err := play(ctx, logger, conf, screen, game)
	if err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	log.Info("session finished", "outcome", describe(outcome))

	if err = report.New(out).Print(game.Board(), outcome); err != nil {
		return fmt.Errorf("could not print report: %w", err)
	}

	return nil
}

// play owns the terminal session. The terminal is restored before play returns, even on panic.
func play(ctx context.Context, logger *slog.Logger, conf *config.Config, screen tcell.Screen, game *tictactoe.Game) (*entity.Outcome, error) {
	log := logger.With("component", "app")

	settings := render.NewSettings(conf.Board.Size, conf.Board.Padding)

	session, err := terminal.New(logger, screen, settings)
	if err != nil {
		return nil, fmt.Errorf("could not start terminal session: %w", err)
	}
	defer session.Close()

	speaker := sound.New(logger, conf.Sound)
	defer speaker.Close()

	log.Info("session started", "size", conf.Board.Size, "sound", speaker.Enabled())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()

			if err := session.Interrupt(); err != nil {
				log.Error("could not interrupt terminal session", "error", err)
			}
		case <-ctx.Done():
		}
	}()

	return usecase.NewGameManager(logger, session, speaker, game, conf.Title).Play(ctx)
}

func describe(outcome *entity.Outcome) string {
	if outcome == nil {
		return "abandoned"
	}

	return outcome.String()
}
