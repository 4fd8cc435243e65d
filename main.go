package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	app "github.com/rocketscienceinc/ricracroe/internal"
	"github.com/rocketscienceinc/ricracroe/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	flags, err := config.ParseFlags(filepath.Base(os.Args[0]), os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	conf := initConfig(flags)

	logger, logFile := initLogger(conf)
	defer logFile.Close()

	if err = app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config.
func initConfig(flags *config.Flags) *config.Config {
	_ = godotenv.Load()

	path := flags.ConfigPath
	if !filepath.IsAbs(path) {
		baseDir, err := os.Getwd()
		if err != nil {
			panic(fmt.Errorf("failed to get current directory: %w", err))
		}
		path = filepath.Join(baseDir, path)
	}

	conf := config.MustLoad(path)
	conf.Apply(flags)

	if err := conf.Validate(); err != nil {
		panic(err)
	}

	return conf
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// initialize logger. The terminal belongs to the game, so logs go to a file or nowhere.
func initLogger(conf *config.Config) (*slog.Logger, io.Closer) {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	if conf.LogFile == "" {
		return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: level})), nopCloser{}
	}

	file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		panic(fmt.Errorf("failed to open log file: %w", err))
	}

	return slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})), file
}
