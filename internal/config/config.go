package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/ricracroe/internal/apperror"
)

const (
	MaxBoardSize    = 32
	MaxBoardPadding = 16
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"RICRACROE_LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
	LogFile  string `yaml:"log-file" env:"RICRACROE_LOG_FILE" env-description:"file the JSON log is appended to, logging is off when empty"`
	Title    string `yaml:"title" env:"RICRACROE_TITLE" env-default:"Welcome to Ric Rac Roe!" env-description:"line shown above the board"`
	Board    Board  `yaml:"board" env-prefix:"RICRACROE_BOARD_"`
	Sound    bool   `yaml:"sound" env:"RICRACROE_SOUND" env-default:"false" env-description:"play sound cues"`
}

type Board struct {
	Size    uint `yaml:"size" env:"SIZE" env-default:"3" env-description:"cells per side"`
	Padding uint `yaml:"padding" env:"PADDING" env-default:"4" env-description:"blank rows and columns around the board"`
}

// Load reads the config file at path. A missing file falls back to the environment and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Apply overrides the loaded values with the flags given on the command line.
func (that *Config) Apply(flags *Flags) {
	if flags.Size != 0 {
		that.Board.Size = flags.Size
	}

	if flags.soundSet {
		that.Sound = flags.Sound
	}
}

func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", apperror.ErrInvalidConfig, that.LogLevel)
	}

	if that.Board.Size == 0 || that.Board.Size > MaxBoardSize {
		return fmt.Errorf("%w: board size must be between 1 and %d, got %d",
			apperror.ErrInvalidConfig, MaxBoardSize, that.Board.Size)
	}

	if that.Board.Padding > MaxBoardPadding {
		return fmt.Errorf("%w: board padding must be at most %d, got %d",
			apperror.ErrInvalidConfig, MaxBoardPadding, that.Board.Padding)
	}

	return nil
}
