package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/ilyakaznacheev/cleanenv"
)

const DefaultPath = "config.yml"

type Flags struct {
	ConfigPath string
	Size       uint
	Sound      bool

	soundSet bool
}

// ParseFlags parses args without the program name. -h prints the flags and
// the environment variables and returns flag.ErrHelp.
func ParseFlags(name string, args []string, output io.Writer) (*Flags, error) {
	flags := &Flags{}

	set := flag.NewFlagSet(name, flag.ContinueOnError)
	set.SetOutput(output)
	set.StringVar(&flags.ConfigPath, "config", DefaultPath, "path to the config file")
	set.UintVar(&flags.Size, "size", 0, "cells per side, overrides the config file")
	set.BoolVar(&flags.Sound, "sound", false, "play sound cues, overrides the config file")

	header := "\nEnvironment variables:"
	set.Usage = cleanenv.FUsage(output, &Config{}, &header, func() {
		fmt.Fprintf(output, "Usage of %s:\n", name)
		set.PrintDefaults()
	})

	if err := set.Parse(args); err != nil {
		return nil, err
	}

	set.Visit(func(f *flag.Flag) {
		if f.Name == "sound" {
			flags.soundSet = true
		}
	})

	return flags, nil
}
