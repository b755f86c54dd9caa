package config

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup applies the log configuration to the global logger.
func (l Log) Setup() error {
	level := zerolog.InfoLevel
	if l.Level != "" {
		var err error
		level, err = zerolog.ParseLevel(l.Level)
		if err != nil {
			return fmt.Errorf("could not parse log level '%s': %w", l.Level, err)
		}
	}
	zerolog.SetGlobalLevel(level)
	if l.Console {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	return nil
}
