package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"
)

const path = "infra/config"

// Config is the configuration of the curve fitting service.
type Config struct {
	Server  Server  `json:"server" toml:"server"`
	Storage Storage `json:"storage" toml:"storage"`
	Log     Log     `json:"log" toml:"log"`
}

// Server configures the http transport.
type Server struct {
	Port  int  `json:"port" toml:"port"`
	Debug bool `json:"debug" toml:"debug"`
	// Rate is the allowed requests per second, 0 disables the limit.
	Rate  float64 `json:"rate" toml:"rate"`
	Burst int     `json:"burst" toml:"burst"`
}

// Storage configures the persistence backend.
type Storage struct {
	// Type is one of sqlite, file or void.
	Type string `json:"type" toml:"type"`
	// Path is the database file for sqlite and the directory for file storage.
	Path string `json:"path" toml:"path"`
}

// Log configures the logger.
type Log struct {
	Level   string `json:"level" toml:"level"`
	Console bool   `json:"console" toml:"console"`
}

// Default returns the configuration used when nothing else is given.
func Default() Config {
	return Config{
		Server: Server{
			Port:  6080,
			Rate:  50,
			Burst: 100,
		},
		Storage: Storage{
			Type: "sqlite",
			Path: "mydatabase.sqlite",
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load loads the config file into v.
// The format is picked from the file extension, .json or .toml.
func Load(file string, v interface{}) error {
	b, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("could not load config '%s': %w", file, err)
	}

	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".json":
		err = json.Unmarshal(b, v)
	case ".toml":
		err = toml.Unmarshal(b, v)
	default:
		return fmt.Errorf("unknown config format '%s' for '%s'", ext, file)
	}
	if err != nil {
		return fmt.Errorf("could not unmarshal the config '%s': %w", file, err)
	}

	log.Info().Str("file", file).Msg("loaded config")
	return nil
}

// MustLoad loads the json config for the given key
func MustLoad(key string, v interface{}) {
	err := Load(filepath.Join(path, fmt.Sprintf("%s.json", key)), v)
	if err != nil {
		panic(fmt.Sprintf("could not load config for %s: %s", key, err.Error()))
	}
}
