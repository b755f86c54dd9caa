package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {

	type test struct {
		file    string
		content string
		config  Config
		err     bool
	}

	tests := map[string]test{
		"json": {
			file:    "c.json",
			content: `{"server":{"port":7000,"rate":1.5},"storage":{"type":"file","path":"data"}}`,
			config: func() Config {
				c := Default()
				c.Server.Port = 7000
				c.Server.Rate = 1.5
				c.Storage = Storage{Type: "file", Path: "data"}
				return c
			}(),
		},
		"toml": {
			file: "c.toml",
			content: `
[server]
port = 7001
debug = true

[log]
level = "debug"
`,
			config: func() Config {
				c := Default()
				c.Server.Port = 7001
				c.Server.Debug = true
				c.Log.Level = "debug"
				return c
			}(),
		},
		"unknown-extension": {
			file:    "c.yaml",
			content: "server: {}",
			err:     true,
		},
		"broken-json": {
			file:    "c.json",
			content: `{"server":`,
			err:     true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			file := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(file, []byte(tt.content), 0600))

			c := Default()
			err := Load(file, &c)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.config, c)
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	c := Default()
	err := Load(filepath.Join(t.TempDir(), "missing.json"), &c)
	assert.Error(t, err)
	assert.Equal(t, Default(), c)
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		var c Config
		MustLoad("does-not-exist", &c)
	})
}

func TestLog_Setup(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	err := Log{Level: "warn"}.Setup()
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	err = Log{}.Setup()
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	err = Log{Level: "loud"}.Setup()
	assert.Error(t, err)
}
