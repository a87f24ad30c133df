package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/kakkky/cnsole/errs"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "cc", cfg.CC)
	assert.Equal(t, "clang", cfg.Clang)
	assert.Equal(t, "gnu99", cfg.Std)
	assert.Contains(t, cfg.Libs, "-lm")
	assert.Equal(t, ReaderPrompt, cfg.Reader)
	assert.Equal(t, ConsoleLocal, cfg.Console)
	assert.False(t, cfg.Debug)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cnsole.toml")
	content := `std = "c11"
cflags = ["-O1", "-Wall"]
reader = "stdio"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "c11", cfg.Std)
	assert.Equal(t, []string{"-O1", "-Wall"}, cfg.CFlags)
	assert.Equal(t, ReaderStdio, cfg.Reader)
	assert.Equal(t, "cc", cfg.CC)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("CNSOLE_CC", "gcc")
	t.Setenv("CNSOLE_DEBUG", "true")

	cfg, err := Load(viper.New(), filepath.Join("testdata", "empty.toml"))
	require.NoError(t, err)

	assert.Equal(t, "gcc", cfg.CC)
	assert.True(t, cfg.Debug)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("explicit file must exist", func(t *testing.T) {
		_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.toml"))
		var internalErr *errs.InternalError
		assert.ErrorAs(t, err, &internalErr)
	})

	t.Run("unknown reader", func(t *testing.T) {
		v := viper.New()
		v.Set(KeyReader, "editline")
		_, err := Load(v, filepath.Join("testdata", "empty.toml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown reader "editline"`)
	})

	t.Run("unknown console", func(t *testing.T) {
		v := viper.New()
		v.Set(KeyConsole, "remote")
		_, err := Load(v, filepath.Join("testdata", "empty.toml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown console "remote"`)
	})
}

func TestConfig_Dump(t *testing.T) {
	cfg := &Config{
		CC:      "cc",
		Clang:   "clang",
		Std:     "c99",
		CFlags:  []string{"-O0"},
		Libs:    []string{"-lm"},
		Reader:  ReaderLiner,
		Console: ConsoleLocal,
	}
	var buf bytes.Buffer
	require.NoError(t, cfg.Dump(&buf))

	var decoded Config
	v := viper.New()
	v.SetConfigType("toml")
	require.NoError(t, v.ReadConfig(&buf))
	require.NoError(t, v.Unmarshal(&decoded))
	assert.Equal(t, *cfg, decoded)
}
