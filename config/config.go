package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"github.com/kakkky/cnsole/errs"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = "cnsole"
	envPrefix  = "CNSOLE"
)

// 設定のキー
const (
	KeyCC      = "cc"
	KeyClang   = "clang"
	KeyStd     = "std"
	KeyCFlags  = "cflags"
	KeyLibs    = "libs"
	KeyLibc    = "libc"
	KeyReader  = "reader"
	KeyHistory = "history"
	KeyConsole = "console"
	KeyDebug   = "debug"
)

// 行の読み取り方法
const (
	ReaderPrompt = "prompt"
	ReaderLiner  = "liner"
	ReaderStdio  = "stdio"
)

// ConsoleLocal は同じプロセスの中でコードを実行するコンソール
const ConsoleLocal = "local"

// Config はcnsoleの設定を表す
type Config struct {
	CC      string   `mapstructure:"cc"      toml:"cc"`
	Clang   string   `mapstructure:"clang"   toml:"clang"`
	Std     string   `mapstructure:"std"     toml:"std"`
	CFlags  []string `mapstructure:"cflags"  toml:"cflags"`
	Libs    []string `mapstructure:"libs"    toml:"libs"`
	Libc    string   `mapstructure:"libc"    toml:"libc"`
	Reader  string   `mapstructure:"reader"  toml:"reader"`
	History string   `mapstructure:"history" toml:"history"`
	Console string   `mapstructure:"console" toml:"console"`
	Debug   bool     `mapstructure:"debug"   toml:"debug"`
}

// SetDefaults は設定の既定値を登録する
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyCC, "cc")
	v.SetDefault(KeyClang, "clang")
	v.SetDefault(KeyStd, "gnu99")
	v.SetDefault(KeyCFlags, []string{})
	v.SetDefault(KeyLibs, defaultLibs())
	v.SetDefault(KeyLibc, defaultLibc())
	v.SetDefault(KeyReader, ReaderPrompt)
	v.SetDefault(KeyHistory, defaultHistoryPath())
	v.SetDefault(KeyConsole, ConsoleLocal)
	v.SetDefault(KeyDebug, false)
}

// Load は設定ファイル、環境変数、フラグから設定を読み込む
// configFileが空の場合はユーザーの設定ディレクトリにあるconfig.tomlを探し、見つからなくてもエラーにしない
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}
	SetDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, configDir))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &configNotFound) {
			return nil, errs.NewInternalError("failed to read config file").Wrap(err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errs.NewInternalError("failed to decode config").Wrap(err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate は設定値が使えるものかどうかを確認する
func (c *Config) Validate() error {
	if c.CC == "" || c.Clang == "" {
		return errs.NewInternalError("cc and clang must not be empty")
	}
	if c.Std == "" {
		return errs.NewInternalError("std must not be empty")
	}
	if !slices.Contains([]string{ReaderPrompt, ReaderLiner, ReaderStdio}, c.Reader) {
		return errs.NewInternalError(fmt.Sprintf("unknown reader %q (prompt, liner or stdio)", c.Reader))
	}
	if c.Console != ConsoleLocal {
		return errs.NewInternalError(fmt.Sprintf("unknown console %q", c.Console))
	}
	return nil
}

// Dump は設定をTOMLとして書き出す
func (c *Config) Dump(w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.SetArraysMultiline(false)
	if err := enc.Encode(c); err != nil {
		return errs.NewInternalError("failed to encode config").Wrap(err)
	}
	return nil
}

func defaultLibs() []string {
	// macOSのリンカは未定義シンボルを既定で拒否するため、先にロードしたモジュールで解決させる
	if runtime.GOOS == "darwin" {
		return []string{"-lm", "-undefined", "dynamic_lookup"}
	}
	return []string{"-lm"}
}

func defaultLibc() string {
	switch runtime.GOOS {
	case "darwin":
		return "/usr/lib/libSystem.B.dylib"
	case "linux":
		return "libc.so.6"
	}
	return ""
}

func defaultHistoryPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, configDir, "history")
}

