package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kakkky/cnsole/errs"
	"github.com/kakkky/cnsole/version"
)

// ErrQuit はセッションを終了する合図
var ErrQuit = errors.New("quit")

// Prefix は内部コマンドの先頭文字
const Prefix = ":"

//go:generate mockgen -package=commands -source=./commands.go -destination=./commands_mock.go

// Session は内部コマンドが操作するセッション
type Session interface {
	// Program はこれまでに受理された宣言とディレクティブを返す
	Program() string
	LoadLibrary(path string) error
	Reset() error
}

// Dumper は設定を書き出す
type Dumper interface {
	Dump(w io.Writer) error
}

// Command は内部コマンド一つを表す
type Command struct {
	Name        string
	Args        string
	Description string
}

// Commands は使える内部コマンドの一覧
var Commands = []Command{
	{Name: "help", Description: "displays this message"},
	{Name: "load", Args: "<library path>", Description: "dynamically loads specified library"},
	{Name: "version", Description: "displays cnsole version information"},
	{Name: "program", Description: "prints the declarations accumulated so far"},
	{Name: "config", Description: "prints the effective configuration"},
	{Name: "reset", Description: "discards all declarations and loaded modules"},
	{Name: "quit", Description: "exits cnsole"},
}

// Dispatcher は":"で始まる入力を内部コマンドとして処理する
type Dispatcher struct {
	out     io.Writer
	session Session
	config  Dumper
}

// NewDispatcher はDispatcherのインスタンスを生成する
func NewDispatcher(out io.Writer, session Session, config Dumper) *Dispatcher {
	return &Dispatcher{
		out:     out,
		session: session,
		config:  config,
	}
}

// IsCommand は入力が内部コマンドかどうかを返す
func IsCommand(input string) bool {
	return strings.HasPrefix(strings.TrimSpace(input), Prefix)
}

// Dispatch は内部コマンドを実行する
// :quitの場合はErrQuitを返す
func (d *Dispatcher) Dispatch(input string) error {
	name, arg, _ := strings.Cut(strings.TrimPrefix(strings.TrimSpace(input), Prefix), " ")
	arg = strings.TrimSpace(arg)
	switch name {
	case "help":
		return d.showHelp()
	case "load":
		return d.loadLibrary(arg)
	case "version":
		return d.showVersion()
	case "program":
		return d.showProgram()
	case "config":
		return d.showConfig()
	case "reset":
		return d.resetSession()
	case "quit":
		return ErrQuit
	}
	return errs.NewBadInputError(fmt.Sprintf("unknown command '%s%s' (type :help for the list of commands)", Prefix, name))
}

func (d *Dispatcher) showHelp() error {
	fmt.Fprintln(d.out, "The following commands are available:")
	for _, cmd := range Commands {
		usage := Prefix + cmd.Name
		if cmd.Args != "" {
			usage += " " + cmd.Args
		}
		fmt.Fprintf(d.out, "  %s - %s\n", usage, cmd.Description)
	}
	return nil
}

func (d *Dispatcher) showVersion() error {
	version.PrintVersion(d.out)
	return nil
}

func (d *Dispatcher) loadLibrary(arg string) error {
	if arg == "" {
		return errs.NewBadInputError("usage: :load <library path>")
	}
	if err := d.session.LoadLibrary(arg); err != nil {
		return err
	}
	fmt.Fprintln(d.out, "Dynamic library loaded.")
	return nil
}

func (d *Dispatcher) showProgram() error {
	fmt.Fprint(d.out, d.session.Program())
	return nil
}

func (d *Dispatcher) showConfig() error {
	if d.config == nil {
		return errs.NewInternalError("configuration is not available")
	}
	return d.config.Dump(d.out)
}

func (d *Dispatcher) resetSession() error {
	if err := d.session.Reset(); err != nil {
		return err
	}
	fmt.Fprintln(d.out, "Session reset.")
	return nil
}
