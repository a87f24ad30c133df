package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"strings"

	"github.com/kakkky/cnsole/analyzer"
	"github.com/kakkky/cnsole/commands"
	"github.com/kakkky/cnsole/config"
	"github.com/kakkky/cnsole/errs"
	"github.com/kakkky/cnsole/executor"
	"github.com/kakkky/cnsole/parser"
	"github.com/kakkky/cnsole/printer"
	"github.com/kakkky/cnsole/registry"
	"github.com/kakkky/cnsole/srcgen"
	"github.com/kakkky/cnsole/types"
)

// ignoredNote は入力を破棄したときに表示する
const ignoredNote = "\nNote: Last input ignored due to errors."

// indentUnit は継続行の字下げ一段分
const indentUnit = "  "

// local は同じプロセスにモジュールをロードして実行するConsole
type local struct {
	registry   *registry.Registry
	dispatcher *commands.Dispatcher
	out        io.Writer
	logger     *slog.Logger
	buffer     string
	indent     int
	classifier
	splitter
	synthesizer
	pipeline
	resultPrinter
}

var (
	_ Console          = (*local)(nil)
	_ commands.Session = (*local)(nil)
)

func newLocal(cfg *config.Config, out io.Writer, logger *slog.Logger) *local {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	a := analyzer.NewClangAnalyzer(cfg.Clang, cfg.Std, cfg.CFlags, logger)
	l := &local{
		registry:    registry.NewRegistry(),
		out:         out,
		logger:      logger,
		classifier:  parser.NewClassifier(a, logger),
		splitter:    parser.NewSplitter(a, logger),
		synthesizer: generator{srcgen.NewGenerator(a, logger)},
		pipeline: executor.NewExecutor(executor.Options{
			CC:     cfg.CC,
			Std:    cfg.Std,
			CFlags: cfg.CFlags,
			Libs:   cfg.Libs,
			Libc:   cfg.Libc,
		}, logger),
		resultPrinter: printer.NewPrinter(out),
	}
	l.dispatcher = commands.NewDispatcher(out, l, cfg)
	return l
}

func (l *local) Prompt() string {
	if l.buffer == "" {
		return PrimaryPrompt
	}
	return ContinuationPrompt
}

func (l *local) Prefill() string {
	return strings.Repeat(indentUnit, l.indent)
}

// Process は入力を溜め、完結したところで一ターンずつ評価する
func (l *local) Process(ctx context.Context, line string) error {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Debug("panic while processing input", "stack", string(debug.Stack()))
			l.fail(errs.NewInternalError(fmt.Sprintf("%v", r)))
		}
	}()

	// 内部コマンドは入力の途中でなければ受け付ける
	if l.buffer == "" && commands.IsCommand(line) {
		if err := l.dispatcher.Dispatch(line); err != nil {
			if errors.Is(err, commands.ErrQuit) {
				return err
			}
			errs.HandleError(err)
		}
		return nil
	}
	if l.buffer == "" && strings.TrimSpace(line) == "" {
		return nil
	}

	l.buffer += line + "\n"
	contextSource := l.Program()
	classification, err := l.Classify(ctx, contextSource, l.buffer)
	if err != nil {
		var incompleteErr *errs.IncompleteInputError
		if errors.As(err, &incompleteErr) {
			l.indent = incompleteErr.IndentLevel
			return nil
		}
		l.fail(err)
		return nil
	}
	l.buffer, l.indent = "", 0
	l.logger.Debug("classified input", "type", classification.Type)

	switch classification.Type {
	case parser.Preprocessor:
		unit, err := l.GenPreprocessor(l.registry, classification.Text)
		if err != nil {
			l.fail(err)
			return nil
		}
		if unit == nil {
			l.logger.Debug("directive changes nothing")
			return nil
		}
		l.turn(ctx, unit)
	case parser.Declaration:
		unit, err := l.GenDeclaration(l.registry, classification.Text, classification.Lines, classification.Decls)
		if err != nil {
			l.fail(err)
			return nil
		}
		l.turn(ctx, unit)
	case parser.Statement:
		stmts, err := l.Split(ctx, contextSource, classification.Text)
		if err != nil {
			l.fail(err)
			return nil
		}
		// 文ごとに一ターンとし、失敗したらそれ以降の文は評価しない
		for _, stmt := range stmts {
			unit, err := l.GenStatement(ctx, l.registry, stmt)
			if err != nil {
				l.fail(err)
				return nil
			}
			if !l.turn(ctx, unit) {
				return nil
			}
		}
	}
	return nil
}

// turn は翻訳単位をコンパイル・リンク・実行し、成功したときだけ状態に反映する
// エントリ関数の番号はリンクに成功した時点で進める
func (l *local) turn(ctx context.Context, unit *srcgen.Unit) bool {
	l.logger.Debug("synthesized unit", "entry", unit.Entry, "source", unit.Source)
	path, err := l.Compile(ctx, unit.Source, unit.InputLine)
	if err != nil {
		l.fail(err)
		return false
	}
	if err := l.Link(path); err != nil {
		l.fail(err)
		return false
	}
	// リンク済みのモジュールはアンロードできないので、エントリ関数の名前はここで消費する
	l.registry.Advance()
	if unit.Entry != "" {
		result, err := l.Execute(unit.Entry, unit.Type, unit.Class)
		if err != nil {
			// 実行に失敗したターンは反映しない(ExecuteはLinkErrorかInternalErrorを返す)
			l.logger.Debug("entry failed after link", "entry", unit.Entry, "error", err)
			l.fail(err)
			return false
		}
		l.Print(result)
	}
	l.registry.Commit(unit.Turn)
	return true
}

// fail はエラーを表示し、溜めていた入力を捨てる
func (l *local) fail(err error) {
	l.buffer, l.indent = "", 0
	errs.HandleError(err)
	errs.PrintNote(ignoredNote)
}

// Program はこれまでに受理された宣言とディレクティブからなるソースを返す
func (l *local) Program() string {
	return srcgen.Source(l.registry.Lines(), "")
}

func (l *local) LoadLibrary(path string) error {
	l.logger.Debug("attempting to load external library", "path", path)
	return l.pipeline.LoadLibrary(path)
}

// Reset は受理した宣言を捨て、ロードしたモジュールを閉じる
// :loadで読み込んだライブラリはそのまま残る
func (l *local) Reset() error {
	l.buffer, l.indent = "", 0
	l.registry.Reset()
	return l.pipeline.Close()
}

func (l *local) Close() error {
	return l.pipeline.Close()
}

func (l *local) Decls() []types.Decl {
	return l.registry.Decls()
}

func (l *local) KnownMacros() []types.MacroName {
	return l.registry.KnownMacros()
}
