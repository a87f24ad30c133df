package executor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/kakkky/cnsole/diagnostics"
	"github.com/kakkky/cnsole/errs"
	"github.com/kakkky/cnsole/types"
)

// Options はコンパイラの起動とライブラリのロードに使う設定
type Options struct {
	CC     string
	Std    string
	CFlags []string
	Libs   []string
	// Libc はfflushを解決する標準Cライブラリ (空なら出力をフラッシュしない)
	Libc string
}

// Executor は翻訳単位を共有ライブラリとしてコンパイルし、プロセスにロードして実行する
// ロードしたモジュールはCloseまでアンロードしない
type Executor struct {
	opts      Options
	logger    *slog.Logger
	workDir   string
	cleanup   func()
	moduleNo  int
	modules   []uintptr
	libraries []uintptr
	libc      uintptr
	fflush    uintptr
	filer
	commander
	loader
}

// NewExecutor はExecutorのインスタンスを生成する
func NewExecutor(opts Options, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Executor{
		opts:      opts,
		logger:    logger,
		filer:     newDefaultFiler(),
		commander: newDefaultCommander(opts.CC),
		loader:    newDefaultLoader(),
	}
}

// Compile はsrcを共有ライブラリにコンパイルし、そのパスを返す
// inputLineはユーザー入力が始まる行で、診断の位置をそこからの相対位置に直すのに使う
func (e *Executor) Compile(ctx context.Context, src string, inputLine int) (string, error) {
	if e.workDir == "" {
		dir, cleanup, err := e.createWorkDir()
		if err != nil {
			return "", err
		}
		e.workDir, e.cleanup = dir, cleanup
	}
	// 一度ロードしたパスを再びdlopenすると同じハンドルが返るため、コンパイルごとに別のパスにする
	path := filepath.Join(e.workDir, fmt.Sprintf("module_%d.so", e.moduleNo))
	e.moduleNo++

	args := []string{
		"-shared",
		"-fPIC",
		// gccとclangの両方が受け付ける形で色付けを止める
		"-fdiagnostics-color=never",
		"-std=" + e.opts.Std,
	}
	args = append(args, e.opts.CFlags...)
	args = append(args, "-x", "c", "-o", path, "-")
	args = append(args, e.opts.Libs...)

	e.logger.Debug("compiling module", "path", path, "bytes", len(src))
	_, stderr, err := e.execCC(ctx, args, src)
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", errs.NewInternalError("failed to run compiler").Wrap(err)
		}
		diags := diagnostics.Parse(stderr)
		if !diagnostics.HasErrors(diags) {
			return "", errs.NewBadInputError(formatCmdErrMsg(stderr))
		}
		return "", errs.NewBadInputError("failed to compile input" + diagnostics.Format(diags, inputLine))
	}
	if warnings := diagnostics.Parse(stderr); len(warnings) > 0 {
		e.logger.Debug("compiler warnings", "count", len(warnings))
	}
	return path, nil
}

// Link はコンパイル済みのモジュールをロードする
func (e *Executor) Link(path string) error {
	handle, err := e.dlopen(path)
	if err != nil {
		return errs.NewLinkError("failed to link " + filepath.Base(path)).Wrap(err)
	}
	e.modules = append(e.modules, handle)
	e.logger.Debug("linked module", "path", path, "modules", len(e.modules))
	return nil
}

// Execute は最後にロードしたモジュールのエントリ関数を呼び出す
// 呼び出し先で起きたシグナル(SIGSEGVなど)はプロセスごと終了させる
func (e *Executor) Execute(entry types.FuncName, qt types.QualType, class types.ValueClass) (result *Result, err error) {
	if len(e.modules) == 0 {
		return nil, errs.NewInternalError("no module is linked")
	}
	fn, err := e.dlsym(e.modules[len(e.modules)-1], string(entry))
	if err != nil {
		return nil, errs.NewLinkError("failed to resolve " + string(entry)).Wrap(err)
	}

	defer func() {
		if r := recover(); r != nil {
			e.logger.Debug("panic while calling entry", "stack", string(debug.Stack()))
			result, err = nil, errs.NewInternalError(fmt.Sprintf("%v", r))
		}
	}()

	result, err = e.call(fn, class)
	e.flush()
	if err != nil {
		return nil, errs.NewInternalError("failed to call " + string(entry)).Wrap(err)
	}
	result.Type = qt
	result.Class = class
	return result, nil
}

// flush はC側のstdioバッファを書き出す
// 標準Cライブラリを解決できなければ何もしない
func (e *Executor) flush() {
	if e.fflush == 0 {
		if e.opts.Libc == "" || e.libc != 0 {
			return
		}
		handle, err := e.dlopen(e.opts.Libc)
		if err != nil {
			e.logger.Debug("failed to load libc", "libc", e.opts.Libc, "err", err)
			e.opts.Libc = ""
			return
		}
		e.libc = handle
		fflush, err := e.dlsym(handle, "fflush")
		if err != nil {
			e.logger.Debug("failed to resolve fflush", "err", err)
			return
		}
		e.fflush = fflush
	}
	e.flushStdio(e.fflush)
}

// LoadLibrary はユーザーが指定した共有ライブラリをロードし、後続の入力から使えるようにする
func (e *Executor) LoadLibrary(path string) error {
	handle, err := e.dlopen(path)
	if err != nil {
		return errs.NewBadInputError("failed to load library " + path).Wrap(err)
	}
	e.libraries = append(e.libraries, handle)
	e.logger.Debug("loaded library", "path", path)
	return nil
}

// Close はロードしたモジュールを後から順に閉じ、作業ディレクトリを削除する
func (e *Executor) Close() error {
	var closeErrs []error
	for i := len(e.modules) - 1; i >= 0; i-- {
		if err := e.dlclose(e.modules[i]); err != nil {
			closeErrs = append(closeErrs, err)
		}
	}
	e.modules = nil
	if e.cleanup != nil {
		e.cleanup()
		e.workDir, e.cleanup = "", nil
	}
	if len(closeErrs) > 0 {
		return errs.NewInternalError("failed to close modules").Wrap(errors.Join(closeErrs...))
	}
	return nil
}

// formatCmdErrMsg はコンパイラの出力から表示用のメッセージを整形する
func formatCmdErrMsg(stderr []byte) string {
	msg := strings.TrimSpace(string(stderr))
	if msg == "" {
		return "compilation failed"
	}
	return "compilation failed\n" + msg
}
