package repl

import (
	"errors"
	"fmt"
	"io"

	"github.com/kakkky/cnsole/completer"
	"github.com/kakkky/cnsole/config"
	"github.com/kakkky/cnsole/errs"
)

// ErrInterrupted はCtrl+Cで入力が中断されたことを表す
var ErrInterrupted = errors.New("interrupted")

//go:generate mockgen -package=repl -source=./reader.go -destination=./reader_mock.go

// LineReader は端末などから一行ずつ入力を読む
type LineReader interface {
	// ReadLine はpromptを表示し、prefillを入力済みの状態で一行読む
	// 入力が終わったらio.EOFを返す
	ReadLine(prompt, prefill string) (string, error)
	Close() error
}

// NewReader は設定に合ったLineReaderを生成する
// onInterruptはgo-promptでCtrl+Cが押されたときに呼ばれる
func NewReader(kind, historyPath string, c *completer.Completer, in io.Reader, out io.Writer, onInterrupt func()) (LineReader, error) {
	switch kind {
	case config.ReaderPrompt:
		return newPromptReader(c, out, onInterrupt), nil
	case config.ReaderLiner:
		return newLinerReader(historyPath, c), nil
	case config.ReaderStdio:
		return newStdioReader(in), nil
	}
	return nil, errs.NewInternalError(fmt.Sprintf("unknown reader %q", kind))
}
