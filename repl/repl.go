package repl

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/kakkky/cnsole/commands"
	"github.com/kakkky/cnsole/console"
	"github.com/kakkky/cnsole/errs"
)

// Repl は入力を読み、コンソールで評価する対話ループ
type Repl struct {
	console console.Console
	reader  LineReader
	out     io.Writer
}

func NewRepl(c console.Console, reader LineReader, out io.Writer) *Repl {
	return &Repl{
		console: c,
		reader:  reader,
		out:     out,
	}
}

// Run は入力が終わるか:quitが入力されるまで評価を続ける
// 終了時にはコンソールと入力を閉じる
func (r *Repl) Run(ctx context.Context) (err error) {
	defer func() {
		err = errors.Join(err, r.console.Close(), r.reader.Close())
	}()
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		line, err := r.reader.ReadLine(r.console.Prompt(), r.console.Prefill())
		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(r.out)
			return nil
		case errors.Is(err, ErrInterrupted):
			fmt.Fprintln(r.out, "\nExit on Ctrl+C")
			return nil
		case err != nil:
			return errs.NewInternalError("failed to read input").Wrap(err)
		}
		if err := r.console.Process(ctx, line); err != nil {
			if errors.Is(err, commands.ErrQuit) {
				return nil
			}
			return err
		}
	}
}
