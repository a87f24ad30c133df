package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/kakkky/cnsole/completer"
)

// promptReader はgo-promptで入力を読む
type promptReader struct {
	completer   *completer.Completer
	out         io.Writer
	history     []string
	onInterrupt func()
}

func newPromptReader(c *completer.Completer, out io.Writer, onInterrupt func()) *promptReader {
	return &promptReader{
		completer:   c,
		out:         out,
		onInterrupt: onInterrupt,
	}
}

// ReadLine は一行読む
// go-promptは初期入力を持てないため、字下げはプロンプトの一部として表示する
func (r *promptReader) ReadLine(prefix, prefill string) (string, error) {
	line := prompt.Input(
		prefix+prefill,
		r.completer.Complete,
		prompt.OptionTitle("cnsole"),
		prompt.OptionHistory(r.history),
		prompt.OptionCompletionWordSeparator(completer.WordSeparator),
		prompt.OptionAddKeyBind(r.keyBinds()...),
	)
	if strings.TrimSpace(line) != "" {
		r.history = append(r.history, line)
	}
	return line, nil
}

func (r *promptReader) keyBinds() []prompt.KeyBind {
	return []prompt.KeyBind{
		{
			Key: prompt.ControlC,
			Fn: func(buf *prompt.Buffer) {
				fmt.Fprintln(r.out, "\nExit on Ctrl+C")
				r.onInterrupt()
			},
		},
	}
}

func (r *promptReader) Close() error {
	return nil
}
