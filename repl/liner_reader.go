package repl

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/kakkky/cnsole/completer"
	"github.com/kakkky/cnsole/errs"
)

// linerReader はlinerで入力を読み、履歴をファイルに残す
type linerReader struct {
	state       *liner.State
	historyPath string
}

func newLinerReader(historyPath string, c *completer.Completer) *linerReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	state.SetTabCompletionStyle(liner.TabPrints)
	state.SetWordCompleter(c.CompleteWord)

	// 履歴が読めなくても続ける
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = state.ReadHistory(f)
			_ = f.Close()
		}
	}
	return &linerReader{
		state:       state,
		historyPath: historyPath,
	}
}

func (r *linerReader) ReadLine(prompt, prefill string) (string, error) {
	line, err := r.state.PromptWithSuggestion(prompt, prefill, -1)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", ErrInterrupted
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		r.state.AppendHistory(line)
	}
	return line, nil
}

// Close は履歴を書き出して端末を元に戻す
func (r *linerReader) Close() error {
	defer r.state.Close()
	if r.historyPath == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(r.historyPath), 0o755); err != nil {
		return errs.NewInternalError("failed to create history directory").Wrap(err)
	}
	f, err := os.Create(r.historyPath)
	if err != nil {
		return errs.NewInternalError("failed to create history file").Wrap(err)
	}
	defer f.Close()
	if _, err := r.state.WriteHistory(f); err != nil {
		return errs.NewInternalError("failed to write history").Wrap(err)
	}
	return nil
}
