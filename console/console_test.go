package console

import (
	"errors"
	"io"
	"testing"

	"github.com/kakkky/cnsole/config"
	"github.com/kakkky/cnsole/errs"
)

func TestNew(t *testing.T) {
	t.Run("local", func(t *testing.T) {
		cfg := &config.Config{CC: "cc", Clang: "clang", Std: "gnu99", Console: config.ConsoleLocal}
		got, err := New(cfg, io.Discard, nil)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		if _, ok := got.(*local); !ok {
			t.Fatalf("expected *local, got %T", got)
		}
		if got.Prompt() != PrimaryPrompt || got.Prefill() != "" {
			t.Errorf("unexpected initial prompt %q / prefill %q", got.Prompt(), got.Prefill())
		}
		if len(got.KnownMacros()) != 0 {
			t.Errorf("expected no macros, got %v", got.KnownMacros())
		}
		if err := got.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	t.Run("unknown", func(t *testing.T) {
		_, err := New(&config.Config{Console: "remote"}, io.Discard, nil)
		var internalErr *errs.InternalError
		if !errors.As(err, &internalErr) {
			t.Errorf("expected InternalError, got %v", err)
		}
	})
}
