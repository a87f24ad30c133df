package repl

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kakkky/cnsole/errs"
)

func TestStdioReader_ReadLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "lines terminated by newline",
			input:    "int x = 5;\nx;\n",
			expected: []string{"int x = 5;", "x;"},
		},
		{
			name:     "last line without newline",
			input:    "int x = 5;\nx;",
			expected: []string{"int x = 5;", "x;"},
		},
		{
			name:     "crlf and blank lines",
			input:    "x;\r\n\r\ny;\n",
			expected: []string{"x;", "", "y;"},
		},
		{
			name:  "empty input",
			input: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sut := newStdioReader(strings.NewReader(tt.input))
			var got []string
			for {
				line, err := sut.ReadLine(">>> ", "")
				if errors.Is(err, io.EOF) {
					break
				}
				if err != nil {
					t.Fatalf("ReadLine() error = %v", err)
				}
				got = append(got, line)
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewReader(t *testing.T) {
	t.Run("stdio", func(t *testing.T) {
		got, err := NewReader("stdio", "", nil, strings.NewReader(""), io.Discard, nil)
		if err != nil {
			t.Fatalf("NewReader() error = %v", err)
		}
		if _, ok := got.(*stdioReader); !ok {
			t.Errorf("expected *stdioReader, got %T", got)
		}
	})
	t.Run("unknown", func(t *testing.T) {
		_, err := NewReader("curses", "", nil, strings.NewReader(""), io.Discard, nil)
		var internalErr *errs.InternalError
		if !errors.As(err, &internalErr) {
			t.Errorf("expected InternalError, got %v", err)
		}
	})
}
