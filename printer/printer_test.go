package printer

import (
	"bytes"
	"runtime"
	"strings"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
	"github.com/kakkky/cnsole/executor"
	"github.com/kakkky/cnsole/types"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		result   *executor.Result
		expected string
		printed  bool
	}{
		{
			name:   "void",
			result: &executor.Result{Type: "void", Class: types.Void},
		},
		{
			name:     "signed integer",
			result:   &executor.Result{Type: "int", Class: types.Int32, Int: -5},
			expected: "=> (int) -5",
			printed:  true,
		},
		{
			name:     "unsigned integer through typedef",
			result:   &executor.Result{Type: "size_t", Class: types.Uint64, Uint: 18446744073709551615},
			expected: "=> (size_t) 18446744073709551615",
			printed:  true,
		},
		{
			name:     "bool",
			result:   &executor.Result{Type: "_Bool", Class: types.Bool, Uint: 1},
			expected: "=> (_Bool) 1",
			printed:  true,
		},
		{
			name:     "enum",
			result:   &executor.Result{Type: "enum color", Class: types.Int32, Int: 2},
			expected: "=> (enum color) 2",
			printed:  true,
		},
		{
			name:     "double",
			result:   &executor.Result{Type: "double", Class: types.Float64, Float: 1.5},
			expected: "=> (double) 1.500000",
			printed:  true,
		},
		{
			name:     "float",
			result:   &executor.Result{Type: "float", Class: types.Float32, Float: 0.25},
			expected: "=> (float) 0.250000",
			printed:  true,
		},
		{
			name:     "pointer",
			result:   &executor.Result{Type: "int *", Class: types.Pointer, Ptr: 0x7ffc1000},
			expected: "=> (int *) 0x7ffc1000",
			printed:  true,
		},
		{
			name:     "null char pointer",
			result:   &executor.Result{Type: "char *", Class: types.CharPointer},
			expected: "=> (char *) 0x0",
			printed:  true,
		},
		{
			name:     "function designator",
			result:   &executor.Result{Type: "int (int, int)", Class: types.Pointer, Ptr: 0x401000},
			expected: "=> (int (*)(int, int)) 0x401000",
			printed:  true,
		},
		{
			name:     "function pointer",
			result:   &executor.Result{Type: "void (*)(void)", Class: types.Pointer, Ptr: 0x401000},
			expected: "=> (void (*)(void)) 0x401000",
			printed:  true,
		},
		{
			name:     "struct",
			result:   &executor.Result{Type: "struct point", Class: types.NonPrintable},
			expected: "=> (struct point) <non-printable value>",
			printed:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, printed := Format(tt.result)
			if printed != tt.printed {
				t.Fatalf("Format() printed = %v, want %v", printed, tt.printed)
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPrinter_Print(t *testing.T) {
	var buf bytes.Buffer
	sut := NewPrinter(&buf)

	sut.Print(&executor.Result{Type: "void", Class: types.Void})
	sut.Print(&executor.Result{Type: "int", Class: types.Int32, Int: 3})

	// bytes.Bufferは端末ではないため装飾されない
	if diff := cmp.Diff("=> (int) 3\n", buf.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestIsPrintable(t *testing.T) {
	for _, b := range []byte("az AZ09~!\t\n") {
		if !isPrintable(b) {
			t.Errorf("isPrintable(%q) = false", b)
		}
	}
	for _, b := range []byte{0x00, 0x01, 0x1b, 0x7f, 0x80, 0xff} {
		if isPrintable(b) {
			t.Errorf("isPrintable(%#x) = true", b)
		}
	}
}

func TestReadCString(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected string
		ok       bool
	}{
		{name: "nul terminated", data: []byte("hello\x00"), expected: "hello", ok: true},
		{name: "empty string", data: []byte{0}, expected: "", ok: true},
		{name: "non-printable byte", data: []byte("he\x01lo\x00")},
		{name: "no terminator within scan limit", data: []byte(strings.Repeat("a", maxCStringScan) + "\x00")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := readCString(uintptr(unsafe.Pointer(&tt.data[0])))
			runtime.KeepAlive(tt.data)
			if ok != tt.ok || got != tt.expected {
				t.Errorf("readCString() = %q, %v; want %q, %v", got, ok, tt.expected, tt.ok)
			}
		})
	}

	t.Run("null pointer", func(t *testing.T) {
		if _, ok := readCString(0); ok {
			t.Errorf("readCString(0) should not be a string")
		}
	})
}
