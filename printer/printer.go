package printer

import (
	"fmt"
	"io"
	"runtime/debug"
	"strconv"
	"strings"
	"unsafe"

	"github.com/charmbracelet/lipgloss"
	"github.com/kakkky/cnsole/executor"
	"github.com/kakkky/cnsole/types"
)

// maxCStringScan は文字列として表示するか判定するときに読む最大バイト数
const maxCStringScan = 100

// Printer はエントリ関数の結果を "=> (型) 値" の形式で出力する
type Printer struct {
	w     io.Writer
	style lipgloss.Style
}

// NewPrinter はPrinterのインスタンスを生成する
// 出力先が端末でなければ装飾なしで出力する
func NewPrinter(w io.Writer) *Printer {
	renderer := lipgloss.NewRenderer(w)
	return &Printer{
		w:     w,
		style: renderer.NewStyle().Foreground(lipgloss.Color("42")),
	}
}

// Print は結果を出力する
// void型の結果は何も出力しない
func (p *Printer) Print(result *executor.Result) {
	line, ok := Format(result)
	if !ok {
		return
	}
	fmt.Fprintln(p.w, p.style.Render(line))
}

// Format は結果を表示用の文字列にする
func Format(result *executor.Result) (string, bool) {
	if result == nil || result.Class == types.Void {
		return "", false
	}
	typeName := displayType(result.Type, result.Class)
	var value string
	switch {
	case result.Class == types.NonPrintable:
		value = "<non-printable value>"
	case result.Class.IsSigned():
		value = strconv.FormatInt(result.Int, 10)
	case result.Class.IsInteger():
		value = strconv.FormatUint(result.Uint, 10)
	case result.Class == types.Float32, result.Class == types.Float64:
		value = fmt.Sprintf("%f", result.Float)
	case result.Class == types.CharPointer:
		if s, ok := readCString(result.Ptr); ok {
			value = strconv.Quote(s)
		} else {
			value = formatAddress(result.Ptr)
		}
	default:
		value = formatAddress(result.Ptr)
	}
	return fmt.Sprintf("=> (%s) %s", typeName, value), true
}

func formatAddress(ptr uintptr) string {
	return fmt.Sprintf("%#x", ptr)
}

// displayType は関数指示子の型を関数ポインタの型として表示する
func displayType(qt types.QualType, class types.ValueClass) string {
	t := string(qt)
	if class != types.Pointer || !strings.HasSuffix(t, ")") || strings.Contains(t, "(*") {
		return t
	}
	if i := strings.Index(t, "("); i > 0 {
		return strings.TrimSpace(t[:i]) + " (*)" + t[i:]
	}
	return t
}

// readCString はptrから最大maxCStringScanバイトを読み、表示可能な文字だけでNUL終端されていれば文字列を返す
// 読めないアドレスに触れた場合はpanicとして回収し、文字列ではないとみなす
func readCString(ptr uintptr) (s string, ok bool) {
	if ptr == 0 {
		return "", false
	}
	defer debug.SetPanicOnFault(debug.SetPanicOnFault(true))
	defer func() {
		if r := recover(); r != nil {
			s, ok = "", false
		}
	}()

	// ptrはCのメモリを指し、GCの管理外なのでポインタとして読み替えてよい
	base := *(*unsafe.Pointer)(unsafe.Pointer(&ptr))
	var buf []byte
	for i := 0; i < maxCStringScan; i++ {
		b := *(*byte)(unsafe.Add(base, i))
		if b == 0 {
			return string(buf), true
		}
		if !isPrintable(b) {
			return "", false
		}
		buf = append(buf, b)
	}
	return "", false
}

// isPrintable はisgraphまたはisspaceに当たる文字かどうかを返す
func isPrintable(b byte) bool {
	if b > ' ' && b < 0x7f {
		return true
	}
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
