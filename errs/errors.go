package errs

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

type ErrType string

const (
	INTERNAL_ERROR  ErrType = "INTERNAL ERROR"
	BAD_INPUT_ERROR ErrType = "BAD INPUT ERROR"
	LINK_ERROR      ErrType = "LINK ERROR"
	UNKNOWN_ERROR   ErrType = "UNKNOWN ERROR"
)

// 内部的なエラー (clangの起動失敗、一時ファイル操作の失敗など)
type InternalError struct {
	message string
	wrapped error
}

func NewInternalError(message string) *InternalError {
	return &InternalError{
		message: message,
	}
}

func (e *InternalError) Wrap(err error) error {
	e.wrapped = err
	return e
}

func (e *InternalError) Error() string {
	if e.wrapped == nil {
		return e.message
	}
	return e.message + ": " + e.wrapped.Error()
}

func (e *InternalError) Unwrap() error {
	return e.wrapped
}

// ユーザー起因の無効な構文・コンパイルエラー
type BadInputError struct {
	message string
	wrapped error
}

func NewBadInputError(message string) *BadInputError {
	return &BadInputError{
		message: message,
	}
}

func (e *BadInputError) Wrap(err error) error {
	e.wrapped = err
	return e
}

func (e *BadInputError) Error() string {
	if e.wrapped == nil {
		return e.message
	}
	return e.message + ": " + e.wrapped.Error()
}

func (e *BadInputError) Unwrap() error {
	return e.wrapped
}

// 実行イメージへのリンクに失敗したエラー
// ソース合成が正しければ起こらないため、不変条件違反として報告する
type LinkError struct {
	message string
	wrapped error
}

func NewLinkError(message string) *LinkError {
	return &LinkError{
		message: message,
	}
}

func (e *LinkError) Wrap(err error) error {
	e.wrapped = err
	return e
}

func (e *LinkError) Error() string {
	if e.wrapped == nil {
		return e.message
	}
	return e.message + ": " + e.wrapped.Error()
}

func (e *LinkError) Unwrap() error {
	return e.wrapped
}

// 入力が構文的に未完了であることを表す
// 表示はせず、続きの入力を待つための合図として使う
type IncompleteInputError struct {
	IndentLevel int
}

func NewIncompleteInputError(indentLevel int) *IncompleteInputError {
	return &IncompleteInputError{IndentLevel: indentLevel}
}

func (e *IncompleteInputError) Error() string {
	return "incomplete input"
}

// IsIncomplete はerrが入力未完了を表すかどうかを返す
func IsIncomplete(err error) bool {
	var incompleteErr *IncompleteInputError
	return errors.As(err, &incompleteErr)
}

var output io.Writer = os.Stderr

// SetOutput はHandleErrorの出力先を差し替える
func SetOutput(w io.Writer) {
	output = w
}

var errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

// エラーを処理する関数
func HandleError(err error) {
	var internalErr *InternalError
	var badInputErr *BadInputError
	var linkErr *LinkError
	var errType ErrType
	switch {
	case errors.As(err, &linkErr):
		errType = LINK_ERROR
	case errors.As(err, &badInputErr):
		errType = BAD_INPUT_ERROR
	case errors.As(err, &internalErr):
		errType = INTERNAL_ERROR
	default:
		errType = UNKNOWN_ERROR
	}
	style := lipgloss.NewRenderer(output).NewStyle().Inherit(errStyle)
	fmt.Fprintf(output, "\n%s\n\n", style.Render(fmt.Sprintf("[%s]\n %s", errType, err.Error())))
}

// PrintNote はエラーに続く補足をHandleErrorと同じ出力先に書く
func PrintNote(note string) {
	fmt.Fprintln(output, note)
}
