package diagnostics

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MainFile はclangが標準入力から読んだソースに付けるファイル名
const MainFile = "<stdin>"

// Severity は診断の重大度を表す
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityFatal   Severity = "fatal error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Diagnostic はコンパイラが出力した診断一件を表す
type Diagnostic struct {
	File     string
	Line     int
	Col      int
	Severity Severity
	Message  string
}

// IsError は診断がエラーかどうかを返す
func (d Diagnostic) IsError() bool {
	return d.Severity == SeverityError || d.Severity == SeverityFatal
}

var diagLinePattern = regexp.MustCompile(`^(.+?):(\d+):(\d+): (fatal error|error|warning|note): (.*)$`)

// Parse はclang/gcc形式の診断出力を解析する
// "N errors generated." などの位置を持たない行は読み飛ばす
func Parse(stderr []byte) []Diagnostic {
	var diags []Diagnostic
	for _, line := range strings.Split(string(stderr), "\n") {
		matches := diagLinePattern.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if matches == nil {
			continue
		}
		lineNo, err := strconv.Atoi(matches[2])
		if err != nil {
			continue
		}
		col, err := strconv.Atoi(matches[3])
		if err != nil {
			continue
		}
		diags = append(diags, Diagnostic{
			File:     matches[1],
			Line:     lineNo,
			Col:      col,
			Severity: Severity(matches[4]),
			Message:  matches[5],
		})
	}
	return diags
}

// HasErrors は診断にエラーが含まれるかどうかを返す
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.IsError() {
			return true
		}
	}
	return false
}

// Format は診断を表示用に整形する
// baseLineより後ろのMainFile上の診断は、ユーザー入力の先頭を1行目とする位置に付け替える
func Format(diags []Diagnostic, baseLine int) string {
	var formattedLines []string
	var errCount int
	for _, d := range diags {
		location := fmt.Sprintf("%s:%d:%d", d.File, d.Line, d.Col)
		if d.File == MainFile {
			if d.Line >= baseLine {
				location = fmt.Sprintf("input:%d:%d", d.Line-baseLine+1, d.Col)
			} else {
				location = fmt.Sprintf("session:%d:%d", d.Line, d.Col)
			}
		}
		if d.IsError() {
			errCount++
		}
		formattedLines = append(formattedLines, fmt.Sprintf("%s: %s: %s", location, d.Severity, d.Message))
	}
	return fmt.Sprintf("\n%d errors found\n\n%s\n", errCount, strings.Join(formattedLines, "\n"))
}

// LineOf はsrc中のoffsetが何行目(1始まり)かを返す
func LineOf(src string, offset int) int {
	if offset > len(src) {
		offset = len(src)
	}
	return strings.Count(src[:offset], "\n") + 1
}
