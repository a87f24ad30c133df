package parser

import (
	"strings"
	"text/scanner"

	"github.com/kakkky/cnsole/errs"
)

type token struct {
	text   string
	offset int
}

// frame は開き括弧と、その直前のトークンを表す
type frame struct {
	open    string
	prev    string
	doWhile bool
}

// tokenState は入力を字句解析した結果を表す
type tokenState struct {
	stack        []frame
	indent       int
	conditionals int
	count        int
	last         token
	prev         token
	tokWasDo     bool
	whileAfterDo bool
	headerOpen   bool
	commentOpen  bool
}

var closers = map[string]string{
	")": "(",
	"]": "[",
	"}": "{",
}

// danglingTokens は入力の末尾にあると続きが必要になるトークン
var danglingTokens = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "%": true,
	"=": true, "<": true, ">": true, "!": true, "~": true,
	"&": true, "|": true, "^": true, "?": true, ":": true,
	",": true, ".": true, "else": true, "do": true,
}

func isControlKeyword(text string) bool {
	switch text {
	case "if", "while", "for", "switch":
		return true
	}
	return false
}

// analyzeTokens は括弧の対応、プリプロセッサの条件分岐、制御文の本体の有無を調べる
func analyzeTokens(input string) (*tokenState, error) {
	code, conditionals, err := stripDirectives(input)
	if err != nil {
		return nil, err
	}
	st := &tokenState{conditionals: conditionals}

	var s scanner.Scanner
	s.Init(strings.NewReader(code))
	s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats | scanner.ScanChars | scanner.ScanStrings | scanner.ScanComments | scanner.SkipComments
	// 文字列中の未知のエスケープなどはclangに任せる
	s.Error = func(_ *scanner.Scanner, msg string) {
		if msg == "comment not terminated" {
			st.commentOpen = true
		}
	}

	for tok := s.Scan(); tok != scanner.EOF; tok = s.Scan() {
		cur := token{text: s.TokenText(), offset: s.Position.Offset}
		st.headerOpen = false
		switch cur.text {
		case "(", "[", "{":
			f := frame{open: cur.text, prev: st.last.text}
			if cur.text == "(" && st.last.text == "while" && st.whileAfterDo {
				f.doWhile = true
			}
			if cur.text == "{" {
				st.indent++
			}
			st.stack = append(st.stack, f)
		case ")", "]", "}":
			if len(st.stack) == 0 || st.stack[len(st.stack)-1].open != closers[cur.text] {
				return nil, errs.NewBadInputError("unmatched '" + cur.text + "'")
			}
			top := st.stack[len(st.stack)-1]
			st.stack = st.stack[:len(st.stack)-1]
			st.tokWasDo = false
			switch cur.text {
			case "}":
				st.tokWasDo = top.prev == "do"
				st.indent--
			case ")":
				st.headerOpen = !top.doWhile && isControlKeyword(top.prev)
			}
		case "while":
			st.whileAfterDo = st.last.text == "}" && st.tokWasDo
		}
		st.prev, st.last = st.last, cur
		st.count++
	}
	return st, nil
}

// incomplete は続きの入力が必要かどうかと、そのときのインデントの深さを返す
func (st *tokenState) incomplete() (int, bool) {
	switch {
	case len(st.stack) > 0, st.commentOpen, st.conditionals > 0:
		return st.indent, true
	case st.headerOpen:
		return st.indent + 1, true
	case st.last.text == "}" && st.tokWasDo:
		return st.indent, true
	case danglingTokens[st.last.text] && !st.endsWithPostfix():
		return st.indent, true
	}
	return 0, false
}

// endsWithPostfix は入力が後置インクリメント・デクリメントで終わるかどうかを返す
func (st *tokenState) endsWithPostfix() bool {
	if st.last.text != "+" && st.last.text != "-" {
		return false
	}
	return st.prev.text == st.last.text && st.prev.offset+1 == st.last.offset
}

// endsStatement は入力が文や宣言の終わりで終わっているかどうかを返す
func (st *tokenState) endsStatement() bool {
	return st.count == 0 || st.last.text == ";" || (st.last.text == "}" && !st.tokWasDo)
}

// stripDirectives はプリプロセッサディレクティブの行を空行に置き換え、閉じられていない条件分岐の数を返す
func stripDirectives(input string) (string, int, error) {
	lines := strings.Split(input, "\n")
	var conditionals int
	var continued bool
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !continued && !strings.HasPrefix(trimmed, "#") {
			continue
		}
		if !continued {
			fields := strings.Fields(strings.TrimPrefix(trimmed, "#"))
			if len(fields) > 0 {
				switch fields[0] {
				case "if", "ifdef", "ifndef":
					conditionals++
				case "endif":
					if conditionals == 0 {
						return "", 0, errs.NewBadInputError("#endif without #if")
					}
					conditionals--
				}
			}
		}
		continued = strings.HasSuffix(trimmed, "\\")
		lines[i] = ""
	}
	return strings.Join(lines, "\n"), conditionals, nil
}
