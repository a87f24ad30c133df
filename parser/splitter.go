package parser

import (
	"context"
	"log/slog"
	"strings"
	"unicode"

	"github.com/kakkky/cnsole/analyzer"
	"github.com/kakkky/cnsole/diagnostics"
	"github.com/kakkky/cnsole/errs"
)

// SplitFuncName は入力を文に分割するために包む関数の名前
const SplitFuncName = "__cnsole_split"

const splitPrologue = "void " + SplitFuncName + "(void) {\n"

// Splitter は一つの入力をトップレベルの文に分割する
type Splitter struct {
	analyzer analyzer.Analyzer
	logger   *slog.Logger
}

// NewSplitter はSplitterのインスタンスを生成する
func NewSplitter(a analyzer.Analyzer, logger *slog.Logger) *Splitter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Splitter{
		analyzer: a,
		logger:   logger,
	}
}

// Split は入力を関数本体として解析し、本体直下の文ごとのテキストを返す
// 文が一つだけの場合は入力をそのまま返す
func (s *Splitter) Split(ctx context.Context, contextSource, input string) ([]string, error) {
	src := contextSource + splitPrologue
	pos := len(src)
	src += input + "\n}\n"

	result, err := s.analyzer.Parse(ctx, src, SplitFuncName)
	if err != nil {
		return nil, err
	}
	if result.HasErrors() {
		return nil, errs.NewBadInputError("failed to parse input" + diagnostics.Format(result.Diagnostics, diagnostics.LineOf(src, pos)))
	}
	fn := result.FindFunc(SplitFuncName)
	if fn == nil {
		return nil, errs.NewInternalError("split function not found in analyzer output")
	}

	var stmts []string
	for _, stmt := range fn.Body().Inner {
		if stmt.Kind == "NullStmt" {
			continue
		}
		begin, ok := stmt.Begin()
		if !ok || begin < pos {
			continue
		}
		end, ok := stmt.SourceEnd(src)
		if !ok {
			continue
		}
		end = extendToSemicolon(src, end)
		stmts = append(stmts, strings.TrimSpace(src[begin:end]))
	}
	s.logger.Debug("split input", "statements", len(stmts))

	switch len(stmts) {
	case 0:
		return nil, errs.NewBadInputError("no statement found in input")
	case 1:
		return []string{input}, nil
	}
	return stmts, nil
}

// extendToSemicolon は文の終端の後ろに;があれば、それを含む位置を返す
func extendToSemicolon(src string, end int) int {
	i := end
	for i < len(src) && unicode.IsSpace(rune(src[i])) {
		i++
	}
	if i < len(src) && src[i] == ';' {
		return i + 1
	}
	return end
}
