package parser

import (
	"context"
	"log/slog"
	"strings"
	"unicode"

	"github.com/kakkky/cnsole/analyzer"
	"github.com/kakkky/cnsole/errs"
	"github.com/kakkky/cnsole/types"
)

// InputType は入力の分類を表す
// 入力が未完了の場合はerrs.IncompleteInputErrorで表す
type InputType int

const (
	// Declaration はファイルスコープに置く関数の宣言・定義を含む入力
	Declaration InputType = iota
	// Statement は関数本体の中で実行する入力
	Statement
	// Preprocessor はプリプロセッサディレクティブ
	Preprocessor
)

func (it InputType) String() string {
	switch it {
	case Declaration:
		return "declaration"
	case Statement:
		return "statement"
	case Preprocessor:
		return "preprocessor"
	}
	return "unknown"
}

// Classification は入力の分類結果を表す
type Classification struct {
	Type InputType
	// Text はコンパイルに使う入力
	// 文の場合は末尾の;を補い、宣言の場合は先頭のstaticを取り除いたもの
	Text string
	// Lines はDeclarationを受理したときに後続のターンへ残す宣言
	Lines []types.CodeLine
	// Decls はDeclarationで宣言された名前
	Decls []types.Decl
}

// Classifier は入力が完結しているか、どの種類の入力かを判定する
type Classifier struct {
	analyzer analyzer.Analyzer
	logger   *slog.Logger
}

// NewClassifier はClassifierのインスタンスを生成する
func NewClassifier(a analyzer.Analyzer, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Classifier{
		analyzer: a,
		logger:   logger,
	}
}

// Classify はバッファに溜まった入力を分類する
// contextSourceはこれまでに受理された宣言とディレクティブからなるソース
func (c *Classifier) Classify(ctx context.Context, contextSource, buffer string) (*Classification, error) {
	text := strings.TrimSpace(buffer)
	// 行末の\は次の行に続く
	if strings.HasSuffix(text, "\\") {
		return nil, errs.NewIncompleteInputError(1)
	}

	st, err := analyzeTokens(text)
	if err != nil {
		return nil, err
	}
	if indent, ok := st.incomplete(); ok {
		c.logger.Debug("input is incomplete", "indent", indent)
		return nil, errs.NewIncompleteInputError(indent)
	}
	if strings.HasPrefix(text, "#") {
		return &Classification{Type: Preprocessor, Text: text}, nil
	}
	if st.endsStatement() {
		return c.classifyTopLevel(ctx, contextSource, text)
	}
	// "x" や "f(1)" のように;だけが足りない入力は文として補う
	return &Classification{Type: Statement, Text: text + ";"}, nil
}

// classifyTopLevel は入力をファイルスコープで解析し、関数の宣言・定義を含むかどうかを調べる
func (c *Classifier) classifyTopLevel(ctx context.Context, contextSource, text string) (*Classification, error) {
	src := contextSource + text + "\n"
	result, err := c.analyzer.Parse(ctx, src, "")
	if err != nil {
		return nil, err
	}

	pos := len(contextSource)
	var newDecls []*analyzer.Node
	for _, decl := range result.TopLevelDecls() {
		if decl.IsImplicit || !decl.InMainFile() {
			continue
		}
		if begin, ok := decl.Begin(); !ok || begin < pos {
			continue
		}
		newDecls = append(newDecls, decl)
	}

	var hasFunc, hasDefinition bool
	for _, decl := range newDecls {
		if decl.Kind != "FunctionDecl" {
			continue
		}
		hasFunc = true
		if decl.Body() != nil {
			hasDefinition = true
		}
	}
	// 定義を含む場合はエラーがあっても宣言として扱い、コンパイル時に診断を表示する
	if !hasDefinition && (!hasFunc || result.HasErrors()) {
		c.logger.Debug("treating input as statement")
		return &Classification{Type: Statement, Text: text}, nil
	}

	c.logger.Debug("treating input as top-level", "decls", len(newDecls))
	cls := &Classification{
		Type: Declaration,
		Text: stripStatic(text),
	}
	for _, decl := range newDecls {
		switch decl.Kind {
		case "FunctionDecl":
			proto, ok := prototype(src, decl)
			if !ok {
				continue
			}
			kind := types.FuncProto
			if decl.Body() != nil {
				kind = types.FuncDef
			}
			cls.Lines = append(cls.Lines, types.CodeLine{Text: proto, Type: types.DeclLine})
			cls.Decls = append(cls.Decls, types.Decl{Name: types.DeclName(decl.Name), Kind: kind, Type: decl.QualType()})
		case "VarDecl":
			if decl.StorageClass == "static" {
				continue
			}
			declarator, ok := types.Declarator(decl.QualType(), types.DeclName(decl.Name))
			if !ok {
				c.logger.Debug("skipping variable of anonymous type", "name", decl.Name)
				continue
			}
			cls.Lines = append(cls.Lines, types.CodeLine{Text: "extern " + declarator + ";", Type: types.DeclLine})
			cls.Decls = append(cls.Decls, types.Decl{Name: types.DeclName(decl.Name), Kind: types.VarDecl, Type: decl.QualType()})
		case "TypedefDecl", "RecordDecl", "EnumDecl":
			if decl.Kind == "RecordDecl" && !decl.CompleteDefinition {
				continue
			}
			if containedInOther(decl, newDecls) {
				continue
			}
			if typeText, ok := decl.Source(src); ok {
				cls.Lines = append(cls.Lines, types.CodeLine{Text: typeText + ";", Type: types.DeclLine})
			}
		}
	}
	return cls, nil
}

// prototype は関数の宣言・定義からプロトタイプ宣言の文字列を作る
func prototype(src string, fn *analyzer.Node) (string, bool) {
	begin, ok := fn.Begin()
	if !ok {
		return "", false
	}
	end, ok := fn.End()
	if body := fn.Body(); body != nil {
		end, ok = body.Begin()
	}
	if !ok || end > len(src) || begin > end {
		return "", false
	}
	return stripStatic(strings.TrimSpace(src[begin:end])) + ";", true
}

// containedInOther は型の宣言が他の宣言の一部として書かれているかどうかを返す
// (例: typedef struct P {...} P; のstruct P)
func containedInOther(node *analyzer.Node, decls []*analyzer.Node) bool {
	begin, ok := node.Begin()
	if !ok {
		return false
	}
	end, _ := node.End()
	for _, other := range decls {
		if other == node || other.Kind == "VarDecl" {
			continue
		}
		otherBegin, ok := other.Begin()
		if !ok {
			continue
		}
		otherEnd, _ := other.End()
		if otherBegin <= begin && end <= otherEnd && (otherBegin != begin || otherEnd != end) {
			return true
		}
	}
	return false
}

// stripStatic は先頭のstaticを取り除く
// モジュールの外から関数を呼べるようにするため
func stripStatic(text string) string {
	rest, ok := strings.CutPrefix(text, "static")
	if !ok || rest == "" || !unicode.IsSpace(rune(rest[0])) {
		return text
	}
	return strings.TrimLeftFunc(rest, unicode.IsSpace)
}
