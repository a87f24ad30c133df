package srcgen

import (
	"context"
	"strings"

	"github.com/kakkky/cnsole/analyzer"
	"github.com/kakkky/cnsole/diagnostics"
)

func offset(i int) *int {
	return &i
}

// spanOf はsrc中で最後に現れるtextを範囲とするノードを作る
// 文脈のソースより後ろにある入力を指すため、最後の出現を使う
func spanOf(src, text, kind string, inner ...*analyzer.Node) *analyzer.Node {
	begin := strings.LastIndex(src, text)
	if begin < 0 {
		panic("text not found: " + text)
	}
	return &analyzer.Node{
		Kind: kind,
		Range: &analyzer.Range{
			Begin: &analyzer.Loc{Offset: offset(begin), File: diagnostics.MainFile, TokLen: 1},
			End:   &analyzer.Loc{Offset: offset(begin + len(text) - 1), File: diagnostics.MainFile, TokLen: 1},
		},
		Inner: inner,
	}
}

func expr(n *analyzer.Node, qualType string) *analyzer.Node {
	n.Type = &analyzer.Type{QualType: qualType}
	n.ValueCategory = "prvalue"
	return n
}

func varDecl(n *analyzer.Node, name, qualType string, withInit bool, inner ...*analyzer.Node) *analyzer.Node {
	n.Name = name
	n.Type = &analyzer.Type{QualType: qualType}
	if withInit {
		n.Init = "c"
	}
	n.Inner = inner
	return n
}

// spanAfter はsrc中で最後に現れるafterの直後にあるtextを範囲とするノードを作る
func spanAfter(src, after, text, kind string) *analyzer.Node {
	begin := strings.LastIndex(src, after) + len(after)
	if begin < len(after) || !strings.HasPrefix(src[begin:], text) {
		panic("text not found: " + text)
	}
	return &analyzer.Node{
		Kind: kind,
		Range: &analyzer.Range{
			Begin: &analyzer.Loc{Offset: offset(begin), File: diagnostics.MainFile, TokLen: 1},
			End:   &analyzer.Loc{Offset: offset(begin + len(text) - 1), File: diagnostics.MainFile, TokLen: 1},
		},
	}
}

func refTo(kind, name string) *analyzer.Node {
	return &analyzer.Node{Kind: "DeclRefExpr", ValueCategory: "lvalue", ReferencedDecl: &analyzer.Node{Kind: kind, Name: name}}
}

// locateResult は__cnsole_locateの本体に一つの文を持つ解析結果を作る
func locateResult(src string, stmt func(src string) *analyzer.Node) *analyzer.Result {
	body := spanOf(src, "{\n", "CompoundStmt", stmt(src))
	fn := spanOf(src, "void "+LocateFuncName, "FunctionDecl", body)
	fn.Name = LocateFuncName
	return &analyzer.Result{Nodes: []*analyzer.Node{fn}}
}

func parseFunc(build func(src string) *analyzer.Result) func(context.Context, string, string) (*analyzer.Result, error) {
	return func(_ context.Context, src, _ string) (*analyzer.Result, error) {
		return build(src), nil
	}
}

// macroSpan はsrc中で最後に現れるマクロ名nameから始まり、そのマクロの展開の中で終わるノードを作る
// clangは展開の中の位置をspellingLocとexpansionLocの組で出力し、expansionLocはマクロ名を指す
func macroSpan(src, name, kind string, inner ...*analyzer.Node) *analyzer.Node {
	pos := strings.LastIndex(src, name)
	if pos < 0 {
		panic("macro not found: " + name)
	}
	loc := func() *analyzer.Loc {
		return &analyzer.Loc{
			SpellingLoc:  &analyzer.Loc{Offset: offset(0), File: "<scratch space>", Line: 1, Col: 1, TokLen: 1},
			ExpansionLoc: &analyzer.Loc{Offset: offset(pos), File: diagnostics.MainFile, TokLen: len(name)},
		}
	}
	return &analyzer.Node{
		Kind:  kind,
		Range: &analyzer.Range{Begin: loc(), End: loc()},
		Inner: inner,
	}
}
