package parser

import (
	"strings"

	"github.com/kakkky/cnsole/analyzer"
	"github.com/kakkky/cnsole/diagnostics"
)

func offset(i int) *int {
	return &i
}

// spanOf はsrc中で最初に現れるtextを範囲とするノードを作る
func spanOf(src, text, kind string, inner ...*analyzer.Node) *analyzer.Node {
	begin := strings.Index(src, text)
	if begin < 0 {
		panic("text not found: " + text)
	}
	return spanAt(begin, begin+len(text), kind, inner...)
}

func spanAt(begin, end int, kind string, inner ...*analyzer.Node) *analyzer.Node {
	return &analyzer.Node{
		Kind: kind,
		Range: &analyzer.Range{
			Begin: &analyzer.Loc{Offset: offset(begin), File: diagnostics.MainFile, TokLen: 1},
			End:   &analyzer.Loc{Offset: offset(end - 1), File: diagnostics.MainFile, TokLen: 1},
		},
		Inner: inner,
	}
}

func named(n *analyzer.Node, name, qualType string) *analyzer.Node {
	n.Name = name
	n.Type = &analyzer.Type{QualType: qualType}
	return n
}

// endInMacro はノードの終端を、src中で最初に現れるマクロ名nameの展開の中に置き換える
func endInMacro(n *analyzer.Node, src, name string) *analyzer.Node {
	pos := strings.Index(src, name)
	if pos < 0 {
		panic("macro not found: " + name)
	}
	n.Range.End = &analyzer.Loc{
		SpellingLoc:  &analyzer.Loc{Offset: offset(0), File: "<scratch space>", Line: 1, Col: 1, TokLen: 1},
		ExpansionLoc: &analyzer.Loc{Offset: offset(pos), File: diagnostics.MainFile, TokLen: len(name)},
	}
	return n
}
