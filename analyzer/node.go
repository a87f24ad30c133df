package analyzer

import (
	"strings"

	"github.com/kakkky/cnsole/diagnostics"
	"github.com/kakkky/cnsole/types"
)

// Node はclangの-ast-dump=jsonが出力するASTノードのうち、cnsoleが使う属性を表す
type Node struct {
	ID                 string  `json:"id"`
	Kind               string  `json:"kind"`
	Name               string  `json:"name,omitempty"`
	Loc                *Loc    `json:"loc,omitempty"`
	Range              *Range  `json:"range,omitempty"`
	Type               *Type   `json:"type,omitempty"`
	ValueCategory      string  `json:"valueCategory,omitempty"`
	StorageClass       string  `json:"storageClass,omitempty"`
	Init               string  `json:"init,omitempty"`
	Opcode             string  `json:"opcode,omitempty"`
	CastKind           string  `json:"castKind,omitempty"`
	IsImplicit         bool    `json:"isImplicit,omitempty"`
	CompleteDefinition bool    `json:"completeDefinition,omitempty"`
	ReferencedDecl     *Node   `json:"referencedDecl,omitempty"`
	Inner              []*Node `json:"inner,omitempty"`
}

// Loc はソース位置を表す
// マクロ展開を含む位置はspellingLocとexpansionLocの組で出力される
type Loc struct {
	Offset       *int   `json:"offset,omitempty"`
	File         string `json:"file,omitempty"`
	Line         int    `json:"line,omitempty"`
	Col          int    `json:"col,omitempty"`
	TokLen       int    `json:"tokLen,omitempty"`
	SpellingLoc  *Loc   `json:"spellingLoc,omitempty"`
	ExpansionLoc *Loc   `json:"expansionLoc,omitempty"`
}

// Range はソース範囲を表す
type Range struct {
	Begin *Loc `json:"begin,omitempty"`
	End   *Loc `json:"end,omitempty"`
}

// Type はノードの型を表す
type Type struct {
	QualType          string `json:"qualType"`
	DesugaredQualType string `json:"desugaredQualType,omitempty"`
}

// resolved はマクロ展開を含む位置について展開位置を返す
func (l *Loc) resolved() *Loc {
	if l == nil {
		return nil
	}
	if l.ExpansionLoc != nil {
		return l.ExpansionLoc
	}
	return l
}

func (l *Loc) valid() bool {
	r := l.resolved()
	return r != nil && r.Offset != nil
}

// IsExpr はノードが式かどうかを返す
// clangは式ノードにだけvalueCategoryを出力する
func (n *Node) IsExpr() bool {
	return n.ValueCategory != ""
}

// QualType はノードの型名を返す
func (n *Node) QualType() types.QualType {
	if n.Type == nil {
		return ""
	}
	return types.QualType(n.Type.QualType)
}

// DesugaredType はtypedefを剥がした型名を返す
func (n *Node) DesugaredType() types.QualType {
	if n.Type == nil {
		return ""
	}
	if n.Type.DesugaredQualType != "" {
		return types.QualType(n.Type.DesugaredQualType)
	}
	return types.QualType(n.Type.QualType)
}

// Begin はノードの開始オフセットを返す
func (n *Node) Begin() (int, bool) {
	if n.Range == nil || !n.Range.Begin.valid() {
		return 0, false
	}
	return *n.Range.Begin.resolved().Offset, true
}

// End はノードの終端オフセット(最後のトークンの直後)を返す
func (n *Node) End() (int, bool) {
	if n.Range == nil || !n.Range.End.valid() {
		return 0, false
	}
	end := n.Range.End.resolved()
	return *end.Offset + end.TokLen, true
}

// SourceEnd はsrc上でのノードの終端オフセットを返す
// 終端がマクロ展開の中にある場合、clangは展開位置としてマクロ名を指すため、関数形式マクロの引数の括弧まで広げる
func (n *Node) SourceEnd(src string) (int, bool) {
	end, ok := n.End()
	if !ok || end > len(src) {
		return 0, false
	}
	if n.Range.End.ExpansionLoc != nil {
		end = skipMacroArgs(src, end)
	}
	return end, true
}

// skipMacroArgs はマクロ名の直後に続く引数の括弧を読み飛ばした位置を返す
// 括弧が閉じていない場合はendをそのまま返す
func skipMacroArgs(src string, end int) int {
	i := end
	for i < len(src) && (src[i] == ' ' || src[i] == '\t' || src[i] == '\n') {
		i++
	}
	if i >= len(src) || src[i] != '(' {
		return end
	}
	depth := 0
	var quote byte
	for ; i < len(src); i++ {
		c := src[i]
		if quote != 0 {
			switch c {
			case '\\':
				i++
			case quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return end
}

// InMainFile はノードの開始位置が標準入力のソース上にあるかどうかを返す
func (n *Node) InMainFile() bool {
	if n.Range == nil || !n.Range.Begin.valid() {
		return false
	}
	return n.Range.Begin.resolved().File == diagnostics.MainFile
}

// Source はノードが覆うソース文字列を返す
func (n *Node) Source(src string) (string, bool) {
	begin, ok := n.Begin()
	if !ok {
		return "", false
	}
	end, ok := n.SourceEnd(src)
	if !ok || begin > end {
		return "", false
	}
	return src[begin:end], true
}

// Children は指定した種別の子ノードを返す
func (n *Node) Children(kind string) []*Node {
	var children []*Node
	for _, child := range n.Inner {
		if child.Kind == kind {
			children = append(children, child)
		}
	}
	return children
}

// Body は関数定義の本体(CompoundStmt)を返す
func (n *Node) Body() *Node {
	if n.Kind != "FunctionDecl" {
		return nil
	}
	for _, child := range n.Inner {
		if child.Kind == "CompoundStmt" {
			return child
		}
	}
	return nil
}

// Walk はノードを前順に辿る
// fnがfalseを返したノードの子は辿らない
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range n.Inner {
		child.Walk(fn)
	}
}

// resolveFiles はclangが直前と異なる場合にしか出力しないfile属性を補完する
// JSONの出力順(loc, range.begin, range.end, inner)に沿って辿る必要がある
func resolveFiles(n *Node, current *string) {
	if n == nil {
		return
	}
	resolveLoc(n.Loc, current)
	if n.Range != nil {
		resolveLoc(n.Range.Begin, current)
		resolveLoc(n.Range.End, current)
	}
	for _, child := range n.Inner {
		resolveFiles(child, current)
	}
}

func resolveLoc(l *Loc, current *string) {
	if l == nil {
		return
	}
	if l.SpellingLoc != nil || l.ExpansionLoc != nil {
		resolveLoc(l.SpellingLoc, current)
		resolveLoc(l.ExpansionLoc, current)
		return
	}
	if l.Offset == nil {
		return
	}
	if l.File != "" {
		*current = strings.TrimSpace(l.File)
		return
	}
	l.File = *current
}
