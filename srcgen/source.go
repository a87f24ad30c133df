package srcgen

import (
	"fmt"
	"strings"

	"github.com/kakkky/cnsole/diagnostics"
	"github.com/kakkky/cnsole/errs"
	"github.com/kakkky/cnsole/registry"
	"github.com/kakkky/cnsole/types"
)

// State はソースの合成に使うセッションの状態
type State interface {
	Lines() []types.CodeLine
	HasLine(line types.CodeLine) bool
	FuncNo() int
	Lookup(name types.DeclName) (types.Decl, bool)
	MacroDefinition(name types.MacroName) (string, bool)
}

var _ State = (*registry.Registry)(nil)

// Unit はコンパイルする一つの翻訳単位と、成功したときに受理する内容を表す
type Unit struct {
	Source string
	// InputLine はユーザー入力に由来するコードが始まる行
	InputLine int
	// Entry は実行するエントリ関数の名前 (実行不要なら空)
	Entry types.FuncName
	// Type は結果として表示する型
	Type  types.QualType
	Class types.ValueClass
	Turn  registry.Turn
}

// Source はこれまでに受理された宣言とディレクティブを順に並べ、末尾にappendixを加える
func Source(lines []types.CodeLine, appendix string) string {
	var sb strings.Builder
	for _, line := range lines {
		if line.Type == types.StmtLine {
			continue
		}
		sb.WriteString(line.Text)
		sb.WriteString("\n")
	}
	sb.WriteString(appendix)
	return sb.String()
}

// newUnit はappendixを加えたソースから翻訳単位を作る
// inputOffsetはappendix中でユーザー入力に由来するコードが始まる位置
func newUnit(state State, appendix string, inputOffset int) *Unit {
	prefix := Source(state.Lines(), "")
	src := prefix + appendix
	return &Unit{
		Source:    src,
		InputLine: diagnostics.LineOf(src, len(prefix)+inputOffset),
	}
}

// checkRedeclaration はセッション内ですでに宣言されている名前の再宣言を拒否する
// プロトタイプの繰り返しと、プロトタイプに続く定義は受け付ける
func checkRedeclaration(state State, decl types.Decl) error {
	existing, ok := state.Lookup(decl.Name)
	if !ok {
		return nil
	}
	switch {
	case decl.Kind == types.FuncProto && existing.Kind != types.VarDecl:
		return nil
	case decl.Kind == types.FuncDef && existing.Kind == types.FuncProto:
		return nil
	}
	return errs.NewBadInputError(fmt.Sprintf("redefinition of '%s'", decl.Name))
}
