package srcgen

import (
	"github.com/kakkky/cnsole/registry"
	"github.com/kakkky/cnsole/types"
)

// GenDeclaration はファイルスコープに置く関数の宣言・定義から翻訳単位を作る
// 後続のターンにはプロトタイプだけを残す
func GenDeclaration(state State, text string, lines []types.CodeLine, decls []types.Decl) (*Unit, error) {
	for _, decl := range decls {
		if err := checkRedeclaration(state, decl); err != nil {
			return nil, err
		}
	}
	unit := newUnit(state, text+"\n", 0)
	unit.Class = types.Void
	unit.Turn = registry.Turn{
		Lines: lines,
		Decls: decls,
	}
	return unit, nil
}
