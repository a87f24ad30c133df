package srcgen

import (
	"fmt"
	"strings"

	"github.com/kakkky/cnsole/types"
)

// EntryFuncPrefix はエントリ関数の名前の接頭辞
const EntryFuncPrefix = "__cnsole_entry"

// EntryFuncName はn番目のエントリ関数の名前を返す
func EntryFuncName(n int) types.FuncName {
	return types.FuncName(fmt.Sprintf("%s%d", EntryFuncPrefix, n))
}

// genExprFunction は式の値を返すエントリ関数を作る
// 戻り値の型は値の種別から決め、式を明示的にその型へ変換する
// 返り値の二つ目は関数の中で式が始まる位置
func genExprFunction(name types.FuncName, class types.ValueClass, expr string) (string, int) {
	if !class.Returns() {
		return genVoidFunction(name, expr+";")
	}
	ctype := class.CType()
	head := fmt.Sprintf("%s %s(void) {\nreturn (%s)(\n", ctype, name, ctype)
	return head + expr + "\n);\n}\n", len(head)
}

// genVoidFunction は文を本体とするエントリ関数を作る
func genVoidFunction(name types.FuncName, body string) (string, int) {
	head := fmt.Sprintf("void %s(void) {\n", name)
	return head + strings.TrimRight(body, "\n") + "\n}\n", len(head)
}
