package srcgen

import "github.com/kakkky/cnsole/analyzer"

// isConstantInit は初期化子がファイルスコープに置ける定数式かどうかを返す
// リテラル、列挙定数、関数や変数のアドレス、それらに対する演算・キャスト・sizeof、初期化子リストを定数とみなす
func isConstantInit(n *analyzer.Node) bool {
	switch n.Kind {
	case "IntegerLiteral", "FloatingLiteral", "CharacterLiteral", "StringLiteral",
		"ImaginaryLiteral", "UnaryExprOrTypeTraitExpr", "ImplicitValueInitExpr", "OffsetOfExpr":
		return true
	case "DeclRefExpr":
		if n.ReferencedDecl == nil {
			return false
		}
		switch n.ReferencedDecl.Kind {
		case "EnumConstantDecl", "FunctionDecl":
			return true
		}
		return false
	case "UnaryOperator":
		switch n.Opcode {
		case "-", "+", "~", "!":
			return allConstant(n.Inner)
		case "&":
			return isAddressConstant(n.Inner)
		}
		return false
	case "BinaryOperator":
		switch n.Opcode {
		case "=", ",":
			return false
		}
		return allConstant(n.Inner)
	case "ImplicitCastExpr":
		// 変数の値の読み出しは定数ではない
		if len(n.Inner) == 1 && n.Inner[0].Kind == "DeclRefExpr" && n.Inner[0].ReferencedDecl != nil &&
			n.Inner[0].ReferencedDecl.Kind == "VarDecl" {
			return isArrayDecay(n)
		}
		return allConstant(n.Inner)
	case "CStyleCastExpr", "ParenExpr", "ConditionalOperator", "InitListExpr", "ConstantExpr":
		return allConstant(n.Inner)
	}
	return false
}

func allConstant(nodes []*analyzer.Node) bool {
	for _, n := range nodes {
		if !isConstantInit(n) {
			return false
		}
	}
	return true
}

// isAddressConstant は&の対象が変数か関数そのものかどうかを返す
func isAddressConstant(nodes []*analyzer.Node) bool {
	if len(nodes) != 1 || nodes[0].Kind != "DeclRefExpr" || nodes[0].ReferencedDecl == nil {
		return false
	}
	switch nodes[0].ReferencedDecl.Kind {
	case "VarDecl", "FunctionDecl":
		return true
	}
	return false
}

// isArrayDecay は配列変数からポインタへの暗黙の変換かどうかを返す
// 配列の先頭アドレスはアドレス定数になる
func isArrayDecay(n *analyzer.Node) bool {
	return n.CastKind == "ArrayToPointerDecay"
}
