package types

// LineType はセッションに蓄積されるコード行の種別を表す。
type LineType int

const (
	// StmtLine は実行される文を表す。
	StmtLine LineType = iota
	// DeclLine はファイルスコープに置かれる宣言を表す。
	DeclLine
	// PrprLine はプリプロセッサディレクティブを表す。
	PrprLine
)

func (lt LineType) String() string {
	switch lt {
	case StmtLine:
		return "statement"
	case DeclLine:
		return "declaration"
	case PrprLine:
		return "preprocessor"
	}
	return "unknown"
}

// CodeLine はセッションで受理されたコード片と、その種別を表す。
// 一度受理されたら変更しない。
type CodeLine struct {
	Text string
	Type LineType
}

// DeclName はセッション内で宣言された変数名・関数名を表す。
type DeclName string

// MacroName はマクロ名を表す。
type MacroName string

// FuncName は合成されたエントリ関数名を表す。
type FuncName string

// QualType はclangが報告するCの型名を表す (例: "unsigned long", "char *")。
type QualType string

// DeclKind はセッションに登録される名前の種別を表す。
type DeclKind int

const (
	// VarDecl は変数を表す。
	VarDecl DeclKind = iota
	// FuncProto は本体を持たない関数宣言を表す。
	FuncProto
	// FuncDef は関数定義を表す。
	FuncDef
)

func (dk DeclKind) String() string {
	switch dk {
	case VarDecl:
		return "variable"
	case FuncProto:
		return "function prototype"
	case FuncDef:
		return "function"
	}
	return "unknown"
}

// Decl はセッション内で宣言された名前とその型を表す。
type Decl struct {
	Name DeclName
	Kind DeclKind
	Type QualType
}
