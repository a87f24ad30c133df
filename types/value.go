package types

import (
	"regexp"
	"strings"
)

// ValueClass はエントリ関数の戻り値をどう受け取り、どう表示するかを表す。
type ValueClass int

const (
	Void ValueClass = iota
	Bool
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	Pointer
	// CharPointer は文字列として表示を試みるポインタ (char *, char [N])。
	CharPointer
	// NonPrintable は構造体や共用体、long doubleなど値を受け取れない型。
	NonPrintable
)

var classNames = map[ValueClass]string{
	Void:         "void",
	Bool:         "_Bool",
	Int8:         "signed char",
	Int16:        "short",
	Int32:        "int",
	Int64:        "long long",
	Uint8:        "unsigned char",
	Uint16:       "unsigned short",
	Uint32:       "unsigned int",
	Uint64:       "unsigned long long",
	Float32:      "float",
	Float64:      "double",
	Pointer:      "void *",
	CharPointer:  "void *",
	NonPrintable: "void",
}

// CType はエントリ関数の戻り値型として使うCの型名を返す。
func (vc ValueClass) CType() string {
	return classNames[vc]
}

// IsInteger は整数として受け取る種別かどうかを返す。
func (vc ValueClass) IsInteger() bool {
	return vc >= Bool && vc <= Uint64
}

// IsSigned は符号付き整数かどうかを返す。
func (vc ValueClass) IsSigned() bool {
	return vc >= Int8 && vc <= Int64
}

// IsPointer はポインタとして受け取る種別かどうかを返す。
func (vc ValueClass) IsPointer() bool {
	return vc == Pointer || vc == CharPointer
}

// Returns は値を返すエントリ関数が必要かどうかを返す。
func (vc ValueClass) Returns() bool {
	return vc != Void && vc != NonPrintable
}

var (
	arrayTypePattern = regexp.MustCompile(`^(.*?)\s*\[[^\]]*\]$`)
	qualifierPattern = regexp.MustCompile(`\b(const|volatile|restrict|__restrict)\b`)
	spacePattern     = regexp.MustCompile(`\s+`)
)

// integerTypes はLP64環境におけるCの整数型と種別の対応
var integerTypes = map[string]ValueClass{
	"_Bool":                  Bool,
	"bool":                   Bool,
	"char":                   Int8,
	"signed char":            Int8,
	"unsigned char":          Uint8,
	"short":                  Int16,
	"short int":              Int16,
	"signed short":           Int16,
	"unsigned short":         Uint16,
	"unsigned short int":     Uint16,
	"int":                    Int32,
	"signed":                 Int32,
	"signed int":             Int32,
	"unsigned":               Uint32,
	"unsigned int":           Uint32,
	"long":                   Int64,
	"long int":               Int64,
	"signed long":            Int64,
	"unsigned long":          Uint64,
	"unsigned long int":      Uint64,
	"long long":              Int64,
	"long long int":          Int64,
	"signed long long":       Int64,
	"unsigned long long":     Uint64,
	"unsigned long long int": Uint64,
	"float":                  Float32,
	"double":                 Float64,
}

// ClassOf は式の型(typedefを剥がしたもの)から値の種別を求める。
func ClassOf(qt QualType) ValueClass {
	t := normalize(qt)
	switch {
	case t == "void":
		return Void
	case strings.HasSuffix(t, "*"), strings.Contains(t, "(*)"):
		if isCharType(strings.TrimSpace(strings.TrimSuffix(t, "*"))) {
			return CharPointer
		}
		return Pointer
	case strings.HasSuffix(t, "]"):
		// 配列はポインタに変換して受け取る
		elem := arrayTypePattern.FindStringSubmatch(t)
		if elem != nil && isCharType(elem[1]) {
			return CharPointer
		}
		return Pointer
	case strings.HasSuffix(t, ")"):
		// 関数指示子は関数ポインタに変換して受け取る
		return Pointer
	case strings.HasPrefix(t, "enum "):
		return Int32
	}
	if vc, ok := integerTypes[t]; ok {
		return vc
	}
	return NonPrintable
}

// isCharType はchar系の型かどうかを返す。
func isCharType(t string) bool {
	switch normalize(QualType(t)) {
	case "char", "signed char", "unsigned char":
		return true
	}
	return false
}

func normalize(qt QualType) string {
	t := qualifierPattern.ReplaceAllString(string(qt), "")
	t = spacePattern.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}
