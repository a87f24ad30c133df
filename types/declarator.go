package types

import "strings"

// Declarator は型名と変数名から宣言子を組み立てる (例: "int (*)(int)" と "f" から "int (*f)(int)")
// 無名の構造体・共用体・列挙型は型名で書き表せないため、falseを返す
func Declarator(qt QualType, name DeclName) (string, bool) {
	t := string(qt)
	if strings.Contains(t, "(unnamed") || strings.Contains(t, "(anonymous") {
		return "", false
	}
	if i := strings.Index(t, "(*"); i >= 0 {
		if j := strings.Index(t[i:], ")"); j >= 0 {
			return t[:i+j] + string(name) + t[i+j:], true
		}
	}
	if i := strings.Index(t, "["); i >= 0 {
		return strings.TrimRight(t[:i], " ") + " " + string(name) + t[i:], true
	}
	if strings.HasSuffix(t, "*") {
		return t + string(name), true
	}
	return t + " " + string(name), true
}
