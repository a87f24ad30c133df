package srcgen

import (
	"strings"

	"github.com/kakkky/cnsole/registry"
	"github.com/kakkky/cnsole/types"
)

// GenPreprocessor はディレクティブから翻訳単位を作る
// 何も変わらないディレクティブ(同じ内容のマクロの再定義など)の場合はnilを返す
func GenPreprocessor(state State, text string) (*Unit, error) {
	text = strings.TrimSpace(text)
	directives := splitDirectives(text)
	appendix := text

	if len(directives) == 1 {
		if name, ok := definedMacro(directives[0]); ok {
			if existing, known := state.MacroDefinition(name); known {
				if normalizeDirective(existing) == normalizeDirective(directives[0]) {
					return nil, nil
				}
				appendix = "#undef " + string(name) + "\n" + text
			}
		}
	}
	if state.HasLine(types.CodeLine{Text: appendix, Type: types.PrprLine}) && !redefinesMacro(directives) {
		return nil, nil
	}

	var macros []registry.MacroChange
	for _, directive := range directives {
		if name, ok := definedMacro(directive); ok {
			macros = append(macros, registry.MacroChange{Name: name, Definition: directive})
			continue
		}
		if name, ok := undefinedMacro(directive); ok {
			macros = append(macros, registry.MacroChange{Name: name, Undef: true})
		}
	}

	unit := newUnit(state, appendix+"\n", 0)
	unit.Class = types.Void
	unit.Turn = registry.Turn{
		Lines:  []types.CodeLine{{Text: appendix, Type: types.PrprLine}},
		Macros: macros,
	}
	return unit, nil
}

// splitDirectives は行継続を結合し、ディレクティブごとに分ける
func splitDirectives(text string) []string {
	var directives []string
	var current strings.Builder
	for _, line := range strings.Split(text, "\n") {
		current.WriteString(line)
		if strings.HasSuffix(strings.TrimRight(line, " \t"), "\\") {
			current.WriteString("\n")
			continue
		}
		if d := strings.TrimSpace(current.String()); d != "" {
			directives = append(directives, d)
		}
		current.Reset()
	}
	if d := strings.TrimSpace(current.String()); d != "" {
		directives = append(directives, d)
	}
	return directives
}

// directiveFields はディレクティブのキーワードと残りを返す ("# define X 1" も受け付ける)
func directiveFields(directive string) (string, string) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(directive), "#")
	if !ok {
		return "", ""
	}
	rest = strings.TrimSpace(rest)
	keyword, args, _ := strings.Cut(rest, " ")
	if i := strings.IndexAny(keyword, "\t"); i >= 0 {
		keyword, args = keyword[:i], keyword[i:]+" "+args
	}
	return keyword, strings.TrimSpace(args)
}

// definedMacro は#defineで定義されるマクロの名前を返す
func definedMacro(directive string) (types.MacroName, bool) {
	keyword, args := directiveFields(directive)
	if keyword != "define" || args == "" {
		return "", false
	}
	end := strings.IndexFunc(args, func(r rune) bool {
		return r == '(' || r == ' ' || r == '\t' || r == '\\'
	})
	if end < 0 {
		end = len(args)
	}
	return types.MacroName(args[:end]), true
}

// undefinedMacro は#undefで削除されるマクロの名前を返す
func undefinedMacro(directive string) (types.MacroName, bool) {
	keyword, args := directiveFields(directive)
	if keyword != "undef" || args == "" {
		return "", false
	}
	return types.MacroName(strings.Fields(args)[0]), true
}

// redefinesMacro はディレクティブがマクロの定義・削除を含むかどうかを返す
// #undefの後に同じ#defineを再び入力した場合などは、同じ行でも受理する必要がある
func redefinesMacro(directives []string) bool {
	for _, directive := range directives {
		if _, ok := definedMacro(directive); ok {
			return true
		}
		if _, ok := undefinedMacro(directive); ok {
			return true
		}
	}
	return false
}

func normalizeDirective(directive string) string {
	directive = strings.ReplaceAll(directive, "\\\n", " ")
	return strings.Join(strings.Fields(directive), " ")
}
