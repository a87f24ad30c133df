package completer

import (
	"regexp"
	"slices"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/kakkky/cnsole/commands"
	"github.com/kakkky/cnsole/stdheader"
	"github.com/kakkky/cnsole/types"
)

// WordSeparator は補完対象の単語を区切る文字
// ヘッダのパスを一語として扱うため"/"は含めない
const WordSeparator = " \t()[]{}+-*%=&|!<>,;~^?:.\"'#"

//go:generate mockgen -package=completer -source=./completer.go -destination=./completer_mock.go

// Source はセッション内で宣言された名前を提供する
type Source interface {
	Decls() []types.Decl
	KnownMacros() []types.MacroName
}

// Completer は補完エンジンを担う
// go-promptのCompleterとlinerのWordCompleterの両方に候補を提供する
type Completer struct {
	source Source
}

// NewCompleter はCompleterのインスタンスを生成する
func NewCompleter(source Source) *Completer {
	return &Completer{
		source: source,
	}
}

var (
	includePattern   = regexp.MustCompile(`^\s*#\s*include\s*([<"])([^>"]*)$`)
	directivePattern = regexp.MustCompile(`^\s*#\s*(\w*)$`)
	commandPattern   = regexp.MustCompile(`^\s*:(\w*)$`)
	identPattern     = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*$`)
)

// Complete はgo-promptのCompleterインターフェースを実装するメソッドで、補完候補を返す
func (c *Completer) Complete(input prompt.Document) []prompt.Suggest {
	return c.suggest(input.TextBeforeCursor(), input.GetWordBeforeCursorUntilSeparator(WordSeparator))
}

// CompleteWord はlinerのWordCompleterとして使う
// posはlineの中のルーン単位のカーソル位置
func (c *Completer) CompleteWord(line string, pos int) (head string, completions []string, tail string) {
	runes := []rune(line)
	pos = max(0, min(pos, len(runes)))
	before := string(runes[:pos])
	tail = string(runes[pos:])

	word := before
	if i := strings.LastIndexAny(before, WordSeparator); i >= 0 {
		word = before[i+1:]
	}
	suggestions := c.suggest(before, word)
	if len(suggestions) == 0 {
		return before, nil, tail
	}
	head = strings.TrimSuffix(before, word)
	for _, s := range suggestions {
		completions = append(completions, s.Text)
	}
	return head, completions, tail
}

// suggest はカーソルより前の入力beforeから文脈を判断し、wordを置き換える候補を返す
func (c *Completer) suggest(before, word string) []prompt.Suggest {
	if m := commandPattern.FindStringSubmatch(before); m != nil {
		return c.findCommandSuggestions(newSuggestionBuilder(word, m[1]))
	}
	if m := includePattern.FindStringSubmatch(before); m != nil {
		sb := newSuggestionBuilder(word, m[2])
		sb.suffix = ">"
		if m[1] == `"` {
			sb.suffix = `"`
		}
		return c.findHeaderSuggestions(sb)
	}
	if m := directivePattern.FindStringSubmatch(before); m != nil {
		return c.findDirectiveSuggestions(newSuggestionBuilder(word, m[1]))
	}

	prefix := identPattern.FindString(before)
	if prefix == "" {
		return nil
	}
	// メンバーアクセスの後ろは構造体の定義が分からないため補完しない
	rest := strings.TrimRight(strings.TrimSuffix(before, prefix), " \t")
	if strings.HasSuffix(rest, ".") || strings.HasSuffix(rest, "->") {
		return nil
	}
	sb := newSuggestionBuilder(word, prefix)
	return c.findIdentSuggestions(sb)
}

func (c *Completer) findCommandSuggestions(sb *suggestionBuilder) []prompt.Suggest {
	suggestions := make([]prompt.Suggest, 0)
	for _, cmd := range commands.Commands {
		if sb.matches(cmd.Name) {
			suggestions = append(suggestions, sb.build(cmd.Name, suggestTypeCommand, cmd.Description))
		}
	}
	return suggestions
}

func (c *Completer) findHeaderSuggestions(sb *suggestionBuilder) []prompt.Suggest {
	suggestions := make([]prompt.Suggest, 0)
	for _, header := range stdheader.Headers() {
		if sb.matches(header) {
			category, _ := stdheader.CategoryOf(header)
			suggestions = append(suggestions, sb.build(header, suggestTypeHeader, category))
		}
	}
	return suggestions
}

func (c *Completer) findDirectiveSuggestions(sb *suggestionBuilder) []prompt.Suggest {
	suggestions := make([]prompt.Suggest, 0)
	for _, directive := range directives {
		if sb.matches(directive) {
			suggestions = append(suggestions, sb.build(directive, suggestTypeDirective, ""))
		}
	}
	return suggestions
}

// findIdentSuggestions はセッションの宣言、マクロ、キーワード、標準関数の順に候補を返す
// 同じ名前は最初に見つかったものだけを返す
func (c *Completer) findIdentSuggestions(sb *suggestionBuilder) []prompt.Suggest {
	suggestions := make([]prompt.Suggest, 0)
	seen := make(map[string]bool)
	add := func(name string, suggestType suggestType, description string, appendSuggestText ...string) {
		if seen[name] || !sb.matches(name) {
			return
		}
		seen[name] = true
		suggestions = append(suggestions, sb.build(name, suggestType, description, appendSuggestText...))
	}

	decls := slices.Clone(c.source.Decls())
	slices.SortFunc(decls, func(a, b types.Decl) int {
		return strings.Compare(string(a.Name), string(b.Name))
	})
	for _, decl := range decls {
		if decl.Kind == types.VarDecl {
			add(string(decl.Name), suggestTypeVariable, string(decl.Type))
			continue
		}
		add(string(decl.Name), suggestTypeFunction, string(decl.Type), "(")
	}

	macros := slices.Clone(c.source.KnownMacros())
	slices.Sort(macros)
	for _, macro := range macros {
		add(string(macro), suggestTypeMacro, "")
	}

	for _, keyword := range keywords {
		add(keyword, suggestTypeKeyword, "")
	}

	for _, fn := range stdheader.Functions() {
		header, _ := stdheader.HeaderOf(fn)
		add(fn, suggestTypeFunction, "<"+header+">", "(")
	}
	return suggestions
}
