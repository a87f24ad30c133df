package completer

import (
	"strings"

	"github.com/c-bata/go-prompt"
)

type suggestionBuilder struct {
	// word はカーソル直前から区切り文字までの入力で、補完を確定するとこの部分が置き換わる
	word string
	// prefix は候補と照合するwordの末尾部分
	prefix string
	// suffix は候補の後ろに付け足す文字列
	suffix string
}

type suggestType int

const (
	suggestTypeUnknown suggestType = iota
	suggestTypeVariable
	suggestTypeFunction
	suggestTypeMacro
	suggestTypeKeyword
	suggestTypeHeader
	suggestTypeDirective
	suggestTypeCommand
)

func newSuggestionBuilder(word, prefix string) *suggestionBuilder {
	// prefixがwordの末尾でなければ、word全体を置き換える
	if !strings.HasSuffix(word, prefix) {
		word = prefix
	}
	return &suggestionBuilder{
		word:   word,
		prefix: prefix,
	}
}

func (sb *suggestionBuilder) matches(candidate string) bool {
	return strings.HasPrefix(candidate, sb.prefix)
}

func (sb *suggestionBuilder) build(candidate string, suggestType suggestType, description string, appendSuggestText ...string) prompt.Suggest {
	return prompt.Suggest{
		Text:        sb.buildSuggestText(candidate) + strings.Join(appendSuggestText, "") + sb.suffix,
		Description: sb.buildSuggestDescription(suggestType, description),
	}
}

// buildSuggestText はwordの末尾のprefixを候補に置き換えた文字列を返す
func (sb *suggestionBuilder) buildSuggestText(candidate string) string {
	return strings.TrimSuffix(sb.word, sb.prefix) + candidate
}

// buildSuggestDescription は説明が空なら種別だけを返す
func (sb *suggestionBuilder) buildSuggestDescription(suggestType suggestType, description string) string {
	if description == "" {
		return convertSuggestTypeToString(suggestType)
	}
	return convertSuggestTypeToString(suggestType) + ": " + description
}

func convertSuggestTypeToString(suggestType suggestType) string {
	switch suggestType {
	case suggestTypeVariable:
		return "Variable"
	case suggestTypeFunction:
		return "Function"
	case suggestTypeMacro:
		return "Macro"
	case suggestTypeKeyword:
		return "Keyword"
	case suggestTypeHeader:
		return "Header"
	case suggestTypeDirective:
		return "Directive"
	case suggestTypeCommand:
		return "Command"
	default:
		return "Unknown"
	}
}
