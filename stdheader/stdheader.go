package stdheader

import (
	"maps"
	"slices"
)

// HeaderOf は標準ライブラリの関数を宣言しているヘッダを返す
func HeaderOf(fn string) (string, bool) {
	for header, funcs := range functions() {
		if slices.Contains(funcs, fn) {
			return header, true
		}
	}
	return "", false
}

// IsStandardHeader は与えられたヘッダが標準ヘッダかどうかを判定する
func IsStandardHeader(header string) bool {
	return slices.Contains(Headers(), header)
}

// Headers は標準ヘッダを名前順に返す
func Headers() []string {
	headers := slices.Concat(getCoreHeaders(), getNumericHeaders(), getTextHeaders(), getSystemHeaders())
	slices.Sort(headers)
	return headers
}

// CategoryOf はヘッダの分類(core, numeric, text, POSIX)を返す
func CategoryOf(header string) (string, bool) {
	switch {
	case slices.Contains(getCoreHeaders(), header):
		return "core", true
	case slices.Contains(getNumericHeaders(), header):
		return "numeric", true
	case slices.Contains(getTextHeaders(), header):
		return "text", true
	case slices.Contains(getSystemHeaders(), header):
		return "POSIX", true
	}
	return "", false
}

// Functions は補完に使う標準ライブラリの関数を名前順に返す
func Functions() []string {
	var funcs []string
	for _, header := range slices.Sorted(maps.Keys(functions())) {
		funcs = append(funcs, functions()[header]...)
	}
	slices.Sort(funcs)
	return funcs
}

// getCoreHeaders は言語の基本的な機能のヘッダを返す
func getCoreHeaders() []string {
	return []string{
		"assert.h",
		"errno.h",
		"iso646.h",
		"limits.h",
		"setjmp.h",
		"signal.h",
		"stdalign.h",
		"stdarg.h",
		"stdatomic.h",
		"stdbool.h",
		"stddef.h",
		"stdint.h",
		"stdlib.h",
		"stdnoreturn.h",
		"threads.h",
		"time.h",
	}
}

// getNumericHeaders は数値計算関連のヘッダを返す
func getNumericHeaders() []string {
	return []string{
		"complex.h",
		"fenv.h",
		"float.h",
		"inttypes.h",
		"math.h",
		"tgmath.h",
	}
}

// getTextHeaders は文字・文字列・入出力関連のヘッダを返す
func getTextHeaders() []string {
	return []string{
		"ctype.h",
		"locale.h",
		"stdio.h",
		"string.h",
		"uchar.h",
		"wchar.h",
		"wctype.h",
	}
}

// getSystemHeaders はPOSIXのヘッダを返す
func getSystemHeaders() []string {
	return []string{
		"dlfcn.h",
		"fcntl.h",
		"pthread.h",
		"sys/stat.h",
		"sys/types.h",
		"unistd.h",
	}
}

// functions はヘッダごとのよく使う関数
func functions() map[string][]string {
	return map[string][]string{
		"stdio.h": {
			"fclose", "fflush", "fgets", "fopen", "fprintf", "fputs", "fread", "fwrite",
			"getchar", "perror", "printf", "putchar", "puts", "scanf", "snprintf", "sprintf", "sscanf",
		},
		"stdlib.h": {
			"abort", "abs", "atoi", "atol", "bsearch", "calloc", "exit", "free", "getenv",
			"malloc", "qsort", "rand", "realloc", "srand", "strtod", "strtol", "strtoul", "system",
		},
		"string.h": {
			"memcmp", "memcpy", "memmove", "memset", "strcat", "strchr", "strcmp", "strcpy", "strdup",
			"strerror", "strlen", "strncat", "strncmp", "strncpy", "strrchr", "strstr",
		},
		"math.h": {
			"ceil", "cos", "exp", "fabs", "floor", "fmod", "log", "log10", "pow", "round", "sin", "sqrt", "tan",
		},
		"ctype.h": {
			"isalnum", "isalpha", "isdigit", "islower", "isspace", "isupper", "tolower", "toupper",
		},
		"time.h": {
			"clock", "difftime", "localtime", "strftime", "time",
		},
	}
}
