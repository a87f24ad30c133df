package version

import (
	"fmt"
	"io"
	"runtime"
)

// VERSION は現在のcnsoleのバージョンを表す
const VERSION = "v0.1.0"

// String はバージョン情報を一行で返す
func String() string {
	return fmt.Sprintf("cnsole %s (%s %s/%s)", VERSION, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// PrintVersion はバージョン情報を表示する
func PrintVersion(w io.Writer) {
	fmt.Fprintln(w, String())
	fmt.Fprintln(w, "Interactive Console for the C Programming Language")
}
