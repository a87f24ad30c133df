package repl

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// stdioReader は端末に繋がっていない入力を一行ずつ読む
// 出力を結果だけにするため、プロンプトは表示しない
type stdioReader struct {
	in *bufio.Reader
}

func newStdioReader(in io.Reader) *stdioReader {
	return &stdioReader{
		in: bufio.NewReader(in),
	}
}

// ReadLine は一行読む
// 改行で終わらない最後の行も一行として返す
func (r *stdioReader) ReadLine(_, _ string) (string, error) {
	line, err := r.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (r *stdioReader) Close() error {
	return nil
}
