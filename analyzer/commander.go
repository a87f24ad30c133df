package analyzer

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
)

//go:generate mockgen -package=analyzer -source=./commander.go -destination=./commander_mock.go
type commander interface {
	execClang(ctx context.Context, args []string, stdin string) (stdout []byte, stderr []byte, err error)
}

type defaultCommander struct {
	clangPath string
}

func newDefaultCommander(clangPath string) *defaultCommander {
	return &defaultCommander{
		clangPath: clangPath,
	}
}

func (dc *defaultCommander) execClang(ctx context.Context, args []string, stdin string) (stdout []byte, stderr []byte, err error) {
	cmd := exec.CommandContext(ctx, dc.clangPath, args...)
	cmd.Stdin = strings.NewReader(stdin)
	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	err = cmd.Run()
	return stdoutBuf.Bytes(), stderrBuf.Bytes(), err
}
