package executor

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
)

//go:generate mockgen -package=executor -source=./commander.go -destination=./commander_mock.go
type commander interface {
	execCC(ctx context.Context, args []string, stdin string) (stdout []byte, stderr []byte, err error)
}

type defaultCommander struct {
	ccPath string
}

func newDefaultCommander(ccPath string) *defaultCommander {
	return &defaultCommander{
		ccPath: ccPath,
	}
}

func (dc *defaultCommander) execCC(ctx context.Context, args []string, stdin string) (stdout []byte, stderr []byte, err error) {
	cmd := exec.CommandContext(ctx, dc.ccPath, args...)
	cmd.Stdin = strings.NewReader(stdin)
	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	err = cmd.Run()
	return stdoutBuf.Bytes(), stderrBuf.Bytes(), err
}
