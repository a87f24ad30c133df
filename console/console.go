package console

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/kakkky/cnsole/config"
	"github.com/kakkky/cnsole/errs"
	"github.com/kakkky/cnsole/types"
)

// プロンプト
const (
	PrimaryPrompt      = ">>> "
	ContinuationPrompt = "... "
)

//go:generate mockgen -package=console -source=./console.go -destination=./console_mock.go

// Console は入力を一行ずつ受け取り、Cのコードとして評価する
type Console interface {
	// Prompt は次の行を読むときに表示するプロンプトを返す
	Prompt() string
	// Prefill は次の行にあらかじめ入れておく字下げを返す
	Prefill() string
	// Process は一行の入力を処理する
	// 入力起因のエラーは表示して処理を続け、セッションを終えるときだけエラーを返す
	Process(ctx context.Context, line string) error
	Close() error
	// Decls とKnownMacros は補完に使う、セッション内で宣言された名前を返す
	Decls() []types.Decl
	KnownMacros() []types.MacroName
}

// New は設定に合ったConsoleを生成する
func New(cfg *config.Config, out io.Writer, logger *slog.Logger) (Console, error) {
	switch cfg.Console {
	case config.ConsoleLocal:
		return newLocal(cfg, out, logger), nil
	}
	return nil, errs.NewInternalError(fmt.Sprintf("unknown console %q", cfg.Console))
}
