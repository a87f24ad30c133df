package console

import (
	"context"

	"github.com/kakkky/cnsole/executor"
	"github.com/kakkky/cnsole/parser"
	"github.com/kakkky/cnsole/printer"
	"github.com/kakkky/cnsole/srcgen"
	"github.com/kakkky/cnsole/types"
)

//go:generate mockgen -package=console -source=./deps.go -destination=./deps_mock.go

type classifier interface {
	Classify(ctx context.Context, contextSource, buffer string) (*parser.Classification, error)
}

type splitter interface {
	Split(ctx context.Context, contextSource, input string) ([]string, error)
}

type synthesizer interface {
	GenStatement(ctx context.Context, state srcgen.State, stmt string) (*srcgen.Unit, error)
	GenDeclaration(state srcgen.State, text string, lines []types.CodeLine, decls []types.Decl) (*srcgen.Unit, error)
	GenPreprocessor(state srcgen.State, text string) (*srcgen.Unit, error)
}

type pipeline interface {
	Compile(ctx context.Context, src string, inputLine int) (string, error)
	Link(path string) error
	Execute(entry types.FuncName, qt types.QualType, class types.ValueClass) (*executor.Result, error)
	LoadLibrary(path string) error
	Close() error
}

type resultPrinter interface {
	Print(result *executor.Result)
}

// generator はファイルスコープの入力の合成もGeneratorから呼べるようにする
type generator struct {
	*srcgen.Generator
}

func (g generator) GenDeclaration(state srcgen.State, text string, lines []types.CodeLine, decls []types.Decl) (*srcgen.Unit, error) {
	return srcgen.GenDeclaration(state, text, lines, decls)
}

func (g generator) GenPreprocessor(state srcgen.State, text string) (*srcgen.Unit, error) {
	return srcgen.GenPreprocessor(state, text)
}

var (
	_ classifier    = (*parser.Classifier)(nil)
	_ splitter      = (*parser.Splitter)(nil)
	_ synthesizer   = generator{}
	_ pipeline      = (*executor.Executor)(nil)
	_ resultPrinter = (*printer.Printer)(nil)
)
