package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os/exec"
	"regexp"

	"github.com/kakkky/cnsole/diagnostics"
	"github.com/kakkky/cnsole/errs"
	"golang.org/x/mod/semver"
)

//go:generate mockgen -package=analyzer -source=./analyzer.go -destination=./analyzer_mock.go

// Analyzer はCソースを解析し、ASTと診断を返す外部のソース解析器を表す
type Analyzer interface {
	// Parse はsrcを一つの翻訳単位として解析する
	// filterが空でなければ、名前にfilterを含む宣言だけをASTとして返す
	Parse(ctx context.Context, src string, filter string) (*Result, error)
}

// Result は解析結果を表す
type Result struct {
	// Nodes はトップレベルのASTノード
	// filterなしの場合はTranslationUnitDecl一つ、filterありの場合は一致した宣言が並ぶ
	Nodes       []*Node
	Diagnostics []diagnostics.Diagnostic
}

// HasErrors は解析中にエラーが報告されたかどうかを返す
func (r *Result) HasErrors() bool {
	return diagnostics.HasErrors(r.Diagnostics)
}

// FindFunc は名前がnameの関数定義を返す
func (r *Result) FindFunc(name string) *Node {
	var found *Node
	for _, node := range r.Nodes {
		node.Walk(func(n *Node) bool {
			if found != nil {
				return false
			}
			if n.Kind == "FunctionDecl" && n.Name == name && n.Body() != nil {
				found = n
				return false
			}
			return n.Kind == "TranslationUnitDecl"
		})
	}
	return found
}

// TopLevelDecls はTranslationUnitDecl直下の宣言を返す
func (r *Result) TopLevelDecls() []*Node {
	var decls []*Node
	for _, node := range r.Nodes {
		if node.Kind == "TranslationUnitDecl" {
			decls = append(decls, node.Inner...)
			continue
		}
		decls = append(decls, node)
	}
	return decls
}

// ClangAnalyzer はclangの-ast-dump=jsonを使うAnalyzerの実装
type ClangAnalyzer struct {
	std    string
	cflags []string
	logger *slog.Logger
	commander
}

var _ Analyzer = (*ClangAnalyzer)(nil)

// NewClangAnalyzer はClangAnalyzerのインスタンスを生成する
func NewClangAnalyzer(clangPath, std string, cflags []string, logger *slog.Logger) *ClangAnalyzer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ClangAnalyzer{
		std:       std,
		cflags:    cflags,
		logger:    logger,
		commander: newDefaultCommander(clangPath),
	}
}

// Parse はclangでsrcを構文・意味解析し、JSON形式のASTを読み込む
func (ca *ClangAnalyzer) Parse(ctx context.Context, src string, filter string) (*Result, error) {
	args := []string{
		"-fsyntax-only",
		"-fno-color-diagnostics",
		"-fno-caret-diagnostics",
		"-std=" + ca.std,
		// "foo();" をトップレベルの暗黙のint宣言として受け付けないようにする
		"-Werror=implicit-int",
		"-Werror=implicit-function-declaration",
	}
	args = append(args, ca.cflags...)
	args = append(args, "-Xclang", "-ast-dump=json")
	if filter != "" {
		args = append(args, "-Xclang", "-ast-dump-filter="+filter)
	}
	args = append(args, "-x", "c", "-")

	ca.logger.Debug("running analyzer", "filter", filter, "bytes", len(src))
	stdout, stderr, err := ca.execClang(ctx, args, src)
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, errs.NewInternalError("failed to run clang").Wrap(err)
		}
	}

	nodes, decodeErr := Decode(stdout)
	if decodeErr != nil {
		return nil, errs.NewInternalError("failed to decode clang AST").Wrap(decodeErr)
	}
	result := &Result{
		Nodes:       nodes,
		Diagnostics: diagnostics.Parse(stderr),
	}
	// 診断を解析できなかったが失敗している場合は、入力起因のエラーとして扱う
	if err != nil && !result.HasErrors() {
		result.Diagnostics = append(result.Diagnostics, diagnostics.Diagnostic{
			File:     diagnostics.MainFile,
			Severity: diagnostics.SeverityError,
			Message:  string(bytes.TrimSpace(stderr)),
		})
	}
	return result, nil
}

// Decode はclangが出力した連続するJSONオブジェクトを読み込む
// -ast-dump-filterを指定すると一致した宣言ごとに"Dumping name:"の行とJSONオブジェクトが出力される
func Decode(stdout []byte) ([]*Node, error) {
	var nodes []*Node
	data := stdout
	for {
		start := bytes.IndexByte(data, '{')
		if start < 0 {
			break
		}
		data = data[start:]
		dec := json.NewDecoder(bytes.NewReader(data))
		var node Node
		if err := dec.Decode(&node); err != nil {
			return nil, err
		}
		var current string
		resolveFiles(&node, &current)
		nodes = append(nodes, &node)
		data = data[dec.InputOffset():]
	}
	return nodes, nil
}

// minClangVersion は-ast-dump=jsonが使える最小のclangのバージョン
const minClangVersion = "v9.0.0"

var clangVersionPattern = regexp.MustCompile(`clang version (\d+)\.(\d+)(?:\.(\d+))?`)

// CheckVersion はclangのバージョンがJSON形式のAST出力に対応しているかを確認する
func (ca *ClangAnalyzer) CheckVersion(ctx context.Context) (string, error) {
	stdout, _, err := ca.execClang(ctx, []string{"--version"}, "")
	if err != nil {
		return "", errs.NewInternalError("failed to get clang version").Wrap(err)
	}
	version, ok := parseClangVersion(stdout)
	if !ok {
		return "", errs.NewInternalError("unrecognized clang version output: " + string(firstLine(stdout)))
	}
	if semver.Compare(version, minClangVersion) < 0 {
		return version, errs.NewInternalError("clang " + version + " is too old; " + minClangVersion + " or later is required")
	}
	return version, nil
}

func parseClangVersion(out []byte) (string, bool) {
	matches := clangVersionPattern.FindSubmatch(out)
	if matches == nil {
		return "", false
	}
	patch := "0"
	if len(matches[3]) > 0 {
		patch = string(matches[3])
	}
	version := "v" + string(matches[1]) + "." + string(matches[2]) + "." + patch
	if !semver.IsValid(version) {
		return "", false
	}
	return version, true
}

func firstLine(out []byte) []byte {
	if i := bytes.IndexByte(out, '\n'); i >= 0 {
		return out[:i]
	}
	return out
}
