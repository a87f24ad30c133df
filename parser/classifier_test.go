package parser

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kakkky/cnsole/analyzer"
	"github.com/kakkky/cnsole/diagnostics"
	"github.com/kakkky/cnsole/errs"
	"github.com/kakkky/cnsole/types"
	gomock "go.uber.org/mock/gomock"
)

func TestClassifier_Classify_WithoutAnalyzer(t *testing.T) {
	tests := []struct {
		name           string
		buffer         string
		expected       *Classification
		expectedIndent int
	}{
		{
			name:     "preprocessor",
			buffer:   "#define N 5\n",
			expected: &Classification{Type: Preprocessor, Text: "#define N 5"},
		},
		{
			name:     "include",
			buffer:   "  #include <stdio.h>\n",
			expected: &Classification{Type: Preprocessor, Text: "#include <stdio.h>"},
		},
		{
			name:     "expression without semicolon",
			buffer:   "x\n",
			expected: &Classification{Type: Statement, Text: "x;"},
		},
		{
			name:     "call without semicolon",
			buffer:   "printf(\"%d\\n\", x)\n",
			expected: &Classification{Type: Statement, Text: "printf(\"%d\\n\", x);"},
		},
		{
			name:           "open block",
			buffer:         "if (1) {\n",
			expectedIndent: 1,
		},
		{
			name:           "line continuation",
			buffer:         "#define MAX(a, b) \\\n",
			expectedIndent: 1,
		},
		{
			name:   "open conditional",
			buffer: "#ifdef DEBUG\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAnalyzer := analyzer.NewMockAnalyzer(ctrl)
			sut := NewClassifier(mockAnalyzer, nil)

			got, err := sut.Classify(context.Background(), "", tt.buffer)
			if tt.expected == nil {
				var incompleteErr *errs.IncompleteInputError
				if !errors.As(err, &incompleteErr) {
					t.Fatalf("expected IncompleteInputError, got %v", err)
				}
				if incompleteErr.IndentLevel != tt.expectedIndent {
					t.Errorf("IndentLevel = %d, want %d", incompleteErr.IndentLevel, tt.expectedIndent)
				}
				return
			}
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClassifier_Classify_TopLevel(t *testing.T) {
	const contextSource = "void exit(int status);\n"
	tests := []struct {
		name        string
		buffer      string
		buildResult func(src string) *analyzer.Result
		expected    *Classification
	}{
		{
			name:   "variable declaration is a statement",
			buffer: "int x = 5;",
			buildResult: func(src string) *analyzer.Result {
				return &analyzer.Result{Nodes: []*analyzer.Node{
					{Kind: "TranslationUnitDecl", Inner: []*analyzer.Node{
						named(spanOf(src, "void exit(int status)", "FunctionDecl"), "exit", "void (int)"),
						named(spanOf(src, "int x = 5", "VarDecl"), "x", "int"),
					}},
				}}
			},
			expected: &Classification{Type: Statement, Text: "int x = 5;"},
		},
		{
			name:   "function definition",
			buffer: "static int add(int a, int b) {\n  return a + b;\n}",
			buildResult: func(src string) *analyzer.Result {
				body := spanOf(src, "{\n  return a + b;\n}", "CompoundStmt")
				return &analyzer.Result{Nodes: []*analyzer.Node{
					{Kind: "TranslationUnitDecl", Inner: []*analyzer.Node{
						named(spanOf(src, "void exit(int status)", "FunctionDecl"), "exit", "void (int)"),
						named(spanOf(src, "static int add(int a, int b) {\n  return a + b;\n}", "FunctionDecl", body), "add", "int (int, int)"),
					}},
				}}
			},
			expected: &Classification{
				Type:  Declaration,
				Text:  "int add(int a, int b) {\n  return a + b;\n}",
				Lines: []types.CodeLine{{Text: "int add(int a, int b);", Type: types.DeclLine}},
				Decls: []types.Decl{{Name: "add", Kind: types.FuncDef, Type: "int (int, int)"}},
			},
		},
		{
			name:   "prototype with typedef and global",
			buffer: "typedef struct P { int x; } P;\nint count = 0;\nP origin(void);",
			buildResult: func(src string) *analyzer.Result {
				record := spanOf(src, "struct P { int x; }", "RecordDecl")
				record.CompleteDefinition = true
				return &analyzer.Result{Nodes: []*analyzer.Node{
					{Kind: "TranslationUnitDecl", Inner: []*analyzer.Node{
						named(spanOf(src, "void exit(int status)", "FunctionDecl"), "exit", "void (int)"),
						named(record, "P", ""),
						named(spanOf(src, "typedef struct P { int x; } P", "TypedefDecl"), "P", "struct P"),
						named(spanOf(src, "int count = 0", "VarDecl"), "count", "int"),
						named(spanOf(src, "P origin(void)", "FunctionDecl"), "origin", "P (void)"),
					}},
				}}
			},
			expected: &Classification{
				Type: Declaration,
				Text: "typedef struct P { int x; } P;\nint count = 0;\nP origin(void);",
				Lines: []types.CodeLine{
					{Text: "typedef struct P { int x; } P;", Type: types.DeclLine},
					{Text: "extern int count;", Type: types.DeclLine},
					{Text: "P origin(void);", Type: types.DeclLine},
				},
				Decls: []types.Decl{
					{Name: "count", Kind: types.VarDecl, Type: "int"},
					{Name: "origin", Kind: types.FuncProto, Type: "P (void)"},
				},
			},
		},
		{
			name:   "call is not a top-level declaration",
			buffer: "foo();",
			buildResult: func(src string) *analyzer.Result {
				return &analyzer.Result{
					Nodes: []*analyzer.Node{
						{Kind: "TranslationUnitDecl", Inner: []*analyzer.Node{
							named(spanOf(src, "foo()", "FunctionDecl"), "foo", "int ()"),
						}},
					},
					Diagnostics: []diagnostics.Diagnostic{
						{File: diagnostics.MainFile, Line: 2, Col: 1, Severity: diagnostics.SeverityError, Message: "type specifier missing, defaults to 'int'"},
					},
				}
			},
			expected: &Classification{Type: Statement, Text: "foo();"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			src := contextSource + tt.buffer + "\n"
			mockAnalyzer := analyzer.NewMockAnalyzer(ctrl)
			mockAnalyzer.EXPECT().Parse(gomock.Any(), src, "").Return(tt.buildResult(src), nil).Times(1)

			sut := NewClassifier(mockAnalyzer, nil)
			got, err := sut.Classify(context.Background(), contextSource, tt.buffer)
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClassifier_Classify_Clang(t *testing.T) {
	clangPath, err := exec.LookPath("clang")
	if err != nil {
		t.Skip("clang not found")
	}
	sut := NewClassifier(analyzer.NewClangAnalyzer(clangPath, "c99", nil, nil), nil)
	const contextSource = "void exit(int status);\n"

	tests := []struct {
		buffer       string
		expectedType InputType
	}{
		{buffer: "int x = 5;", expectedType: Statement},
		{buffer: "x = 3;", expectedType: Statement},
		{buffer: "exit(0);", expectedType: Statement},
		{buffer: "int add(int a, int b) { return a + b; }", expectedType: Declaration},
		{buffer: "int sub(int a, int b);", expectedType: Declaration},
		{buffer: "struct point { int x; int y; };", expectedType: Statement},
	}
	for _, tt := range tests {
		t.Run(tt.buffer, func(t *testing.T) {
			got, err := sut.Classify(context.Background(), contextSource, tt.buffer)
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}
			if got.Type != tt.expectedType {
				t.Errorf("Type = %v, want %v", got.Type, tt.expectedType)
			}
		})
	}
}
