package registry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kakkky/cnsole/types"
)

func TestNewRegistry(t *testing.T) {
	sut := NewRegistry()
	expected := []types.CodeLine{
		{Text: "void exit(int status);", Type: types.DeclLine},
	}
	if diff := cmp.Diff(expected, sut.Lines()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if sut.FuncNo() != 0 {
		t.Errorf("FuncNo() = %d, want 0", sut.FuncNo())
	}
}

func TestRegistry_Commit(t *testing.T) {
	tests := []struct {
		name           string
		turns          []Turn
		expectedLines  []types.CodeLine
		expectedMacros []types.MacroName
		expectedDecls  []types.Decl
	}{
		{
			name: "variable declaration",
			turns: []Turn{
				{
					Lines: []types.CodeLine{
						{Text: "extern int x;", Type: types.DeclLine},
						{Text: "x = compute();", Type: types.StmtLine},
					},
					Decls: []types.Decl{{Name: "x", Kind: types.VarDecl, Type: "int"}},
				},
			},
			expectedLines: []types.CodeLine{
				{Text: "void exit(int status);", Type: types.DeclLine},
				{Text: "extern int x;", Type: types.DeclLine},
				{Text: "x = compute();", Type: types.StmtLine},
			},
			expectedMacros: []types.MacroName{},
			expectedDecls:  []types.Decl{{Name: "x", Kind: types.VarDecl, Type: "int"}},
		},
		{
			name: "macro defined and undefined",
			turns: []Turn{
				{
					Lines:  []types.CodeLine{{Text: "#define N 5", Type: types.PrprLine}},
					Macros: []MacroChange{{Name: "N", Definition: "#define N 5"}},
				},
				{
					Lines:  []types.CodeLine{{Text: "#define M 1", Type: types.PrprLine}},
					Macros: []MacroChange{{Name: "M", Definition: "#define M 1"}},
				},
				{
					Lines:  []types.CodeLine{{Text: "#undef N", Type: types.PrprLine}},
					Macros: []MacroChange{{Name: "N", Undef: true}},
				},
			},
			expectedLines: []types.CodeLine{
				{Text: "void exit(int status);", Type: types.DeclLine},
				{Text: "#define N 5", Type: types.PrprLine},
				{Text: "#define M 1", Type: types.PrprLine},
				{Text: "#undef N", Type: types.PrprLine},
			},
			expectedMacros: []types.MacroName{"M"},
			expectedDecls:  []types.Decl{},
		},
		{
			name: "prototype followed by definition",
			turns: []Turn{
				{
					Lines: []types.CodeLine{{Text: "int f(void);", Type: types.DeclLine}},
					Decls: []types.Decl{{Name: "f", Kind: types.FuncProto, Type: "int (void)"}},
				},
				{
					Lines: []types.CodeLine{{Text: "int f(void);", Type: types.DeclLine}},
					Decls: []types.Decl{{Name: "f", Kind: types.FuncDef, Type: "int (void)"}},
				},
			},
			expectedLines: []types.CodeLine{
				{Text: "void exit(int status);", Type: types.DeclLine},
				{Text: "int f(void);", Type: types.DeclLine},
				{Text: "int f(void);", Type: types.DeclLine},
			},
			expectedMacros: []types.MacroName{},
			expectedDecls:  []types.Decl{{Name: "f", Kind: types.FuncDef, Type: "int (void)"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sut := NewRegistry()
			for _, turn := range tt.turns {
				sut.Commit(turn)
			}
			if diff := cmp.Diff(tt.expectedLines, sut.Lines()); diff != "" {
				t.Errorf("lines mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.expectedMacros, sut.KnownMacros()); diff != "" {
				t.Errorf("macros mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.expectedDecls, sut.Decls()); diff != "" {
				t.Errorf("decls mismatch (-want +got):\n%s", diff)
			}
			if sut.FuncNo() != 0 {
				t.Errorf("FuncNo() = %d, want 0", sut.FuncNo())
			}
		})
	}
}

func TestRegistry_Advance(t *testing.T) {
	tests := []struct {
		name     string
		advances int
		commits  int
		expected int
	}{
		{name: "no advance", advances: 0, commits: 2, expected: 0},
		{name: "advance without commit", advances: 1, commits: 0, expected: 1},
		{name: "advance and commit", advances: 3, commits: 2, expected: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sut := NewRegistry()
			for range tt.advances {
				sut.Advance()
			}
			for range tt.commits {
				sut.Commit(Turn{})
			}
			if sut.FuncNo() != tt.expected {
				t.Errorf("FuncNo() = %d, want %d", sut.FuncNo(), tt.expected)
			}
		})
	}
}

func TestRegistry_MacroDefinition(t *testing.T) {
	sut := NewRegistry()
	sut.Commit(Turn{Macros: []MacroChange{{Name: "N", Definition: "#define N 5"}}})

	def, ok := sut.MacroDefinition("N")
	if !ok || def != "#define N 5" {
		t.Errorf("MacroDefinition(N) = %q, %v", def, ok)
	}
	if _, ok := sut.MacroDefinition("M"); ok {
		t.Errorf("MacroDefinition(M) should not be found")
	}
}

func TestRegistry_Reset(t *testing.T) {
	sut := NewRegistry()
	sut.Advance()
	sut.Commit(Turn{
		Lines:  []types.CodeLine{{Text: "extern int x;", Type: types.DeclLine}},
		Macros: []MacroChange{{Name: "N", Definition: "#define N 5"}},
		Decls:  []types.Decl{{Name: "x", Kind: types.VarDecl, Type: "int"}},
	})
	sut.Reset()

	if sut.IsDeclared("x") {
		t.Errorf("x should be forgotten after Reset")
	}
	if len(sut.KnownMacros()) != 0 {
		t.Errorf("macros should be forgotten after Reset")
	}
	if !sut.HasLine(types.CodeLine{Text: "void exit(int status);", Type: types.DeclLine}) {
		t.Errorf("initial lines should be restored")
	}
	if sut.FuncNo() != 1 {
		t.Errorf("FuncNo() = %d, want 1", sut.FuncNo())
	}
}
