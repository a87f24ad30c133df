package srcgen

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kakkky/cnsole/errs"
	"github.com/kakkky/cnsole/registry"
	"github.com/kakkky/cnsole/types"
)

func TestGenDeclaration(t *testing.T) {
	tests := []struct {
		name        string
		existing    []types.Decl
		text        string
		lines       []types.CodeLine
		decls       []types.Decl
		expected    *Unit
		expectedErr bool
	}{
		{
			name:  "function definition",
			text:  "int add(int a, int b) { return a + b; }",
			lines: []types.CodeLine{{Text: "int add(int a, int b);", Type: types.DeclLine}},
			decls: []types.Decl{{Name: "add", Kind: types.FuncDef, Type: "int (int, int)"}},
			expected: &Unit{
				Source:    "void exit(int status);\nint add(int a, int b) { return a + b; }\n",
				InputLine: 2,
				Turn: registry.Turn{
					Lines: []types.CodeLine{{Text: "int add(int a, int b);", Type: types.DeclLine}},
					Decls: []types.Decl{{Name: "add", Kind: types.FuncDef, Type: "int (int, int)"}},
				},
			},
		},
		{
			name:     "definition after prototype",
			existing: []types.Decl{{Name: "add", Kind: types.FuncProto, Type: "int (int, int)"}},
			text:     "int add(int a, int b) { return a + b; }",
			lines:    []types.CodeLine{{Text: "int add(int a, int b);", Type: types.DeclLine}},
			decls:    []types.Decl{{Name: "add", Kind: types.FuncDef, Type: "int (int, int)"}},
			expected: &Unit{
				Source:    "void exit(int status);\nint add(int a, int b) { return a + b; }\n",
				InputLine: 2,
				Turn: registry.Turn{
					Lines: []types.CodeLine{{Text: "int add(int a, int b);", Type: types.DeclLine}},
					Decls: []types.Decl{{Name: "add", Kind: types.FuncDef, Type: "int (int, int)"}},
				},
			},
		},
		{
			name:        "function redefinition",
			existing:    []types.Decl{{Name: "add", Kind: types.FuncDef, Type: "int (int, int)"}},
			text:        "int add(int a, int b) { return a - b; }",
			decls:       []types.Decl{{Name: "add", Kind: types.FuncDef, Type: "int (int, int)"}},
			expectedErr: true,
		},
		{
			name:        "function named like a variable",
			existing:    []types.Decl{{Name: "x", Kind: types.VarDecl, Type: "int"}},
			text:        "int x(void);",
			decls:       []types.Decl{{Name: "x", Kind: types.FuncProto, Type: "int (void)"}},
			expectedErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := registry.NewRegistry()
			state.Commit(registry.Turn{Decls: tt.existing})

			got, err := GenDeclaration(state, tt.text, tt.lines, tt.decls)
			if tt.expectedErr {
				var badInputErr *errs.BadInputError
				if !errors.As(err, &badInputErr) {
					t.Fatalf("expected BadInputError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("GenDeclaration() error = %v", err)
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
