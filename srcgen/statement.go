package srcgen

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kakkky/cnsole/analyzer"
	"github.com/kakkky/cnsole/diagnostics"
	"github.com/kakkky/cnsole/errs"
	"github.com/kakkky/cnsole/registry"
	"github.com/kakkky/cnsole/types"
)

// LocateFuncName は文の種類を調べるために包む関数の名前
const LocateFuncName = "__cnsole_locate"

const locatePrologue = "void " + LocateFuncName + "(void) {\n"

// Generator は文をエントリ関数と宣言に変換する
type Generator struct {
	analyzer analyzer.Analyzer
	logger   *slog.Logger
}

// NewGenerator はGeneratorのインスタンスを生成する
func NewGenerator(a analyzer.Analyzer, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Generator{
		analyzer: a,
		logger:   logger,
	}
}

// located は関数本体の中で解析した文を表す
type located struct {
	stmt *analyzer.Node
	src  string
}

func (l *located) text(n *analyzer.Node) (string, bool) {
	return n.Source(l.src)
}

// GenStatement は一つの文から翻訳単位を作る
//   - 式は値を返すエントリ関数になる
//   - 変数宣言はファイルスコープへ移し、定数でない初期化はエントリ関数の中で行う
//   - その他の宣言はそのままファイルスコープに置く
//   - その他の文は値を返さないエントリ関数になる
func (g *Generator) GenStatement(ctx context.Context, state State, stmt string) (*Unit, error) {
	stmt = strings.TrimSpace(stmt)
	loc, err := g.locate(ctx, state, stmt)
	if err != nil {
		return nil, err
	}
	entry := EntryFuncName(state.FuncNo())

	switch {
	case loc.stmt.IsExpr():
		expr, ok := loc.text(loc.stmt)
		if !ok {
			expr = strings.TrimSuffix(stmt, ";")
		}
		class := types.ClassOf(loc.stmt.DesugaredType())
		g.logger.Debug("generating expression function", "entry", entry, "type", loc.stmt.QualType(), "class", class)
		appendix, offset := genExprFunction(entry, class, expr)
		unit := newUnit(state, appendix, offset)
		unit.Entry = entry
		unit.Type = loc.stmt.QualType()
		unit.Class = class
		unit.Turn = registry.Turn{Lines: []types.CodeLine{{Text: stmt, Type: types.StmtLine}}}
		return unit, nil
	case loc.stmt.Kind == "DeclStmt":
		if vars, ok := plainVarDecls(loc.stmt); ok {
			return g.genVarDecls(state, loc, vars, entry)
		}
		g.logger.Debug("keeping declaration at file scope")
		unit := newUnit(state, stmt+"\n", 0)
		unit.Turn = registry.Turn{
			Lines: []types.CodeLine{{Text: stmt, Type: types.DeclLine}},
			Decls: verbatimDecls(state, loc.stmt),
		}
		return unit, nil
	}

	g.logger.Debug("generating statement function", "entry", entry, "kind", loc.stmt.Kind)
	appendix, offset := genVoidFunction(entry, stmt)
	unit := newUnit(state, appendix, offset)
	unit.Entry = entry
	unit.Class = types.Void
	unit.Turn = registry.Turn{Lines: []types.CodeLine{{Text: stmt, Type: types.StmtLine}}}
	return unit, nil
}

// locate は文を関数本体として解析し、最初の文のノードを返す
func (g *Generator) locate(ctx context.Context, state State, stmt string) (*located, error) {
	src := Source(state.Lines(), "") + locatePrologue
	pos := len(src)
	src += stmt + "\n}\n"

	result, err := g.analyzer.Parse(ctx, src, LocateFuncName)
	if err != nil {
		return nil, err
	}
	if result.HasErrors() {
		return nil, errs.NewBadInputError("failed to parse input" + diagnostics.Format(result.Diagnostics, diagnostics.LineOf(src, pos)))
	}
	fn := result.FindFunc(LocateFuncName)
	if fn == nil {
		return nil, errs.NewInternalError("locate function not found in analyzer output")
	}
	for _, node := range fn.Body().Inner {
		if node.Kind == "NullStmt" {
			continue
		}
		if begin, ok := node.Begin(); ok && begin >= pos {
			return &located{stmt: node, src: src}, nil
		}
	}
	return nil, errs.NewBadInputError("no statement found in input")
}

// plainVarDecls はexternでない変数だけからなる宣言文の変数を返す
func plainVarDecls(declStmt *analyzer.Node) ([]*analyzer.Node, bool) {
	if len(declStmt.Inner) == 0 {
		return nil, false
	}
	for _, decl := range declStmt.Inner {
		if decl.Kind != "VarDecl" || decl.StorageClass == "extern" {
			return nil, false
		}
	}
	return declStmt.Inner, true
}

// verbatimDecls はそのまま置く宣言文のうち、関数のプロトタイプとextern変数の名前を返す
func verbatimDecls(state State, declStmt *analyzer.Node) []types.Decl {
	var decls []types.Decl
	for _, decl := range declStmt.Inner {
		name := types.DeclName(decl.Name)
		switch decl.Kind {
		case "FunctionDecl":
			decls = append(decls, types.Decl{Name: name, Kind: types.FuncProto, Type: decl.QualType()})
		case "VarDecl":
			if _, ok := state.Lookup(name); !ok {
				decls = append(decls, types.Decl{Name: name, Kind: types.VarDecl, Type: decl.QualType()})
			}
		}
	}
	return decls
}

// genVarDecls は変数宣言をファイルスコープの定義と、エントリ関数の中での初期化に分ける
func (g *Generator) genVarDecls(state State, loc *located, vars []*analyzer.Node, entry types.FuncName) (*Unit, error) {
	var globals, body []string
	turn := registry.Turn{}
	for _, v := range vars {
		name := types.DeclName(v.Name)
		decl := types.Decl{Name: name, Kind: types.VarDecl, Type: v.QualType()}
		if err := checkRedeclaration(state, decl); err != nil {
			return nil, err
		}
		declarator := g.declarator(loc, v)

		init := initializer(v)
		switch {
		case init == nil:
			globals = append(globals, declarator+";")
		case isConstantInit(init):
			initText, ok := loc.text(init)
			if !ok {
				return nil, errs.NewInternalError("failed to locate initializer of '" + v.Name + "'")
			}
			globals = append(globals, declarator+" = "+initText+";")
		default:
			stmts, err := g.hoist(loc, v, init)
			if err != nil {
				return nil, err
			}
			globals = append(globals, declarator+";")
			body = append(body, stmts...)
		}
		turn.Lines = append(turn.Lines, types.CodeLine{Text: "extern " + declarator + ";", Type: types.DeclLine})
		turn.Decls = append(turn.Decls, decl)
	}
	for _, stmt := range body {
		turn.Lines = append(turn.Lines, types.CodeLine{Text: stmt, Type: types.StmtLine})
	}

	appendix := strings.Join(globals, "\n") + "\n"
	var hasEntry bool
	if len(body) > 0 {
		fn, _ := genVoidFunction(entry, strings.Join(body, "\n"))
		appendix += fn
		hasEntry = true
	}
	g.logger.Debug("hoisting variable declarations", "globals", len(globals), "initializers", len(body))

	unit := newUnit(state, appendix, 0)
	if hasEntry {
		unit.Entry = entry
	}
	unit.Class = types.Void
	unit.Turn = turn
	return unit, nil
}

// declarator は変数の宣言子を作る
// 無名の構造体などで型名が書けない場合は、元のソースの=より前を使う
func (g *Generator) declarator(loc *located, v *analyzer.Node) string {
	if declarator, ok := types.Declarator(v.QualType(), types.DeclName(v.Name)); ok {
		return declarator
	}
	text, _ := loc.text(v)
	if i := strings.Index(text, "="); i >= 0 {
		text = text[:i]
	}
	g.logger.Debug("using source text as declarator", "name", v.Name)
	return strings.TrimSpace(text)
}

// hoist は定数でない初期化をエントリ関数の中の代入文に変換する
func (g *Generator) hoist(loc *located, v *analyzer.Node, init *analyzer.Node) ([]string, error) {
	initText, ok := loc.text(init)
	if !ok {
		return nil, errs.NewInternalError("failed to locate initializer of '" + v.Name + "'")
	}
	if init.Kind != "InitListExpr" {
		return []string{fmt.Sprintf("%s = %s;", v.Name, initText)}, nil
	}
	// 配列は代入できないため要素ごとに代入する
	if strings.HasSuffix(string(v.DesugaredType()), "]") {
		var stmts []string
		for i, elem := range init.Inner {
			elemText, ok := loc.text(elem)
			if !ok {
				continue
			}
			stmts = append(stmts, fmt.Sprintf("%s[%d] = %s;", v.Name, i, elemText))
		}
		return stmts, nil
	}
	// 構造体は複合リテラルで代入する
	typeName := "__typeof__(" + v.Name + ")"
	if _, ok := types.Declarator(v.QualType(), ""); ok {
		typeName = string(v.QualType())
	}
	return []string{fmt.Sprintf("%s = (%s)%s;", v.Name, typeName, initText)}, nil
}

// initializer は変数の初期化式を返す
func initializer(v *analyzer.Node) *analyzer.Node {
	if v.Init == "" {
		return nil
	}
	for i := len(v.Inner) - 1; i >= 0; i-- {
		if v.Inner[i].IsExpr() {
			return v.Inner[i]
		}
	}
	return nil
}
