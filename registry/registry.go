package registry

import (
	"slices"

	"github.com/kakkky/cnsole/types"
)

// initialLines はセッション開始時から持つ宣言
// ヘッダをincludeしなくてもexit()を呼べるようにする
var initialLines = []types.CodeLine{
	{Text: "void exit(int status);", Type: types.DeclLine},
}

// Registry はReplセッション中に受理されたコード行、マクロ、宣言名を管理する
// 変更はターンが成功したときのCommitを通してのみ行う
type Registry struct {
	lines  []types.CodeLine
	macros map[types.MacroName]string
	decls  []types.Decl
	funcNo int
}

// Turn は一回のターンで受理された内容を表す
type Turn struct {
	Lines  []types.CodeLine
	Macros []MacroChange
	Decls  []types.Decl
}

// MacroChange はターン中のマクロの定義・削除を表す
type MacroChange struct {
	Name types.MacroName
	// Definition は"#define"から始まるディレクティブ全体
	Definition string
	Undef      bool
}

// NewRegistry はRegistryのインスタンスを生成する
func NewRegistry() *Registry {
	r := &Registry{}
	r.Reset()
	return r
}

// Reset はセッション開始直後の状態に戻す
// 読み込み済みのモジュールは実行イメージに残るため、エントリ関数の番号は戻さない
func (r *Registry) Reset() {
	r.lines = slices.Clone(initialLines)
	r.macros = map[types.MacroName]string{}
	r.decls = []types.Decl{}
}

// Append はコード行を追加する
func (r *Registry) Append(line types.CodeLine) {
	r.lines = append(r.lines, line)
}

// Lines は受理されたコード行を受理順に返す
func (r *Registry) Lines() []types.CodeLine {
	return slices.Clone(r.lines)
}

// HasLine は同じ種別・同じ内容の行がすでに受理されているかを返す
func (r *Registry) HasLine(line types.CodeLine) bool {
	return slices.Contains(r.lines, line)
}

// KnownMacros は定義済みのマクロ名を名前順に返す
func (r *Registry) KnownMacros() []types.MacroName {
	names := make([]types.MacroName, 0, len(r.macros))
	for name := range r.macros {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// MacroDefinition はマクロの定義ディレクティブを返す
func (r *Registry) MacroDefinition(name types.MacroName) (string, bool) {
	def, ok := r.macros[name]
	return def, ok
}

// IsDeclared は指定された名前が宣言済みかを返す
func (r *Registry) IsDeclared(name types.DeclName) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Lookup は指定された名前の宣言を返す
func (r *Registry) Lookup(name types.DeclName) (types.Decl, bool) {
	for _, decl := range r.decls {
		if decl.Name == name {
			return decl, true
		}
	}
	return types.Decl{}, false
}

// Declare は名前を登録する
// 関数のプロトタイプの後に定義が来た場合は種別を更新する
func (r *Registry) Declare(decl types.Decl) {
	for i, registered := range r.decls {
		if registered.Name == decl.Name {
			if decl.Kind > registered.Kind {
				r.decls[i] = decl
			}
			return
		}
	}
	r.decls = append(r.decls, decl)
}

// Decls は宣言済みの名前を登録順に返す
func (r *Registry) Decls() []types.Decl {
	return slices.Clone(r.decls)
}

// FuncNo は次に使うエントリ関数の番号を返す
func (r *Registry) FuncNo() int {
	return r.funcNo
}

// Advance はエントリ関数の番号を進める
// モジュールがリンクされた時点で呼び、実行に失敗しても同じ名前を再利用しない
func (r *Registry) Advance() {
	r.funcNo++
}

// Commit はターンの内容を一度に反映する
func (r *Registry) Commit(turn Turn) {
	for _, line := range turn.Lines {
		r.Append(line)
	}
	for _, change := range turn.Macros {
		if change.Undef {
			delete(r.macros, change.Name)
			continue
		}
		r.macros[change.Name] = change.Definition
	}
	for _, decl := range turn.Decls {
		r.Declare(decl)
	}
}
