package executor

import "github.com/kakkky/cnsole/types"

// Result はエントリ関数の戻り値
// Classに応じてInt, Uint, Float, Ptrのいずれかに値が入る
type Result struct {
	Type  types.QualType
	Class types.ValueClass
	Int   int64
	Uint  uint64
	Float float64
	Ptr   uintptr
}
