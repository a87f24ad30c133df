package executor

import (
	"fmt"

	"github.com/ebitengine/purego"
	"github.com/kakkky/cnsole/types"
)

//go:generate mockgen -package=executor -source=./loader.go -destination=./loader_mock.go
type loader interface {
	dlopen(path string) (handle uintptr, err error)
	dlsym(handle uintptr, name string) (fn uintptr, err error)
	dlclose(handle uintptr) error
	call(fn uintptr, class types.ValueClass) (*Result, error)
	flushStdio(fflush uintptr)
}

type defaultLoader struct{}

func newDefaultLoader() *defaultLoader {
	return &defaultLoader{}
}

// dlopen はモジュールを即時解決でグローバルな名前空間にロードする
// 後続のモジュールはここで公開されたシンボルに対してリンクされる
func (dl *defaultLoader) dlopen(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func (dl *defaultLoader) dlsym(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func (dl *defaultLoader) dlclose(handle uintptr) error {
	return purego.Dlclose(handle)
}

// call は引数なしのエントリ関数を戻り値の種別に合わせた型で呼び出す
func (dl *defaultLoader) call(fn uintptr, class types.ValueClass) (*Result, error) {
	result := &Result{}
	switch class {
	case types.Void, types.NonPrintable:
		var f func()
		purego.RegisterFunc(&f, fn)
		f()
	case types.Bool:
		var f func() bool
		purego.RegisterFunc(&f, fn)
		if f() {
			result.Uint = 1
		}
	case types.Int8:
		var f func() int8
		purego.RegisterFunc(&f, fn)
		result.Int = int64(f())
	case types.Int16:
		var f func() int16
		purego.RegisterFunc(&f, fn)
		result.Int = int64(f())
	case types.Int32:
		var f func() int32
		purego.RegisterFunc(&f, fn)
		result.Int = int64(f())
	case types.Int64:
		var f func() int64
		purego.RegisterFunc(&f, fn)
		result.Int = f()
	case types.Uint8:
		var f func() uint8
		purego.RegisterFunc(&f, fn)
		result.Uint = uint64(f())
	case types.Uint16:
		var f func() uint16
		purego.RegisterFunc(&f, fn)
		result.Uint = uint64(f())
	case types.Uint32:
		var f func() uint32
		purego.RegisterFunc(&f, fn)
		result.Uint = uint64(f())
	case types.Uint64:
		var f func() uint64
		purego.RegisterFunc(&f, fn)
		result.Uint = f()
	case types.Float32:
		var f func() float32
		purego.RegisterFunc(&f, fn)
		result.Float = float64(f())
	case types.Float64:
		var f func() float64
		purego.RegisterFunc(&f, fn)
		result.Float = f()
	case types.Pointer, types.CharPointer:
		var f func() uintptr
		purego.RegisterFunc(&f, fn)
		result.Ptr = f()
	default:
		return nil, fmt.Errorf("unsupported value class %d", class)
	}
	return result, nil
}

// flushStdio はfflush(NULL)を呼び、C側でバッファされた出力を書き出す
func (dl *defaultLoader) flushStdio(fflush uintptr) {
	var f func(uintptr) int32
	purego.RegisterFunc(&f, fflush)
	f(0)
}
