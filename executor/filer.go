package executor

import (
	"os"

	"github.com/kakkky/cnsole/errs"
)

//go:generate mockgen -package=executor -source=./filer.go -destination=./filer_mock.go
type filer interface {
	createWorkDir() (dir string, cleanup func(), err error)
}

type defaultFiler struct{}

func newDefaultFiler() *defaultFiler {
	return &defaultFiler{}
}

// createWorkDir はコンパイルしたモジュールを置く一時ディレクトリを作る
// モジュールはセッションの間ロードされたままなので、cleanupはClose時にだけ呼ぶ
func (df *defaultFiler) createWorkDir() (dir string, cleanup func(), err error) {
	dir, err = os.MkdirTemp("", "cnsole")
	if err != nil {
		return "", nil, errs.NewInternalError("failed to create temporary directory").Wrap(err)
	}
	cleanup = func() {
		if err := os.RemoveAll(dir); err != nil {
			errs.HandleError(errs.NewInternalError("failed to remove temporary directory").Wrap(err))
		}
	}
	return dir, cleanup, nil
}
