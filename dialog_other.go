//go:build !windows

package windialog

// Open は Windows 以外では ErrUnsupported を返します。
func Open(params Params) (Result, error) {
	return Result{}, ErrUnsupported
}

// Save は Windows 以外では ErrUnsupported を返します。
func Save(params Params) (Result, error) {
	return Result{}, ErrUnsupported
}
