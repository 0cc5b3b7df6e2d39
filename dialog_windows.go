//go:build windows

package windialog

import "runtime"

// Open は「ファイルを開く」ダイアログを表示し、ユーザーが確定または
// キャンセルするまでブロックします。PickFolders を指定するとフォルダ選択、
// AllowMultiSelect を指定すると複数選択になります。
//
// COM は STA で初期化されるため、表示中は呼び出しスレッドを OS スレッドに
// 固定します。同じダイアログを複数スレッドから操作することはできません。
func Open(params Params) (Result, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	return showDialog(newBackend(), openKind, params)
}

// Save は「名前を付けて保存」ダイアログを表示し、ユーザーが確定または
// キャンセルするまでブロックします。AllowMultiSelect は無視されます。
// 確定時は Result.FileName に入力された生のファイル名が入ります
// （まだディスク上に存在しないことがあります）。
func Save(params Params) (Result, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	return showDialog(newBackend(), saveKind, params)
}
