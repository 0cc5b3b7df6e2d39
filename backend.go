package windialog

// comBackend はネイティブ COM 層との境界です。実装は Windows では
// ole32/shell32 への呼び出し、テストでは計測付きのフェイクです。
// 各メソッドが返すエラーは Op と Code を設定した *Error で、失敗工程
// （Stage）は呼び出し側のパイプラインが刻印します。
type comBackend interface {
	// initialize は呼び出しスレッドの COM を STA で初期化します。
	// owned はこの呼び出しが初期化を行った（＝対で解放すべき）ことを示します。
	// 既に初期化済みの場合は (false, nil) を返します。
	initialize() (owned bool, err error)
	// uninitialize は initialize と対になる解放です。
	uninitialize()
	// createDialog は種別に応じたダイアログインスタンスを生成します。
	createDialog(kind dialogKind) (dialogHandle, error)
}

// dialogHandle は生成済みダイアログ1個の所有権を表します。所有者は
// release をちょうど1回呼びます。
type dialogHandle interface {
	options() (uint32, error)
	setOptions(opts uint32) error
	setTitle(title string) error
	setDefaultFolder(path string) error
	setFolder(path string) error
	setFileName(name string) error
	setFileNameLabel(label string) error
	setOkButtonLabel(label string) error
	setDefaultExtension(ext string) error
	setFileTypes(types []FileType) error
	setFileTypeIndex(index uint32) error
	setSaveAsItem(path string) error

	// show はモーダル表示し、ユーザーが確定するまでブロックします。
	// キャンセルは hresultCancelled を Code に持つエラーとして返ります。
	show(owner uintptr) error

	// result は単一の選択項目を返します（Save と単一選択の Open）。
	result() (itemHandle, error)
	// results は複数選択の結果配列を返します（Open のみ）。
	results() (itemListHandle, error)
	// fileName はファイル名欄の生の入力文字列を返します。
	fileName() (string, error)
	// fileTypeIndex は選択中のファイル種別の 1 始まりの番号を返します。
	fileTypeIndex() (uint32, error)

	release()
}

// itemHandle は選択された1項目を表します。パスをコピーしたら
// 速やかに release します。
type itemHandle interface {
	// path は項目の絶対ファイルシステムパスを所有文字列として返します。
	path() (string, error)
	release()
}

// itemListHandle は複数選択の結果配列を表します。
type itemListHandle interface {
	count() (uint32, error)
	item(index uint32) (itemHandle, error)
	release()
}
