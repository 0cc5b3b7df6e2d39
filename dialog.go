// Package windialog は Windows の Common Item Dialog
// （IFileOpenDialog / IFileSaveDialog）を型安全に扱うためのラッパーを提供します。
//
// 呼び出し側は Params にタイトル・初期フォルダ・ファイル種別フィルタなどを
// 宣言的に指定して Open または Save を呼ぶだけで、COM の初期化・インターフェイスの
// 生成と解放・UTF-16 文字列の変換をすべてこのパッケージが引き受けます。
// ユーザーのキャンセルはエラーではなく Result.Cancelled で返ります。
package windialog

// FileType はダイアログの「ファイルの種類」欄に表示する1エントリです。
type FileType struct {
	// Name は表示名です（例: "JPG Files"）。
	Name string
	// Pattern は検索パターンです。複数指定はセミコロン区切り（例: "*.jpg;*.jpeg"）。
	// パターンの妥当性はここでは検証しません（不正なパターンは OS 側で単に
	// 「一致なし」として扱われます）。
	Pattern string
}

// Params はダイアログ表示のパラメータです。すべて省略可能で、
// 未設定のフィールドに対してはネイティブ呼び出し自体を行いません
// （空文字列で OS のデフォルトを上書きすることはありません）。
type Params struct {
	// Title はタイトルバーに表示する文字列です。
	Title string
	// DefaultFolder は初回表示時に開くフォルダです。2回目以降は OS が
	// 前回のフォルダを記憶します。
	DefaultFolder string
	// Folder は前回の記憶に関係なく常に選択されるフォルダです。
	// 通常は DefaultFolder を使ってください。
	Folder string
	// FileName はファイル名欄にあらかじめ入力しておく文字列です。
	FileName string
	// FileNameLabel はファイル名欄の左に表示するラベルです。
	FileNameLabel string
	// FileTypes は「ファイルの種類」のエントリ一覧です。空なら
	// フィルタ設定を一切行いません。
	FileTypes []FileType
	// FileTypeIndex は初期選択するファイル種別の 1 始まりの番号です。
	// 0 または FileTypes が空の場合は設定しません。
	FileTypeIndex uint32
	// DefaultExtension は拡張子が入力されなかったときに補う既定の拡張子です
	// （先頭のドットは不要。例: "jpg"）。
	DefaultExtension string
	// OkButtonLabel は「開く」「保存」ボタンの文字列を置き換えます。
	OkButtonLabel string
	// SaveAsItem は「名前を付けて保存」の対象となる既存ファイルのパスです。
	// Save でのみ使われます。
	SaveAsItem string
	// Options はダイアログの動作フラグです。
	Options Options
	// Owner は親ウィンドウの HWND です。0 なら独立したトップレベル
	// ウィンドウとして表示します。
	Owner uintptr
}

// Result はダイアログ操作の結果です。
type Result struct {
	// Cancelled はユーザーがキャンセルしたとき true です。このとき他の
	// フィールドはゼロ値です。
	Cancelled bool
	// Path は選択された最初のパスです（単一選択向けの便宜フィールド）。
	Path string
	// Paths は選択されたすべての絶対パスです。複数になるのは
	// AllowMultiSelect を指定した Open のみで、順序は OS が返したままです。
	Paths []string
	// FileName は Save でユーザーが入力・選択した生のファイル名です。
	// まだディスク上に存在しないことがあります。Open では常に空です。
	FileName string
	// FileTypeIndex は確定時に選択されていたファイル種別の 1 始まりの番号です。
	FileTypeIndex uint32
}

// dialogKind はダイアログの種別（開く / 保存）です。
type dialogKind int

const (
	openKind dialogKind = iota
	saveKind
)

// showDialog はダイアログ1回分のパイプラインです。COM 初期化 → 生成 → 設定 →
// モーダル表示 → 結果取得の順に進み、どの経路で抜けても取得済みの
// ネイティブハンドルは必ず解放されます。
func showDialog(b comBackend, kind dialogKind, params Params) (Result, error) {
	guard, err := acquireCOM(b)
	if err != nil {
		return Result{}, err
	}
	defer guard.release()

	dlg, err := b.createDialog(kind)
	if err != nil {
		return Result{}, stageErr(err, StageCreate)
	}
	defer dlg.release()

	if err := configure(dlg, kind, params); err != nil {
		return Result{}, err
	}

	if err := dlg.show(params.Owner); err != nil {
		if isCancelled(err) {
			// キャンセルは失敗ではない
			return Result{Cancelled: true}, nil
		}
		return Result{}, stageErr(err, StageShow)
	}

	multi := effectiveOptions(kind, params.Options)&AllowMultiSelect != 0
	return extract(dlg, kind, multi)
}

// configure は Params をネイティブの設定呼び出しへ変換します。
// 各ステップは独立に失敗し得て、失敗は StageConfigure のエラーになります。
func configure(dlg dialogHandle, kind dialogKind, p Params) error {
	current, err := dlg.options()
	if err != nil {
		return stageErr(err, StageConfigure)
	}
	if err := dlg.setOptions(current | uint32(effectiveOptions(kind, p.Options))); err != nil {
		return stageErr(err, StageConfigure)
	}

	if p.Title != "" {
		if err := dlg.setTitle(p.Title); err != nil {
			return stageErr(err, StageConfigure)
		}
	}
	if p.DefaultFolder != "" {
		if err := dlg.setDefaultFolder(p.DefaultFolder); err != nil {
			return stageErr(err, StageConfigure)
		}
	}
	if p.Folder != "" {
		if err := dlg.setFolder(p.Folder); err != nil {
			return stageErr(err, StageConfigure)
		}
	}
	if p.FileName != "" {
		if err := dlg.setFileName(p.FileName); err != nil {
			return stageErr(err, StageConfigure)
		}
	}
	if p.FileNameLabel != "" {
		if err := dlg.setFileNameLabel(p.FileNameLabel); err != nil {
			return stageErr(err, StageConfigure)
		}
	}
	if p.OkButtonLabel != "" {
		if err := dlg.setOkButtonLabel(p.OkButtonLabel); err != nil {
			return stageErr(err, StageConfigure)
		}
	}
	if kind == saveKind && p.SaveAsItem != "" {
		if err := dlg.setSaveAsItem(p.SaveAsItem); err != nil {
			return stageErr(err, StageConfigure)
		}
	}
	if len(p.FileTypes) > 0 {
		if err := dlg.setFileTypes(p.FileTypes); err != nil {
			return stageErr(err, StageConfigure)
		}
		if p.FileTypeIndex > 0 {
			if err := dlg.setFileTypeIndex(p.FileTypeIndex); err != nil {
				return stageErr(err, StageConfigure)
			}
		}
	}
	if p.DefaultExtension != "" {
		if err := dlg.setDefaultExtension(p.DefaultExtension); err != nil {
			return stageErr(err, StageConfigure)
		}
	}
	return nil
}

// extract は確定済みダイアログから結果を取り出します。
func extract(dlg dialogHandle, kind dialogKind, multi bool) (Result, error) {
	if kind == openKind && multi {
		return extractMulti(dlg)
	}
	return extractSingle(dlg, kind)
}

func extractSingle(dlg dialogHandle, kind dialogKind) (Result, error) {
	item, err := dlg.result()
	if err != nil {
		return Result{}, stageErr(err, StageExtract)
	}
	path, perr := item.path()
	item.release()
	if perr != nil {
		return Result{}, stageErr(perr, StageExtract)
	}

	res := Result{Path: path, Paths: []string{path}}
	if kind == saveKind {
		name, err := dlg.fileName()
		if err != nil {
			return Result{}, stageErr(err, StageExtract)
		}
		res.FileName = name
	}
	idx, err := dlg.fileTypeIndex()
	if err != nil {
		return Result{}, stageErr(err, StageExtract)
	}
	res.FileTypeIndex = idx
	return res, nil
}

func extractMulti(dlg dialogHandle) (Result, error) {
	list, err := dlg.results()
	if err != nil {
		return Result{}, stageErr(err, StageExtract)
	}
	defer list.release()

	n, err := list.count()
	if err != nil {
		return Result{}, stageErr(err, StageExtract)
	}
	paths := make([]string, 0, n)
	for i := uint32(0); i < n; i++ {
		item, err := list.item(i)
		if err != nil {
			return Result{}, stageErr(err, StageExtract)
		}
		// パスをコピーしたら即座に解放して次へ進む
		path, perr := item.path()
		item.release()
		if perr != nil {
			// 部分的な結果は返さない（全件成功か失敗のどちらか）
			return Result{}, stageErr(perr, StageExtract)
		}
		paths = append(paths, path)
	}

	res := Result{Paths: paths}
	if len(paths) > 0 {
		res.Path = paths[0]
	}
	idx, err := dlg.fileTypeIndex()
	if err != nil {
		return Result{}, stageErr(err, StageExtract)
	}
	res.FileTypeIndex = idx
	return res, nil
}
