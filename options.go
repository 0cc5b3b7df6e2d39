package windialog

// Options はダイアログの動作フラグの組み合わせです。値はネイティブの
// FILEOPENDIALOGOPTIONS（FOS_*）と同一です。不正な組み合わせはダイアログの
// 表示失敗として返ります。
type Options uint32

const (
	// OverwritePrompt は保存時に既存ファイルへの上書き確認を表示します（FOS_OVERWRITEPROMPT）。
	OverwritePrompt Options = 0x00000002
	// StrictFileTypes は指定したファイル種別以外を選べないようにし、
	// 既定の「すべてのファイル」フィルタを出しません（FOS_STRICTFILETYPES）。
	StrictFileTypes Options = 0x00000004
	// NoChangeDir はダイアログ操作でカレントディレクトリを変えません（FOS_NOCHANGEDIR）。
	NoChangeDir Options = 0x00000008
	// PickFolders はファイルではなくフォルダを選択させます（FOS_PICKFOLDERS）。
	// 指定すると AllowMultiSelect は無効になります。
	PickFolders Options = 0x00000020
	// ForceFileSystem はファイルシステム上の項目のみを許可します（FOS_FORCEFILESYSTEM）。
	// AllNonStorageItems を指定しない限り常に付与されます。
	ForceFileSystem Options = 0x00000040
	// AllNonStorageItems はシェル名前空間の仮想項目の選択を許可します（FOS_ALLNONSTORAGEITEMS）。
	AllNonStorageItems Options = 0x00000080
	// NoValidate は入力の検証を行いません（FOS_NOVALIDATE）。
	NoValidate Options = 0x00000100
	// AllowMultiSelect は Open での複数選択を許可します（FOS_ALLOWMULTISELECT）。
	// Save では無視されます。
	AllowMultiSelect Options = 0x00000200
	// PathMustExist は存在するパスのみを許可します（FOS_PATHMUSTEXIST）。
	PathMustExist Options = 0x00000800
	// FileMustExist は存在するファイルのみを許可します（FOS_FILEMUSTEXIST）。
	FileMustExist Options = 0x00001000
	// CreatePrompt は存在しないファイル名に対して作成確認を表示します（FOS_CREATEPROMPT）。
	CreatePrompt Options = 0x00002000
	// ShareAware は共有違反を呼び出し側で処理します（FOS_SHAREAWARE）。
	ShareAware Options = 0x00004000
	// NoReadOnlyReturn は読み取り専用の項目を返しません（FOS_NOREADONLYRETURN）。
	NoReadOnlyReturn Options = 0x00008000
	// NoTestFileCreate は保存先の作成テストを行いません（FOS_NOTESTFILECREATE）。
	NoTestFileCreate Options = 0x00010000
	// HideMRUPlaces は最近使った場所を表示しません（FOS_HIDEMRUPLACES）。
	HideMRUPlaces Options = 0x00020000
	// HidePinnedPlaces は既定のピン留め場所を表示しません（FOS_HIDEPINNEDPLACES）。
	HidePinnedPlaces Options = 0x00040000
	// NoDereferenceLinks はショートカットをリンク先に解決しません（FOS_NODEREFERENCELINKS）。
	NoDereferenceLinks Options = 0x00100000
	// DontAddToRecent は最近使ったファイルに追加しません（FOS_DONTADDTORECENT）。
	DontAddToRecent Options = 0x02000000
	// ForceShowHidden は隠しファイルを表示します（FOS_FORCESHOWHIDDEN）。
	ForceShowHidden Options = 0x10000000
	// DefaultNoMiniMode は保存ダイアログを展開モードで表示します（FOS_DEFAULTNOMINIMODE）。
	DefaultNoMiniMode Options = 0x20000000
	// ForcePreviewPaneOn はプレビューウィンドウを常に表示します（FOS_FORCEPREVIEWPANEON）。
	ForcePreviewPaneOn Options = 0x40000000
	// SupportStreamableItems はストリーム項目をサポートします（FOS_SUPPORTSTREAMABLEITEMS）。
	SupportStreamableItems Options = 0x80000000
)

// effectiveOptions は呼び出し側のフラグを実際にネイティブへ渡すフラグへ変換します。
//   - AllNonStorageItems を明示しない限り ForceFileSystem を付与する
//   - AllowMultiSelect は Open のみ有効（Save では常に外す）
//   - PickFolders 指定時は AllowMultiSelect を外す
func effectiveOptions(kind dialogKind, opts Options) Options {
	eff := opts
	if eff&AllNonStorageItems == 0 {
		eff |= ForceFileSystem
	}
	if kind == saveKind || eff&PickFolders != 0 {
		eff &^= AllowMultiSelect
	}
	return eff
}
