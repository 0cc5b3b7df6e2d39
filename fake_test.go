package windialog

// 計測付きのフェイクネイティブ層。すべてのネイティブ呼び出しを Op 名で記録し、
// 生存中のハンドル数と COM 初期化・解放の対応を数える。実物の ole32/shell32 を
// 呼ばずにパイプライン全体を検証するために使う。

const eFail = int32(-2147467259) // E_FAIL (0x80004005)

type fakeNative struct {
	// 失敗注入
	failInitHR   int32 // 0 以外なら initialize をこの HRESULT で失敗させる
	failCreateHR int32 // 0 以外なら createDialog をこの HRESULT で失敗させる

	// 計測
	initialized bool
	inits       int
	uninits     int
	calls       []string
	live        int // 生存中のネイティブハンドル数

	dialog *fakeDialog
}

// newFake は paths を選択結果として返すフェイクを作る。
func newFake(paths ...string) *fakeNative {
	f := &fakeNative{
		dialog: &fakeDialog{
			resultPaths: paths,
			typeIndex:   1,
			failPathAt:  -1,
		},
	}
	f.dialog.native = f
	return f
}

func (f *fakeNative) record(op string) { f.calls = append(f.calls, op) }

func (f *fakeNative) callCount(op string) int {
	n := 0
	for _, c := range f.calls {
		if c == op {
			n++
		}
	}
	return n
}

func (f *fakeNative) initialize() (bool, error) {
	f.record("CoInitializeEx")
	if f.failInitHR != 0 {
		return false, &Error{Op: "CoInitializeEx", Code: f.failInitHR}
	}
	f.inits++
	if f.initialized {
		// S_FALSE 相当: 既に初期化済み
		return false, nil
	}
	f.initialized = true
	return true, nil
}

func (f *fakeNative) uninitialize() {
	f.record("CoUninitialize")
	f.uninits++
	f.initialized = false
}

func (f *fakeNative) createDialog(kind dialogKind) (dialogHandle, error) {
	f.record("CoCreateInstance")
	if f.failCreateHR != 0 {
		return nil, &Error{Op: "CoCreateInstance", Code: f.failCreateHR}
	}
	f.dialog.kind = kind
	f.live++
	return f.dialog, nil
}

type fakeDialog struct {
	native *fakeNative
	kind   dialogKind

	// 失敗注入: failOp に一致した呼び出しを failHR（0 なら eFail）で失敗させる
	failOp string
	failHR int32

	// show 成功時に返す結果
	resultPaths []string
	typedName   string
	typeIndex   uint32
	failPathAt  int // この添字の項目の path() を失敗させる（-1 で無効）

	// 記録された設定
	baseOpts     uint32 // GetOptions が返す既存フラグ
	opts         uint32 // SetOptions で渡されたフラグ
	title        string
	defFolder    string
	folder       string
	fileNameIn   string
	fileLabel    string
	okLabel      string
	defExt       string
	saveAsPath   string
	fileTypes    []FileType
	typeIndexSet uint32
	shownOwner   uintptr
}

func (d *fakeDialog) op(name string) error {
	d.native.record(name)
	if d.failOp == name {
		hr := d.failHR
		if hr == 0 {
			hr = eFail
		}
		return &Error{Op: name, Code: hr}
	}
	return nil
}

func (d *fakeDialog) options() (uint32, error) {
	if err := d.op("IFileDialog::GetOptions"); err != nil {
		return 0, err
	}
	return d.baseOpts, nil
}

func (d *fakeDialog) setOptions(opts uint32) error {
	if err := d.op("IFileDialog::SetOptions"); err != nil {
		return err
	}
	d.opts = opts
	return nil
}

func (d *fakeDialog) setTitle(title string) error {
	if err := d.op("IFileDialog::SetTitle"); err != nil {
		return err
	}
	d.title = title
	return nil
}

func (d *fakeDialog) setDefaultFolder(path string) error {
	if err := d.op("IFileDialog::SetDefaultFolder"); err != nil {
		return err
	}
	d.defFolder = path
	return nil
}

func (d *fakeDialog) setFolder(path string) error {
	if err := d.op("IFileDialog::SetFolder"); err != nil {
		return err
	}
	d.folder = path
	return nil
}

func (d *fakeDialog) setFileName(name string) error {
	if err := d.op("IFileDialog::SetFileName"); err != nil {
		return err
	}
	d.fileNameIn = name
	return nil
}

func (d *fakeDialog) setFileNameLabel(label string) error {
	if err := d.op("IFileDialog::SetFileNameLabel"); err != nil {
		return err
	}
	d.fileLabel = label
	return nil
}

func (d *fakeDialog) setOkButtonLabel(label string) error {
	if err := d.op("IFileDialog::SetOkButtonLabel"); err != nil {
		return err
	}
	d.okLabel = label
	return nil
}

func (d *fakeDialog) setDefaultExtension(ext string) error {
	if err := d.op("IFileDialog::SetDefaultExtension"); err != nil {
		return err
	}
	d.defExt = ext
	return nil
}

func (d *fakeDialog) setFileTypes(types []FileType) error {
	if err := d.op("IFileDialog::SetFileTypes"); err != nil {
		return err
	}
	d.fileTypes = append([]FileType(nil), types...)
	return nil
}

func (d *fakeDialog) setFileTypeIndex(index uint32) error {
	if err := d.op("IFileDialog::SetFileTypeIndex"); err != nil {
		return err
	}
	d.typeIndexSet = index
	return nil
}

func (d *fakeDialog) setSaveAsItem(path string) error {
	if err := d.op("IFileSaveDialog::SetSaveAsItem"); err != nil {
		return err
	}
	d.saveAsPath = path
	return nil
}

func (d *fakeDialog) show(owner uintptr) error {
	d.shownOwner = owner
	return d.op("IModalWindow::Show")
}

func (d *fakeDialog) result() (itemHandle, error) {
	if err := d.op("IFileDialog::GetResult"); err != nil {
		return nil, err
	}
	if len(d.resultPaths) == 0 {
		return nil, &Error{Op: "IFileDialog::GetResult", Code: eFail}
	}
	d.native.live++
	return &fakeItem{native: d.native, itemPath: d.resultPaths[0], fail: d.failPathAt == 0}, nil
}

func (d *fakeDialog) results() (itemListHandle, error) {
	if err := d.op("IFileOpenDialog::GetResults"); err != nil {
		return nil, err
	}
	d.native.live++
	return &fakeItemList{dialog: d}, nil
}

func (d *fakeDialog) fileName() (string, error) {
	if err := d.op("IFileDialog::GetFileName"); err != nil {
		return "", err
	}
	return d.typedName, nil
}

func (d *fakeDialog) fileTypeIndex() (uint32, error) {
	if err := d.op("IFileDialog::GetFileTypeIndex"); err != nil {
		return 0, err
	}
	return d.typeIndex, nil
}

func (d *fakeDialog) release() {
	d.native.record("IFileDialog::Release")
	d.native.live--
}

type fakeItem struct {
	native   *fakeNative
	itemPath string
	fail     bool
}

func (it *fakeItem) path() (string, error) {
	it.native.record("IShellItem::GetDisplayName")
	if it.fail {
		return "", &Error{Op: "IShellItem::GetDisplayName", Code: eFail}
	}
	return it.itemPath, nil
}

func (it *fakeItem) release() {
	it.native.record("IShellItem::Release")
	it.native.live--
}

type fakeItemList struct {
	dialog *fakeDialog
}

func (l *fakeItemList) count() (uint32, error) {
	if err := l.dialog.op("IShellItemArray::GetCount"); err != nil {
		return 0, err
	}
	return uint32(len(l.dialog.resultPaths)), nil
}

func (l *fakeItemList) item(index uint32) (itemHandle, error) {
	if err := l.dialog.op("IShellItemArray::GetItemAt"); err != nil {
		return nil, err
	}
	l.dialog.native.live++
	return &fakeItem{
		native:   l.dialog.native,
		itemPath: l.dialog.resultPaths[index],
		fail:     int(index) == l.dialog.failPathAt,
	}, nil
}

func (l *fakeItemList) release() {
	l.dialog.native.record("IShellItemArray::Release")
	l.dialog.native.live--
}
