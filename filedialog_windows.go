//go:build windows

package windialog

import (
	"runtime"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// fileDialogVtbl は IFileDialog の vtable です（IModalWindow を含む）。
// スロットの並びは shobjidl_core.h の宣言順と一致している必要があります。
type fileDialogVtbl struct {
	QueryInterface      uintptr
	AddRef              uintptr
	Release             uintptr
	Show                uintptr
	SetFileTypes        uintptr
	SetFileTypeIndex    uintptr
	GetFileTypeIndex    uintptr
	Advise              uintptr
	Unadvise            uintptr
	SetOptions          uintptr
	GetOptions          uintptr
	SetDefaultFolder    uintptr
	SetFolder           uintptr
	GetFolder           uintptr
	GetCurrentSelection uintptr
	SetFileName         uintptr
	GetFileName         uintptr
	SetTitle            uintptr
	SetOkButtonLabel    uintptr
	SetFileNameLabel    uintptr
	GetResult           uintptr
	AddPlace            uintptr
	SetDefaultExtension uintptr
	Close               uintptr
	SetClientGuid       uintptr
	ClearClientData     uintptr
	SetFilter           uintptr
}

// fileOpenDialogVtbl は IFileOpenDialog で追加されるスロットです。
type fileOpenDialogVtbl struct {
	fileDialogVtbl
	GetResults       uintptr
	GetSelectedItems uintptr
}

// fileSaveDialogVtbl は IFileSaveDialog で追加されるスロットです。
type fileSaveDialogVtbl struct {
	fileDialogVtbl
	SetSaveAsItem          uintptr
	SetProperties          uintptr
	SetCollectedProperties uintptr
	GetProperties          uintptr
	ApplyProperties        uintptr
}

// fileDialog は生成済みダイアログの COM ポインタを1個所有します。
// 所有者が release をちょうど1回呼びます。
type fileDialog struct {
	ptr  unsafe.Pointer
	kind dialogKind
}

func (d *fileDialog) self() uintptr { return uintptr(d.ptr) }

func (d *fileDialog) vtbl() *fileDialogVtbl {
	return *(**fileDialogVtbl)(d.ptr)
}

func (d *fileDialog) openVtbl() *fileOpenDialogVtbl {
	return *(**fileOpenDialogVtbl)(d.ptr)
}

func (d *fileDialog) saveVtbl() *fileSaveDialogVtbl {
	return *(**fileSaveDialogVtbl)(d.ptr)
}

// setString は LPCWSTR を1つ取る setter を呼ぶ共通処理です。
func (d *fileDialog) setString(op string, addr uintptr, s string) error {
	p, err := windows.UTF16PtrFromString(s)
	if err != nil {
		return &Error{Op: op, Code: hresultInvalidArg}
	}
	cerr := comCall(op, addr, d.self(), uintptr(unsafe.Pointer(p)))
	// UTF-16 バッファをネイティブ呼び出し完了まで生存させる
	runtime.KeepAlive(p)
	return cerr
}

// setItem はパスを IShellItem に解決して渡す setter を呼ぶ共通処理です。
// 生成したアイテムは設定呼び出しの直後に解放します。
func (d *fileDialog) setItem(op string, addr uintptr, path string) error {
	item, err := newShellItem(path)
	if err != nil {
		return err
	}
	defer item.release()
	return comCall(op, addr, d.self(), item.self())
}

func (d *fileDialog) options() (uint32, error) {
	var opts uint32
	err := comCall("IFileDialog::GetOptions", d.vtbl().GetOptions,
		d.self(), uintptr(unsafe.Pointer(&opts)))
	return opts, err
}

func (d *fileDialog) setOptions(opts uint32) error {
	return comCall("IFileDialog::SetOptions", d.vtbl().SetOptions,
		d.self(), uintptr(opts))
}

func (d *fileDialog) setTitle(title string) error {
	return d.setString("IFileDialog::SetTitle", d.vtbl().SetTitle, title)
}

func (d *fileDialog) setDefaultFolder(path string) error {
	return d.setItem("IFileDialog::SetDefaultFolder", d.vtbl().SetDefaultFolder, path)
}

func (d *fileDialog) setFolder(path string) error {
	return d.setItem("IFileDialog::SetFolder", d.vtbl().SetFolder, path)
}

func (d *fileDialog) setFileName(name string) error {
	return d.setString("IFileDialog::SetFileName", d.vtbl().SetFileName, name)
}

func (d *fileDialog) setFileNameLabel(label string) error {
	return d.setString("IFileDialog::SetFileNameLabel", d.vtbl().SetFileNameLabel, label)
}

func (d *fileDialog) setOkButtonLabel(label string) error {
	return d.setString("IFileDialog::SetOkButtonLabel", d.vtbl().SetOkButtonLabel, label)
}

func (d *fileDialog) setDefaultExtension(ext string) error {
	return d.setString("IFileDialog::SetDefaultExtension", d.vtbl().SetDefaultExtension, ext)
}

func (d *fileDialog) setFileTypes(types []FileType) error {
	specs := buildFilterSpecs(types)
	if len(specs) == 0 {
		return nil
	}
	err := comCall("IFileDialog::SetFileTypes", d.vtbl().SetFileTypes,
		d.self(), uintptr(len(specs)), uintptr(unsafe.Pointer(&specs[0])))
	// specs が参照する UTF-16 バッファを呼び出し完了まで生存させる
	runtime.KeepAlive(specs)
	return err
}

func (d *fileDialog) setFileTypeIndex(index uint32) error {
	return comCall("IFileDialog::SetFileTypeIndex", d.vtbl().SetFileTypeIndex,
		d.self(), uintptr(index))
}

func (d *fileDialog) setSaveAsItem(path string) error {
	if d.kind != saveKind {
		return &Error{Op: "IFileSaveDialog::SetSaveAsItem", Code: hresultInvalidArg}
	}
	return d.setItem("IFileSaveDialog::SetSaveAsItem", d.saveVtbl().SetSaveAsItem, path)
}

func (d *fileDialog) show(owner uintptr) error {
	return comCall("IModalWindow::Show", d.vtbl().Show, d.self(), owner)
}

func (d *fileDialog) result() (itemHandle, error) {
	var ptr unsafe.Pointer
	if err := comCall("IFileDialog::GetResult", d.vtbl().GetResult,
		d.self(), uintptr(unsafe.Pointer(&ptr))); err != nil {
		return nil, err
	}
	return &shellItem{ptr: ptr}, nil
}

func (d *fileDialog) results() (itemListHandle, error) {
	if d.kind != openKind {
		return nil, &Error{Op: "IFileOpenDialog::GetResults", Code: hresultInvalidArg}
	}
	var ptr unsafe.Pointer
	if err := comCall("IFileOpenDialog::GetResults", d.openVtbl().GetResults,
		d.self(), uintptr(unsafe.Pointer(&ptr))); err != nil {
		return nil, err
	}
	return &shellItemArray{ptr: ptr}, nil
}

func (d *fileDialog) fileName() (string, error) {
	var raw *uint16
	if err := comCall("IFileDialog::GetFileName", d.vtbl().GetFileName,
		d.self(), uintptr(unsafe.Pointer(&raw))); err != nil {
		return "", err
	}
	defer coTaskMemFree(raw)
	return windows.UTF16PtrToString(raw), nil
}

func (d *fileDialog) fileTypeIndex() (uint32, error) {
	var index uint32
	err := comCall("IFileDialog::GetFileTypeIndex", d.vtbl().GetFileTypeIndex,
		d.self(), uintptr(unsafe.Pointer(&index)))
	return index, err
}

func (d *fileDialog) release() {
	syscall.SyscallN(d.vtbl().Release, d.self())
	d.ptr = nil
}
