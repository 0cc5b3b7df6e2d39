//go:build windows

package windialog

import (
	"syscall"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

// sigdnFilesysPath は IShellItem::GetDisplayName にファイルシステムパスを
// 要求する SIGDN_FILESYSPATH です。
const sigdnFilesysPath = 0x80058000

// shellItemVtbl は IShellItem の vtable です。
type shellItemVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
	BindToHandler  uintptr
	GetParent      uintptr
	GetDisplayName uintptr
	GetAttributes  uintptr
	Compare        uintptr
}

// shellItem は IShellItem を1個所有します。パスのコピーが済んだら
// 速やかに release します。
type shellItem struct {
	ptr unsafe.Pointer
}

func (it *shellItem) self() uintptr { return uintptr(it.ptr) }

func (it *shellItem) vtbl() *shellItemVtbl {
	return *(**shellItemVtbl)(it.ptr)
}

// newShellItem はパス文字列を IShellItem に解決します。
func newShellItem(path string) (*shellItem, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, &Error{Op: "SHCreateItemFromParsingName", Code: hresultInvalidArg}
	}
	var ptr unsafe.Pointer
	r, _, _ := procSHCreateItemFromParsingName.Call(
		uintptr(unsafe.Pointer(p)),
		0,
		uintptr(unsafe.Pointer(&iidShellItem)),
		uintptr(unsafe.Pointer(&ptr)),
	)
	if hr := hresult(r); win.FAILED(hr) {
		return nil, &Error{Op: "SHCreateItemFromParsingName", Code: int32(hr)}
	}
	return &shellItem{ptr: ptr}, nil
}

// path は項目の絶対パスを Go の所有文字列へコピーして返します。
// OS が確保したバッファはコピー後に必ず解放します。
func (it *shellItem) path() (string, error) {
	var raw *uint16
	if err := comCall("IShellItem::GetDisplayName", it.vtbl().GetDisplayName,
		it.self(), sigdnFilesysPath, uintptr(unsafe.Pointer(&raw))); err != nil {
		return "", err
	}
	defer coTaskMemFree(raw)
	return windows.UTF16PtrToString(raw), nil
}

func (it *shellItem) release() {
	syscall.SyscallN(it.vtbl().Release, it.self())
	it.ptr = nil
}

// shellItemArrayVtbl は IShellItemArray の vtable です。
type shellItemArrayVtbl struct {
	QueryInterface             uintptr
	AddRef                     uintptr
	Release                    uintptr
	BindToHandler              uintptr
	GetPropertyStore           uintptr
	GetPropertyDescriptionList uintptr
	GetAttributes              uintptr
	GetCount                   uintptr
	GetItemAt                  uintptr
	EnumItems                  uintptr
}

// shellItemArray は複数選択の結果配列（IShellItemArray）を1個所有します。
type shellItemArray struct {
	ptr unsafe.Pointer
}

func (a *shellItemArray) self() uintptr { return uintptr(a.ptr) }

func (a *shellItemArray) vtbl() *shellItemArrayVtbl {
	return *(**shellItemArrayVtbl)(a.ptr)
}

func (a *shellItemArray) count() (uint32, error) {
	var n uint32
	err := comCall("IShellItemArray::GetCount", a.vtbl().GetCount,
		a.self(), uintptr(unsafe.Pointer(&n)))
	return n, err
}

func (a *shellItemArray) item(index uint32) (itemHandle, error) {
	var ptr unsafe.Pointer
	if err := comCall("IShellItemArray::GetItemAt", a.vtbl().GetItemAt,
		a.self(), uintptr(index), uintptr(unsafe.Pointer(&ptr))); err != nil {
		return nil, err
	}
	return &shellItem{ptr: ptr}, nil
}

func (a *shellItemArray) release() {
	syscall.SyscallN(a.vtbl().Release, a.self())
	a.ptr = nil
}
