//go:build windows

package windialog

import (
	"syscall"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

var (
	ole32   = syscall.NewLazyDLL("ole32.dll")
	shell32 = syscall.NewLazyDLL("shell32.dll")

	procCoInitializeEx   = ole32.NewProc("CoInitializeEx")
	procCoUninitialize   = ole32.NewProc("CoUninitialize")
	procCoCreateInstance = ole32.NewProc("CoCreateInstance")
	procCoTaskMemFree    = ole32.NewProc("CoTaskMemFree")

	procSHCreateItemFromParsingName = shell32.NewProc("SHCreateItemFromParsingName")
)

const (
	coinitApartmentThreaded = 0x2
	coinitDisableOLE1DDE    = 0x4

	// CLSCTX_INPROC_SERVER | INPROC_HANDLER | LOCAL_SERVER | REMOTE_SERVER
	clsctxAll = 0x17
)

var (
	clsidFileOpenDialog = windows.GUID{Data1: 0xDC1C5A9C, Data2: 0xE88A, Data3: 0x4DDE, Data4: [8]byte{0xA5, 0xA1, 0x60, 0xF8, 0x2A, 0x20, 0xAE, 0xF7}}
	clsidFileSaveDialog = windows.GUID{Data1: 0xC0B4E2F3, Data2: 0xBA21, Data3: 0x4773, Data4: [8]byte{0x8D, 0xBA, 0x33, 0x5E, 0xC9, 0x46, 0xEB, 0x8B}}
	iidFileOpenDialog   = windows.GUID{Data1: 0xD57C7288, Data2: 0xD4AD, Data3: 0x4768, Data4: [8]byte{0xBE, 0x02, 0x9D, 0x96, 0x95, 0x32, 0xD9, 0x60}}
	iidFileSaveDialog   = windows.GUID{Data1: 0x84BCCD23, Data2: 0x5FDE, Data3: 0x4CDB, Data4: [8]byte{0xAE, 0xA4, 0xAF, 0x64, 0xB8, 0x3D, 0x78, 0xAB}}
	iidShellItem        = windows.GUID{Data1: 0x43826D1E, Data2: 0xE718, Data3: 0x42EE, Data4: [8]byte{0xBC, 0x55, 0xA1, 0xE2, 0x61, 0xC3, 0x7B, 0xFE}}
)

// hresult は proc.Call / SyscallN の戻り値から HRESULT を取り出します。
func hresult(r uintptr) win.HRESULT {
	return win.HRESULT(uint32(r))
}

// comCall は vtable 上のメソッドを呼び、失敗なら Op と HRESULT を持つ
// *Error を返します。
func comCall(op string, addr uintptr, args ...uintptr) error {
	r, _, _ := syscall.SyscallN(addr, args...)
	if hr := hresult(r); win.FAILED(hr) {
		return &Error{Op: op, Code: int32(hr)}
	}
	return nil
}

// winBackend は ole32/shell32 を直接呼ぶ本物のバックエンドです。
type winBackend struct{}

func newBackend() comBackend { return winBackend{} }

func (winBackend) initialize() (bool, error) {
	r, _, _ := procCoInitializeEx.Call(0, coinitApartmentThreaded|coinitDisableOLE1DDE)
	switch hr := hresult(r); hr {
	case win.S_OK:
		return true, nil
	case win.S_FALSE:
		// このスレッドでは初期化済み。呼び出し元のコンテキストには触れない。
		return false, nil
	default:
		return false, &Error{Op: "CoInitializeEx", Code: int32(hr)}
	}
}

func (winBackend) uninitialize() {
	procCoUninitialize.Call()
}

func (winBackend) createDialog(kind dialogKind) (dialogHandle, error) {
	clsid, iid := &clsidFileOpenDialog, &iidFileOpenDialog
	if kind == saveKind {
		clsid, iid = &clsidFileSaveDialog, &iidFileSaveDialog
	}
	var ptr unsafe.Pointer
	r, _, _ := procCoCreateInstance.Call(
		uintptr(unsafe.Pointer(clsid)),
		0,
		clsctxAll,
		uintptr(unsafe.Pointer(iid)),
		uintptr(unsafe.Pointer(&ptr)),
	)
	if hr := hresult(r); win.FAILED(hr) {
		return nil, &Error{Op: "CoCreateInstance", Code: int32(hr)}
	}
	return &fileDialog{ptr: ptr, kind: kind}, nil
}

// coTaskMemFree は OS が確保した文字列バッファを解放します。
func coTaskMemFree(p *uint16) {
	procCoTaskMemFree.Call(uintptr(unsafe.Pointer(p)))
}
