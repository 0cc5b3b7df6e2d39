package windialog

import (
	"errors"
	"fmt"
)

// ErrUnsupported は Windows 以外のプラットフォームで Open / Save を
// 呼んだときに返ります。
var ErrUnsupported = errors.New("windialog: common item dialog は Windows でのみ利用できます")

// Stage はネイティブ呼び出しが失敗した工程を表します。
type Stage string

const (
	// StageCreate は COM の初期化またはダイアログインスタンスの生成の失敗です。
	StageCreate Stage = "create"
	// StageConfigure はダイアログへのパラメータ設定の失敗です。
	StageConfigure Stage = "configure"
	// StageShow はモーダル表示自体の失敗です（キャンセルは含みません）。
	StageShow Stage = "show"
	// StageExtract は確定後の結果取得の失敗です。
	StageExtract Stage = "extract"
)

// Error はネイティブ呼び出しの失敗を表す構造化エラーです。失敗した工程と
// COM メソッド名、元の HRESULT を保持します。呼び出し側は errors.As で
// 取り出して照合できます。
type Error struct {
	// Stage は失敗した工程です。
	Stage Stage
	// Op は失敗したネイティブ呼び出しの名前です（例: "IFileDialog::SetTitle"）。
	Op string
	// Code は元の HRESULT です。
	Code int32
}

func (e *Error) Error() string {
	return fmt.Sprintf("windialog: %s: %s failed (HRESULT=0x%08X)", e.Stage, e.Op, uint32(e.Code))
}

// hresultCancelled はユーザーによるキャンセルを示す
// HRESULT_FROM_WIN32(ERROR_CANCELLED)（0x800704C7）です。
const hresultCancelled = -2147023673

// hresultInvalidArg は文字列変換など、ネイティブ呼び出し前の引数変換に
// 失敗したときに使う E_INVALIDARG です。
const hresultInvalidArg = -2147024809

// stageErr はバックエンドから返ったエラーに失敗工程を刻印します。
// Op と Code はそのまま引き継ぎます。
func stageErr(err error, s Stage) error {
	var ce *Error
	if errors.As(err, &ce) {
		return &Error{Stage: s, Op: ce.Op, Code: ce.Code}
	}
	return err
}

// isCancelled はエラーがユーザーのキャンセルを表すか返します。
func isCancelled(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Code == hresultCancelled
}
