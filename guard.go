package windialog

// comGuard は COM 初期化のスコープを表すガードです。acquireCOM で取得し、
// スコープを抜けるときに release を呼びます。自分が初期化したときだけ
// 解放を行うため、呼び出し元が既に持っている COM コンテキストを
// 壊すことはありません。同一スレッドで重ねて取得しても安全です。
type comGuard struct {
	backend comBackend
	owned   bool
}

// acquireCOM は現在のスレッドの COM を STA で初期化し、ガードを返します。
// 初回の初期化と「既に初期化済み」はどちらも成功です。それ以外は
// StageCreate のエラーになります。
func acquireCOM(b comBackend) (*comGuard, error) {
	owned, err := b.initialize()
	if err != nil {
		return nil, stageErr(err, StageCreate)
	}
	return &comGuard{backend: b, owned: owned}, nil
}

// release は自分が行った初期化だけを解放します。2回呼んでも
// 解放は1回しか行いません。
func (g *comGuard) release() {
	if g == nil || !g.owned {
		return
	}
	g.owned = false
	g.backend.uninitialize()
}
