package windialog

import "unicode/utf16"

// filterSpec はネイティブの COMDLG_FILTERSPEC と同一のメモリレイアウトを
// 持ちます（NUL 終端 UTF-16 文字列へのポインタ2つ）。
type filterSpec struct {
	name *uint16
	spec *uint16
}

// utf16z は文字列を NUL 終端の UTF-16 列へ変換します。
func utf16z(s string) []uint16 {
	return append(utf16.Encode([]rune(s)), 0)
}

// buildFilterSpecs はファイル種別の一覧をネイティブのフィルタ配列へ変換します。
// 入力順を保ち、表示名もパターンもそのまま（検証なしで）引き継ぎます。
// 返した配列が参照する UTF-16 バッファは各要素のポインタが生存している間
// 解放されません。配列の寿命は SetFileTypes を呼ぶ側のフレームが持ちます。
func buildFilterSpecs(types []FileType) []filterSpec {
	specs := make([]filterSpec, 0, len(types))
	for _, t := range types {
		name := utf16z(t.Name)
		pattern := utf16z(t.Pattern)
		specs = append(specs, filterSpec{name: &name[0], spec: &pattern[0]})
	}
	return specs
}
