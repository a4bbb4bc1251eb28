// package model はドメインモデルを定義します
package model

import (
	"path/filepath"

	"golang.org/x/text/unicode/norm"
)

// ResultRow は検索でヒットした1件のファイルを表します
type ResultRow struct {
	// Name はファイルのベース名を表します
	Name string
	// Directory は親ディレクトリのパスを表します
	Directory string
	// SizeBytes はバイト単位のファイルサイズを表します
	SizeBytes uint64
	// ModifiedAt は更新日時をエポック秒で表します
	ModifiedAt float64
	// FullPath は絶対パスで、行に対する操作の識別子として使われます
	FullPath string
}

// NewResultRow はパスと属性から ResultRow を作成します
func NewResultRow(path string, size uint64, modifiedAt float64) ResultRow {
	return ResultRow{
		// mdfind は分解形(NFD)で名前を返すことがあるため表示用に合成形へ揃える
		Name:       norm.NFC.String(filepath.Base(path)),
		Directory:  norm.NFC.String(filepath.Dir(path)),
		SizeBytes:  size,
		ModifiedAt: modifiedAt,
		FullPath:   path,
	}
}

// SizeKB は一覧表示用のKB表記を返します
func (r ResultRow) SizeKB() string {
	return FormatSizeKB(r.SizeBytes)
}

// SizeFull は単位を自動選択したサイズ表記を返します
func (r ResultRow) SizeFull() string {
	return FormatSizeFull(r.SizeBytes)
}

// ModifiedText は更新日時の表示文字列を返します
func (r ResultRow) ModifiedText() string {
	return FormatTime(r.ModifiedAt)
}

// Text は指定列に表示される文字列を返します
func (r ResultRow) Text(col Column) string {
	switch col {
	case ColumnName:
		return r.Name
	case ColumnDirectory:
		return r.Directory
	case ColumnSize:
		return r.SizeKB()
	case ColumnModified:
		return r.ModifiedText()
	default:
		return ""
	}
}
