package model

import "sort"

// Column は結果テーブルの列を表します
type Column int

const (
	ColumnName Column = iota
	ColumnDirectory
	ColumnSize
	ColumnModified
)

// ColumnCount はテーブルの列数です
const ColumnCount = 4

// Direction はソート方向を表します
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Toggle は反対方向を返します
func (d Direction) Toggle() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// Less は指定列で a が b より前に来るかを判定します。
// サイズと更新日時は数値で、それ以外は表示文字列をバイト順で比較します。
func Less(a, b ResultRow, col Column) bool {
	switch col {
	case ColumnSize:
		return a.SizeBytes < b.SizeBytes
	case ColumnModified:
		return a.ModifiedAt < b.ModifiedAt
	case ColumnName, ColumnDirectory:
		return a.Text(col) < b.Text(col)
	default:
		return false
	}
}

// SortRows は rows を並べ替えた新しいスライスを返します。rows 自体は変更しません
func SortRows(rows []ResultRow, col Column, dir Direction) []ResultRow {
	sorted := make([]ResultRow, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		if dir == Descending {
			return Less(sorted[j], sorted[i], col)
		}
		return Less(sorted[i], sorted[j], col)
	})
	return sorted
}
