package model

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	kib = 1024
	mib = 1024 * kib
	gib = 1024 * mib

	// TimeLayout は更新日時の表示形式です
	TimeLayout = "2006/01/02 15:04"
)

// FormatSizeKB はバイト数を切り捨てのKB表記に変換します（最小1 KB）
func FormatSizeKB(size uint64) string {
	kb := size / kib
	if kb < 1 {
		kb = 1
	}
	return humanize.Comma(int64(kb)) + " KB"
}

// FormatSizeFull はサイズに応じて B/KB/MB/GB を選択して表記します
func FormatSizeFull(size uint64) string {
	switch {
	case size < kib:
		return humanize.Comma(int64(size)) + " B"
	case size < mib:
		return fmt.Sprintf("%.0f KB", float64(size)/kib)
	case size < gib:
		return fmt.Sprintf("%.1f MB", float64(size)/mib)
	default:
		return fmt.Sprintf("%.2f GB", float64(size)/gib)
	}
}

// FormatTime はエポック秒をローカル時刻の表示文字列に変換します
func FormatTime(ts float64) string {
	sec := int64(ts)
	nsec := int64((ts - float64(sec)) * float64(time.Second))
	return time.Unix(sec, nsec).Local().Format(TimeLayout)
}
