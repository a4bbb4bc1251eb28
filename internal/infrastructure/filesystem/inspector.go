// Package filesystem はファイルシステム操作を提供します
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DirectoryValidator はディレクトリの検証機能を提供するインターフェースです
type DirectoryValidator interface {
	ValidateDirectoryPath(path string) error
}

// AttributeReader はファイル属性の取得機能を提供するインターフェースです
type AttributeReader interface {
	Stat(path string) (size uint64, modifiedAt float64, err error)
}

// AttributeReadError はファイル属性の取得に失敗したことを表します。
// 存在しない・権限がない、のどちらも同じ扱いになります
type AttributeReadError struct {
	Path string
	Err  error
}

func (e *AttributeReadError) Error() string {
	return fmt.Sprintf("属性の取得に失敗しました: %s: %v", e.Path, e.Err)
}

func (e *AttributeReadError) Unwrap() error {
	return e.Err
}

// Inspector はファイル属性の取得とディレクトリ検証を行う構造体です
type Inspector struct {
	stat func(string) (os.FileInfo, error)
}

// NewInspector は新しい Inspector インスタンスを作成します
func NewInspector() *Inspector {
	return &Inspector{stat: os.Stat}
}

// Stat はパスのサイズと更新日時（エポック秒）を返します
func (i *Inspector) Stat(path string) (uint64, float64, error) {
	info, err := i.stat(path)
	if err != nil {
		return 0, 0, &AttributeReadError{Path: path, Err: err}
	}

	size := info.Size()
	if size < 0 {
		size = 0
	}
	mtime := info.ModTime()
	return uint64(size), float64(mtime.UnixNano()) / float64(time.Second), nil
}

// ValidateDirectoryPath はパスが安全で有効なディレクトリであることを確認します
func (i *Inspector) ValidateDirectoryPath(path string) error {
	if path == "" {
		return fmt.Errorf("ディレクトリパスが指定されていません")
	}

	fileInfo, err := i.stat(path)
	if err != nil {
		return fmt.Errorf("ディレクトリが存在しません: %w", err)
	}

	if !fileInfo.IsDir() {
		return fmt.Errorf("指定されたパスはディレクトリではありません")
	}

	if !filepath.IsAbs(path) {
		return fmt.Errorf("絶対パスで指定してください")
	}

	if strings.ContainsAny(path, "<>|?*") {
		return fmt.Errorf("パスに不正な文字が含まれています")
	}

	return nil
}
