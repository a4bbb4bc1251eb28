//go:build !darwin && !windows

package reveal

import "path/filepath"

// revealCommand は親ディレクトリを既定のファイルマネージャで開くコマンドを返します。
// xdg-open には選択表示の指定がありません
func revealCommand(path string) (string, []string) {
	return "xdg-open", []string{filepath.Dir(path)}
}
