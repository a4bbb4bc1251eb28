//go:build windows

package reveal

// revealCommand は Explorer で選択表示するコマンドを返します
func revealCommand(path string) (string, []string) {
	return "explorer", []string{"/select," + path}
}
