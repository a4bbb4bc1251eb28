//go:build darwin

package reveal

// revealCommand は Finder で選択表示するコマンドを返します
func revealCommand(path string) (string, []string) {
	return "open", []string{"-R", path}
}
