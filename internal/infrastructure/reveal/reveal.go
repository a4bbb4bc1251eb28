// Package reveal はファイルをOSのファイルブラウザで選択表示する機能を提供します
package reveal

import (
	"fmt"
	"os/exec"
)

// ActionError は表示操作の起動に失敗したことを表します
type ActionError struct {
	Path string
	Err  error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s を表示できません: %v", e.Path, e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

// Revealer はファイルブラウザでパスを表示する構造体です
type Revealer struct {
	start func(name string, args ...string) error
}

// NewRevealer は新しい Revealer インスタンスを作成します
func NewRevealer() *Revealer {
	return &Revealer{start: startDetached}
}

// Reveal はプラットフォームのファイルブラウザで path を選択状態で開きます
func (r *Revealer) Reveal(path string) error {
	name, args := revealCommand(path)
	if err := r.start(name, args...); err != nil {
		return &ActionError{Path: path, Err: err}
	}
	return nil
}

// startDetached はコマンドを起動し、終了を待たずに戻ります
func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go cmd.Wait()
	return nil
}
