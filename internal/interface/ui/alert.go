// Package ui はウィンドウ表示前に使うネイティブダイアログを提供します
package ui

import (
	"fmt"

	"github.com/sqweek/dialog"
)

// Notifier はユーザーへのエラー通知を行います
type Notifier struct {
	show func(title, message string)
}

// NewNotifier はOSネイティブのメッセージボックスで通知する Notifier を作成します
func NewNotifier() *Notifier {
	return &Notifier{show: func(title, message string) {
		dialog.Message("%s", message).Title(title).Error()
	}}
}

// StartupError は起動時のエラーを通知します。
// Finder から起動された場合は端末がないため、標準エラーだけでは気付けない
func (n *Notifier) StartupError(err error) {
	n.show("SpotScope", fmt.Sprintf("起動に失敗しました: %v", err))
}
