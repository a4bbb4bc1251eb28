// Package spotlight はOSのメタデータ検索機能（mdfind）との連携を提供します
package spotlight

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"SpotScope/internal/infrastructure/logging"
)

// DefaultCommand は既定の検索コマンド名です
const DefaultCommand = "mdfind"

// Facility は名前でファイルを検索する外部機能のインターフェースです
type Facility interface {
	Find(ctx context.Context, query string) ([]string, error)
}

// SearchError は検索コマンドが0以外の終了コードを返したことを表します
type SearchError struct {
	Query    string
	ExitCode int
	Stderr   string
}

func (e *SearchError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("検索失敗 (終了コード %d)", e.ExitCode)
	}
	return fmt.Sprintf("検索失敗: %s", msg)
}

// SplitLines は出力を行に分割し、空行を取り除きます。順序は維持されます
func SplitLines(output string) []string {
	var paths []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		paths = append(paths, line)
	}
	return paths
}

// Detect は利用可能な検索機能を選択します。
// コマンドが見つからない場合は root 以下を走査する Walk を返します
func Detect(command, root string, logger logging.Logger) Facility {
	return detect(command, root, logger, exec.LookPath)
}

func detect(command, root string, logger logging.Logger, lookPath func(string) (string, error)) Facility {
	if command == "" {
		command = DefaultCommand
	}
	if path, err := lookPath(command); err == nil {
		logger.Log(logging.LevelInfo, fmt.Sprintf("検索コマンドを使用します: %s", path), nil)
		return NewCommand(path, root, logger)
	}

	if root == "" {
		if home, err := os.UserHomeDir(); err == nil {
			root = home
		} else {
			root = string(os.PathSeparator)
		}
	}
	logger.Log(logging.LevelWarn, fmt.Sprintf("%s が見つからないため %s を走査します", command, root), nil)
	return NewWalk(root, logger)
}
