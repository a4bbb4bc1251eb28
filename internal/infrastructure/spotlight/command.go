package spotlight

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	"SpotScope/internal/infrastructure/logging"
)

// Command は外部コマンド（mdfind）で検索する Facility です
type Command struct {
	name   string
	onlyIn string
	logger logging.Logger
}

// NewCommand は新しい Command を作成します。onlyIn が空でなければ検索範囲を限定します
func NewCommand(name, onlyIn string, logger logging.Logger) *Command {
	if name == "" {
		name = DefaultCommand
	}
	return &Command{name: name, onlyIn: onlyIn, logger: logger}
}

// Args はコマンドに渡す引数を返します
func (c *Command) Args(query string) []string {
	var args []string
	if c.onlyIn != "" {
		args = append(args, "-onlyin", c.onlyIn)
	}
	return append(args, "-name", query)
}

// Find はコマンドを同期実行し、標準出力のパス一覧を返します
func (c *Command) Find(ctx context.Context, query string) ([]string, error) {
	args := c.Args(query)
	c.logger.Log(logging.LevelDebug, fmt.Sprintf("実行: %s %v", c.name, args), nil)

	cmd := exec.CommandContext(ctx, c.name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &SearchError{
				Query:    query,
				ExitCode: exitErr.ExitCode(),
				Stderr:   stderr.String(),
			}
		}
		return nil, fmt.Errorf("%s の起動に失敗しました: %w", c.name, err)
	}

	return SplitLines(stdout.String()), nil
}
