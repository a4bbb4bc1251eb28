package spotlight

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"

	"SpotScope/internal/infrastructure/logging"
)

// Walk はメタデータ検索がない環境向けに、ディレクトリを走査して名前で照合する Facility です
type Walk struct {
	root   string
	logger logging.Logger
}

// NewWalk は root 以下を走査する Walk を作成します
func NewWalk(root string, logger logging.Logger) *Walk {
	return &Walk{root: root, logger: logger}
}

// Find は名前に query を含む（大文字小文字を区別しない）パスをパス順で返します。
// 隠しファイルと隠しディレクトリは対象外です
func (w *Walk) Find(ctx context.Context, query string) ([]string, error) {
	needle := strings.ToLower(query)

	var (
		mu    sync.Mutex
		paths []string
	)

	conf := &fastwalk.Config{Follow: false}
	err := fastwalk.Walk(conf, w.root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			w.logger.Log(logging.LevelDebug, fmt.Sprintf("パス '%s' の走査中にエラー発生", path), err)
			return nil
		}
		if path == w.root {
			return nil
		}

		name := d.Name()
		if strings.HasPrefix(name, ".") {
			if d.IsDir() {
				return fastwalk.SkipDir
			}
			return nil
		}

		if strings.Contains(strings.ToLower(name), needle) {
			mu.Lock()
			paths = append(paths, path)
			mu.Unlock()
		}
		return nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("ファイルシステムの走査に失敗しました: %w", err)
	}

	sort.Strings(paths)
	return paths, nil
}
