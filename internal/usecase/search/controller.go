package search

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"SpotScope/internal/domain/model"
	"SpotScope/internal/infrastructure/logging"
)

// ステータス表示の文言
const (
	StatusSearching = "検索中..."
	StatusNoResults = "結果が見つかりません"
)

// View は検索画面の表示を抽象化したインターフェースです。
// 各メソッドはコントローラのロック中に呼ばれるため、コントローラを呼び返してはいけません
type View interface {
	QueryText() string
	ShowRows(rows []model.ResultRow)
	ShowStatus(status string)
}

// Revealer はファイルをファイルブラウザで表示するインターフェースです
type Revealer interface {
	Reveal(path string) error
}

// Exporter は結果行をファイルに書き出すインターフェースです
type Exporter interface {
	Export(dir string, rows []model.ResultRow) (string, error)
}

// Options はコントローラの設定です
type Options struct {
	// Delay はデバウンスの待ち時間です（0なら既定値）
	Delay time.Duration
	// Clock はタイマーの生成元です（nilなら実時間）
	Clock Clock
}

// Controller は現在の結果集合、ソート状態、ステータスを保持し、画面からのイベントを処理します
type Controller struct {
	mu sync.Mutex

	view     View
	searcher Searcher
	revealer Revealer
	exporter Exporter
	logger   logging.Logger

	debouncer *Debouncer

	rows   []model.ResultRow
	column model.Column
	dir    model.Direction
	status string

	gen    uint64
	cancel context.CancelFunc
}

// NewController は新しい Controller インスタンスを作成します
func NewController(view View, searcher Searcher, revealer Revealer, exporter Exporter, logger logging.Logger, opts Options) *Controller {
	c := &Controller{
		view:     view,
		searcher: searcher,
		revealer: revealer,
		exporter: exporter,
		logger:   logger,
		column:   model.ColumnName,
		dir:      model.Ascending,
	}
	c.debouncer = NewDebouncer(opts.Delay, opts.Clock, c.PerformSearch)
	return c
}

// OnTextChanged は検索欄の変更ごとに呼ばれます。
// 入力が空になった場合はすぐに結果を消去します
func (c *Controller) OnTextChanged(text string) {
	if !c.debouncer.OnTextChanged(text) {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// 入力が変わったので実行中の検索の結果は不要
	c.cancelLocked()
	if strings.TrimSpace(text) == "" {
		c.setRowsLocked(nil)
		c.setStatusLocked("")
	}
}

// PerformSearch はデバウンスのタイマー発火時に呼ばれ、その時点の検索欄の内容で検索します
func (c *Controller) PerformSearch() {
	query := strings.TrimSpace(c.view.QueryText())

	c.mu.Lock()
	c.cancelLocked()
	gen := c.gen

	if query == "" {
		c.setRowsLocked(nil)
		c.setStatusLocked("")
		c.mu.Unlock()
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.setRowsLocked(nil)
	c.setStatusLocked(StatusSearching)
	c.mu.Unlock()

	c.logger.Log(logging.LevelInfo, fmt.Sprintf("検索開始: %q", query), nil)
	rows, err := c.searcher.Search(ctx, query)
	cancel()

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		c.logger.Log(logging.LevelDebug, fmt.Sprintf("古い検索結果を破棄: %q", query), nil)
		return
	}
	c.cancel = nil

	if err != nil {
		c.logger.Log(logging.LevelError, fmt.Sprintf("検索に失敗: %q", query), err)
		c.setRowsLocked(nil)
		c.setStatusLocked(fmt.Sprintf("検索エラー: %v", err))
		return
	}

	c.setRowsLocked(model.SortRows(rows, c.column, c.dir))
	if len(rows) > 0 {
		c.setStatusLocked(fmt.Sprintf("%d 件の結果が見つかりました", len(rows)))
	} else {
		c.setStatusLocked(StatusNoResults)
	}
	c.logger.Log(logging.LevelInfo, fmt.Sprintf("検索完了: %q %d 件", query, len(rows)), nil)
}

// SetSort はソート列と方向を設定し、現在の結果を並べ替えます
func (c *Controller) SetSort(col model.Column, dir model.Direction) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.column = col
	c.dir = dir
	c.setRowsLocked(model.SortRows(c.rows, col, dir))
}

// ToggleSort は列見出しのクリックを処理します。同じ列なら方向を反転し、別の列なら昇順にします
func (c *Controller) ToggleSort(col model.Column) {
	c.mu.Lock()
	dir := model.Ascending
	if col == c.column {
		dir = c.dir.Toggle()
	}
	c.mu.Unlock()

	c.SetSort(col, dir)
}

// Sort は現在のソート列と方向を返します
func (c *Controller) Sort() (model.Column, model.Direction) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.column, c.dir
}

// Rows は表示順の結果行のコピーを返します
func (c *Controller) Rows() []model.ResultRow {
	c.mu.Lock()
	defer c.mu.Unlock()

	rows := make([]model.ResultRow, len(c.rows))
	copy(rows, c.rows)
	return rows
}

// Status は現在のステータス文言を返します
func (c *Controller) Status() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// OnRowSelected は行の選択時に、その行のサイズをステータスに表示します
func (c *Controller) OnRowSelected(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.rows) {
		return
	}
	c.setStatusLocked("ファイルサイズ: " + c.rows[index].SizeFull())
}

// OnRowActivated は行のダブルクリック相当の操作で、ファイルをファイルブラウザで表示します。
// 失敗はステータスに表示するだけで呼び出し元には返しません
func (c *Controller) OnRowActivated(index int) {
	c.mu.Lock()
	if index < 0 || index >= len(c.rows) {
		c.mu.Unlock()
		return
	}
	path := c.rows[index].FullPath
	c.mu.Unlock()

	if err := c.revealer.Reveal(path); err != nil {
		c.logger.Log(logging.LevelWarn, "ファイルの表示に失敗", err)

		c.mu.Lock()
		defer c.mu.Unlock()
		c.setStatusLocked(fmt.Sprintf("ファイルを開けませんでした: %v", err))
	}
}

// Export は現在の表示順の結果を dir に書き出し、結果をステータスに表示します
func (c *Controller) Export(dir string) {
	rows := c.Rows()

	path, err := c.exporter.Export(dir, rows)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.logger.Log(logging.LevelError, "結果の書き出しに失敗", err)
		c.setStatusLocked(fmt.Sprintf("書き出しに失敗しました: %v", err))
		return
	}
	c.logger.Log(logging.LevelInfo, fmt.Sprintf("結果を書き出しました: %s", path), nil)
	c.setStatusLocked(fmt.Sprintf("%d 件を %s に書き出しました", len(rows), path))
}

// Close は発火待ちのタイマーと実行中の検索を取り消します
func (c *Controller) Close() {
	c.debouncer.Stop()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelLocked()
}

// cancelLocked は実行中の検索を取り消し、その結果を無効にします
func (c *Controller) cancelLocked() {
	c.gen++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Controller) setRowsLocked(rows []model.ResultRow) {
	c.rows = rows
	c.view.ShowRows(rows)
}

func (c *Controller) setStatusLocked(status string) {
	c.status = status
	c.view.ShowStatus(status)
}
