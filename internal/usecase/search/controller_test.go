package search

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"SpotScope/internal/domain/model"
	"SpotScope/internal/infrastructure/spotlight"
)

type controllerFixture struct {
	view     *fakeView
	searcher *fakeSearcher
	revealer *fakeRevealer
	exporter *fakeExporter
	clock    *fakeClock
	ctrl     *Controller
}

func newControllerFixture() *controllerFixture {
	f := &controllerFixture{
		view:     &fakeView{},
		searcher: &fakeSearcher{},
		revealer: &fakeRevealer{},
		exporter: &fakeExporter{},
		clock:    &fakeClock{},
	}
	f.ctrl = NewController(f.view, f.searcher, f.revealer, f.exporter, &mockLogger{}, Options{Clock: f.clock})
	return f
}

// typeText は検索欄への入力を再現します
func (f *controllerFixture) typeText(text string) {
	f.view.text = text
	f.ctrl.OnTextChanged(text)
}

func TestController_OneSearchPerPause(t *testing.T) {
	f := newControllerFixture()
	f.searcher.rows = []model.ResultRow{{Name: "report.txt", FullPath: "/report.txt"}}

	for _, text := range []string{"r", "re", "rep", "repo"} {
		f.typeText(text)
	}
	if len(f.searcher.queries) != 0 {
		t.Fatalf("タイマー発火前に検索が実行されました: %v", f.searcher.queries)
	}

	// 発火前に検索欄が変わっていても発火時点の内容で検索する
	f.view.text = "  report "
	f.clock.Fire()

	if diff := cmp.Diff([]string{"report"}, f.searcher.queries); diff != "" {
		t.Errorf("queries mismatch (-want +got):\n%s", diff)
	}
	if got := f.ctrl.Status(); got != "1 件の結果が見つかりました" {
		t.Errorf("Status() = %q", got)
	}
	if len(f.view.rows) != 1 {
		t.Errorf("表示行数 = %d, want 1", len(f.view.rows))
	}
}

func TestController_SameTextDoesNotRestartTimer(t *testing.T) {
	f := newControllerFixture()

	f.typeText("abc")
	f.typeText("abc")

	if len(f.clock.timers) != 1 {
		t.Errorf("タイマー生成数 = %d, want 1", len(f.clock.timers))
	}
}

func TestController_ClearingTextClearsWithoutSearch(t *testing.T) {
	f := newControllerFixture()
	f.searcher.rows = []model.ResultRow{{Name: "a"}}

	f.typeText("a")
	f.clock.Fire()
	if len(f.ctrl.Rows()) != 1 {
		t.Fatalf("前提: 結果が1件あるはずです")
	}

	f.typeText("")
	if len(f.ctrl.Rows()) != 0 || f.ctrl.Status() != "" {
		t.Errorf("空入力で結果が消去されていません: rows=%d status=%q", len(f.ctrl.Rows()), f.ctrl.Status())
	}

	f.clock.Fire()
	if len(f.searcher.queries) != 1 {
		t.Errorf("空入力で検索が実行されました: %v", f.searcher.queries)
	}
	if f.view.lastStatus() != "" || len(f.view.rows) != 0 {
		t.Errorf("画面が消去されていません: status=%q rows=%d", f.view.lastStatus(), len(f.view.rows))
	}
}

func TestController_NoResults(t *testing.T) {
	f := newControllerFixture()

	f.typeText("zzz")
	f.clock.Fire()

	if got := f.ctrl.Status(); got != StatusNoResults {
		t.Errorf("Status() = %q, want %q", got, StatusNoResults)
	}
	if !contains(f.view.statuses, StatusSearching) {
		t.Errorf("検索中の表示がありません: %v", f.view.statuses)
	}
}

func TestController_SearchErrorLeavesEmptyTable(t *testing.T) {
	f := newControllerFixture()
	f.searcher.rows = []model.ResultRow{{Name: "old"}}
	f.typeText("old")
	f.clock.Fire()

	f.searcher.err = &spotlight.SearchError{Query: "new", ExitCode: 1, Stderr: "index disabled"}
	f.typeText("new")
	f.clock.Fire()

	if len(f.ctrl.Rows()) != 0 || len(f.view.rows) != 0 {
		t.Errorf("エラー時に結果が残っています: %v", f.ctrl.Rows())
	}
	status := f.ctrl.Status()
	if !strings.HasPrefix(status, "検索エラー: ") || !strings.Contains(status, "index disabled") {
		t.Errorf("Status() = %q", status)
	}
}

func TestController_ResultsSortedByCurrentColumn(t *testing.T) {
	f := newControllerFixture()
	f.searcher.rows = []model.ResultRow{
		{Name: "mid", SizeBytes: 500},
		{Name: "big", SizeBytes: 2000},
		{Name: "small", SizeBytes: 100},
	}
	f.ctrl.SetSort(model.ColumnSize, model.Ascending)

	f.typeText("x")
	f.clock.Fire()

	if diff := cmp.Diff([]string{"small", "mid", "big"}, rowNames(f.ctrl.Rows())); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}

	f.ctrl.ToggleSort(model.ColumnSize)
	col, dir := f.ctrl.Sort()
	if col != model.ColumnSize || dir != model.Descending {
		t.Errorf("Sort() = %v, %v", col, dir)
	}
	if diff := cmp.Diff([]string{"big", "mid", "small"}, rowNames(f.view.rows)); diff != "" {
		t.Errorf("view rows mismatch (-want +got):\n%s", diff)
	}

	f.ctrl.ToggleSort(model.ColumnName)
	if diff := cmp.Diff([]string{"big", "mid", "small"}, rowNames(f.ctrl.Rows())); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	if _, dir := f.ctrl.Sort(); dir != model.Ascending {
		t.Errorf("別の列を選ぶと昇順になるべきです")
	}
}

func TestController_SupersededSearchDiscarded(t *testing.T) {
	f := newControllerFixture()
	f.searcher.rows = []model.ResultRow{{Name: "stale"}}

	var canceled bool
	f.searcher.during = func(ctx context.Context) {
		// 検索中に次の入力があった
		f.searcher.during = nil
		f.typeText("ab")
		canceled = ctx.Err() != nil
	}

	f.typeText("a")
	f.clock.Fire()

	if !canceled {
		t.Error("次の入力で実行中の検索が取り消されていません")
	}
	if len(f.ctrl.Rows()) != 0 {
		t.Errorf("古い検索結果が表示されています: %v", f.ctrl.Rows())
	}
	if f.ctrl.Status() != StatusSearching {
		t.Errorf("Status() = %q, want %q", f.ctrl.Status(), StatusSearching)
	}

	f.clock.Fire()
	if diff := cmp.Diff([]string{"a", "ab"}, f.searcher.queries); diff != "" {
		t.Errorf("queries mismatch (-want +got):\n%s", diff)
	}
	if len(f.ctrl.Rows()) != 1 {
		t.Errorf("最新の検索結果が表示されていません")
	}
}

func TestController_OnRowSelected(t *testing.T) {
	f := newControllerFixture()
	f.searcher.rows = []model.ResultRow{{Name: "a", SizeBytes: 5 * 1024 * 1024}}
	f.typeText("a")
	f.clock.Fire()

	f.ctrl.OnRowSelected(0)
	if got := f.ctrl.Status(); got != "ファイルサイズ: 5.0 MB" {
		t.Errorf("Status() = %q", got)
	}

	f.ctrl.OnRowSelected(3)
	if got := f.ctrl.Status(); got != "ファイルサイズ: 5.0 MB" {
		t.Errorf("範囲外の選択でステータスが変わりました: %q", got)
	}
}

func TestController_OnRowActivated(t *testing.T) {
	f := newControllerFixture()
	f.searcher.rows = []model.ResultRow{{Name: "a", FullPath: "/tmp/a"}}
	f.typeText("a")
	f.clock.Fire()

	f.ctrl.OnRowActivated(0)
	if diff := cmp.Diff([]string{"/tmp/a"}, f.revealer.paths); diff != "" {
		t.Errorf("revealed mismatch (-want +got):\n%s", diff)
	}

	f.revealer.err = errBoom
	f.ctrl.OnRowActivated(0)
	if got := f.ctrl.Status(); got != "ファイルを開けませんでした: boom" {
		t.Errorf("Status() = %q", got)
	}
	if len(f.ctrl.Rows()) != 1 {
		t.Error("表示操作の失敗で結果が変わりました")
	}
}

func TestController_Export(t *testing.T) {
	f := newControllerFixture()
	f.searcher.rows = []model.ResultRow{{Name: "a"}, {Name: "b"}}
	f.typeText("x")
	f.clock.Fire()

	f.ctrl.Export("/out")
	if f.exporter.dir != "/out" || len(f.exporter.rows) != 2 {
		t.Errorf("exporter got dir=%q rows=%d", f.exporter.dir, len(f.exporter.rows))
	}
	if got := f.ctrl.Status(); got != "2 件を /out/results.tsv に書き出しました" {
		t.Errorf("Status() = %q", got)
	}

	f.exporter.err = errors.New("disk full")
	f.ctrl.Export("/out")
	if got := f.ctrl.Status(); got != "書き出しに失敗しました: disk full" {
		t.Errorf("Status() = %q", got)
	}
}

func TestController_Close(t *testing.T) {
	f := newControllerFixture()

	f.typeText("a")
	f.ctrl.Close()

	if f.clock.Fire() != 0 {
		t.Error("Close 後にタイマーが発火しました")
	}
	if len(f.searcher.queries) != 0 {
		t.Errorf("Close 後に検索が実行されました")
	}
}

func rowNames(rows []model.ResultRow) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Name)
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
