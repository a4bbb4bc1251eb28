package search

import (
	"context"
	"errors"
	"io/fs"
	"sync"
	"time"

	"SpotScope/internal/domain/model"
	"SpotScope/internal/infrastructure/filesystem"
)

type mockLogger struct {
	mu   sync.Mutex
	logs []struct {
		level   string
		message string
		err     error
	}
}

func (m *mockLogger) Log(level, message string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, struct {
		level   string
		message string
		err     error
	}{level, message, err})
}

// fakeClock は Fire を呼ぶまでタイマーを発火させない Clock です
type fakeClock struct {
	timers []*fakeTimer
}

type fakeTimer struct {
	delay   time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	t := &fakeTimer{delay: d, f: f}
	c.timers = append(c.timers, t)
	return t
}

// Fire は停止されていないタイマーをすべて発火させ、発火した数を返します
func (c *fakeClock) Fire() int {
	n := 0
	for _, t := range c.timers {
		if t.stopped || t.fired {
			continue
		}
		t.fired = true
		t.f()
		n++
	}
	return n
}

func (c *fakeClock) active() int {
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

type fakeView struct {
	text     string
	rows     []model.ResultRow
	statuses []string
}

func (v *fakeView) QueryText() string { return v.text }

func (v *fakeView) ShowRows(rows []model.ResultRow) { v.rows = rows }

func (v *fakeView) ShowStatus(status string) { v.statuses = append(v.statuses, status) }

func (v *fakeView) lastStatus() string {
	if len(v.statuses) == 0 {
		return ""
	}
	return v.statuses[len(v.statuses)-1]
}

type fakeSearcher struct {
	queries []string
	rows    []model.ResultRow
	err     error
	// during は検索中に呼ばれ、実行中の入力変更を再現するために使う
	during func(ctx context.Context)
}

func (s *fakeSearcher) Search(ctx context.Context, query string) ([]model.ResultRow, error) {
	s.queries = append(s.queries, query)
	if s.during != nil {
		s.during(ctx)
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.rows, nil
}

type fakeFacility struct {
	paths []string
	err   error
}

func (f *fakeFacility) Find(ctx context.Context, query string) ([]string, error) {
	return f.paths, f.err
}

type fakeAttrs struct {
	sizes   map[string]uint64
	missing map[string]bool
}

func (a *fakeAttrs) Stat(path string) (uint64, float64, error) {
	if a.missing[path] {
		return 0, 0, &filesystem.AttributeReadError{Path: path, Err: fs.ErrNotExist}
	}
	return a.sizes[path], 1700000000, nil
}

type fakeRevealer struct {
	paths []string
	err   error
}

func (r *fakeRevealer) Reveal(path string) error {
	r.paths = append(r.paths, path)
	return r.err
}

type fakeExporter struct {
	dir  string
	rows []model.ResultRow
	err  error
}

func (e *fakeExporter) Export(dir string, rows []model.ResultRow) (string, error) {
	e.dir = dir
	e.rows = rows
	if e.err != nil {
		return "", e.err
	}
	return dir + "/results.tsv", nil
}

var errBoom = errors.New("boom")
