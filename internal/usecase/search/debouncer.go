package search

import (
	"sync"
	"time"
)

// DefaultDelay は入力停止から検索開始までの既定の待ち時間です
const DefaultDelay = 300 * time.Millisecond

// Timer は一度だけ発火するタイマーです
type Timer interface {
	Stop() bool
}

// Clock はタイマーを生成します。テストでは手動で発火させる実装に差し替えます
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Debouncer は連続した入力変更をまとめ、一定時間入力がなかったときに一度だけ fire を呼びます
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	clock Clock
	fire  func()

	last  string
	timer Timer
	// gen は Stop が間に合わなかったタイマーの発火を無視するために使う
	gen uint64
}

// NewDebouncer は新しい Debouncer を作成します。clock が nil なら実時間を使います
func NewDebouncer(delay time.Duration, clock Clock, fire func()) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	if clock == nil {
		clock = realClock{}
	}
	return &Debouncer{delay: delay, clock: clock, fire: fire}
}

// OnTextChanged は入力変更を受け取ります。前回と同じ文字列なら何もせず false を返し、
// そうでなければタイマーを再始動して true を返します
func (d *Debouncer) OnTextChanged(text string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if text == d.last {
		return false
	}
	d.last = text

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = d.clock.AfterFunc(d.delay, func() {
		d.mu.Lock()
		stale := gen != d.gen
		if !stale {
			d.timer = nil
		}
		d.mu.Unlock()

		if !stale {
			d.fire()
		}
	})
	return true
}

// Pending は発火待ちのタイマーがあるかを返します
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Stop は発火待ちのタイマーを取り消します
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}
