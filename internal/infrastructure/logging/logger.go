// Package logging はロギング機能を提供します
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// ログレベル
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

var levelRank = map[string]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// LogEntry はログエントリを表す構造体です
type LogEntry struct {
	// Timestamp はログが記録された時刻をRFC3339形式で表します
	Timestamp string `json:"timestamp"`
	// Level はログレベル（DEBUG, INFO, WARN, ERROR）を表します
	Level string `json:"level"`
	// Message はログメッセージの内容を表します
	Message string `json:"message"`
	// Error はエラーが発生した場合のエラーメッセージを表します
	Error string `json:"error,omitempty"`
}

// Logger は構造化ログを出力するためのインターフェースです
type Logger interface {
	Log(level, message string, err error)
}

// ParseLevel はフラグで指定されたレベル名を正規化します
func ParseLevel(name string) (string, error) {
	level := strings.ToUpper(strings.TrimSpace(name))
	if _, ok := levelRank[level]; !ok {
		return "", fmt.Errorf("不明なログレベルです: %q", name)
	}
	return level, nil
}

// JSONLogger はJSONフォーマットでログを出力するロガーです
type JSONLogger struct {
	mu       sync.Mutex
	writer   io.Writer
	minLevel string
}

// NewJSONLogger は新しいJSONLoggerインスタンスを作成します。
// minLevel 未満のログは出力されません（空文字はすべて出力）
func NewJSONLogger(writer io.Writer, minLevel string) *JSONLogger {
	if writer == nil {
		writer = os.Stderr
	}
	return &JSONLogger{writer: writer, minLevel: minLevel}
}

// Enabled は指定レベルが出力対象かどうかを返します
func (l *JSONLogger) Enabled(level string) bool {
	if l.minLevel == "" {
		return true
	}
	rank, ok := levelRank[strings.ToUpper(level)]
	if !ok {
		return true
	}
	return rank >= levelRank[l.minLevel]
}

// Log はメッセージをJSONフォーマットでログ出力します
func (l *JSONLogger) Log(level, message string, err error) {
	if !l.Enabled(level) {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now().Format(time.RFC3339),
		Level:     level,
		Message:   message,
	}

	if err != nil {
		entry.Error = err.Error()
	}

	jsonData, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ログのJSONエンコードに失敗: %v\n", err)
		return
	}

	// タイマーのゴルーチンとUIスレッドの両方から呼ばれる
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.writer, string(jsonData))
}
