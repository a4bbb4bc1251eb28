// Package config はコマンドライン引数から設定を読み込みます
package config

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	flag "github.com/spf13/pflag"

	"SpotScope/internal/infrastructure/logging"
	"SpotScope/internal/infrastructure/spotlight"
	"SpotScope/internal/usecase/search"
)

// ErrHelp は --help が指定されたことを表します
var ErrHelp = flag.ErrHelp

// Config はアプリケーションの設定です
type Config struct {
	// Delay は入力停止から検索開始までの待ち時間です
	Delay time.Duration
	// Facility は検索コマンド名です
	Facility string
	// OnlyIn は検索範囲のディレクトリです（空なら全体）
	OnlyIn string
	// LogLevel は出力する最小ログレベルです
	LogLevel string
	// LogFile はログの出力先です（空なら標準エラー）
	LogFile string
}

// Default は既定の設定を返します
func Default() Config {
	return Config{
		Delay:    search.DefaultDelay,
		Facility: spotlight.DefaultCommand,
		LogLevel: logging.LevelInfo,
	}
}

// Parse は引数を解析して設定を返します。
// --onlyin のディレクトリ検証は validator で行います（nil なら省略）
func Parse(args []string, usage io.Writer, validator func(string) error) (Config, error) {
	cfg := Default()

	flagSet := flag.NewFlagSet("spotscope", flag.ContinueOnError)
	flagSet.SetOutput(usage)

	delay := flagSet.Duration("delay", cfg.Delay, "入力停止から検索開始までの待ち時間")
	facility := flagSet.String("facility", cfg.Facility, "ファイル名検索に使うコマンド")
	onlyIn := flagSet.String("onlyin", "", "検索範囲のディレクトリ")
	logLevel := flagSet.String("log-level", "info", "ログレベル (debug|info|warn|error)")
	logFile := flagSet.String("log-file", "", "ログの出力先ファイル（省略時は標準エラー）")

	if err := flagSet.Parse(args); err != nil {
		return Config{}, err
	}

	if flagSet.NArg() > 0 {
		return Config{}, fmt.Errorf("不明な引数です: %v", flagSet.Args())
	}

	if *delay <= 0 {
		return Config{}, errors.New("--delay は正の値を指定してください")
	}

	if *facility == "" {
		return Config{}, errors.New("--facility が空です")
	}

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		return Config{}, err
	}

	if flagSet.Changed("onlyin") {
		dir := filepath.Clean(*onlyIn)
		if validator != nil {
			if err := validator(dir); err != nil {
				return Config{}, fmt.Errorf("--onlyin が無効です: %w", err)
			}
		}
		cfg.OnlyIn = dir
	}

	cfg.Delay = *delay
	cfg.Facility = *facility
	cfg.LogLevel = level
	cfg.LogFile = *logFile
	return cfg, nil
}
