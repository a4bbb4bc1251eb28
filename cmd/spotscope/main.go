// Package main はアプリケーションのエントリーポイントを提供します
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"fyne.io/fyne/v2/app"

	"SpotScope/internal/config"
	"SpotScope/internal/gui"
	"SpotScope/internal/infrastructure/filesystem"
	"SpotScope/internal/infrastructure/logging"
	"SpotScope/internal/infrastructure/reveal"
	"SpotScope/internal/infrastructure/spotlight"
	"SpotScope/internal/interface/ui"
	"SpotScope/internal/usecase/report"
	"SpotScope/internal/usecase/search"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	inspector := filesystem.NewInspector()

	cfg, err := config.Parse(args, os.Stderr, inspector.ValidateDirectoryPath)
	if errors.Is(err, config.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "エラー: %v\n", err)
		ui.NewNotifier().StartupError(err)
		return 2
	}

	// ロガーの初期化
	var logOutput io.Writer = os.Stderr
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "エラー: ログファイルを開けません: %v\n", err)
			ui.NewNotifier().StartupError(err)
			return 1
		}
		defer f.Close()
		logOutput = f
	}
	logger := logging.NewJSONLogger(logOutput, cfg.LogLevel)

	// 検索機能の選択
	facility := spotlight.Detect(cfg.Facility, cfg.OnlyIn, logger)
	service := search.NewService(facility, inspector, logger)

	a := app.NewWithID("io.github.spotscope")
	window := gui.NewSearchWindow(a, inspector)

	ctrl := search.NewController(window, service, reveal.NewRevealer(), report.NewGenerator(), logger, search.Options{
		Delay: cfg.Delay,
	})
	window.Bind(ctrl)

	logger.Log(logging.LevelInfo, "起動しました", nil)
	window.ShowAndRun()
	logger.Log(logging.LevelInfo, "終了しました", nil)
	return 0
}
