// Package report は検索結果の書き出し機能を提供します
package report

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/natefinch/atomic"

	"SpotScope/internal/domain/model"
)

const (
	OutputFilePrefix = "results_"
	OutputFileSuffix = ".tsv"
	TimestampLayout  = "20060102_150405"
)

// Header は書き出すファイルの見出し行です
var Header = []string{"name", "directory", "size_bytes", "size", "modified", "path"}

// Generator はレポート生成機能を提供します
type Generator struct {
	now func() time.Time
}

// NewGenerator は新しい Generator インスタンスを作成します
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// OutputPath は出力先ディレクトリ内のタイムスタンプ付きファイルパスを返します
func (g *Generator) OutputPath(outputDir string) string {
	timestamp := g.now().Format(TimestampLayout)
	return filepath.Join(outputDir, fmt.Sprintf("%s%s%s", OutputFilePrefix, timestamp, OutputFileSuffix))
}

// WriteRows は見出し行と結果行をタブ区切りで書き出します
func (g *Generator) WriteRows(writer io.Writer, rows []model.ResultRow) error {
	if _, err := fmt.Fprintln(writer, strings.Join(Header, "\t")); err != nil {
		return err
	}

	for _, row := range rows {
		fields := []string{
			row.Name,
			row.Directory,
			strconv.FormatUint(row.SizeBytes, 10),
			row.SizeKB(),
			row.ModifiedText(),
			row.FullPath,
		}
		for i, f := range fields {
			fields[i] = sanitize(f)
		}
		if _, err := fmt.Fprintln(writer, strings.Join(fields, "\t")); err != nil {
			return err
		}
	}
	return nil
}

// Export は rows を outputDir に書き出し、作成したファイルのパスを返します。
// 書き込みは一時ファイル経由で行い、途中で失敗しても壊れたファイルを残しません
func (g *Generator) Export(outputDir string, rows []model.ResultRow) (string, error) {
	var buf bytes.Buffer
	if err := g.WriteRows(&buf, rows); err != nil {
		return "", fmt.Errorf("結果の整形に失敗しました: %w", err)
	}

	outputPath := g.OutputPath(outputDir)
	if err := atomic.WriteFile(outputPath, &buf); err != nil {
		return "", fmt.Errorf("出力ファイルの作成に失敗しました: %w", err)
	}
	return outputPath, nil
}

// sanitize はタブと改行を空白に置き換えます
func sanitize(s string) string {
	return strings.NewReplacer("\t", " ", "\n", " ", "\r", " ").Replace(s)
}
