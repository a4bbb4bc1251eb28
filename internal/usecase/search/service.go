// Package search は検索の実行、入力のデバウンス、結果の状態管理を提供します
package search

import (
	"context"
	"fmt"

	"SpotScope/internal/domain/model"
	"SpotScope/internal/infrastructure/filesystem"
	"SpotScope/internal/infrastructure/logging"
	"SpotScope/internal/infrastructure/spotlight"
)

// Searcher はクエリから結果行を取得するインターフェースです
type Searcher interface {
	Search(ctx context.Context, query string) ([]model.ResultRow, error)
}

// Service は外部検索機能と属性取得を組み合わせて結果行を作成します
type Service struct {
	facility spotlight.Facility
	attrs    filesystem.AttributeReader
	logger   logging.Logger
}

// NewService は新しい Service インスタンスを作成します
func NewService(facility spotlight.Facility, attrs filesystem.AttributeReader, logger logging.Logger) *Service {
	return &Service{facility: facility, attrs: attrs, logger: logger}
}

// Search は query をそのまま名前フィルタとして検索し、結果行を返します。
// 検索機能が失敗した場合は行を返しません。属性を取得できないパスは黙って除外し、
// 残りは検索機能が返した順序のまま返します
func (s *Service) Search(ctx context.Context, query string) ([]model.ResultRow, error) {
	paths, err := s.facility.Find(ctx, query)
	if err != nil {
		return nil, err
	}

	rows := make([]model.ResultRow, 0, len(paths))
	dropped := 0
	for _, path := range paths {
		size, mtime, err := s.attrs.Stat(path)
		if err != nil {
			dropped++
			s.logger.Log(logging.LevelDebug, "属性を取得できないため除外", err)
			continue
		}
		rows = append(rows, model.NewResultRow(path, size, mtime))
	}

	if dropped > 0 {
		s.logger.Log(logging.LevelDebug, fmt.Sprintf("%q: %d 件中 %d 件を除外しました", query, len(paths), dropped), nil)
	}
	return rows, nil
}
