package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/vbonduro/ecoleta/internal/domain"
)

// ItemStore reads the item catalog. Items are seeded by migration and never
// written through the API.
type ItemStore struct {
	db *sql.DB
}

func NewItemStore(db *sql.DB) *ItemStore {
	return &ItemStore{db: db}
}

func (s *ItemStore) List(ctx context.Context) ([]*domain.Item, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, image FROM items ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer closeRows(rows)

	return scanItems(rows)
}

// ListByPointID returns the items a point accepts, ordered by item id.
func (s *ItemStore) ListByPointID(ctx context.Context, pointID int64) ([]*domain.Item, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT i.id, i.title, i.image FROM items i
		JOIN point_items pi ON i.id = pi.item_id
		WHERE pi.point_id = ?
		ORDER BY i.id ASC
	`, pointID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items for point: %w", err)
	}
	defer closeRows(rows)

	return scanItems(rows)
}

func scanItems(rows *sql.Rows) ([]*domain.Item, error) {
	var items []*domain.Item
	for rows.Next() {
		item := &domain.Item{}
		if err := rows.Scan(&item.ID, &item.Title, &item.Image); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	return items, nil
}

func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		slog.Error("failed to close rows", "error", err)
	}
}
