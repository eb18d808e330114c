package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/vbonduro/ecoleta/internal/db"
	"github.com/vbonduro/ecoleta/internal/domain"
)

const pointColumns = `p.id, p.image, p.name, p.email, p.whatsapp, p.latitude, p.longitude, p.city, p.uf`

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type PointStore struct {
	db *sql.DB
}

func NewPointStore(db *sql.DB) *PointStore {
	return &PointStore{db: db}
}

// Create inserts the point and one association row per item id in a single
// transaction. Either everything is stored or nothing is.
func (s *PointStore) Create(ctx context.Context, point domain.Point, itemIDs []int64) (*domain.Point, error) {
	err := db.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		id, err := insertPoint(ctx, tx, point)
		if err != nil {
			return err
		}
		point.ID = id
		return insertPointItems(ctx, tx, id, itemIDs)
	})
	if err != nil {
		return nil, err
	}
	return &point, nil
}

func insertPoint(ctx context.Context, ex execer, p domain.Point) (int64, error) {
	result, err := ex.ExecContext(ctx, `
		INSERT INTO points (image, name, email, whatsapp, latitude, longitude, city, uf)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, p.Image, p.Name, p.Email, p.Whatsapp, p.Latitude, p.Longitude, p.City, p.UF)
	if err != nil {
		return 0, fmt.Errorf("failed to create point: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}
	return id, nil
}

// insertPointItems writes all association rows with one statement.
func insertPointItems(ctx context.Context, ex execer, pointID int64, itemIDs []int64) error {
	if len(itemIDs) == 0 {
		return nil
	}

	values := make([]string, len(itemIDs))
	args := make([]any, 0, len(itemIDs)*2)
	for i, itemID := range itemIDs {
		values[i] = "(?, ?)"
		args = append(args, pointID, itemID)
	}

	//nolint:gosec // placeholders only, values go through args
	query := "INSERT INTO point_items (point_id, item_id) VALUES " + strings.Join(values, ", ")
	if _, err := ex.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create point items: %w", err)
	}
	return nil
}

func (s *PointStore) GetByID(ctx context.Context, id int64) (*domain.Point, error) {
	point, err := scanPoint(s.db.QueryRowContext(ctx, `
		SELECT `+pointColumns+` FROM points p WHERE p.id = ?
	`, id))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get point: %w", err)
	}

	return point, nil
}

// ListByFilter returns the points in city/uf that accept at least one of
// itemIDs. City and uf match exactly. Each point appears once no matter how
// many of the requested items it accepts.
func (s *PointStore) ListByFilter(ctx context.Context, city, uf string, itemIDs []int64) ([]*domain.Point, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(itemIDs))
	args := make([]any, 0, len(itemIDs)+2)
	for i, itemID := range itemIDs {
		placeholders[i] = "?"
		args = append(args, itemID)
	}
	args = append(args, city, uf)

	//nolint:gosec // placeholders only, values go through args
	query := `
		SELECT DISTINCT ` + pointColumns + ` FROM points p
		JOIN point_items pi ON p.id = pi.point_id
		WHERE pi.item_id IN (` + strings.Join(placeholders, ", ") + `)
		  AND p.city = ?
		  AND p.uf = ?
		ORDER BY p.id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list points: %w", err)
	}
	defer closeRows(rows)

	var points []*domain.Point
	for rows.Next() {
		point, err := scanPoint(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan point: %w", err)
		}
		points = append(points, point)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating points: %w", err)
	}

	return points, nil
}

// Delete removes the point and its association rows. Deleting an id that
// does not exist is not an error.
func (s *PointStore) Delete(ctx context.Context, id int64) error {
	return db.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM point_items WHERE point_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete point items: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM points WHERE id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete point: %w", err)
		}
		return nil
	})
}

func scanPoint(scanner interface{ Scan(...any) error }) (*domain.Point, error) {
	p := &domain.Point{}
	err := scanner.Scan(&p.ID, &p.Image, &p.Name, &p.Email, &p.Whatsapp, &p.Latitude, &p.Longitude, &p.City, &p.UF)
	if err != nil {
		return nil, err
	}
	return p, nil
}
