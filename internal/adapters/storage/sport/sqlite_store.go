package sport

import (
	"context"
	"database/sql"
	"fmt"

	"relish/internal/adapters/storage"
	domain "relish/internal/domain/sport"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save persists a Sport.
// PRE: entity.ID is non-empty
// POST: Entity is persisted (insert or update); insertion order is kept on update
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Sport) error {
	facilities, err := storage.EncodeList(entity.Facilities)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sport (id, name, description, image_url, coaching_available, facilities)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name=excluded.name, description=excluded.description, image_url=excluded.image_url,
		   coaching_available=excluded.coaching_available, facilities=excluded.facilities`,
		entity.ID, entity.Name, entity.Description, entity.ImageURL,
		storage.BoolToInt(entity.CoachingAvailable), facilities)
	return err
}

// List returns every sport in insertion order.
// POST: Returns a non-nil slice
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Sport, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, image_url, coaching_available, facilities FROM sport ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []domain.Sport{}
	for rows.Next() {
		var (
			entity     domain.Sport
			coaching   int
			facilities string
		)
		if err := rows.Scan(&entity.ID, &entity.Name, &entity.Description, &entity.ImageURL, &coaching, &facilities); err != nil {
			return nil, err
		}
		entity.CoachingAvailable = coaching != 0
		if entity.Facilities, err = storage.DecodeList(facilities); err != nil {
			return nil, fmt.Errorf("sport %s: %w", entity.ID, err)
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// Count returns the number of stored sports.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sport`).Scan(&n)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return n, err
}
