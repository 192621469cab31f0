package coach

import (
	"context"
	"fmt"

	"relish/internal/adapters/storage"
	domain "relish/internal/domain/coach"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save persists a Coach.
// PRE: entity.ID is non-empty
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Coach) error {
	sports, err := storage.EncodeList(entity.Sports)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO coach (id, name, designation, description, image_url, sports)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name=excluded.name, designation=excluded.designation, description=excluded.description,
		   image_url=excluded.image_url, sports=excluded.sports`,
		entity.ID, entity.Name, entity.Designation, entity.Description, entity.ImageURL, sports)
	return err
}

// List returns every coach in insertion order.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Coach, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, designation, description, image_url, sports FROM coach ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []domain.Coach{}
	for rows.Next() {
		var (
			entity domain.Coach
			sports string
		)
		if err := rows.Scan(&entity.ID, &entity.Name, &entity.Designation, &entity.Description, &entity.ImageURL, &sports); err != nil {
			return nil, err
		}
		if entity.Sports, err = storage.DecodeList(sports); err != nil {
			return nil, fmt.Errorf("coach %s: %w", entity.ID, err)
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
