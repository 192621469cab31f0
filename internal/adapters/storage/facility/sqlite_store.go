package facility

import (
	"context"
	"fmt"

	"relish/internal/adapters/storage"
	domain "relish/internal/domain/facility"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save persists a Facility.
// PRE: entity.ID is non-empty
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Facility) error {
	features, err := storage.EncodeList(entity.Features)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO facility (id, name, description, image_url, location, features)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name=excluded.name, description=excluded.description, image_url=excluded.image_url,
		   location=excluded.location, features=excluded.features`,
		entity.ID, entity.Name, entity.Description, entity.ImageURL, entity.Location, features)
	return err
}

// List returns every facility in insertion order.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Facility, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, image_url, location, features FROM facility ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []domain.Facility{}
	for rows.Next() {
		var (
			entity   domain.Facility
			features string
		)
		if err := rows.Scan(&entity.ID, &entity.Name, &entity.Description, &entity.ImageURL, &entity.Location, &features); err != nil {
			return nil, err
		}
		if entity.Features, err = storage.DecodeList(features); err != nil {
			return nil, fmt.Errorf("facility %s: %w", entity.ID, err)
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
