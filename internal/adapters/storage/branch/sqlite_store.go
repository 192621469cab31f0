package branch

import (
	"context"

	"relish/internal/adapters/storage"
	domain "relish/internal/domain/branch"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save persists a Branch. Contact info is flattened into address and phone columns.
// PRE: entity.ID is non-empty
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Branch) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO branch (id, name, location, description, image_url, address, phone)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name=excluded.name, location=excluded.location, description=excluded.description,
		   image_url=excluded.image_url, address=excluded.address, phone=excluded.phone`,
		entity.ID, entity.Name, entity.Location, entity.Description, entity.ImageURL,
		entity.ContactInfo.Address, entity.ContactInfo.Phone)
	return err
}

// List returns every branch in insertion order.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Branch, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, location, description, image_url, address, phone FROM branch ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []domain.Branch{}
	for rows.Next() {
		var entity domain.Branch
		if err := rows.Scan(&entity.ID, &entity.Name, &entity.Location, &entity.Description, &entity.ImageURL,
			&entity.ContactInfo.Address, &entity.ContactInfo.Phone); err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
