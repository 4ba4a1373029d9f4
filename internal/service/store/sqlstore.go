package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/AndrewK67/shorts-studio/pkg/errors"
)

// sqlStore implements Store on a database/sql handle. The postgres and
// sqlite backends share it and differ only in placeholder style.
type sqlStore struct {
	db           *sql.DB
	placeholders bool // true for $1-style, false for ?
	logger       *zap.Logger
}

func (s *sqlStore) rebind(query string) string {
	if !s.placeholders {
		return query
	}
	var sb strings.Builder
	n := 0
	for _, ch := range query {
		if ch == '?' {
			n++
			fmt.Fprintf(&sb, "$%d", n)
			continue
		}
		sb.WriteRune(ch)
	}
	return sb.String()
}

func tableName(collection string) string {
	return "studio_" + collection
}

func (s *sqlStore) ensureSchema(ctx context.Context) error {
	for collection := range collections {
		table := tableName(collection)
		stmts := []string{
			fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
				id TEXT PRIMARY KEY,
				parent_id TEXT NOT NULL DEFAULT '',
				data TEXT NOT NULL,
				created_at TIMESTAMP NOT NULL,
				updated_at TIMESTAMP NOT NULL
			)`, table),
			fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_parent ON %s (parent_id)`, table, table),
		}
		for _, stmt := range stmts {
			if _, err := s.db.ExecContext(ctx, stmt); err != nil {
				return errors.NewStoreError("schema setup failed", collection, "migrate", err)
			}
		}
	}
	return nil
}

func (s *sqlStore) Create(ctx context.Context, collection string, rec Record) error {
	if err := validCollection(collection); err != nil {
		return err
	}
	now := time.Now().UTC()
	query := s.rebind(fmt.Sprintf(
		`INSERT INTO %s (id, parent_id, data, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		tableName(collection)))
	if _, err := s.db.ExecContext(ctx, query, rec.ID, rec.ParentID, string(rec.Data), now, now); err != nil {
		s.logger.Error("Store insert failed",
			zap.String("collection", collection),
			zap.String("id", rec.ID),
			zap.Error(err))
		return errors.NewStoreError("insert failed", collection, "create", err)
	}
	return nil
}

func (s *sqlStore) CreateMany(ctx context.Context, collection string, recs []Record) error {
	if err := validCollection(collection); err != nil {
		return err
	}
	if len(recs) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewStoreError("begin failed", collection, "create_many", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	query := s.rebind(fmt.Sprintf(
		`INSERT INTO %s (id, parent_id, data, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		tableName(collection)))
	for _, rec := range recs {
		if _, err := tx.ExecContext(ctx, query, rec.ID, rec.ParentID, string(rec.Data), now, now); err != nil {
			s.logger.Error("Store batch insert failed",
				zap.String("collection", collection),
				zap.String("id", rec.ID),
				zap.Error(err))
			return errors.NewStoreError("batch insert failed", collection, "create_many", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.NewStoreError("commit failed", collection, "create_many", err)
	}
	return nil
}

func (s *sqlStore) FindByID(ctx context.Context, collection, id string) (*Record, error) {
	if err := validCollection(collection); err != nil {
		return nil, err
	}
	query := s.rebind(fmt.Sprintf(
		`SELECT id, parent_id, data, created_at, updated_at FROM %s WHERE id = ?`,
		tableName(collection)))

	var rec Record
	var data string
	err := s.db.QueryRowContext(ctx, query, id).Scan(&rec.ID, &rec.ParentID, &data, &rec.CreatedAt, &rec.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewStoreError("query failed", collection, "find_by_id", err)
	}
	rec.Data = []byte(data)
	return &rec, nil
}

func (s *sqlStore) FindByParentID(ctx context.Context, collection, parentID string) ([]Record, error) {
	if err := validCollection(collection); err != nil {
		return nil, err
	}
	query := s.rebind(fmt.Sprintf(
		`SELECT id, parent_id, data, created_at, updated_at FROM %s WHERE parent_id = ? ORDER BY created_at, id`,
		tableName(collection)))

	rows, err := s.db.QueryContext(ctx, query, parentID)
	if err != nil {
		return nil, errors.NewStoreError("query failed", collection, "find_by_parent", err)
	}
	defer rows.Close()

	var recs []Record
	for rows.Next() {
		var rec Record
		var data string
		if err := rows.Scan(&rec.ID, &rec.ParentID, &data, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, errors.NewStoreError("scan failed", collection, "find_by_parent", err)
		}
		rec.Data = []byte(data)
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewStoreError("rows failed", collection, "find_by_parent", err)
	}
	return recs, nil
}

func (s *sqlStore) Update(ctx context.Context, collection string, rec Record) error {
	if err := validCollection(collection); err != nil {
		return err
	}
	query := s.rebind(fmt.Sprintf(
		`UPDATE %s SET parent_id = ?, data = ?, updated_at = ? WHERE id = ?`,
		tableName(collection)))

	res, err := s.db.ExecContext(ctx, query, rec.ParentID, string(rec.Data), time.Now().UTC(), rec.ID)
	if err != nil {
		return errors.NewStoreError("update failed", collection, "update", err)
	}
	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return errors.NewStoreError("record not found", collection, "update", nil)
	}
	return nil
}

func (s *sqlStore) Delete(ctx context.Context, collection, id string) error {
	if err := validCollection(collection); err != nil {
		return err
	}
	query := s.rebind(fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, tableName(collection)))
	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return errors.NewStoreError("delete failed", collection, "delete", err)
	}
	return nil
}

func (s *sqlStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqlStore) Close() error {
	return s.db.Close()
}
