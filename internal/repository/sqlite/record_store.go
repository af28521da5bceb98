package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/wordull/internal/logger"
	"github.com/vytor/wordull/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type recordStore struct {
	db *sql.DB
}

// NewRecordStore creates a RecordStore backed by the records table.
func NewRecordStore(db *sql.DB) repository.RecordStore {
	return &recordStore{db: db}
}

func (r *recordStore) Load(ctx context.Context, kind repository.Kind) ([]byte, bool, error) {
	log := logger.FromContext(ctx).WithPrefix("record_store")
	log.Debug("loading record: kind=%s", kind)

	query, args, err := sqlBuilder.
		Select("data").
		From("records").
		Where(squirrel.Eq{"kind": string(kind)}).
		ToSql()
	if err != nil {
		return nil, false, err
	}

	var data []byte
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no record for kind=%s", kind)
		return nil, false, nil
	}
	if err != nil {
		log.Error("failed to load record kind=%s: %v", kind, err)
		return nil, false, err
	}
	return data, true, nil
}

func (r *recordStore) Save(ctx context.Context, kind repository.Kind, data []byte) error {
	log := logger.FromContext(ctx).WithPrefix("record_store")
	log.Debug("saving record: kind=%s, size=%d", kind, len(data))

	query, args, err := sqlBuilder.
		Insert("records").
		Columns("kind", "data").
		Values(string(kind), data).
		Suffix("ON CONFLICT(kind) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to save record kind=%s: %v", kind, err)
		return err
	}
	return nil
}
