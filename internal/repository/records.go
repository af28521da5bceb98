package repository

import (
	"context"
	"encoding/json"
	"fmt"
)

// Load unmarshals the persisted record of the given kind, or returns nil when
// none exists.
func Load[T any](ctx context.Context, s RecordStore, kind Kind) (*T, error) {
	data, found, err := s.Load(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("load %s record: %w", kind, err)
	}
	if !found {
		return nil, nil
	}
	var rec T
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode %s record: %w", kind, err)
	}
	return &rec, nil
}

// LoadOr returns the persisted record of the given kind, or def when none
// exists. This is the one load-or-default path shared by every record kind;
// the default is not persisted until something mutates it.
func LoadOr[T any](ctx context.Context, s RecordStore, kind Kind, def *T) (*T, error) {
	rec, err := Load[T](ctx, s, kind)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return def, nil
	}
	return rec, nil
}

// Save marshals and persists the record, overwriting any previous blob.
func Save[T any](ctx context.Context, s RecordStore, kind Kind, rec *T) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s record: %w", kind, err)
	}
	if err := s.Save(ctx, kind, data); err != nil {
		return fmt.Errorf("save %s record: %w", kind, err)
	}
	return nil
}
