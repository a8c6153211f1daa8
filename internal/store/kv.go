package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// KV is a durable slot store: each key holds one opaque value that is
// replaced wholesale on every Put.
type KV interface {
	// Get returns the value under key; ok is false if the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Put overwrites the value under key.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// sqliteKV implements KV on the kv_slots table.
type sqliteKV struct {
	drv *entsql.Driver
}

func (k *sqliteKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query, args := builder().
		Select("value").
		From(entsql.Table(kvTable)).
		Where(entsql.EQ("key", key)).
		Query()

	var rows entsql.Rows
	if err := k.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, false, fmt.Errorf("get %q: %w", key, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, false, fmt.Errorf("get %q: %w", key, err)
		}
		return nil, false, nil
	}
	var value []byte
	if err := rows.Scan(&value); err != nil {
		return nil, false, fmt.Errorf("scan %q: %w", key, err)
	}
	return value, true, nil
}

func (k *sqliteKV) Put(ctx context.Context, key string, value []byte) error {
	query, args := builder().
		Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UTC()).
		OnConflict(entsql.ConflictColumns("key"), entsql.ResolveWithNewValues()).
		Query()

	var res sql.Result
	if err := k.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	return nil
}

func (k *sqliteKV) Delete(ctx context.Context, key string) error {
	query, args := builder().
		Delete(kvTable).
		Where(entsql.EQ("key", key)).
		Query()

	var res sql.Result
	if err := k.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// MemoryKV is an in-process KV, used by tests and ephemeral play.
type MemoryKV struct {
	mu   sync.Mutex
	data map[string][]byte

	// PutErr, when set, is returned by every Put.
	PutErr error
}

// NewMemoryKV creates an empty MemoryKV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

func (m *MemoryKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *MemoryKV) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PutErr != nil {
		return m.PutErr
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
