package stats

import (
	"context"
	"fmt"

	"github.com/abhisek/numberrush/internal/store"
)

// Repo persists the aggregate in a single KV slot. It satisfies the
// session engine's stats store.
type Repo struct {
	kv  store.KV
	key string
}

// NewRepo creates a Repo over kv using StorageKey.
func NewRepo(kv store.KV) *Repo {
	return &Repo{kv: kv, key: StorageKey}
}

// Load reads the aggregate. A missing slot yields zero counters.
func (r *Repo) Load(ctx context.Context) (AggregateStats, error) {
	raw, ok, err := r.kv.Get(ctx, r.key)
	if err != nil {
		return AggregateStats{}, fmt.Errorf("load stats: %w", err)
	}
	if !ok {
		return AggregateStats{}, nil
	}
	return Decode(raw), nil
}

// Save overwrites the slot with the full aggregate.
func (r *Repo) Save(ctx context.Context, a AggregateStats) error {
	raw, err := Encode(a)
	if err != nil {
		return err
	}
	if err := r.kv.Put(ctx, r.key, raw); err != nil {
		return fmt.Errorf("save stats: %w", err)
	}
	return nil
}

// Reset deletes the slot, so the next Load returns zeros.
func (r *Repo) Reset(ctx context.Context) error {
	if err := r.kv.Delete(ctx, r.key); err != nil {
		return fmt.Errorf("reset stats: %w", err)
	}
	return nil
}

// Export returns the stored blob re-encoded in canonical form.
func (r *Repo) Export(ctx context.Context) ([]byte, error) {
	a, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	return Encode(a)
}

// Import validates raw strictly and, if it passes, overwrites the slot.
func (r *Repo) Import(ctx context.Context, raw []byte) (AggregateStats, error) {
	if err := ValidateImport(raw); err != nil {
		return AggregateStats{}, err
	}
	a := Decode(raw)
	if err := r.Save(ctx, a); err != nil {
		return AggregateStats{}, err
	}
	return a, nil
}
