package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Petfood-admin/internal/domain/entity"
	"github.com/jhoicas/Petfood-admin/internal/domain/repository"
)

var _ repository.UnmatchedItemRepository = (*UnmatchedItemRepo)(nil)

// UnmatchedItemRepo auditoría de nombres de ítems sin match en el catálogo.
type UnmatchedItemRepo struct {
	pool *pgxpool.Pool
}

// NewUnmatchedItemRepository construye el adaptador de auditoría.
func NewUnmatchedItemRepository(pool *pgxpool.Pool) *UnmatchedItemRepo {
	return &UnmatchedItemRepo{pool: pool}
}

const upsertUnmatchedQuery = `
	INSERT INTO unmatched_items (normalized_name, sample_name, occurrences, amount, last_seen_at)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (normalized_name) DO UPDATE SET
	    sample_name  = EXCLUDED.sample_name,
	    occurrences  = unmatched_items.occurrences + EXCLUDED.occurrences,
	    amount       = unmatched_items.amount + EXCLUDED.amount,
	    last_seen_at = GREATEST(unmatched_items.last_seen_at, EXCLUDED.last_seen_at)`

// Upsert envía todos los upserts en un solo batch.
func (r *UnmatchedItemRepo) Upsert(ctx context.Context, items []entity.UnmatchedItem) error {
	if len(items) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(upsertUnmatchedQuery, it.NormalizedName, it.SampleName, it.Occurrences, it.Amount, it.LastSeenAt)
	}
	br := r.pool.SendBatch(ctx, batch)
	defer br.Close()
	for range items {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("unmatched.Upsert: %w", err)
		}
	}
	return nil
}

// List nombres auditados, los más frecuentes primero.
func (r *UnmatchedItemRepo) List(ctx context.Context, limit int) ([]entity.UnmatchedItem, error) {
	const query = `
	SELECT normalized_name, sample_name, occurrences, amount, last_seen_at
	FROM unmatched_items
	ORDER BY occurrences DESC, normalized_name
	LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("unmatched.List: %w", err)
	}
	defer rows.Close()

	var out []entity.UnmatchedItem
	for rows.Next() {
		var it entity.UnmatchedItem
		if err := rows.Scan(&it.NormalizedName, &it.SampleName, &it.Occurrences, &it.Amount, &it.LastSeenAt); err != nil {
			return nil, fmt.Errorf("unmatched.List: scan: %w", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
