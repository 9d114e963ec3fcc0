package repositories

import (
	"context"

	"github.com/shinysquad/streambingo/streambingo/database/models"
	"github.com/uptrace/bun"
)

type PoolRepository interface {
	GetByMonth(ctx context.Context, monthID int64) ([]*models.MonthlyPool, error)
	GetPooledPokemonIDs(ctx context.Context) ([]int64, error)
}

type poolRepository struct {
	*BaseRepository
}

func NewPoolRepository(db *bun.DB) PoolRepository {
	return &poolRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *poolRepository) GetByMonth(ctx context.Context, monthID int64) ([]*models.MonthlyPool, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var pools []*models.MonthlyPool
	err := r.GetDB().NewSelect().
		Model(&pools).
		Where("mp.month_id = ?", monthID).
		Order("mp.position ASC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get_by_month", "monthly_pool", err)
	}
	return pools, nil
}

// GetPooledPokemonIDs returns the distinct pokemon ids that appear in any
// month's pool. Used by the pokedex to flag obtainable pokemon.
func (r *poolRepository) GetPooledPokemonIDs(ctx context.Context) ([]int64, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var ids []int64
	err := r.GetDB().NewSelect().
		Model((*models.MonthlyPool)(nil)).
		ColumnExpr("DISTINCT mp.pokemon_id").
		Scan(ctx, &ids)
	if err != nil {
		return nil, r.HandleError("get_pooled_pokemon_ids", "monthly_pool", err)
	}
	return ids, nil
}
