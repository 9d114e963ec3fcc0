package repositories

import (
	"context"

	"github.com/shinysquad/streambingo/streambingo/database/models"
	"github.com/uptrace/bun"
)

type PokemonRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Pokemon, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*models.Pokemon, error)
	GetShinyByIDs(ctx context.Context, ids []int64) ([]*models.Pokemon, error)
	GetAllShiny(ctx context.Context) ([]*models.Pokemon, error)
	CountShiny(ctx context.Context) (int, error)
}

type pokemonRepository struct {
	*BaseRepository
}

func NewPokemonRepository(db *bun.DB) PokemonRepository {
	return &pokemonRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *pokemonRepository) GetByID(ctx context.Context, id int64) (*models.Pokemon, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	pokemon := new(models.Pokemon)
	err := r.GetDB().NewSelect().
		Model(pokemon).
		Where("p.id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("get", "pokemon", id, err)
	}
	return pokemon, nil
}

func (r *pokemonRepository) GetByIDs(ctx context.Context, ids []int64) ([]*models.Pokemon, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var pokemon []*models.Pokemon
	err := r.GetDB().NewSelect().
		Model(&pokemon).
		Where("p.id IN (?)", bun.In(ids)).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get_by_ids", "pokemon", err)
	}
	return pokemon, nil
}

func (r *pokemonRepository) GetShinyByIDs(ctx context.Context, ids []int64) ([]*models.Pokemon, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var pokemon []*models.Pokemon
	err := r.GetDB().NewSelect().
		Model(&pokemon).
		Where("p.id IN (?)", bun.In(ids)).
		Where("p.shiny_available = true").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get_shiny_by_ids", "pokemon", err)
	}
	return pokemon, nil
}

func (r *pokemonRepository) GetAllShiny(ctx context.Context) ([]*models.Pokemon, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var pokemon []*models.Pokemon
	err := r.GetDB().NewSelect().
		Model(&pokemon).
		Where("p.shiny_available = true").
		Order("p.national_dex_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get_all_shiny", "pokemon", err)
	}
	return pokemon, nil
}

func (r *pokemonRepository) CountShiny(ctx context.Context) (int, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	count, err := r.GetDB().NewSelect().
		Model((*models.Pokemon)(nil)).
		Where("p.shiny_available = true").
		Count(ctx)
	if err != nil {
		return 0, r.HandleError("count_shiny", "pokemon", err)
	}
	return count, nil
}
