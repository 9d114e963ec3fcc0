package repositories

import (
	"context"

	"github.com/shinysquad/streambingo/streambingo/database/models"
	"github.com/uptrace/bun"
)

type EntryRepository interface {
	GetByUserAndMonth(ctx context.Context, userID string, monthID int64) ([]*models.Entry, error)
	GetByUser(ctx context.Context, userID string) ([]*models.Entry, error)
	GetRecentByPokemon(ctx context.Context, pokemonID int64, limit int) ([]*models.Entry, error)
	CountByUser(ctx context.Context, userID string) (int, error)
}

type entryRepository struct {
	*BaseRepository
}

func NewEntryRepository(db *bun.DB) EntryRepository {
	return &entryRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *entryRepository) GetByUserAndMonth(ctx context.Context, userID string, monthID int64) ([]*models.Entry, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var entries []*models.Entry
	err := r.GetDB().NewSelect().
		Model(&entries).
		Where("e.user_id = ?", userID).
		Where("e.month_id = ?", monthID).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get_by_user_and_month", "entry", err)
	}
	return entries, nil
}

func (r *entryRepository) GetByUser(ctx context.Context, userID string) ([]*models.Entry, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var entries []*models.Entry
	err := r.GetDB().NewSelect().
		Model(&entries).
		Where("e.user_id = ?", userID).
		Order("e.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get_by_user", "entry", err)
	}
	return entries, nil
}

func (r *entryRepository) GetRecentByPokemon(ctx context.Context, pokemonID int64, limit int) ([]*models.Entry, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var entries []*models.Entry
	err := r.GetDB().NewSelect().
		Model(&entries).
		Where("e.pokemon_id = ?", pokemonID).
		Order("e.created_at DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get_recent_by_pokemon", "entry", err)
	}
	return entries, nil
}

func (r *entryRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	count, err := r.GetDB().NewSelect().
		Model((*models.Entry)(nil)).
		Where("e.user_id = ?", userID).
		Count(ctx)
	if err != nil {
		return 0, r.HandleError("count_by_user", "entry", err)
	}
	return count, nil
}
