package repositories

import (
	"context"
	"time"

	"github.com/shinysquad/streambingo/streambingo/database/models"
	"github.com/uptrace/bun"
)

type MonthRepository interface {
	GetByID(ctx context.Context, id int64) (*models.BingoMonth, error)
	GetActiveAt(ctx context.Context, at time.Time) ([]*models.BingoMonth, error)
	GetAll(ctx context.Context) ([]*models.BingoMonth, error)
}

type monthRepository struct {
	*BaseRepository
}

func NewMonthRepository(db *bun.DB) MonthRepository {
	return &monthRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *monthRepository) GetByID(ctx context.Context, id int64) (*models.BingoMonth, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	month := new(models.BingoMonth)
	err := r.GetDB().NewSelect().
		Model(month).
		Where("bm.id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("get", "bingo_month", id, err)
	}
	return month, nil
}

// GetActiveAt returns every month whose date range contains at. More than
// one row means overlapping month records, which callers treat as a data
// integrity fault.
func (r *monthRepository) GetActiveAt(ctx context.Context, at time.Time) ([]*models.BingoMonth, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var months []*models.BingoMonth
	err := r.GetDB().NewSelect().
		Model(&months).
		Where("bm.start_date <= ?", at).
		Where("bm.end_date >= ?", at).
		Order("bm.start_date ASC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get_active_at", "bingo_month", err)
	}
	return months, nil
}

func (r *monthRepository) GetAll(ctx context.Context) ([]*models.BingoMonth, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var months []*models.BingoMonth
	err := r.GetDB().NewSelect().
		Model(&months).
		Order("bm.start_date ASC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get_all", "bingo_month", err)
	}
	return months, nil
}
