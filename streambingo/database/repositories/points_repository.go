package repositories

import (
	"context"

	"github.com/shinysquad/streambingo/streambingo/database/models"
	"github.com/uptrace/bun"
)

type PointsRepository interface {
	GetByMonth(ctx context.Context, monthID int64) ([]*models.UserMonthlyPoints, error)
	GetByUser(ctx context.Context, userID string) ([]*models.UserMonthlyPoints, error)
	GetAll(ctx context.Context) ([]*models.UserMonthlyPoints, error)
}

type pointsRepository struct {
	*BaseRepository
}

func NewPointsRepository(db *bun.DB) PointsRepository {
	return &pointsRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *pointsRepository) GetByMonth(ctx context.Context, monthID int64) ([]*models.UserMonthlyPoints, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var points []*models.UserMonthlyPoints
	err := r.GetDB().NewSelect().
		Model(&points).
		Where("ump.month_id = ?", monthID).
		Order("ump.points DESC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get_by_month", "user_monthly_points", err)
	}
	return points, nil
}

func (r *pointsRepository) GetByUser(ctx context.Context, userID string) ([]*models.UserMonthlyPoints, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var points []*models.UserMonthlyPoints
	err := r.GetDB().NewSelect().
		Model(&points).
		Where("ump.user_id = ?", userID).
		Order("ump.month_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get_by_user", "user_monthly_points", err)
	}
	return points, nil
}

func (r *pointsRepository) GetAll(ctx context.Context) ([]*models.UserMonthlyPoints, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var points []*models.UserMonthlyPoints
	err := r.GetDB().NewSelect().
		Model(&points).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get_all", "user_monthly_points", err)
	}
	return points, nil
}
