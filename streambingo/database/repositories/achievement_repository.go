package repositories

import (
	"context"

	"github.com/shinysquad/streambingo/streambingo/database/models"
	"github.com/uptrace/bun"
)

type AchievementRepository interface {
	GetByMonth(ctx context.Context, monthID int64) ([]*models.BingoAchievement, error)
	GetByUser(ctx context.Context, userID string) ([]*models.BingoAchievement, error)
	GetByUserAndMonth(ctx context.Context, userID string, monthID int64) ([]*models.BingoAchievement, error)
	GetAll(ctx context.Context) ([]*models.BingoAchievement, error)
}

type achievementRepository struct {
	*BaseRepository
}

func NewAchievementRepository(db *bun.DB) AchievementRepository {
	return &achievementRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *achievementRepository) GetByMonth(ctx context.Context, monthID int64) ([]*models.BingoAchievement, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var achievements []*models.BingoAchievement
	err := r.GetDB().NewSelect().
		Model(&achievements).
		Where("ba.month_id = ?", monthID).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get_by_month", "bingo_achievement", err)
	}
	return achievements, nil
}

func (r *achievementRepository) GetByUser(ctx context.Context, userID string) ([]*models.BingoAchievement, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var achievements []*models.BingoAchievement
	err := r.GetDB().NewSelect().
		Model(&achievements).
		Where("ba.user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get_by_user", "bingo_achievement", err)
	}
	return achievements, nil
}

func (r *achievementRepository) GetByUserAndMonth(ctx context.Context, userID string, monthID int64) ([]*models.BingoAchievement, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var achievements []*models.BingoAchievement
	err := r.GetDB().NewSelect().
		Model(&achievements).
		Where("ba.user_id = ?", userID).
		Where("ba.month_id = ?", monthID).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get_by_user_and_month", "bingo_achievement", err)
	}
	return achievements, nil
}

func (r *achievementRepository) GetAll(ctx context.Context) ([]*models.BingoAchievement, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var achievements []*models.BingoAchievement
	err := r.GetDB().NewSelect().
		Model(&achievements).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get_all", "bingo_achievement", err)
	}
	return achievements, nil
}
