package repositories

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/shinysquad/streambingo/streambingo/database/models"
	"github.com/uptrace/bun"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByIDs(ctx context.Context, ids []string) ([]*models.User, error)
	GetAmbassadors(ctx context.Context) ([]*models.User, error)
	GetByToken(ctx context.Context, token string) (*models.User, error)
}

type userRepository struct {
	*BaseRepository
}

func NewUserRepository(db *bun.DB) UserRepository {
	return &userRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	user := new(models.User)
	err := r.GetDB().NewSelect().
		Model(user).
		Where("u.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			slog.Warn("User not found in database",
				slog.String("type", "db"),
				slog.String("operation", "GetByID"),
				slog.String("user_id", id))
		}
		return nil, r.HandleErrorWithID("get", "user", id, err)
	}
	return user, nil
}

func (r *userRepository) GetByIDs(ctx context.Context, ids []string) ([]*models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var users []*models.User
	err := r.GetDB().NewSelect().
		Model(&users).
		Where("u.id IN (?)", bun.In(ids)).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get_by_ids", "user", err)
	}
	return users, nil
}

func (r *userRepository) GetAmbassadors(ctx context.Context) ([]*models.User, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var users []*models.User
	err := r.GetDB().NewSelect().
		Model(&users).
		Where("u.is_ambassador = true").
		Order("u.display_name ASC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get_ambassadors", "user", err)
	}
	return users, nil
}

// GetByToken resolves a bearer token to its user through the auth_sessions
// table. Expired tokens resolve to not found.
func (r *userRepository) GetByToken(ctx context.Context, token string) (*models.User, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	user := new(models.User)
	err := r.GetDB().NewSelect().
		Model(user).
		Join("JOIN auth_sessions AS s ON s.user_id = u.id").
		Where("s.token = ?", token).
		Where("s.expires_at > ?", time.Now()).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get_by_token", "user", err)
	}
	return user, nil
}
