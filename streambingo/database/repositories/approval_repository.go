package repositories

import (
	"context"
	"time"

	"github.com/shinysquad/streambingo/streambingo/database/models"
	"github.com/uptrace/bun"
)

type ApprovalRepository interface {
	Create(ctx context.Context, approval *models.Approval) error
	GetPending(ctx context.Context) ([]*models.Approval, error)
}

type approvalRepository struct {
	*BaseRepository
}

func NewApprovalRepository(db *bun.DB) ApprovalRepository {
	return &approvalRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *approvalRepository) Create(ctx context.Context, approval *models.Approval) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	approval.CreatedAt = time.Now()
	_, err := r.GetDB().NewInsert().
		Model(approval).
		Returning("id").
		Exec(ctx)
	return r.HandleError("create", "approval", err)
}

func (r *approvalRepository) GetPending(ctx context.Context) ([]*models.Approval, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var approvals []*models.Approval
	err := r.GetDB().NewSelect().
		Model(&approvals).
		Order("a.created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get_pending", "approval", err)
	}
	return approvals, nil
}
