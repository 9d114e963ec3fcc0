package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shinysquad/streambingo/streambingo/database/models"
	"github.com/shinysquad/streambingo/streambingo/database/repositories"
)

var (
	// ErrNoActiveMonth means no bingo month covers the effective date.
	ErrNoActiveMonth = errors.New("no active bingo month found")
	// ErrAmbiguousMonth means overlapping month records cover the effective
	// date. That is bad data, not a request problem.
	ErrAmbiguousMonth = errors.New("multiple bingo months overlap the effective date")
)

// PeriodResolver selects the bingo month active at a given moment. A day
// offset shifts "now" so moderators can preview past or future months.
type PeriodResolver struct {
	months repositories.MonthRepository
	now    func() time.Time
}

func NewPeriodResolver(months repositories.MonthRepository) *PeriodResolver {
	return &PeriodResolver{months: months, now: time.Now}
}

// ActiveMonth returns the single month whose [start, end] range contains
// now + offsetDays.
func (p *PeriodResolver) ActiveMonth(ctx context.Context, offsetDays int) (*models.BingoMonth, error) {
	effective := p.now().AddDate(0, 0, offsetDays)

	months, err := p.months.GetActiveAt(ctx, effective)
	if err != nil {
		return nil, err
	}

	switch len(months) {
	case 0:
		return nil, ErrNoActiveMonth
	case 1:
		return months[0], nil
	default:
		slog.Error("Overlapping bingo months detected",
			slog.String("type", "error"),
			slog.Time("effective_date", effective),
			slog.Int("matches", len(months)))
		return nil, ErrAmbiguousMonth
	}
}

// OffsetFor returns the day offset to apply for a viewer. Only moderators
// get their stored testing offset; everyone else resolves against real time.
func (p *PeriodResolver) OffsetFor(user *models.User) int {
	if user == nil || !user.IsModerator {
		return 0
	}
	return user.TestDateOffset
}
