package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/shinysquad/streambingo/streambingo/database/models"
	"github.com/shinysquad/streambingo/streambingo/database/repositories"
	"golang.org/x/sync/errgroup"
)

// Scope selects the aggregation window for rankings.
type Scope string

const (
	ScopeMonthly Scope = "monthly"
	ScopeAllTime Scope = "alltime"
)

// DefaultHexCode is the brand color used when a user has not picked one.
const DefaultHexCode = "#9147ff"

// LiveStatus is the result of a channel live-status lookup.
type LiveStatus struct {
	IsLive      bool
	ViewerCount int
}

// LiveChecker looks up whether a channel is currently streaming. Lookups are
// best-effort decoration; callers treat an error as "not live".
type LiveChecker interface {
	Status(ctx context.Context, login string) (LiveStatus, error)
}

// LeaderboardEntry is one ranked row with its display enrichment.
type LeaderboardEntry struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Points      int       `json:"points"`
	Rank        int       `json:"rank"`
	CreatedAt   time.Time `json:"created_at"`
	IsLive      bool      `json:"is_live"`
	ViewerCount int       `json:"viewer_count,omitempty"`
	HexCode     string    `json:"hex_code"`

	// Achievements is set for monthly scope, AchievementCounts for all-time.
	Achievements      *models.AchievementFlags  `json:"achievements,omitempty"`
	AchievementCounts *models.AchievementCounts `json:"achievement_counts,omitempty"`
}

// MonthPoints labels a user's point total in one month.
type MonthPoints struct {
	Month  string `json:"month"`
	Points int    `json:"points"`
}

// MonthRank labels a user's rank in one month.
type MonthRank struct {
	Month string `json:"month"`
	Rank  int    `json:"rank"`
}

// RankingService computes ordered point standings and their enrichment.
// Missing points data fails the request; missing enrichment never does.
type RankingService struct {
	points       repositories.PointsRepository
	users        repositories.UserRepository
	achievements repositories.AchievementRepository
	months       repositories.MonthRepository
	live         LiveChecker
}

func NewRankingService(
	points repositories.PointsRepository,
	users repositories.UserRepository,
	achievements repositories.AchievementRepository,
	months repositories.MonthRepository,
	live LiveChecker,
) *RankingService {
	return &RankingService{
		points:       points,
		users:        users,
		achievements: achievements,
		months:       months,
		live:         live,
	}
}

type scoreRow struct {
	id     int64
	userID string
	points int
}

// sortScores orders by points descending with user id ascending as the
// tie-break, so equal-point users always rank in the same order.
func sortScores(scores []scoreRow) {
	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].points != scores[j].points {
			return scores[i].points > scores[j].points
		}
		return scores[i].userID < scores[j].userID
	})
}

func (s *RankingService) scores(ctx context.Context, scope Scope, monthID int64) ([]scoreRow, error) {
	if scope == ScopeMonthly {
		rows, err := s.points.GetByMonth(ctx, monthID)
		if err != nil {
			return nil, err
		}
		scores := make([]scoreRow, 0, len(rows))
		for _, row := range rows {
			scores = append(scores, scoreRow{id: row.ID, userID: row.UserID, points: row.Points})
		}
		sortScores(scores)
		return scores, nil
	}

	rows, err := s.points.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	totals := make(map[string]int)
	firstID := make(map[string]int64)
	order := make([]string, 0)
	for _, row := range rows {
		if _, seen := totals[row.UserID]; !seen {
			order = append(order, row.UserID)
			firstID[row.UserID] = row.ID
		}
		totals[row.UserID] += row.Points
	}
	scores := make([]scoreRow, 0, len(order))
	for _, userID := range order {
		scores = append(scores, scoreRow{id: firstID[userID], userID: userID, points: totals[userID]})
	}
	sortScores(scores)
	return scores, nil
}

// Leaderboard returns the ranked standings for a scope, limited to the top
// limit entries when limit > 0. monthID is ignored for all-time scope.
func (s *RankingService) Leaderboard(ctx context.Context, scope Scope, monthID int64, limit int) ([]LeaderboardEntry, error) {
	scores, err := s.scores(ctx, scope, monthID)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(scores) > limit {
		scores = scores[:limit]
	}

	userIDs := make([]string, 0, len(scores))
	for _, score := range scores {
		userIDs = append(userIDs, score.userID)
	}

	userByID := s.lookupUsers(ctx, userIDs)
	flags, counts := s.lookupAchievements(ctx, scope, monthID)

	entries := make([]LeaderboardEntry, 0, len(scores))
	for i, score := range scores {
		entry := LeaderboardEntry{
			ID:      score.id,
			UserID:  score.userID,
			Points:  score.points,
			Rank:    i + 1,
			HexCode: DefaultHexCode,
		}
		if user, ok := userByID[score.userID]; ok {
			entry.Username = user.Username
			entry.DisplayName = user.DisplayName
			entry.CreatedAt = user.CreatedAt
			if user.HexCode != "" {
				entry.HexCode = user.HexCode
			}
		}
		if scope == ScopeMonthly {
			f := flags[score.userID]
			entry.Achievements = &f
		} else {
			c := counts[score.userID]
			entry.AchievementCounts = &c
		}
		entries = append(entries, entry)
	}

	s.attachLiveStatus(ctx, entries, userByID)
	return entries, nil
}

// SelfRank returns a user's 1-based rank within the scope, or 0 when the
// user has no points there.
func (s *RankingService) SelfRank(ctx context.Context, scope Scope, monthID int64, userID string) (int, error) {
	scores, err := s.scores(ctx, scope, monthID)
	if err != nil {
		return 0, err
	}
	for i, score := range scores {
		if score.userID == userID {
			return i + 1, nil
		}
	}
	return 0, nil
}

// HighestPointMonth picks the month where the user scored the most points,
// first-seen order breaking ties. Returns nil when the user has no points.
func (s *RankingService) HighestPointMonth(ctx context.Context, userID string) (*MonthPoints, error) {
	rows, err := s.points.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	best := rows[0]
	for _, row := range rows[1:] {
		if row.Points > best.Points {
			best = row
		}
	}

	return &MonthPoints{
		Month:  s.monthLabel(ctx, best.MonthID),
		Points: best.Points,
	}, nil
}

// BestRankedMonth finds the month where the user placed highest, retaining
// the minimum rank and its month label. Returns nil when the user has no
// points anywhere.
func (s *RankingService) BestRankedMonth(ctx context.Context, userID string) (*MonthRank, error) {
	rows, err := s.points.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var best *MonthRank
	for _, row := range rows {
		rank, err := s.SelfRank(ctx, ScopeMonthly, row.MonthID, userID)
		if err != nil {
			return nil, err
		}
		if rank == 0 {
			continue
		}
		if best == nil || rank < best.Rank {
			best = &MonthRank{
				Month: s.monthLabel(ctx, row.MonthID),
				Rank:  rank,
			}
		}
	}
	return best, nil
}

// MonthlyBreakdown lists a user's per-month point totals in month order.
func (s *RankingService) MonthlyBreakdown(ctx context.Context, userID string) ([]MonthPoints, error) {
	rows, err := s.points.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	breakdown := make([]MonthPoints, 0, len(rows))
	for _, row := range rows {
		breakdown = append(breakdown, MonthPoints{
			Month:  s.monthLabel(ctx, row.MonthID),
			Points: row.Points,
		})
	}
	return breakdown, nil
}

func (s *RankingService) monthLabel(ctx context.Context, monthID int64) string {
	month, err := s.months.GetByID(ctx, monthID)
	if err != nil {
		slog.Warn("Failed to resolve month label",
			slog.Int64("month_id", monthID),
			slog.String("error", err.Error()))
		return ""
	}
	return month.Name
}

func (s *RankingService) lookupUsers(ctx context.Context, userIDs []string) map[string]*models.User {
	userByID := make(map[string]*models.User, len(userIDs))
	users, err := s.users.GetByIDs(ctx, userIDs)
	if err != nil {
		slog.Warn("Leaderboard user enrichment failed",
			slog.String("error", err.Error()))
		return userByID
	}
	for _, user := range users {
		userByID[user.ID] = user
	}
	return userByID
}

func (s *RankingService) lookupAchievements(ctx context.Context, scope Scope, monthID int64) (map[string]models.AchievementFlags, map[string]models.AchievementCounts) {
	flags := make(map[string]models.AchievementFlags)
	counts := make(map[string]models.AchievementCounts)

	var (
		rows []*models.BingoAchievement
		err  error
	)
	if scope == ScopeMonthly {
		rows, err = s.achievements.GetByMonth(ctx, monthID)
	} else {
		rows, err = s.achievements.GetAll(ctx)
	}
	if err != nil {
		slog.Warn("Leaderboard achievement enrichment failed",
			slog.String("error", err.Error()))
		return flags, counts
	}

	for _, row := range rows {
		f := flags[row.UserID]
		f.Mark(row.Type)
		flags[row.UserID] = f

		c := counts[row.UserID]
		c.Add(row.Type)
		counts[row.UserID] = c
	}
	return flags, counts
}

// attachLiveStatus decorates entries with live flags for users that link a
// channel. Lookup failures leave the defaults in place.
func (s *RankingService) attachLiveStatus(ctx context.Context, entries []LeaderboardEntry, userByID map[string]*models.User) {
	if s.live == nil {
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i := range entries {
		user, ok := userByID[entries[i].UserID]
		if !ok {
			continue
		}
		login := user.TwitchLogin()
		if login == "" {
			continue
		}

		entry := &entries[i]
		g.Go(func() error {
			status, err := s.live.Status(gctx, login)
			if err != nil {
				slog.Debug("Live status lookup failed",
					slog.String("login", login),
					slog.String("error", err.Error()))
				return nil
			}
			entry.IsLive = status.IsLive
			entry.ViewerCount = status.ViewerCount
			return nil
		})
	}
	_ = g.Wait()
}
