package services

import (
	"context"
	"testing"

	"github.com/shinysquad/streambingo/streambingo/database/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankingFixtures() *RankingService {
	points := &fakePointsRepo{rows: []*models.UserMonthlyPoints{
		{ID: 1, UserID: "alice", MonthID: 1, Points: 30, BingosCompleted: 2},
		{ID: 2, UserID: "bob", MonthID: 1, Points: 50, BingosCompleted: 3},
		{ID: 3, UserID: "carol", MonthID: 1, Points: 30, BingosCompleted: 1},
		{ID: 4, UserID: "alice", MonthID: 2, Points: 40},
		{ID: 5, UserID: "bob", MonthID: 2, Points: 10},
	}}
	users := &fakeUserRepo{users: []*models.User{
		{ID: "alice", Username: "alice", DisplayName: "Alice", HexCode: "#ff0000", TwitchURL: "https://twitch.tv/alice"},
		{ID: "bob", Username: "bob", DisplayName: "Bob"},
		{ID: "carol", Username: "carol", DisplayName: "Carol"},
	}}
	achievements := &fakeAchievementRepo{rows: []*models.BingoAchievement{
		{ID: 1, UserID: "bob", MonthID: 1, Type: models.AchievementRow},
		{ID: 2, UserID: "bob", MonthID: 1, Type: models.AchievementBlackout},
		{ID: 3, UserID: "bob", MonthID: 2, Type: models.AchievementRow},
	}}
	months := &fakeMonthRepo{months: []*models.BingoMonth{
		{ID: 1, Name: "June 2025"},
		{ID: 2, Name: "July 2025"},
	}}
	live := &fakeLiveChecker{statuses: map[string]LiveStatus{
		"alice": {IsLive: true, ViewerCount: 120},
	}}
	return NewRankingService(points, users, achievements, months, live)
}

func TestMonthlyLeaderboard(t *testing.T) {
	svc := rankingFixtures()

	entries, err := svc.Leaderboard(context.Background(), ScopeMonthly, 1, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Points descending, user id breaking the 30-point tie.
	assert.Equal(t, "bob", entries[0].UserID)
	assert.Equal(t, "alice", entries[1].UserID)
	assert.Equal(t, "carol", entries[2].UserID)

	for i, entry := range entries {
		assert.Equal(t, i+1, entry.Rank, "ranks are a 1..N sequence")
	}

	require.NotNil(t, entries[0].Achievements)
	assert.True(t, entries[0].Achievements.Row)
	assert.True(t, entries[0].Achievements.Blackout)
	assert.False(t, entries[0].Achievements.Column)

	assert.Equal(t, "#ff0000", entries[1].HexCode)
	assert.Equal(t, DefaultHexCode, entries[0].HexCode, "missing brand color falls back to the default")

	assert.True(t, entries[1].IsLive)
	assert.Equal(t, 120, entries[1].ViewerCount)
	assert.False(t, entries[0].IsLive)
}

func TestAllTimeLeaderboard(t *testing.T) {
	svc := rankingFixtures()

	entries, err := svc.Leaderboard(context.Background(), ScopeAllTime, 0, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// alice 70, bob 60, carol 30 across both months.
	assert.Equal(t, "alice", entries[0].UserID)
	assert.Equal(t, 70, entries[0].Points)
	assert.Equal(t, "bob", entries[1].UserID)
	assert.Equal(t, 60, entries[1].Points)
	assert.Equal(t, "carol", entries[2].UserID)

	// Aggregated rows keep the user's first points-row id so the row shape
	// stays uniform across scopes.
	assert.Equal(t, int64(1), entries[0].ID)
	assert.Equal(t, int64(2), entries[1].ID)
	assert.Equal(t, int64(3), entries[2].ID)

	require.NotNil(t, entries[1].AchievementCounts)
	assert.Equal(t, 2, entries[1].AchievementCounts.Row)
	assert.Equal(t, 1, entries[1].AchievementCounts.Blackout)
	assert.Nil(t, entries[1].Achievements, "all-time scope carries counts, not flags")
}

func TestLeaderboardLimit(t *testing.T) {
	svc := rankingFixtures()

	entries, err := svc.Leaderboard(context.Background(), ScopeMonthly, 1, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "bob", entries[0].UserID)
	assert.Equal(t, "alice", entries[1].UserID)
}

func TestLeaderboardTieDeterminism(t *testing.T) {
	svc := rankingFixtures()

	first, err := svc.Leaderboard(context.Background(), ScopeMonthly, 1, 0)
	require.NoError(t, err)
	second, err := svc.Leaderboard(context.Background(), ScopeMonthly, 1, 0)
	require.NoError(t, err)

	for i := range first {
		assert.Equal(t, first[i].UserID, second[i].UserID)
		assert.Equal(t, first[i].Rank, second[i].Rank)
	}
}

func TestSelfRank(t *testing.T) {
	svc := rankingFixtures()
	ctx := context.Background()

	rank, err := svc.SelfRank(ctx, ScopeMonthly, 1, "carol")
	require.NoError(t, err)
	assert.Equal(t, 3, rank)

	rank, err = svc.SelfRank(ctx, ScopeAllTime, 0, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, rank)

	rank, err = svc.SelfRank(ctx, ScopeMonthly, 1, "nobody")
	require.NoError(t, err)
	assert.Equal(t, 0, rank, "absent users rank as zero")
}

func TestHighestPointMonth(t *testing.T) {
	svc := rankingFixtures()

	best, err := svc.HighestPointMonth(context.Background(), "alice")
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, "July 2025", best.Month)
	assert.Equal(t, 40, best.Points)

	none, err := svc.HighestPointMonth(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestBestRankedMonth(t *testing.T) {
	svc := rankingFixtures()

	// bob is rank 2 in July but rank 1 in June.
	best, err := svc.BestRankedMonth(context.Background(), "bob")
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, "June 2025", best.Month)
	assert.Equal(t, 1, best.Rank)
}

func TestMonthlyBreakdown(t *testing.T) {
	svc := rankingFixtures()

	breakdown, err := svc.MonthlyBreakdown(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, breakdown, 2)
	assert.Equal(t, MonthPoints{Month: "June 2025", Points: 30}, breakdown[0])
	assert.Equal(t, MonthPoints{Month: "July 2025", Points: 40}, breakdown[1])
}

func TestLeaderboardSurvivesEnrichmentFailure(t *testing.T) {
	points := &fakePointsRepo{rows: []*models.UserMonthlyPoints{
		{ID: 1, UserID: "alice", MonthID: 1, Points: 10},
	}}
	svc := NewRankingService(points,
		&fakeUserRepo{err: assert.AnError},
		&fakeAchievementRepo{err: assert.AnError},
		&fakeMonthRepo{},
		nil)

	entries, err := svc.Leaderboard(context.Background(), ScopeMonthly, 1, 0)
	require.NoError(t, err, "enrichment failures never fail the request")
	require.Len(t, entries, 1)
	assert.Equal(t, "alice", entries[0].UserID)
	assert.Equal(t, DefaultHexCode, entries[0].HexCode)
	assert.Empty(t, entries[0].Username)
}

func TestLeaderboardFailsWithoutPoints(t *testing.T) {
	svc := NewRankingService(&fakePointsRepo{err: assert.AnError},
		&fakeUserRepo{}, &fakeAchievementRepo{}, &fakeMonthRepo{}, nil)

	_, err := svc.Leaderboard(context.Background(), ScopeMonthly, 1, 0)
	require.Error(t, err, "missing points data is a hard failure")
}
