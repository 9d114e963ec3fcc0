package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/shinysquad/streambingo/streambingo/database/models"
)

// In-memory repository fakes backing the service tests.

type fakeMonthRepo struct {
	months []*models.BingoMonth
	err    error
}

func (f *fakeMonthRepo) GetByID(_ context.Context, id int64) (*models.BingoMonth, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, m := range f.months {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, errors.New("month not found")
}

func (f *fakeMonthRepo) GetActiveAt(_ context.Context, at time.Time) ([]*models.BingoMonth, error) {
	if f.err != nil {
		return nil, f.err
	}
	var active []*models.BingoMonth
	for _, m := range f.months {
		if m.Contains(at) {
			active = append(active, m)
		}
	}
	return active, nil
}

func (f *fakeMonthRepo) GetAll(_ context.Context) ([]*models.BingoMonth, error) {
	return f.months, f.err
}

type fakePoolRepo struct {
	pools []*models.MonthlyPool
	err   error
}

func (f *fakePoolRepo) GetByMonth(_ context.Context, monthID int64) ([]*models.MonthlyPool, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.MonthlyPool
	for _, p := range f.pools {
		if p.MonthID == monthID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePoolRepo) GetPooledPokemonIDs(_ context.Context) ([]int64, error) {
	if f.err != nil {
		return nil, f.err
	}
	seen := make(map[int64]bool)
	var ids []int64
	for _, p := range f.pools {
		if !seen[p.PokemonID] {
			seen[p.PokemonID] = true
			ids = append(ids, p.PokemonID)
		}
	}
	return ids, nil
}

type fakePokemonRepo struct {
	pokemon []*models.Pokemon
	err     error
}

func (f *fakePokemonRepo) GetByID(_ context.Context, id int64) (*models.Pokemon, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.pokemon {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, errors.New("pokemon not found")
}

func (f *fakePokemonRepo) GetByIDs(_ context.Context, ids []int64) ([]*models.Pokemon, error) {
	if f.err != nil {
		return nil, f.err
	}
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []*models.Pokemon
	for _, p := range f.pokemon {
		if want[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePokemonRepo) GetShinyByIDs(ctx context.Context, ids []int64) ([]*models.Pokemon, error) {
	all, err := f.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	var out []*models.Pokemon
	for _, p := range all {
		if p.ShinyAvailable {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePokemonRepo) GetAllShiny(_ context.Context) ([]*models.Pokemon, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.Pokemon
	for _, p := range f.pokemon {
		if p.ShinyAvailable {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePokemonRepo) CountShiny(ctx context.Context) (int, error) {
	out, err := f.GetAllShiny(ctx)
	return len(out), err
}

type fakeEntryRepo struct {
	entries []*models.Entry
	err     error
}

func (f *fakeEntryRepo) GetByUserAndMonth(_ context.Context, userID string, monthID int64) ([]*models.Entry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.Entry
	for _, e := range f.entries {
		if e.UserID == userID && e.MonthID == monthID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEntryRepo) GetByUser(_ context.Context, userID string) ([]*models.Entry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.Entry
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEntryRepo) GetRecentByPokemon(_ context.Context, pokemonID int64, limit int) ([]*models.Entry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.Entry
	for _, e := range f.entries {
		if e.PokemonID == pokemonID {
			out = append(out, e)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeEntryRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	out, err := f.GetByUser(ctx, userID)
	return len(out), err
}

type fakeApprovalRepo struct {
	created []*models.Approval
	err     error
}

func (f *fakeApprovalRepo) Create(_ context.Context, approval *models.Approval) error {
	if f.err != nil {
		return f.err
	}
	approval.ID = int64(len(f.created) + 1)
	f.created = append(f.created, approval)
	return nil
}

func (f *fakeApprovalRepo) GetPending(_ context.Context) ([]*models.Approval, error) {
	return f.created, f.err
}

type fakeUserRepo struct {
	users []*models.User
	err   error
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errors.New("user not found")
}

func (f *fakeUserRepo) GetByIDs(_ context.Context, ids []string) ([]*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []*models.User
	for _, u := range f.users {
		if want[u.ID] {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) GetAmbassadors(_ context.Context) ([]*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.User
	for _, u := range f.users {
		if u.IsAmbassador {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) GetByToken(_ context.Context, _ string) (*models.User, error) {
	return nil, errors.New("not implemented")
}

type fakePointsRepo struct {
	rows []*models.UserMonthlyPoints
	err  error
}

func (f *fakePointsRepo) GetByMonth(_ context.Context, monthID int64) ([]*models.UserMonthlyPoints, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.UserMonthlyPoints
	for _, r := range f.rows {
		if r.MonthID == monthID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakePointsRepo) GetByUser(_ context.Context, userID string) ([]*models.UserMonthlyPoints, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.UserMonthlyPoints
	for _, r := range f.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakePointsRepo) GetAll(_ context.Context) ([]*models.UserMonthlyPoints, error) {
	return f.rows, f.err
}

type fakeAchievementRepo struct {
	rows []*models.BingoAchievement
	err  error
}

func (f *fakeAchievementRepo) GetByMonth(_ context.Context, monthID int64) ([]*models.BingoAchievement, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.BingoAchievement
	for _, r := range f.rows {
		if r.MonthID == monthID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAchievementRepo) GetByUser(_ context.Context, userID string) ([]*models.BingoAchievement, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.BingoAchievement
	for _, r := range f.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAchievementRepo) GetByUserAndMonth(_ context.Context, userID string, monthID int64) ([]*models.BingoAchievement, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.BingoAchievement
	for _, r := range f.rows {
		if r.UserID == userID && r.MonthID == monthID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAchievementRepo) GetAll(_ context.Context) ([]*models.BingoAchievement, error) {
	return f.rows, f.err
}

type fakeProofStore struct {
	uploads []string
	err     error
}

func (f *fakeProofStore) ProofKey(userID string, pokemonID int64, filename string) string {
	return fmt.Sprintf("proofs/%s/%d_%s", userID, pokemonID, filename)
}

func (f *fakeProofStore) UploadProof(_ context.Context, key, _ string, _ io.Reader, _ int64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploads = append(f.uploads, key)
	return "https://cdn.example.com/" + key, nil
}

type fakeLiveChecker struct {
	statuses map[string]LiveStatus
	err      error
}

func (f *fakeLiveChecker) Status(_ context.Context, login string) (LiveStatus, error) {
	if f.err != nil {
		return LiveStatus{}, f.err
	}
	return f.statuses[login], nil
}
