package models

import "github.com/shinysquad/streambingo/streambingo/database/repositories"

// Repositories bundles every repository the handlers need.
type Repositories struct {
	Users        repositories.UserRepository
	Months       repositories.MonthRepository
	Pokemon      repositories.PokemonRepository
	Pools        repositories.PoolRepository
	Entries      repositories.EntryRepository
	Approvals    repositories.ApprovalRepository
	Points       repositories.PointsRepository
	Achievements repositories.AchievementRepository
}

func NewRepositories(
	users repositories.UserRepository,
	months repositories.MonthRepository,
	pokemon repositories.PokemonRepository,
	pools repositories.PoolRepository,
	entries repositories.EntryRepository,
	approvals repositories.ApprovalRepository,
	points repositories.PointsRepository,
	achievements repositories.AchievementRepository,
) *Repositories {
	return &Repositories{
		Users:        users,
		Months:       months,
		Pokemon:      pokemon,
		Pools:        pools,
		Entries:      entries,
		Approvals:    approvals,
		Points:       points,
		Achievements: achievements,
	}
}
