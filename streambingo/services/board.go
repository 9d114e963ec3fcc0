package services

import (
	"context"
	"fmt"

	"github.com/shinysquad/streambingo/streambingo/database/models"
	"github.com/shinysquad/streambingo/streambingo/database/repositories"
	"golang.org/x/sync/errgroup"
)

// BoardCell is one of the 25 positions of a rendered board.
type BoardCell struct {
	Position      int    `json:"position"`
	PokemonID     int64  `json:"pokemon_id,omitempty"`
	NationalDexID int    `json:"national_dex_id,omitempty"`
	Name          string `json:"name,omitempty"`
	ImgURL        string `json:"img_url,omitempty"`
	IsChecked     bool   `json:"is_checked"`
	IsFreeSpace   bool   `json:"is_free_space,omitempty"`
	IsEmpty       bool   `json:"is_empty,omitempty"`
}

// BoardAssembler merges a month's pool with the catalog and a viewer's
// caught set into an ordered 25-cell board.
type BoardAssembler struct {
	pools   repositories.PoolRepository
	pokemon repositories.PokemonRepository
	entries repositories.EntryRepository
}

func NewBoardAssembler(
	pools repositories.PoolRepository,
	pokemon repositories.PokemonRepository,
	entries repositories.EntryRepository,
) *BoardAssembler {
	return &BoardAssembler{pools: pools, pokemon: pokemon, entries: entries}
}

// Assemble builds the board for a month. userID may be empty for the public
// view; then every non-free cell is unchecked. Any read failure aborts the
// whole assembly; partial boards are never returned.
func (b *BoardAssembler) Assemble(ctx context.Context, monthID int64, userID string) ([]BoardCell, error) {
	pools, err := b.pools.GetByMonth(ctx, monthID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch monthly pool: %w", err)
	}

	poolByPosition := make(map[int]int64, len(pools))
	pokemonIDs := make([]int64, 0, len(pools))
	for _, p := range pools {
		poolByPosition[p.Position] = p.PokemonID
		pokemonIDs = append(pokemonIDs, p.PokemonID)
	}

	// The catalog and entry reads are independent.
	var (
		catalog []*models.Pokemon
		entries []*models.Entry
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		catalog, err = b.pokemon.GetShinyByIDs(gctx, pokemonIDs)
		if err != nil {
			return fmt.Errorf("failed to fetch pokemon: %w", err)
		}
		return nil
	})
	if userID != "" {
		g.Go(func() error {
			var err error
			entries, err = b.entries.GetByUserAndMonth(gctx, userID, monthID)
			if err != nil {
				return fmt.Errorf("failed to fetch entries: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	pokemonByID := make(map[int64]*models.Pokemon, len(catalog))
	for _, p := range catalog {
		pokemonByID[p.ID] = p
	}

	caught := make(map[int64]bool, len(entries))
	for _, e := range entries {
		caught[e.PokemonID] = true
	}

	board := make([]BoardCell, 0, models.BoardSize)
	for position := 1; position <= models.BoardSize; position++ {
		if position == models.FreeSpacePosition {
			board = append(board, BoardCell{
				Position:    position,
				Name:        "Free Space",
				IsChecked:   true,
				IsFreeSpace: true,
			})
			continue
		}

		pokemonID, bound := poolByPosition[position]
		pokemon, known := pokemonByID[pokemonID]
		if !bound || !known {
			board = append(board, BoardCell{
				Position: position,
				Name:     "???",
				IsEmpty:  true,
			})
			continue
		}

		board = append(board, BoardCell{
			Position:      position,
			PokemonID:     pokemon.ID,
			NationalDexID: pokemon.NationalDexID,
			Name:          pokemon.Name,
			ImgURL:        pokemon.ImgURL,
			IsChecked:     caught[pokemon.ID],
		})
	}

	return board, nil
}
