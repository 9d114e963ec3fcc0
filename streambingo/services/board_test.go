package services

import (
	"context"
	"testing"

	"github.com/shinysquad/streambingo/streambingo/database/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardFixtures() (*fakePoolRepo, *fakePokemonRepo, *fakeEntryRepo) {
	pools := &fakePoolRepo{}
	pokemon := &fakePokemonRepo{}
	for position := 1; position <= models.BoardSize; position++ {
		if position == models.FreeSpacePosition {
			continue
		}
		id := int64(position)
		pools.pools = append(pools.pools, &models.MonthlyPool{
			ID:        id,
			MonthID:   1,
			Position:  position,
			PokemonID: id,
		})
		pokemon.pokemon = append(pokemon.pokemon, &models.Pokemon{
			ID:             id,
			NationalDexID:  position,
			Name:           "Mon",
			ShinyAvailable: true,
		})
	}
	return pools, pokemon, &fakeEntryRepo{}
}

func TestAssembleFullBoard(t *testing.T) {
	pools, pokemon, entries := boardFixtures()
	entries.entries = []*models.Entry{
		{ID: 1, UserID: "u1", MonthID: 1, PokemonID: 3},
		{ID: 2, UserID: "u1", MonthID: 1, PokemonID: 20},
		{ID: 3, UserID: "u2", MonthID: 1, PokemonID: 5},
	}

	assembler := NewBoardAssembler(pools, pokemon, entries)
	board, err := assembler.Assemble(context.Background(), 1, "u1")
	require.NoError(t, err)
	require.Len(t, board, models.BoardSize)

	for i, cell := range board {
		assert.Equal(t, i+1, cell.Position, "cells come back in position order")
	}

	free := board[models.FreeSpacePosition-1]
	assert.True(t, free.IsFreeSpace)
	assert.True(t, free.IsChecked, "free space counts for everyone")
	assert.Equal(t, "Free Space", free.Name)

	checked := 0
	for _, cell := range board {
		if cell.IsFreeSpace {
			continue
		}
		if cell.IsChecked {
			checked++
			assert.Contains(t, []int64{3, 20}, cell.PokemonID)
		}
	}
	assert.Equal(t, 2, checked, "only the viewer's own catches are checked")
}

func TestAssembleAnonymousBoard(t *testing.T) {
	pools, pokemon, entries := boardFixtures()
	entries.entries = []*models.Entry{
		{ID: 1, UserID: "u1", MonthID: 1, PokemonID: 3},
	}

	assembler := NewBoardAssembler(pools, pokemon, entries)
	board, err := assembler.Assemble(context.Background(), 1, "")
	require.NoError(t, err)
	require.Len(t, board, models.BoardSize)

	for _, cell := range board {
		if cell.IsFreeSpace {
			assert.True(t, cell.IsChecked)
			continue
		}
		assert.False(t, cell.IsChecked, "anonymous boards are fully unchecked")
	}
}

func TestAssemblePartialPool(t *testing.T) {
	pools := &fakePoolRepo{pools: []*models.MonthlyPool{
		{ID: 1, MonthID: 1, Position: 1, PokemonID: 10},
		{ID: 2, MonthID: 1, Position: 2, PokemonID: 11},
	}}
	pokemon := &fakePokemonRepo{pokemon: []*models.Pokemon{
		{ID: 10, NationalDexID: 10, Name: "Caterpie", ShinyAvailable: true},
		// 11 is pooled but not shiny-eligible, so its cell reads as empty.
		{ID: 11, NationalDexID: 11, Name: "Metapod", ShinyAvailable: false},
	}}

	assembler := NewBoardAssembler(pools, pokemon, &fakeEntryRepo{})
	board, err := assembler.Assemble(context.Background(), 1, "u1")
	require.NoError(t, err)
	require.Len(t, board, models.BoardSize)

	assert.Equal(t, "Caterpie", board[0].Name)
	assert.False(t, board[0].IsEmpty)

	assert.True(t, board[1].IsEmpty)
	assert.Equal(t, "???", board[1].Name)

	// Unbound positions read as empty placeholders too.
	assert.True(t, board[2].IsEmpty)
	assert.Equal(t, "???", board[2].Name)
}

func TestAssembleFailsWhenPoolUnavailable(t *testing.T) {
	pools := &fakePoolRepo{err: assert.AnError}

	assembler := NewBoardAssembler(pools, &fakePokemonRepo{}, &fakeEntryRepo{})
	board, err := assembler.Assemble(context.Background(), 1, "u1")
	require.Error(t, err)
	assert.Nil(t, board, "partial boards are never returned")
}
