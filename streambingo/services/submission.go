package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"sort"

	"github.com/shinysquad/streambingo/streambingo/database/models"
	"github.com/shinysquad/streambingo/streambingo/database/repositories"
)

var (
	ErrMissingPokemon = errors.New("pokemon_id is required")
	ErrMissingProof   = errors.New("provide either a proof link or both proof images")
)

// ProofStore abstracts the object storage used for uploaded proof images.
type ProofStore interface {
	ProofKey(userID string, pokemonID int64, filename string) string
	UploadProof(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
}

// Submission is a parsed catch submission. Exactly one proof mode must be
// present: a link, or both files. When a link and files arrive together the
// link wins, matching the upload form which clears files once a link is
// typed.
type Submission struct {
	PokemonID int64
	ProofLink string
	File      *multipart.FileHeader
	File2     *multipart.FileHeader
}

// SubmissionService validates catch submissions, stores their proof, and
// records a pending approval for moderator review.
type SubmissionService struct {
	resolver  *PeriodResolver
	pools     repositories.PoolRepository
	pokemon   repositories.PokemonRepository
	entries   repositories.EntryRepository
	approvals repositories.ApprovalRepository
	store     ProofStore
}

func NewSubmissionService(
	resolver *PeriodResolver,
	pools repositories.PoolRepository,
	pokemon repositories.PokemonRepository,
	entries repositories.EntryRepository,
	approvals repositories.ApprovalRepository,
	store ProofStore,
) *SubmissionService {
	return &SubmissionService{
		resolver:  resolver,
		pools:     pools,
		pokemon:   pokemon,
		entries:   entries,
		approvals: approvals,
		store:     store,
	}
}

// Submit validates and persists a catch submission. Plain submissions always
// resolve the active month against real time; the moderator preview offset
// does not apply here.
func (s *SubmissionService) Submit(ctx context.Context, userID string, sub Submission) (*models.Approval, error) {
	if sub.PokemonID == 0 {
		return nil, ErrMissingPokemon
	}
	if sub.ProofLink == "" && (sub.File == nil || sub.File2 == nil) {
		return nil, ErrMissingProof
	}

	month, err := s.resolver.ActiveMonth(ctx, 0)
	if err != nil {
		return nil, err
	}

	approval := &models.Approval{
		UserID:    userID,
		MonthID:   month.ID,
		PokemonID: sub.PokemonID,
	}

	if sub.ProofLink != "" {
		approval.ProofURL = sub.ProofLink
	} else {
		url1, err := s.uploadProofFile(ctx, userID, sub.PokemonID, sub.File)
		if err != nil {
			return nil, err
		}
		url2, err := s.uploadProofFile(ctx, userID, sub.PokemonID, sub.File2)
		if err != nil {
			return nil, err
		}
		approval.ProofURL = url1
		approval.ProofURL2 = url2
	}

	if err := s.approvals.Create(ctx, approval); err != nil {
		return nil, err
	}

	slog.Info("Catch submission recorded",
		slog.String("user_id", userID),
		slog.Int64("pokemon_id", sub.PokemonID),
		slog.Int64("month_id", month.ID))

	return approval, nil
}

func (s *SubmissionService) uploadProofFile(ctx context.Context, userID string, pokemonID int64, header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open proof file %s: %w", header.Filename, err)
	}
	defer file.Close()

	key := s.store.ProofKey(userID, pokemonID, header.Filename)
	url, err := s.store.UploadProof(ctx, key, header.Header.Get("Content-Type"), file, header.Size)
	if err != nil {
		return "", err
	}
	return url, nil
}

// AvailablePokemon lists the active month's pool pokemon the user has not
// caught yet, sorted by dex number.
func (s *SubmissionService) AvailablePokemon(ctx context.Context, userID string) ([]*models.Pokemon, error) {
	month, err := s.resolver.ActiveMonth(ctx, 0)
	if err != nil {
		return nil, err
	}

	pools, err := s.pools.GetByMonth(ctx, month.ID)
	if err != nil {
		return nil, err
	}
	pokemonIDs := make([]int64, 0, len(pools))
	for _, p := range pools {
		pokemonIDs = append(pokemonIDs, p.PokemonID)
	}

	entries, err := s.entries.GetByUserAndMonth(ctx, userID, month.ID)
	if err != nil {
		return nil, err
	}
	caught := make(map[int64]bool, len(entries))
	for _, e := range entries {
		caught[e.PokemonID] = true
	}

	catalog, err := s.pokemon.GetShinyByIDs(ctx, pokemonIDs)
	if err != nil {
		return nil, err
	}

	available := make([]*models.Pokemon, 0, len(catalog))
	for _, p := range catalog {
		if !caught[p.ID] {
			available = append(available, p)
		}
	}
	sort.Slice(available, func(i, j int) bool {
		return available[i].NationalDexID < available[j].NationalDexID
	})
	return available, nil
}
