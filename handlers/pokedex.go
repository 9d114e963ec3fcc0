package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilm/fuzzy"
	"github.com/shinysquad/streambingo/models"
	"github.com/shinysquad/streambingo/utils"
)

// Pokedex lists every shiny-eligible pokemon with the viewer's caught flags
// and whether the pokemon has ever appeared on a board. ?search filters the
// list with fuzzy matching on the name.
func Pokedex(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := utils.ExtractUser(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		ctx := c.Context()

		catalog, err := webApp.Repos.Pokemon.GetAllShiny(ctx)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to load pokedex", err)
		}

		entries, err := webApp.Repos.Entries.GetByUser(ctx, user.ID)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to load catch history", err)
		}
		caught := make(map[int64]bool, len(entries))
		for _, entry := range entries {
			caught[entry.PokemonID] = true
		}

		pooledIDs, err := webApp.Repos.Pools.GetPooledPokemonIDs(ctx)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to load pool history", err)
		}
		pooled := make(map[int64]bool, len(pooledIDs))
		for _, id := range pooledIDs {
			pooled[id] = true
		}

		rows := make([]models.PokedexPokemon, 0, len(catalog))
		caughtCount := 0
		for _, pokemon := range catalog {
			row := models.PokedexPokemon{
				ID:            pokemon.ID,
				NationalDexID: pokemon.NationalDexID,
				Name:          pokemon.Name,
				ImgURL:        pokemon.ImgURL,
				Caught:        caught[pokemon.ID],
				InPool:        pooled[pokemon.ID],
			}
			if row.Caught {
				caughtCount++
			}
			rows = append(rows, row)
		}

		if search := strings.TrimSpace(c.Query("search")); search != "" {
			rows = filterPokedex(rows, search)
		}

		return utils.SendJSON(c, fiber.StatusOK, models.PokedexResponse{
			Pokemon:     rows,
			CaughtCount: caughtCount,
			TotalCount:  len(catalog),
		})
	}
}

// filterPokedex keeps rows whose name fuzzy-matches the search term, best
// matches first.
func filterPokedex(rows []models.PokedexPokemon, search string) []models.PokedexPokemon {
	names := make([]string, len(rows))
	for i, row := range rows {
		names[i] = row.Name
	}

	matches := fuzzy.Find(search, names)
	filtered := make([]models.PokedexPokemon, 0, len(matches))
	for _, match := range matches {
		filtered = append(filtered, rows[match.Index])
	}
	return filtered
}
