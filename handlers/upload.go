package handlers

import (
	"errors"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shinysquad/streambingo/models"
	"github.com/shinysquad/streambingo/streambingo/services"
	"github.com/shinysquad/streambingo/utils"
)

// AvailablePokemon lists the active month's pool pokemon the caller can
// still submit.
func AvailablePokemon(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := utils.ExtractUser(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		available, err := webApp.Submissions.AvailablePokemon(c.Context(), user.ID)
		if err != nil {
			if errors.Is(err, services.ErrNoActiveMonth) {
				return utils.SendNotFound(c, "No active bingo month")
			}
			return utils.SendInternalServerError(c, "Failed to load available pokemon", err)
		}

		return utils.SendJSON(c, fiber.StatusOK, available)
	}
}

// SubmitCatch accepts a multipart catch submission. Proof is either a link
// in the url field or two uploaded images in file and file2; when both
// arrive the link wins.
func SubmitCatch(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := utils.ExtractUser(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		pokemonID, err := strconv.ParseInt(c.FormValue("pokemon_id"), 10, 64)
		if err != nil || pokemonID <= 0 {
			return utils.SendBadRequest(c, "pokemon_id is required")
		}

		sub := services.Submission{
			PokemonID: pokemonID,
			ProofLink: strings.TrimSpace(c.FormValue("url")),
			File:      formFile(c, "file"),
			File2:     formFile(c, "file2"),
		}

		approval, err := webApp.Submissions.Submit(c.Context(), user.ID, sub)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingPokemon), errors.Is(err, services.ErrMissingProof):
				return utils.SendBadRequest(c, err.Error())
			case errors.Is(err, services.ErrNoActiveMonth):
				return utils.SendNotFound(c, "No active bingo month")
			default:
				return utils.SendInternalServerError(c, "Failed to submit catch", err)
			}
		}

		return utils.SendJSON(c, fiber.StatusCreated, models.SubmissionResponse{
			Success:  true,
			Approval: approval,
		})
	}
}

// formFile returns a named multipart file, or nil when absent.
func formFile(c *fiber.Ctx, name string) *multipart.FileHeader {
	header, err := c.FormFile(name)
	if err != nil {
		return nil
	}
	return header
}
