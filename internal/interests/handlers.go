package interests

import (
	"errors"

	"wasteloop-backend/internal/auth"
	"wasteloop-backend/internal/pkg/response"
	"wasteloop-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
	Auth    *auth.Service
}

type expressBody struct {
	ListingID string `json:"listing_id"`
	Message   string `json:"message"`
}

// POST /api/v1/interests/express-interest
// Unauthenticated callers get a 401 with the login redirect URL instead of a
// data error; no record is created in that case.
func (h *Handlers) Express(c *fiber.Ctx) error {
	actor, err := auth.CurrentActor(c)
	if err != nil {
		return response.Error(c, "Not authenticated", fiber.StatusUnauthorized, fiber.Map{
			"redirect": h.Auth.RedirectToLogin(c.OriginalURL()),
		})
	}

	var body expressBody
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	listingID, err := uuid.Parse(body.ListingID)
	if err != nil {
		return response.Error(c, "Invalid listing_id", fiber.StatusBadRequest, nil)
	}

	interest, err := h.Service.Express(c.Context(), actor, listingID, body.Message)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return response.Error(c, "Listing not found", fiber.StatusNotFound, nil)
		case store.IsValidation(err):
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}

	return response.SuccessCreated(c, "Interest recorded successfully", interest, nil)
}

// GET /api/v1/interests/my-interests — most recent, capped.
func (h *Handlers) MyInterests(c *fiber.Ctx) error {
	actor, err := auth.CurrentActor(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	list, err := h.Service.Recent(c.Context(), actor)
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Interests fetched successfully", list, fiber.Map{"count": len(list)})
}
