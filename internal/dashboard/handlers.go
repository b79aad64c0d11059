package dashboard

import (
	"wasteloop-backend/internal/auth"
	"wasteloop-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
	Auth    *auth.Service
}

// GET /api/v1/dashboard/overview
// An unauthenticated caller is redirected to login instead of receiving a
// data error; no privileged queries run in that case.
func (h *Handlers) Overview(c *fiber.Ctx) error {
	actor, err := auth.CurrentActor(c)
	if err != nil {
		return response.Error(c, "Not authenticated", fiber.StatusUnauthorized, fiber.Map{
			"redirect": h.Auth.RedirectToLogin(c.OriginalURL()),
		})
	}

	overview, err := h.Service.Load(c.Context(), actor)
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}

	return response.Success(c, "Dashboard fetched successfully", overview, fiber.Map{
		"waste_recycled": overview.Stats.WasteRecycledDisplay(),
		"co2_saved":      overview.Stats.CO2SavedDisplay(),
	})
}
