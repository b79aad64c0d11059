package browse

import (
	"wasteloop-backend/internal/pkg/response"
	"wasteloop-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
}

// GET /api/v1/browse/listings?category=plastic&q=rotterdam
func (h *Handlers) Listings(c *fiber.Ctx) error {
	category := c.Query("category", CategoryAll)
	query := c.Query("q")

	result, err := h.Service.Browse(c.Context(), category, query)
	if err != nil {
		if store.IsValidation(err) {
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		}
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Listings fetched successfully", result, fiber.Map{"count": result.Count})
}
