package uploads

import (
	"wasteloop-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type Handlers struct {
	Service *Service
}

type signBody struct {
	FileName string `json:"file_name"`
}

// POST /api/v1/uploads/listing-image
// Failures surface to the caller as errors so the UI can retry; they are
// never just logged and swallowed.
func (h *Handlers) SignListingImage(c *fiber.Ctx) error {
	var body signBody
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	if body.FileName == "" {
		return response.Error(c, "file_name is required", fiber.StatusBadRequest, nil)
	}

	result, err := h.Service.SignListingImage(c.Context(), body.FileName)
	if err != nil {
		log.Error().Err(err).Str("file_name", body.FileName).Msg("Listing image sign failed")
		return response.Error(c, "Upload signing failed", fiber.StatusBadGateway, nil)
	}
	return response.Success(c, "Upload URL created", result, nil)
}
