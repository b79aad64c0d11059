package settlement

import (
	"crypto/subtle"
	"errors"

	"wasteloop-backend/internal/pkg/response"
	"wasteloop-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handlers guards the settlement endpoint with a shared admin key; only the
// settlement process holds it.
type Handlers struct {
	Service       *Service
	SettlementKey string
}

type recordBody struct {
	ListingID         string  `json:"listing_id"`
	QuantityExchanged float64 `json:"quantity_exchanged"`
	CO2Saved          float64 `json:"co2_saved"`
}

// POST /api/v1/settlement/record-exchange
func (h *Handlers) RecordExchange(c *fiber.Ctx) error {
	if h.SettlementKey == "" ||
		subtle.ConstantTimeCompare([]byte(c.Get("x-settlement-key")), []byte(h.SettlementKey)) != 1 {
		return response.Error(c, "Forbidden", fiber.StatusForbidden, nil)
	}

	var body recordBody
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	listingID, err := uuid.Parse(body.ListingID)
	if err != nil {
		return response.Error(c, "Invalid listing_id", fiber.StatusBadRequest, nil)
	}

	tx, err := h.Service.Record(c.Context(), RecordInput{
		ListingID:         listingID,
		QuantityExchanged: body.QuantityExchanged,
		CO2Saved:          body.CO2Saved,
	})
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
	return response.SuccessCreated(c, "Exchange recorded", tx, nil)
}
