package listings

import (
	"errors"

	"wasteloop-backend/internal/auth"
	"wasteloop-backend/internal/pkg/response"
	"wasteloop-backend/internal/pkg/validation"
	"wasteloop-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

type createBody struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Quantity     float64  `json:"quantity"`
	Unit         string   `json:"unit"`
	Location     string   `json:"location"`
	Frequency    string   `json:"frequency"`
	Images       []string `json:"images"`
	ContactName  string   `json:"contact_name"`
	ContactEmail string   `json:"contact_email"`
	ContactPhone string   `json:"contact_phone"`
}

// POST /api/v1/listings/create-listing — 201 with the stored listing.
func (h *Handlers) CreateListing(c *fiber.Ctx) error {
	actor, err := auth.CurrentActor(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	var body createBody
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	if body.ContactEmail != "" && !validation.IsValidEmail(body.ContactEmail) {
		return response.Error(c, "Invalid contact_email", fiber.StatusBadRequest, nil)
	}
	if !validation.IsValidPhone(body.ContactPhone) {
		return response.Error(c, "Invalid contact_phone", fiber.StatusBadRequest, nil)
	}

	listing, err := h.Service.Create(c.Context(), actor, CreateInput{
		Title:        body.Title,
		Description:  body.Description,
		Category:     body.Category,
		Quantity:     body.Quantity,
		Unit:         body.Unit,
		Location:     body.Location,
		Frequency:    body.Frequency,
		Images:       body.Images,
		ContactName:  body.ContactName,
		ContactEmail: body.ContactEmail,
		ContactPhone: body.ContactPhone,
	})
	if err != nil {
		if store.IsValidation(err) {
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		}
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.SuccessCreated(c, "Listing created successfully", listing, nil)
}

// GET /api/v1/listings/my-listings
func (h *Handlers) MyListings(c *fiber.Ctx) error {
	actor, err := auth.CurrentActor(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	listings, err := h.Service.Mine(c.Context(), actor)
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Listings fetched successfully", listings, fiber.Map{"count": len(listings)})
}

type transitionBody struct {
	ListingID string `json:"listing_id"`
	Status    string `json:"status"`
}

// POST /api/v1/listings/transition-status — moves the listing forward.
func (h *Handlers) TransitionStatus(c *fiber.Ctx) error {
	actor, err := auth.CurrentActor(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	var body transitionBody
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	listingID, err := uuid.Parse(body.ListingID)
	if err != nil {
		return response.Error(c, "Invalid listing_id", fiber.StatusBadRequest, nil)
	}

	listing, err := h.Service.Transition(c.Context(), actor, listingID, body.Status)
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
	return response.Success(c, "Listing status updated", listing, nil)
}
