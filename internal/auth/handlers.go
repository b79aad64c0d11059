package auth

import (
	"context"

	"wasteloop-backend/internal/middleware"
	"wasteloop-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type Handlers struct {
	Service *Service
	Rdb     *redis.Client
	Config  middleware.SessionConfig
}

// POST /api/v1/auth/login
func (h *Handlers) Login(c *fiber.Ctx) error {
	var in LoginInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}

	user, err := h.Service.Login(c.Context(), in)
	if err != nil {
		switch err {
		case ErrEmailPasswordRequired:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		case ErrInvalidEmail, ErrIncorrectPassword:
			return response.Error(c, err.Error(), fiber.StatusUnauthorized, nil)
		default:
			log.Error().Err(err).Str("trace_id", middleware.GetTraceID(c)).Msg("Login failed")
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}

	sid := middleware.RegenerateSessionID(c)
	middleware.SetSessionUser(c, middleware.SessionUser{
		UserID:      user.UserID.String(),
		Email:       user.Email,
		FullName:    user.FullName,
		CompanyName: user.CompanyName,
	})
	c.Cookie(middleware.SessionCookie(h.Config, sid))

	return response.Success(c, "Login successful", Actor{
		UserID:      user.UserID.String(),
		Email:       user.Email,
		FullName:    user.FullName,
		CompanyName: user.CompanyName,
	}, nil)
}

// GET /api/v1/auth/me — current actor, or 401 with the login redirect URL.
func (h *Handlers) Me(c *fiber.Ctx) error {
	actor, err := CurrentActor(c)
	if err != nil {
		return response.Error(c, "Not authenticated", fiber.StatusUnauthorized, fiber.Map{
			"redirect": h.Service.RedirectToLogin(c.OriginalURL()),
		})
	}
	return response.Success(c, "Authenticated", actor, nil)
}

// DELETE /api/v1/auth/logout
func (h *Handlers) Logout(c *fiber.Ctx) error {
	if sid := middleware.GetSessionID(c); sid != "" && h.Rdb != nil {
		h.Rdb.Del(context.Background(), middleware.SessionRedisPrefix+sid)
	}
	middleware.ClearSessionUser(c)
	c.ClearCookie(middleware.SessionCookieName)
	return response.Success(c, "Logged out", nil, nil)
}
