package auth

import (
	"context"
	"net/url"

	"wasteloop-backend/internal/models"
	"wasteloop-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Actor is the authenticated identity performing an operation.
type Actor struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	CompanyName string `json:"company_name"`
}

// Company resolves the name an actor acts under when expressing interest:
// company name when present, otherwise the account email.
func (a *Actor) Company() string {
	if a.CompanyName != "" {
		return a.CompanyName
	}
	return a.Email
}

// LoginInput for login request body.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Service verifies credentials and resolves the current actor.
type Service struct {
	Users store.UserStore
	// LoginURL is where unauthenticated actors are sent; returnTo is
	// appended so the client can come back after login.
	LoginURL string
}

// Login finds a user by email and verifies the password.
func (s *Service) Login(ctx context.Context, in LoginInput) (*models.User, error) {
	if in.Email == "" || in.Password == "" {
		return nil, ErrEmailPasswordRequired
	}
	u, err := s.Users.FindByEmail(ctx, in.Email)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, ErrInvalidEmail
		}
		return nil, err
	}
	if u.PasswordHash == "" {
		return nil, ErrInvalidEmail
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, ErrIncorrectPassword
	}
	return u, nil
}

// RedirectToLogin builds the login redirect URL for an abandoned
// unauthenticated action.
func (s *Service) RedirectToLogin(returnURL string) string {
	u, err := url.Parse(s.LoginURL)
	if err != nil {
		return s.LoginURL
	}
	q := u.Query()
	q.Set("returnTo", returnURL)
	u.RawQuery = q.Encode()
	return u.String()
}

// CurrentActor resolves the session user into an Actor, or
// ErrNotAuthenticated when there is no valid session.
func CurrentActor(c *fiber.Ctx) (*Actor, error) {
	return actorFromSession(c.Locals("user"))
}

func actorFromSession(sessionUser interface{}) (*Actor, error) {
	if sessionUser == nil {
		return nil, ErrNotAuthenticated
	}
	m, ok := sessionUser.(map[string]interface{})
	if !ok {
		return nil, ErrNotAuthenticated
	}
	email, _ := m["email"].(string)
	if email == "" {
		return nil, ErrNotAuthenticated
	}
	return &Actor{
		UserID:      str(m["user_id"]),
		Email:       email,
		FullName:    str(m["full_name"]),
		CompanyName: str(m["company_name"]),
	}, nil
}

func str(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
