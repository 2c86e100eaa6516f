package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"moodbook/internal/middleware"
	"moodbook/internal/models"
	"moodbook/internal/session"

	"github.com/gofiber/fiber/v2"
)

// sessionCookieName is the cookie carrying the opaque session token.
const sessionCookieName = "moodbook_session"

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid post ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// respondAppError maps an application error to its status and renders the
// standard failure envelope. Wrapped store errors are logged here and never
// reach the client.
func respondAppError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		status = models.StatusForCode(appErr.Code)
		if appErr.Err != nil {
			middleware.Logger.ErrorContext(c.UserContext(), "handler error",
				slog.String("error", appErr.Err.Error()))
		}
	}
	return models.RespondWithError(c, status, err)
}

func setSessionCookie(c *fiber.Ctx, token string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

func clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// SessionRequired returns the authentication guard. A request without a live
// session is rejected with 401 before the handler runs; otherwise the
// session's user is placed in locals and the request context.
func (s *Server) SessionRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(sessionCookieName)
		if token == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthenticatedError("Authentication required"))
		}

		data, err := s.sessions.Get(c.Context(), token)
		if err != nil {
			return respondAppError(c,
				models.NewInternalError("Session lookup failed", err))
		}
		if data == nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthenticatedError("Authentication required"))
		}

		c.Locals("userID", data.UserID)
		c.Locals("userName", data.UserName)
		// Sync to the user context for logging and downstream services
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, data.UserID)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// optionalSession resolves the caller's session without enforcing one.
// Public endpoints use it to annotate responses for logged-in viewers.
func (s *Server) optionalSession(c *fiber.Ctx) (*session.Data, bool) {
	token := c.Cookies(sessionCookieName)
	if token == "" {
		return nil, false
	}
	data, err := s.sessions.Get(c.Context(), token)
	if err != nil || data == nil {
		return nil, false
	}
	return data, true
}
