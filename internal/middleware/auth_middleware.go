package middleware

import (
	"strings"

	"github.com/ardiansyahrp/jobhub/internal/apperror"
	"github.com/ardiansyahrp/jobhub/internal/auth"
	"github.com/ardiansyahrp/jobhub/internal/util"
	"github.com/gofiber/fiber/v2"
)

const identityKey = "identity"

// resolveIdentity never writes to the response itself so that each
// middleware translates the failure exactly once.
func resolveIdentity(c *fiber.Ctx) (auth.Identity, error) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return auth.Identity{}, apperror.Unauthorized("authentication required")
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	ident, err := auth.ParseToken(token)
	if err != nil {
		return auth.Identity{}, apperror.Unauthorized("invalid token")
	}
	return ident, nil
}

// RequireAuth accepts both roles and stores the resolved identity in locals.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident, err := resolveIdentity(c)
		if err != nil {
			return util.HandleError(c, err)
		}
		c.Locals(identityKey, ident)
		return c.Next()
	}
}

// RequireUser rejects company tokens with 403.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident, err := resolveIdentity(c)
		if err != nil {
			return util.HandleError(c, err)
		}
		if !ident.IsUser() {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusForbidden,
				Message: "user account required",
			})
		}
		c.Locals(identityKey, ident)
		return c.Next()
	}
}

// RequireCompany rejects user tokens with 403.
func RequireCompany() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident, err := resolveIdentity(c)
		if err != nil {
			return util.HandleError(c, err)
		}
		if !ident.IsCompany() {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusForbidden,
				Message: "company account required",
			})
		}
		c.Locals(identityKey, ident)
		return c.Next()
	}
}

// IdentityFrom reads the identity a Require* middleware stored. Calling it
// on an unguarded route is a programming error and yields the zero value.
func IdentityFrom(c *fiber.Ctx) auth.Identity {
	ident, _ := c.Locals(identityKey).(auth.Identity)
	return ident
}
