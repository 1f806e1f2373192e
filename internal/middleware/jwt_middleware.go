package middleware

import (
	"context"

	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PrincipalKey is the fiber.Locals key holding the authenticated *services.Principal.
const PrincipalKey = "principal"

// Authenticator resolves an Authorization header into an admin principal.
// Rejections should be *services.AuthError.
type Authenticator interface {
	Authenticate(ctx context.Context, authHeader string) (*services.Principal, error)
}

// AdminRequired is a Fiber middleware that only lets admin callers through.
// The rejection is returned to the app's error handler untouched so its
// status and message reach the client verbatim.
func AdminRequired(auth Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := auth.Authenticate(c.UserContext(), c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return err
		}
		c.Locals(PrincipalKey, principal)
		return c.Next()
	}
}

// CurrentPrincipal returns the principal stored by AdminRequired, or nil.
func CurrentPrincipal(c *fiber.Ctx) *services.Principal {
	p, _ := c.Locals(PrincipalKey).(*services.Principal)
	return p
}
