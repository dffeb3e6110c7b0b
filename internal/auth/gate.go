package auth

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"forumhub/internal/model"
	"forumhub/internal/repository"
)

// userContextKey is where the gate middleware stores the resolved user.
const userContextKey = "auth_user"

// Verdict is the per-request authorization result. It is computed fresh for
// every request and never cached or persisted.
type Verdict struct {
	Authorized bool
	User       *model.User
}

// Gate resolves a validated bearer token to a live user record. Signature,
// scheme, and expiry checks happen in the echo-jwt middleware in front of it;
// the gate's job is turning the surviving claims into an authorization
// verdict backed by exactly one fresh store lookup.
type Gate struct {
	users repository.UserRepository
}

// NewGate creates a credential gate over the given user repository.
func NewGate(users repository.UserRepository) *Gate {
	return &Gate{users: users}
}

// Authenticate inspects the request and yields a verdict. It fails closed:
// no parsed token in the context, malformed claims, or an unknown user id all
// produce an unauthorized verdict rather than an error.
func (g *Gate) Authenticate(c echo.Context) Verdict {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok || token == nil {
		return Verdict{}
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == 0 {
		return Verdict{}
	}

	user, err := g.users.FindByID(c.Request().Context(), claims.UserID)
	if err != nil {
		return Verdict{}
	}
	return Verdict{Authorized: true, User: user}
}

// Middleware enforces an authorized verdict and stores the resolved user in
// the request context for handlers.
func (g *Gate) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			verdict := g.Authenticate(c)
			if !verdict.Authorized {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			c.Set(userContextKey, verdict.User)
			return next(c)
		}
	}
}

// CurrentUser returns the user resolved by the gate middleware, or nil when
// the request did not pass through it.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(userContextKey).(*model.User)
	return user
}
