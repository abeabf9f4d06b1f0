package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/savir-sistemas/backoffice-api/internal/api/metrics"
	"github.com/savir-sistemas/backoffice-api/internal/core/domain"
	"github.com/savir-sistemas/backoffice-api/internal/core/ports"
)

// HeaderUserID is the request header carrying the acting user's identifier.
// The value is trusted as-is; there is no cryptographic proof of identity in
// this system.
const HeaderUserID = "user-id"

// ActorContextKey is where the resolved domain.Actor is stored on the echo
// context.
const ActorContextKey = "actor"

// Actor resolves the user-id header into a full actor and injects it into
// the context. Requests without the header pass through anonymous; a header
// naming an unknown user is rejected with 401. The cache is consulted first
// and may be nil.
func Actor(users ports.UserRepository, cache ports.ActorCache, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(HeaderUserID)
			if id == "" {
				return next(c)
			}

			ctx := c.Request().Context()

			if cache != nil {
				cached, err := cache.Get(ctx, id)
				if err != nil {
					log.Warn().Err(err).Str("user_id", id).Msg("actor cache lookup failed")
				} else if cached != nil {
					metrics.ActorCacheTotal.WithLabelValues("hit").Inc()
					c.Set(ActorContextKey, cached.Actor())
					return next(c)
				}
				metrics.ActorCacheTotal.WithLabelValues("miss").Inc()
			}

			user, err := users.FindByID(ctx, id)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "unknown user identity")
				}
				return err
			}

			if cache != nil {
				if err := cache.Set(ctx, user); err != nil {
					log.Warn().Err(err).Str("user_id", id).Msg("actor cache store failed")
				}
			}

			c.Set(ActorContextKey, user.Actor())
			return next(c)
		}
	}
}

// RequireActor rejects requests that did not resolve an actor. Mounted on
// the authenticated route groups; POST /api/users stays outside it so
// anonymous self-registration keeps working.
func RequireActor() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := c.Get(ActorContextKey).(domain.Actor); !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing user identity")
			}
			return next(c)
		}
	}
}
