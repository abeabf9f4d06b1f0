package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/savir-sistemas/backoffice-api/internal/api/middleware"
	"github.com/savir-sistemas/backoffice-api/internal/core/domain"
)

// ctxActor extracts the actor resolved by the Actor middleware. The zero
// Actor is returned for anonymous requests; handlers behind RequireActor can
// rely on a non-zero value, POST /users inspects it to tell registration
// apart from an administrator creating an account.
func ctxActor(c echo.Context) domain.Actor {
	actor, _ := c.Get(middleware.ActorContextKey).(domain.Actor)
	return actor
}
