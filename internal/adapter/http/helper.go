package http

import (
	"github.com/labstack/echo/v4"

	"loanflow/internal/adapter/middleware"
	"loanflow/internal/domain/apperr"
)

// actorID reads the caller identity set by the upstream auth layer.
func actorID(c echo.Context) (uint64, error) {
	n, err := middleware.ParseActorID(c.Request().Header.Get(middleware.HeaderActorID))
	if err != nil {
		return 0, apperr.Wrap(apperr.KindValidation, "actor identity", err)
	}
	return n, nil
}
