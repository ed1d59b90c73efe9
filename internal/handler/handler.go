package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/thspin/proyecto-1/internal/model"
	"github.com/thspin/proyecto-1/internal/repository"
)

// ContextUserKey is where the auth middleware stores the resolved actor.
const ContextUserKey = "currentUser"

const (
	defaultSkip  = 0
	defaultLimit = 100
)

// currentUser returns the actor resolved by the bearer middleware.
func currentUser(c echo.Context) (*model.User, error) {
	user, ok := c.Get(ContextUserKey).(*model.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
	}
	return user, nil
}

// parseID reads the numeric path id.
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// parsePage reads skip/limit query parameters with their defaults.
func parsePage(c echo.Context) repository.Page {
	page := repository.Page{Skip: defaultSkip, Limit: defaultLimit}
	if v := c.QueryParam("skip"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			page.Skip = parsed
		}
	}
	if v := c.QueryParam("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			page.Limit = parsed
		}
	}
	return page
}
