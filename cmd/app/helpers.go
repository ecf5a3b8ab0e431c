package main

import (
	"errors"
	"net/http"

	"MovieVaultAPI/internal/auth"
	"MovieVaultAPI/internal/pagination"
	"MovieVaultAPI/internal/repository"
	"MovieVaultAPI/internal/services"

	"github.com/labstack/echo/v4"
)

// jsonError maps service errors onto the wire taxonomy: validation
// problems are 400, credential failures a generic 401, unknown ids
// 404, and anything else an opaque 500.
func jsonError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, pagination.ErrInvalidOffset),
		errors.Is(err, pagination.ErrInvalidLimit):
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid email or password"})
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"message": "record not found"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
}

// pageFromQuery validates the offset/limit query params before any
// query runs.
func pageFromQuery(c echo.Context) (pagination.Page, error) {
	return pagination.Parse(c.QueryParam("offset"), c.QueryParam("limit"))
}
