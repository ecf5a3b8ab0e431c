package main

import (
	"net/http"
	"strconv"

	"MovieVaultAPI/internal/auth"
	"MovieVaultAPI/internal/middleware"
	"MovieVaultAPI/internal/pagination"
	"MovieVaultAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type movieRequest struct {
	Title string `json:"title"`
	Genre string `json:"genre"`
	Year  string `json:"year"`
}

// registerMovieRoutes mounts the movies CRUD. Every route sits behind
// the access gate.
func registerMovieRoutes(g *echo.Group, ms *services.MovieService, tokens *auth.TokenManager) {
	movies := g.Group("/movies")
	movies.Use(middleware.RequireAuth(tokens))

	movies.GET("", func(c echo.Context) error {
		page, err := pageFromQuery(c)
		if err != nil {
			return jsonError(c, err)
		}

		list, total, err := ms.List(c.Request().Context(), page)
		if err != nil {
			return jsonError(c, err)
		}

		return c.JSON(http.StatusOK, echo.Map{
			"data": list,
			"meta": pagination.NewMeta(page, total, len(list)),
		})
	})

	movies.GET("/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
		}

		movie, err := ms.Get(c.Request().Context(), id)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"data": movie})
	})

	movies.POST("", func(c echo.Context) error {
		req := new(movieRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request"})
		}

		movie, err := ms.Create(c.Request().Context(), req.Title, req.Genre, req.Year)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"data": movie})
	})

	movies.PUT("/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
		}
		req := new(movieRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request"})
		}

		if err := ms.Update(c.Request().Context(), id, req.Title, req.Genre, req.Year); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "movie updated"})
	})

	movies.DELETE("/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
		}

		movie, err := ms.Delete(c.Request().Context(), id)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"data": movie})
	})
}
