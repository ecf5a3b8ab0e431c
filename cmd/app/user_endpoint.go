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

type userRequest struct {
	Email    string `json:"email"`
	Gender   string `json:"gender"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`
}

// registerUserRoutes mounts the users CRUD. Every route sits behind
// the access gate.
func registerUserRoutes(g *echo.Group, us *services.UserService, tokens *auth.TokenManager) {
	users := g.Group("/users")
	users.Use(middleware.RequireAuth(tokens))

	users.GET("", func(c echo.Context) error {
		page, err := pageFromQuery(c)
		if err != nil {
			return jsonError(c, err)
		}

		list, total, err := us.List(c.Request().Context(), page)
		if err != nil {
			return jsonError(c, err)
		}

		return c.JSON(http.StatusOK, echo.Map{
			"data": list,
			"meta": pagination.NewMeta(page, total, len(list)),
		})
	})

	users.GET("/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
		}

		user, err := us.Get(c.Request().Context(), id)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"data": user})
	})

	users.POST("", func(c echo.Context) error {
		req := new(userRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request"})
		}

		user, err := us.Create(c.Request().Context(), req.Email, req.Gender, req.Password, req.Role)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"data": user})
	})

	users.PUT("/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
		}
		req := new(userRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request"})
		}

		if err := us.Update(c.Request().Context(), id, req.Email, req.Gender, req.Role); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "user updated"})
	})

	users.DELETE("/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
		}

		user, err := us.Delete(c.Request().Context(), id)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"data": user})
	})
}
