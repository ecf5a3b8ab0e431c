package main

import (
	"net/http"

	"MovieVaultAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	Email    string `json:"email"`
	Gender   string `json:"gender"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func registerHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(registerRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request"})
		}

		user, err := authSvc.Register(c.Request().Context(), req.Email, req.Gender, req.Password, req.Role)
		if err != nil {
			return jsonError(c, err)
		}

		// The model keeps the password hash out of the JSON encoding.
		return c.JSON(http.StatusCreated, echo.Map{"data": user})
	}
}

func loginHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(loginRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request"})
		}

		token, err := authSvc.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return jsonError(c, err)
		}

		return c.JSON(http.StatusCreated, echo.Map{"auth_token": token})
	}
}

func registerAuthRoutes(g *echo.Group, authSvc *services.AuthService) {
	auth := g.Group("/auth")
	auth.POST("/register", registerHandler(authSvc))
	auth.POST("/login", loginHandler(authSvc))
}
