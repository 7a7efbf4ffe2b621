package handlers

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Madhav-Gupta-28/0xmart-admin-go/utils"
)

// IssueToken exchanges the admin credentials for an API bearer token.
func (h *Handler) IssueToken(c echo.Context) error {
	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.Bind(&credentials); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	ok, err := h.auth.Authenticate(c.Request().Context(), credentials.Email, credentials.Password)
	if err != nil {
		log.Printf("token: %v", err)
	}
	h.logins.Login(ok)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
	}

	token, err := utils.GenerateJWT(credentials.Email, h.jwtSecret, h.jwtTTL)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate token"})
	}

	return c.JSON(http.StatusOK, map[string]string{"token": token})
}
