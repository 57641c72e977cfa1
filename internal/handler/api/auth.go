package api

import (
	"errors"
	"net/http"

	reqdto "hotel-frontdesk/internal/handler/dto/request"
	resdto "hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/internal/handler/middleware"
	"hotel-frontdesk/internal/pkg/config"
	"hotel-frontdesk/internal/pkg/cookie"
	"hotel-frontdesk/internal/pkg/jwt"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth      commands.AuthCommands
	staff     queries.StaffQueries
	tokens    *jwt.Service
	cookieCfg config.CookieConfig
}

func NewAuthHandler(auth commands.AuthCommands, staff queries.StaffQueries, tokens *jwt.Service, cookieCfg config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		auth:      auth,
		staff:     staff,
		tokens:    tokens,
		cookieCfg: cookieCfg,
	}
}

// @Summary Staff login
// @Description Login with email and password; tokens are set as HttpOnly cookies
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	pair, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAuthenticationFailed):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		case errors.Is(err, commands.ErrAccountInactive):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Account is inactive",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	cookie.SetTokenCookies(c, h.cookieCfg, pair.AccessToken, pair.RefreshToken,
		h.tokens.AccessTokenDuration(), h.tokens.RefreshTokenDuration())

	c.JSON(http.StatusOK, resdto.LoginResponse{Message: "logged in"})
}

// @Summary Refresh tokens
// @Description Rotate the token pair using the refresh token cookie
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.LoginResponse
// @Failure 401 {object} map[string]string
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken := cookie.GetRefreshToken(c)
	if refreshToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Refresh token required",
		})
		return
	}

	pair, err := h.auth.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid or expired token",
		})
		return
	}

	cookie.SetTokenCookies(c, h.cookieCfg, pair.AccessToken, pair.RefreshToken,
		h.tokens.AccessTokenDuration(), h.tokens.RefreshTokenDuration())

	c.JSON(http.StatusOK, resdto.LoginResponse{Message: "refreshed"})
}

// @Summary Staff logout
// @Description Clear the token cookies
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookies(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current staff member
// @Description Get the authenticated staff member
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.StaffResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	staffID, ok := middleware.GetStaffID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Not authenticated",
		})
		return
	}

	view, err := h.staff.GetByID(c.Request.Context(), staffID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrStaffNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Staff member not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromStaffView(view))
}
