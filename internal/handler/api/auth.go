package api

import (
	"errors"
	"net/http"

	reqdto "rentify-api/internal/handler/dto/request"
	resdto "rentify-api/internal/handler/dto/response"
	"rentify-api/internal/handler/middleware"
	"rentify-api/internal/pkg/config"
	"rentify-api/internal/pkg/cookie"
	"rentify-api/internal/pkg/jwt"
	"rentify-api/internal/usecase/commands"
	"rentify-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	userQueries  queries.UserQueries
	jwtService   *jwt.Service
	cookieCfg    config.CookieConfig
}

func NewAuthHandler(authCommands commands.AuthCommands, userQueries queries.UserQueries, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		userQueries:  userQueries,
		jwtService:   jwtService,
		cookieCfg:    cfg.Cookie,
	}
}

// @Summary User signup
// @Description Register a new user account with idempotency key
// @Tags auth
// @Accept json
// @Produce json
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.SignupRequest true "Signup request"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	var req reqdto.SignupRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.Signup(c.Request.Context(), req, idempotencyKey)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateEmail):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Email is already registered",
			})
		case errors.Is(err, commands.ErrUserValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid signup data",
			})
		case errors.Is(err, commands.ErrKeyDomainConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Idempotency key was used for a different operation",
			})
		case errors.Is(err, commands.ErrRequestInProgress):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Request is currently being processed",
			})
		case errors.Is(err, commands.ErrRequestFailedBefore):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "A previous request with this key failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	// Replays return the stored snapshot byte for byte.
	c.Data(result.Code, "application/json", result.Body)
}

// @Summary User login
// @Description Login with email and password; sets token cookies
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials), errors.Is(err, commands.ErrUserNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		case errors.Is(err, commands.ErrUserInactive):
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

	cookie.SetTokenCookies(c, h.cookieCfg,
		result.TokenPair.AccessToken, result.TokenPair.RefreshToken,
		h.jwtService.AccessTokenDuration(), h.jwtService.RefreshTokenDuration())

	c.JSON(http.StatusOK, resdto.LoginResponse{UserID: result.UserID})
}

// @Summary Refresh tokens
// @Description Exchange the refresh token cookie for a new token pair
// @Tags auth
// @Produce json
// @Success 204 "No Content"
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

	pair, err := h.authCommands.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrTokenValidation):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired refresh token",
			})
		case errors.Is(err, commands.ErrUserNotFound), errors.Is(err, commands.ErrUserInactive):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Account is no longer valid",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	cookie.SetTokenCookies(c, h.cookieCfg,
		pair.AccessToken, pair.RefreshToken,
		h.jwtService.AccessTokenDuration(), h.jwtService.RefreshTokenDuration())

	c.Status(http.StatusNoContent)
}

// @Summary User logout
// @Description Clear token cookies
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookies(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	view, err := h.userQueries.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		case errors.Is(err, queries.ErrUserInactive):
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

	c.JSON(http.StatusOK, resdto.FromAuthorizedUserView(view))
}
