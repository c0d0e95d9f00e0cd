package handlers

import (
	"log/slog"
	"net/http"

	"github.com/alfadli/hrm_backend/internal/core/policy"
	portssvc "github.com/alfadli/hrm_backend/internal/core/ports/services"
	"github.com/alfadli/hrm_backend/internal/dto"
	"github.com/alfadli/hrm_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles login, the caller's profile and admin registration.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
}

func newAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade) *authHandler {
	return &authHandler{userService: us, tokenService: ts}
}

// registerAuthRoutes registers the authenticated /auth routes. Login is registered separately.
func registerAuthRoutes(rg *gin.RouterGroup, us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade) {
	h := newAuthHandler(us, ts)

	auth := rg.Group("/auth")
	{
		auth.GET("/profile", h.profile)
		auth.POST("/register", h.register)
	}
}

// login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT access token together with the client permissions.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Staff account has no branch assigned"
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "authenticate user")
		return
	}
	identity, err := user.Identity()
	if err != nil {
		respondError(c, err, "resolve identity")
		return
	}

	accessToken, _, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		respondError(c, err, "generate token")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("User logged in", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: accessToken,
		User:        dto.ToUserResponse(user),
		Permissions: policy.AffordancesFor(identity),
	})
}

// profile godoc
// @Summary Current user profile
// @Description Returns the caller's user record and the controls the client should enable.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/profile [get]
func (h *authHandler) profile(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err, "get profile")
		return
	}

	c.JSON(http.StatusOK, dto.ProfileResponse{
		User:        dto.ToUserResponse(user),
		Permissions: policy.AffordancesFor(identity),
	})
}

// register godoc
// @Summary Register a user
// @Description Creates a user account. Only admins may register users.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.CreateUserRequest true "User Registration Info"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	createUser(c, h.userService)
}
