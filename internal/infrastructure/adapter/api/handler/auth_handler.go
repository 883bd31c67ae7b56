package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/mytestspam8-prog/africash/internal/domain/port/core"
	authUseCase "github.com/mytestspam8-prog/africash/internal/domain/usecase/auth"
	"github.com/mytestspam8-prog/africash/internal/infrastructure/adapter/api/dto"
	"github.com/mytestspam8-prog/africash/internal/infrastructure/adapter/api/middleware"
)

// AuthHandler handles registration, login, logout and the current-user lookup
type AuthHandler struct {
	authService *authUseCase.Service
	cookie      middleware.SessionCookie
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(
	authService *authUseCase.Service,
	cookie middleware.SessionCookie,
	logger coreport.Logger,
) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookie:      cookie,
		logger:      logger,
	}
}

// Register handles the POST /api/register endpoint. A successful
// registration logs the user straight in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, session, err := h.authService.Register(c.Request.Context(), authUseCase.RegisterInput{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Password:     req.Password,
		ReferralCode: req.ReferralCode,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.cookie.Write(c, session.Token)
	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// Login handles the POST /api/login endpoint
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, session, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.cookie.Write(c, session.Token)
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Logout handles the POST /api/logout endpoint. Logging out without a
// session still succeeds.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := h.cookie.Read(c)

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.cookie.Clear(c)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out successfully"})
}

// Me handles the GET /api/user endpoint, returning the authenticated user
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}
