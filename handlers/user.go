package handlers

import (
	"net/http"

	"brightnest/middleware"
	"brightnest/services/user"
	"brightnest/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves registration, login, and profile endpoints.
type UserHandler struct {
	Service user.UserService
	Logger  *zap.Logger
}

func NewUserHandler(service user.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{Service: service, Logger: logger}
}

// RegisterHandler creates an account and returns a signed token.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var req user.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Service.Register(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler authenticates credentials and returns a signed token.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Service.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ProfileHandler returns the authenticated user's profile.
func (h *UserHandler) ProfileHandler(c *gin.Context) {
	actor := middleware.GetActor(c)
	if actor == nil {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	rec, err := h.Service.GetUserByID(c.Request.Context(), actor.UserID)
	if err != nil {
		h.Logger.Error("failed to fetch profile", zap.String("userID", actor.UserID), zap.Error(err))
		utils.JSONError(c, http.StatusNotFound, "user not found", "")
		return
	}
	c.JSON(http.StatusOK, rec)
}

// RevokeTokenHandler signs the user out everywhere.
func (h *UserHandler) RevokeTokenHandler(c *gin.Context) {
	actor := middleware.GetActor(c)
	if actor == nil {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	if err := h.Service.RevokeToken(c.Request.Context(), actor.UserID); err != nil {
		h.Logger.Error("failed to revoke token", zap.String("userID", actor.UserID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to revoke token", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "revoked"})
}
