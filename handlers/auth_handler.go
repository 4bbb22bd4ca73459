package handlers

import (
	"errors"

	"myblog-api/models"
	"myblog-api/services"

	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/validator.v9"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HTTPHelper.SendBadRequest(c, err.Error(), HTTPHelper.EmptyJsonMap())
		return
	}

	if err := h.validateRequest(c, req); err != nil {
		return
	}

	response, err := h.authService.Register(req)
	if err != nil {
		var authErr *models.AuthError
		if errors.As(err, &authErr) {
			HTTPHelper.SendBadRequest(c, string(authErr.Code), HTTPHelper.EmptyJsonMap())
			return
		}
		HTTPHelper.SendBadRequest(c, err.Error(), HTTPHelper.EmptyJsonMap())
		return
	}

	HTTPHelper.SendSuccess(c, "Register success", response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HTTPHelper.SendBadRequest(c, err.Error(), HTTPHelper.EmptyJsonMap())
		return
	}

	if err := h.validateRequest(c, req); err != nil {
		return
	}

	response, err := h.authService.Login(req)
	if err != nil {
		var authErr *models.AuthError
		if errors.As(err, &authErr) {
			HTTPHelper.SendUnauthorizedError(c, string(authErr.Code), HTTPHelper.EmptyJsonMap())
			return
		}
		HTTPHelper.SendUnauthorizedError(c, err.Error(), HTTPHelper.EmptyJsonMap())
		return
	}

	HTTPHelper.SendSuccess(c, "Login success", response)
}

// Logout acknowledges the sign-out. Tokens are stateless; discarding the
// token on the client side ends the session.
func (h *AuthHandler) Logout(c *gin.Context) {
	HTTPHelper.SendSuccess(c, "Logout success", HTTPHelper.EmptyJsonMap())
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		HTTPHelper.SendUnauthorizedError(c, "User not found in context", HTTPHelper.EmptyJsonMap())
		return
	}

	user, err := h.authService.GetUserByID(userID.(uint))
	if err != nil {
		HTTPHelper.SendNotFoundError(c, "User not found", HTTPHelper.EmptyJsonMap())
		return
	}

	email, _ := c.Get("email")
	HTTPHelper.SendSuccess(c, "Profile", gin.H{
		"user":     user,
		"is_admin": h.authService.IsAdmin(email.(string)),
	})
}

// validateRequest runs the struct tags through the shared validator and
// answers with translated per-field messages on failure.
func (h *AuthHandler) validateRequest(c *gin.Context, req interface{}) error {
	err := HTTPHelper.Validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		HTTPHelper.SendValidationError(c, fieldErrs)
		return err
	}

	HTTPHelper.SendBadRequest(c, err.Error(), HTTPHelper.EmptyJsonMap())
	return err
}
