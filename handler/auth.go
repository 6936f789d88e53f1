package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wheelhouse/storefront/auth"
	"github.com/wheelhouse/storefront/errors"
	"github.com/wheelhouse/storefront/logger"
	"github.com/wheelhouse/storefront/server"
	"github.com/wheelhouse/storefront/server/middleware"
	"github.com/wheelhouse/storefront/session"
	"github.com/wheelhouse/storefront/validation"
)

// AuthHandler exposes the credential-lifecycle workflow over HTTP.
type AuthHandler struct {
	svc      *auth.Service
	sessions *session.Service
	log      *logger.Logger
}

// NewAuthHandler wires the HTTP adapter.
func NewAuthHandler(svc *auth.Service, sessions *session.Service, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		svc:      svc,
		sessions: sessions,
		log:      log.WithComponent("handler"),
	}
}

// Register mounts the auth routes. Logout is reachable over both GET and
// POST because the storefront client has used both.
func (h *AuthHandler) Register(r gin.IRouter) {
	grp := r.Group("/auth")
	grp.POST("/signup", h.Signup)
	grp.POST("/login", h.Login)
	grp.GET("/logout", h.Logout)
	grp.POST("/logout", h.Logout)
	grp.GET("/check-auth", h.CheckAuth)
	grp.POST("/verify-otp", h.VerifyOtp)
	grp.POST("/resend-otp", h.ResendOtp)
	grp.POST("/forgot-password", h.ForgotPassword)
	grp.POST("/reset-password", h.ResetPassword)
}

// Signup creates an account and starts a session.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if !h.bind(c, &req) {
		return
	}

	identity, token, err := h.svc.Signup(c.Request.Context(), auth.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		server.RespondError(c, h.log, err)
		return
	}

	h.sessions.SetCookie(c.Writer, token)
	c.JSON(http.StatusCreated, identity)
}

// Login verifies credentials and starts a session. A rejected credential
// clears any existing session cookie; transient failures leave it alone.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !h.bind(c, &req) {
		return
	}

	identity, token, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if appErr, isApp := errors.AsAppError(err); isApp && appErr.Code == errors.ErrCodeInvalidCredentials {
			h.sessions.ClearCookie(c.Writer)
		}
		server.RespondError(c, h.log, err)
		return
	}

	h.sessions.SetCookie(c.Writer, token)
	c.JSON(http.StatusOK, identity)
}

// Logout overwrites the session cookie with an expired empty value. It is
// idempotent and needs no session lookup.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.ClearCookie(c.Writer)
	server.RespondMessage(c, http.StatusOK, "Logout successful")
}

// CheckAuth returns the latest identity behind the current session, or 401
// with no body when no session was resolved.
func (h *AuthHandler) CheckAuth(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.Status(http.StatusUnauthorized)
		return
	}

	fresh, err := h.svc.CheckSession(c.Request.Context(), identity.ID)
	if err != nil {
		if appErr, isApp := errors.AsAppError(err); isApp && appErr.Code == errors.ErrCodeUnauthenticated {
			c.Status(http.StatusUnauthorized)
			return
		}
		server.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, fresh)
}

// VerifyOtp checks a verification code and returns the updated identity.
func (h *AuthHandler) VerifyOtp(c *gin.Context) {
	var req verifyOtpRequest
	if !h.bind(c, &req) {
		return
	}

	identity, err := h.svc.VerifyOtp(c.Request.Context(), req.UserID, req.Otp)
	if err != nil {
		server.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, identity)
}

// ResendOtp issues a fresh verification code to the user's email.
func (h *AuthHandler) ResendOtp(c *gin.Context) {
	var req resendOtpRequest
	if !h.bind(c, &req) {
		return
	}

	if err := h.svc.ResendOtp(c.Request.Context(), req.User); err != nil {
		server.RespondError(c, h.log, err)
		return
	}
	server.RespondMessage(c, http.StatusCreated, "OTP sent")
}

// ForgotPassword mails a reset link. The response names the destination
// address, confirming account existence; this mirrors the storefront
// contract.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if !h.bind(c, &req) {
		return
	}

	sentTo, err := h.svc.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		server.RespondError(c, h.log, err)
		return
	}
	server.RespondMessage(c, http.StatusOK, fmt.Sprintf("Password reset link sent to %s", sentTo))
}

// ResetPassword consumes a reset token and overwrites the password.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if !h.bind(c, &req) {
		return
	}

	if err := h.svc.ResetPassword(c.Request.Context(), req.UserID, req.Token, req.Password); err != nil {
		server.RespondError(c, h.log, err)
		return
	}
	server.RespondMessage(c, http.StatusOK, "Password updated successfully")
}

// bind decodes and validates a JSON request body, answering 400 on failure.
func (h *AuthHandler) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		server.RespondError(c, h.log, errors.Validation("invalid request body"))
		return false
	}
	if err := validation.Validate(req); err != nil {
		server.RespondError(c, h.log, err)
		return false
	}
	return true
}
