// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"estate_backend/internal/feature/auth/domain/entity"
	"estate_backend/internal/feature/auth/transport/http/dto"
	"estate_backend/internal/feature/auth/usecase"
	jwtmw "estate_backend/internal/platform/jwt"
)

// AuthUsecase defines the auth operations the handlers depend on.
// Following Go convention, the interface is defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	// Signup registers a new user and returns a session token for it.
	Signup(ctx context.Context, in *usecase.SignupInput) (string, *entity.User, error)
	// Login authenticates a user and returns a session token on success.
	Login(ctx context.Context, email, password string) (string, error)
	// CurrentUser resolves a verified token subject to its user record.
	CurrentUser(ctx context.Context, userID uint) (*entity.User, error)
}

// AuthHandler handles the HTTP requests of the auth endpoints.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler with the injected usecase.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles POST /api/users/signup.
// Validation, duplicate-email and credential-shape failures all answer 400
// with a short message; success answers 201 with the token and the
// normalized email.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup request malformed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResp{Error: "invalid request body"})
		return
	}

	in := &usecase.SignupInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Gender:      req.Gender,
		DateOfBirth: req.DateOfBirth,
		Address: usecase.AddressInput{
			Street:  req.Address.Street,
			City:    req.Address.City,
			State:   req.Address.State,
			ZipCode: req.Address.ZipCode,
		},
	}
	token, user, err := h.auth.Signup(c.Request.Context(), in)
	if err != nil {
		if isSignupInputError(err) {
			slog.Warn("signup rejected", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, dto.ErrorResp{Error: err.Error()})
			return
		}
		slog.Error("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorResp{Error: "internal server error"})
		return
	}

	slog.Info("user signup successful", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.TokenResp{Token: token, Email: user.Email})
}

// Login handles POST /api/users/login.
// Missing fields, unknown email and wrong password all answer 400; the latter
// two share one generic message so accounts cannot be enumerated.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login request malformed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResp{Error: "invalid request body"})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrMissingField) || errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("login rejected", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, dto.ErrorResp{Error: err.Error()})
			return
		}
		slog.Error("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorResp{Error: "internal server error"})
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenResp{Token: token, Email: usecase.NormalizeEmail(req.Email)})
}

// Me handles GET /api/users/me. It runs behind the auth gate and returns the
// record of the token's subject without the password hash.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResp{Error: "request is not authorized"})
		return
	}

	user, err := h.auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			// Token subject no longer resolves to an account.
			c.JSON(http.StatusUnauthorized, dto.ErrorResp{Error: "request is not authorized"})
			return
		}
		slog.Error("current user lookup failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, dto.ErrorResp{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// isSignupInputError reports whether err is a caller-correctable signup
// failure rather than an internal one.
func isSignupInputError(err error) bool {
	return errors.Is(err, usecase.ErrMissingField) ||
		errors.Is(err, usecase.ErrInvalidEmail) ||
		errors.Is(err, usecase.ErrWeakPassword) ||
		errors.Is(err, usecase.ErrEmailAlreadyExists)
}
