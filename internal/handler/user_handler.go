/**
* Name: 			user_handler.go
* Description: 		Account endpoints
* Workflow: 		signup, login (JWT), profile
 */
package handler

import (
	"errors"
	"net/http"
	"strings"

	"LawHub_LegalAssistant/internal/middleware"
	"LawHub_LegalAssistant/internal/models"
	"LawHub_LegalAssistant/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type SignupRequest struct {
	Username string             `json:"username" example:"new_user"`
	Password string             `json:"password" example:"password123"`
	Profile  models.UserProfile `json:"profile"`
}

type LoginRequest struct {
	Username string `json:"username" example:"my_user"`
	Password string `json:"password" example:"password123"`
}

type LoginSuccessResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

type ProfileResponse struct {
	Message  string             `json:"message" example:"this is a protected profile"`
	Username string             `json:"username" example:"amira"`
	Profile  models.UserProfile `json:"profile"`
}

// Signup godoc
// @Summary      Create an account
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body handler.SignupRequest true "account details"
// @Success      200 {object} handler.SuccessResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /signup [post]
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Password) == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Username and Password cannot be empty"})
		return
	}
	if req.Profile.Age < 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Age must not be negative"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if _, err := h.store.CreateUser(req.Username, string(hashed), req.Profile); err != nil {
		if errors.Is(err, storage.ErrUsernameExists) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Username already exists"})
			return
		}
		h.log.Error("Failed to create user", zap.String("username", req.Username), zap.Error(err))
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "User created successfully"})
}

// Login godoc
// @Summary      Log in and receive a JWT
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body handler.LoginRequest true "credentials"
// @Success      200 {object} handler.LoginSuccessResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      401 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}
	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid credentials"})
		return
	}

	user, err := h.store.GetUserByUsername(req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid credentials"})
			return
		}
		h.respondError(c, err)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid credentials"})
		return
	}

	token, err := h.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, LoginSuccessResponse{Token: token})
}

// Profile godoc
// @Summary      Profile of the logged-in user
// @Tags         User
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.ProfileResponse
// @Failure      401 {object} handler.ErrorResponse
// @Router       /api/profile [get]
func (h *Handler) Profile(c *gin.Context) {
	username := c.GetString(middleware.ContextUsername)
	user, err := h.store.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Account no longer exists"})
			return
		}
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ProfileResponse{
		Message:  "this is a protected profile",
		Username: user.Username,
		Profile:  user.Profile,
	})
}
