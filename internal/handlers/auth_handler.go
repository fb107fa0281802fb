package handlers

import (
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"interviewprep/internal/middleware"
	"interviewprep/internal/models"
	"interviewprep/internal/repositories"
	"interviewprep/internal/utils"
)

// AuthHandler manages registration and login.
type AuthHandler struct {
	users     UserRepo
	jwtSecret string
	logger    *zap.Logger
}

func NewAuthHandler(users UserRepo, jwtSecret string, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, jwtSecret: jwtSecret, logger: logger}
}

func (h *AuthHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.RegisterRequest](r)

	if _, err := h.users.GetByEmail(r.Context(), req.Email); err == nil {
		utils.JSON(w, http.StatusConflict, models.ErrorResponse{
			Code:    "email_taken",
			Message: "Email already registered",
		})
		return
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to create user",
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to hash password",
		})
		return
	}

	now := time.Now().UTC()
	user := &models.User{
		Name:                req.Name,
		Email:               req.Email,
		Password:            string(hash),
		IsAdmin:             req.IsAdmin,
		RegisteredDate:      now,
		LastActive:          now,
		InterviewsCompleted: 0,
	}

	created, err := h.users.Create(r.Context(), user)
	if errors.Is(err, repositories.ErrEmailTaken) {
		// lost the race against a concurrent registration; the unique index
		// is the authority
		utils.JSON(w, http.StatusConflict, models.ErrorResponse{
			Code:    "email_taken",
			Message: "Email already registered",
		})
		return
	}
	if err != nil {
		h.logger.Error("Failed to create user", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to create user",
		})
		return
	}

	utils.JSON(w, http.StatusCreated, created)
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.LoginRequest](r)

	user, err := h.users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		utils.JSON(w, http.StatusUnauthorized, models.ErrorResponse{
			Code:    "invalid_credentials",
			Message: "Incorrect email or password",
		})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		utils.JSON(w, http.StatusUnauthorized, models.ErrorResponse{
			Code:    "invalid_credentials",
			Message: "Incorrect email or password",
		})
		return
	}

	signed, err := utils.CreateAccessToken(user.ID.Hex(), h.jwtSecret, utils.AccessTokenTTL)
	if err != nil {
		h.logger.Error("Failed to sign token", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to sign token",
		})
		return
	}

	utils.JSON(w, http.StatusOK, models.TokenResponse{
		AccessToken: signed,
		TokenType:   "bearer",
	})
}
