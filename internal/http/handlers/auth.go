package handlers

import (
	"net/http"
	"time"

	intconfig "railbook/internal/config"
	"railbook/internal/domain"
	"railbook/internal/repositories"
	"railbook/internal/validations"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// POST /api/auth/login
func Login(c *gin.Context) {
	var req validations.LoginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.UserRepository{}
	user, hash, err := repo.GetByLogin(req.Login)
	if err != nil {
		if domain.IsNotFound(err) {
			respondError(c, http.StatusUnauthorized, "bad_credentials", "wrong login or password", nil)
			return
		}
		RespondDomainError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "bad_credentials", "wrong login or password", nil)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString(intconfig.JWTSecret)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "token_error", "could not issue token", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": signed, "user": user})
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req validations.RegisterRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.UserRepository{}
	exists, err := repo.Exists(req.Email, req.Username)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if exists {
		respondError(c, http.StatusBadRequest, "duplicate_user", "email or username already registered", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "hash_error", "could not hash password", nil)
		return
	}

	id, err := repo.Create(req.Name, req.Username, req.Email, string(hash))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "registered",
		"user": gin.H{
			"id":       id,
			"name":     req.Name,
			"username": req.Username,
			"email":    req.Email,
			"role":     "operator",
			"status":   "active",
		},
	})
}
