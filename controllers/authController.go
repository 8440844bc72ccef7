package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"civictrack/models"
	"civictrack/store"
	authUtils "civictrack/utils"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authorities store.AuthorityStore
	jwtSecret   string
	tokenTTL    time.Duration
}

func NewAuthController(authorities store.AuthorityStore, jwtSecret string, tokenTTL time.Duration) *AuthController {
	return &AuthController{authorities: authorities, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// RegisterAuthority handles authority registration
func (ac *AuthController) RegisterAuthority(c *gin.Context) {
	var input struct {
		Name             string `json:"name" binding:"required,max=100"`
		Email            string `json:"email" binding:"required,email"`
		Password         string `json:"password" binding:"required,min=6"`
		Phone            string `json:"phone" binding:"required"`
		City             string `json:"city" binding:"required"`
		MunicipalityType string `json:"municipalityType" binding:"required,oneof='Municipal Corporation' 'Municipal Council' 'Nagar Panchayat'"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	now := time.Now()
	authority := models.Authority{
		Name:             input.Name,
		Email:            input.Email,
		Password:         input.Password,
		Phone:            input.Phone,
		City:             input.City,
		MunicipalityType: models.MunicipalityType(input.MunicipalityType),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := authority.HashPassword(); err != nil {
		log.WithError(err).Error("Error hashing password")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := ac.authorities.CreateAuthority(ctx, &authority); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User with this email already exists"})
			return
		}
		log.WithError(err).Error("Error inserting authority")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	token, err := authUtils.GenerateToken(authority.ID.Hex(), authority.Email, ac.jwtSecret, ac.tokenTTL)
	if err != nil {
		log.WithError(err).Error("Error generating token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	log.WithField("authority_id", authority.ID.Hex()).Info("Registered authority")
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"token":   token,
		"user":    authority,
	})
}

// LoginAuthority checks credentials and issues a token
func (ac *AuthController) LoginAuthority(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	authority, err := ac.authorities.FindAuthorityByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		log.WithError(err).Error("Error finding authority")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if !authority.ComparePassword(input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := authUtils.GenerateToken(authority.ID.Hex(), authority.Email, ac.jwtSecret, ac.tokenTTL)
	if err != nil {
		log.WithError(err).Error("Error generating token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    authority,
	})
}

// GetMe returns the authenticated authority
func (ac *AuthController) GetMe(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	authority, err := ac.authorities.FindAuthorityByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.WithError(err).Error("Error finding authority")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, authority)
}
