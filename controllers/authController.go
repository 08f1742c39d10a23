package controllers

import (
	"crypto/subtle"
	"log"
	"net/http"

	"github.com/burkibooks/burki-api/middlewares"
	"github.com/burkibooks/burki-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	// Standard response messages
	msgInvalidInput          = "invalid input"
	msgInvalidCredentials    = "invalid credentials"
	msgFailedToGenerateToken = "failed to generate token"
	msgUnauthorized          = "Unauthorized"
)

// AdminConfig carries the single configured administrative identity. There
// is no user table: the credential pair and signing secret are injected at
// startup.
type AdminConfig struct {
	Email        string
	Password     string
	PasswordHash string // optional bcrypt hash, takes precedence over Password
	JWTSecret    string
	SecureCookie bool
}

type AuthController struct {
	Config AdminConfig
}

func NewAuthController(config AdminConfig) *AuthController {
	return &AuthController{Config: config}
}

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

func (c *AuthController) credentialsMatch(email, password string) bool {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(c.Config.Email)) == 1

	var passwordOK bool
	if c.Config.PasswordHash != "" {
		passwordOK = bcrypt.CompareHashAndPassword([]byte(c.Config.PasswordHash), []byte(password)) == nil
	} else {
		passwordOK = subtle.ConstantTimeCompare([]byte(password), []byte(c.Config.Password)) == 1
	}

	// One failure message regardless of which half was wrong, so the admin
	// email cannot be probed.
	return emailOK && passwordOK
}

// Login issues the 24h admin session cookie.
func (c *AuthController) Login(ctx *gin.Context) {
	var loginData struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if !c.credentialsMatch(loginData.Email, loginData.Password) {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	tokenString, err := utils.SignAdminToken(loginData.Email, c.Config.JWTSecret)
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(utils.AdminCookieName, tokenString, int(utils.AdminSessionTTL.Seconds()), "/", "", c.Config.SecureCookie, true)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true})
}

// Logout overwrites the session cookie with an immediately expired value.
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(utils.AdminCookieName, "", -1, "/", "", c.Config.SecureCookie, true)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true})
}

// Me echoes the verified session claims. Mounted behind RequireAdmin.
func (c *AuthController) Me(ctx *gin.Context) {
	claimsValue, exists := ctx.Get(middlewares.AdminClaimsKey)
	if !exists {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgUnauthorized)
		return
	}
	claims := claimsValue.(jwt.MapClaims)
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"email": claims["email"],
		"role":  claims["role"],
	})
}
