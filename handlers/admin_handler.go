package handlers

import (
	"crypto/subtle"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/alfon96/askenzo-api/models"
	"github.com/alfon96/askenzo-api/utils"
)

type AdminHandler struct{}

type adminSigninInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signin authenticates the single env-configured admin account. Admin tokens
// carry no persisted record, only the role claim.
func (h *AdminHandler) Signin(c *gin.Context) {
	var input adminSigninInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(input.Username), []byte(os.Getenv("ADMIN_USERNAME"))) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(input.Password), []byte(os.Getenv("ADMIN_PASSWORD"))) == 1
	if !usernameOK || !passwordOK {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect username or password"})
		return
	}

	token, err := utils.GenerateJWT(0, models.RoleAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}
