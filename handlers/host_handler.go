package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alfon96/askenzo-api/models"
	"github.com/alfon96/askenzo-api/services"
	"github.com/alfon96/askenzo-api/utils"
)

type HostHandler struct {
	Hosts services.HostService
}

type signupHostInput struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Password   string `json:"password" binding:"required"`
	ImgProfile string `json:"img_profile"`
	StateID    int    `json:"state_id"`
}

func (h *HostHandler) GetMyData(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"result": hostFromContext(c)})
}

func (h *HostHandler) Signup(c *gin.Context) {
	var input signupHostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidStateID(input.StateID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "state_id must be either 1 or 2."})
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}

	host := models.HostUser{
		Name:       input.Name,
		Email:      input.Email,
		Password:   hashed,
		ImgProfile: input.ImgProfile,
		StateID:    input.StateID,
	}
	if err := h.Hosts.Create(&host); err != nil {
		respondDataError(c, err, "Host not found")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"result": true})
}

func (h *HostHandler) Signin(c *gin.Context) {
	var input signinInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	host, err := h.Hosts.GetByEmail(input.Email)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User doesn't exist"})
			return
		}
		respondDataError(c, err, "User doesn't exist")
		return
	}
	if utils.VerifyPassword(host.Password, input.Password) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect username or password"})
		return
	}

	token, err := utils.GenerateJWT(host.ID, models.RoleHost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}

func (h *HostHandler) UpdateMyInfo(c *gin.Context) {
	var update models.HostUserUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if update.StateID != 0 && !models.ValidStateID(update.StateID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "state_id must be either 1 or 2."})
		return
	}

	host := hostFromContext(c)
	host.ApplyUpdate(update)
	if err := h.Hosts.Update(host); err != nil {
		respondDataError(c, err, "Host not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": true})
}

func (h *HostHandler) UpdateMyPassword(c *gin.Context) {
	var input changePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.OldPassword == input.NewPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identical input passwords."})
		return
	}

	host := hostFromContext(c)
	if utils.VerifyPassword(host.Password, input.OldPassword) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Password."})
		return
	}

	hashed, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}
	host.Password = hashed
	if err := h.Hosts.Update(host); err != nil {
		respondDataError(c, err, "Host not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": true})
}

func (h *HostHandler) DeleteMyAccount(c *gin.Context) {
	var input deleteAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	host := hostFromContext(c)
	if utils.VerifyPassword(host.Password, input.Password) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password."})
		return
	}
	if err := h.Hosts.Delete(host); err != nil {
		respondDataError(c, err, "Host not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": true})
}
