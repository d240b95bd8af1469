package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alfon96/askenzo-api/models"
	"github.com/alfon96/askenzo-api/services"
	"github.com/alfon96/askenzo-api/utils"
)

type TouristHandler struct {
	Tourists    services.TouristService
	Experiences services.ExperienceService
	Likes       services.LikeService
}

type signupTouristInput struct {
	Name       string `json:"name" binding:"required"`
	Surname    string `json:"surname"`
	Email      string `json:"email" binding:"required"`
	Password   string `json:"password" binding:"required"`
	Telephone  string `json:"telephone"`
	ImgProfile string `json:"img_profile"`
	StateID    int    `json:"state_id"`
}

type signinInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type changePasswordInput struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

type deleteAccountInput struct {
	Password string `json:"password" binding:"required"`
}

func (h *TouristHandler) GetMyData(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"result": touristFromContext(c)})
}

func (h *TouristHandler) Signup(c *gin.Context) {
	var input signupTouristInput
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

	tourist := models.TouristUser{
		Name:       input.Name,
		Surname:    input.Surname,
		Email:      input.Email,
		Password:   hashed,
		Telephone:  input.Telephone,
		ImgProfile: input.ImgProfile,
		StateID:    input.StateID,
	}
	if err := h.Tourists.Create(&tourist); err != nil {
		respondDataError(c, err, "Tourist not found")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"result": true})
}

func (h *TouristHandler) Signin(c *gin.Context) {
	var input signinInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tourist, err := h.Tourists.GetByEmail(input.Email)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User doesn't exist"})
			return
		}
		respondDataError(c, err, "User doesn't exist")
		return
	}
	if utils.VerifyPassword(tourist.Password, input.Password) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect username or password"})
		return
	}

	token, err := utils.GenerateJWT(tourist.ID, models.RoleTourist)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}

func (h *TouristHandler) UpdateMyInfo(c *gin.Context) {
	var update models.TouristUserUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if update.StateID != 0 && !models.ValidStateID(update.StateID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "state_id must be either 1 or 2."})
		return
	}

	tourist := touristFromContext(c)
	tourist.ApplyUpdate(update)
	if err := h.Tourists.Update(tourist); err != nil {
		respondDataError(c, err, "Tourist not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": true})
}

func (h *TouristHandler) UpdateMyPassword(c *gin.Context) {
	var input changePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.OldPassword == input.NewPassword {
		c.JSON(http.StatusOK, gin.H{"result": "Identical input passwords."})
		return
	}

	tourist := touristFromContext(c)
	if utils.VerifyPassword(tourist.Password, input.OldPassword) != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Invalid Password."})
		return
	}

	hashed, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}
	tourist.Password = hashed
	if err := h.Tourists.Update(tourist); err != nil {
		respondDataError(c, err, "Tourist not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": true})
}

func (h *TouristHandler) DeleteMyAccount(c *gin.Context) {
	var input deleteAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tourist := touristFromContext(c)
	if utils.VerifyPassword(tourist.Password, input.Password) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password."})
		return
	}
	if err := h.Tourists.Delete(tourist); err != nil {
		respondDataError(c, err, "Tourist not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": true})
}

func (h *TouristHandler) GetMyLikes(c *gin.Context) {
	me := touristFromContext(c)
	ids, err := h.Likes.ListExperienceIDs(me.ID)
	if err != nil {
		respondDataError(c, err, "Tourist not found")
		return
	}
	if ids == nil {
		ids = []uint{}
	}
	c.JSON(http.StatusOK, gin.H{"result": ids})
}

// ToggleLike creates the like when absent and removes it when present. Two
// racing creates both observe "absent"; the store's composite key rejects the
// loser, which then re-reads instead of failing.
func (h *TouristHandler) ToggleLike(c *gin.Context) {
	experienceID, ok := idParam(c, "experience_id")
	if !ok {
		return
	}
	me := touristFromContext(c)

	if _, err := h.Experiences.GetByID(experienceID); err != nil {
		respondDataError(c, err, "Experience not found.")
		return
	}

	existing, err := h.Likes.Get(me.ID, experienceID)
	switch {
	case err == nil:
		if err := h.Likes.Delete(existing); err != nil {
			respondDataError(c, err, "Experience not found.")
			return
		}
		c.JSON(http.StatusOK, gin.H{"result": false})
	case errors.Is(err, services.ErrNotFound):
		like := models.TouristUserLike{TouristUserID: me.ID, ExperienceID: experienceID}
		if err := h.Likes.Create(&like); err != nil {
			if errors.Is(err, services.ErrDuplicateValue) {
				// Someone else toggled first; the like exists now.
				c.JSON(http.StatusOK, gin.H{"result": true})
				return
			}
			respondDataError(c, err, "Experience not found.")
			return
		}
		c.JSON(http.StatusOK, gin.H{"result": true})
	default:
		respondDataError(c, err, "Experience not found.")
	}
}
