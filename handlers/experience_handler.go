package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alfon96/askenzo-api/models"
	"github.com/alfon96/askenzo-api/services"
)

type ExperienceHandler struct {
	Experiences services.ExperienceService
}

// Get serves both the single read (id set) and the paginated listing.
func (h *ExperienceHandler) Get(c *gin.Context) {
	if c.Query("id") != "" {
		h.getSingle(c)
		return
	}
	h.list(c)
}

func (h *ExperienceHandler) getSingle(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	experience, err := h.Experiences.GetByID(id)
	if err != nil {
		respondDataError(c, err, "Experience not found.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": experience})
}

func (h *ExperienceHandler) list(c *gin.Context) {
	cursor, ok := cursorParam(c)
	if !ok {
		return
	}
	limit, ok := limitParam(c)
	if !ok {
		return
	}

	page, err := h.Experiences.List(cursor, limit)
	if err != nil {
		respondDataError(c, err, "No experiences found.")
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *ExperienceHandler) Create(c *gin.Context) {
	var input models.ExperienceUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidStateID(input.StateID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "state_id must be either 1 or 2."})
		return
	}

	experience := models.Experience{
		Title:          input.Title,
		Description:    input.Description,
		DifficultyID:   input.DifficultyID,
		Price:          input.Price,
		Duration:       input.Duration,
		ImgPreviewPath: input.ImgPreviewPath,
		ImgPaths:       input.ImgPaths,
		StateID:        input.StateID,
	}
	if err := h.Experiences.Create(&experience); err != nil {
		respondDataError(c, err, "Experience not found.")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"result": true})
}

func (h *ExperienceHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "experience_id")
	if !ok {
		return
	}
	var update models.ExperienceUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if update.StateID != 0 && !models.ValidStateID(update.StateID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "state_id must be either 1 or 2."})
		return
	}

	experience, err := h.Experiences.GetByID(id)
	if err != nil {
		respondDataError(c, err, "Experience not found")
		return
	}
	experience.ApplyUpdate(update)
	if err := h.Experiences.Update(experience); err != nil {
		respondDataError(c, err, "Experience not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": true})
}

func (h *ExperienceHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "experience_id")
	if !ok {
		return
	}
	experience, err := h.Experiences.GetByID(id)
	if err != nil {
		respondDataError(c, err, "No experience found with the given id")
		return
	}
	if err := h.Experiences.Delete(experience); err != nil {
		respondDataError(c, err, "No experience found with the given id")
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": true})
}
