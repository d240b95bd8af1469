package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alfon96/askenzo-api/models"
	"github.com/alfon96/askenzo-api/services"
)

type PopupHandler struct {
	Popups services.PopupService
}

type popupInput struct {
	Text string `json:"text" binding:"required"`
}

func (h *PopupHandler) Get(c *gin.Context) {
	if c.Query("id") != "" {
		h.getSingle(c)
		return
	}
	h.list(c)
}

func (h *PopupHandler) getSingle(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	popup, err := h.Popups.GetByID(id)
	if err != nil {
		respondDataError(c, err, "No popup messages found.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": popup})
}

func (h *PopupHandler) list(c *gin.Context) {
	cursor, ok := cursorParam(c)
	if !ok {
		return
	}
	limit, ok := limitParam(c)
	if !ok {
		return
	}

	page, err := h.Popups.List(cursor, limit)
	if err != nil {
		respondDataError(c, err, "No popup messages found.")
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *PopupHandler) Create(c *gin.Context) {
	var input popupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Popups.Create(&models.PopupMsg{Text: input.Text}); err != nil {
		respondDataError(c, err, "No popup messages found.")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"result": true})
}

func (h *PopupHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "popup_id")
	if !ok {
		return
	}
	var input popupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	popup, err := h.Popups.GetByID(id)
	if err != nil {
		respondDataError(c, err, "No popup messages found.")
		return
	}
	if input.Text == popup.Text {
		c.JSON(http.StatusOK, gin.H{"result": true})
		return
	}
	popup.Text = input.Text
	if err := h.Popups.Update(popup); err != nil {
		respondDataError(c, err, "No popup messages found.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": true})
}

func (h *PopupHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "popup_id")
	if !ok {
		return
	}
	popup, err := h.Popups.GetByID(id)
	if err != nil {
		respondDataError(c, err, "No popup messages found.")
		return
	}
	if err := h.Popups.Delete(popup); err != nil {
		respondDataError(c, err, "No popup messages found.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": true})
}
