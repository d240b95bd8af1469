package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alfon96/askenzo-api/models"
	"github.com/alfon96/askenzo-api/services"
)

type DiscoveryHandler struct {
	Discoveries services.DiscoveryService
}

// discoveryView exposes the stored geography as a plain "lon lat" pair.
func discoveryView(d models.Discovery) models.Discovery {
	decoded := services.DecodeEWKB(d.CoordinateGPS)
	if decoded == "" {
		// Not yet round-tripped through the store; still a WKT literal.
		decoded = services.ExtractCoordinates(d.CoordinateGPS)
	}
	d.CoordinateGPS = decoded
	return d
}

func (h *DiscoveryHandler) Get(c *gin.Context) {
	if c.Query("id") != "" {
		h.getSingle(c)
		return
	}
	h.list(c)
}

func (h *DiscoveryHandler) getSingle(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	discovery, err := h.Discoveries.GetByID(id)
	if err != nil {
		respondDataError(c, err, "Discovery not found.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": discoveryView(*discovery)})
}

func (h *DiscoveryHandler) list(c *gin.Context) {
	cursor, ok := cursorParam(c)
	if !ok {
		return
	}
	limit, ok := limitParam(c)
	if !ok {
		return
	}

	all := c.DefaultQuery("all", "true") == "true"
	category := 1
	if raw := c.Query("category"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || !models.ValidKindID(parsed) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category must be between 1 and 4"})
			return
		}
		category = parsed
	}

	page, err := h.Discoveries.List(cursor, limit, category, all)
	if err != nil {
		respondDataError(c, err, "No discoveries found.")
		return
	}
	for i, d := range page.Items {
		page.Items[i] = discoveryView(d)
	}
	c.JSON(http.StatusOK, page)
}

func (h *DiscoveryHandler) Create(c *gin.Context) {
	var input models.DiscoveryUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidStateID(input.StateID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "state_id must be either 1 or 2."})
		return
	}
	if !models.ValidKindID(input.KindID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind_id must be between 1 and 4."})
		return
	}

	discovery := models.Discovery{
		Title:          input.Title,
		Description:    input.Description,
		ImgPreviewPath: input.ImgPreviewPath,
		ImgPaths:       input.ImgPaths,
		VideoPaths:     input.VideoPaths,
		CoordinateGPS:  services.EncodePoint(input.CoordinateGPS),
		Address:        input.Address,
		KindID:         input.KindID,
		StateID:        input.StateID,
	}
	if err := h.Discoveries.Create(&discovery); err != nil {
		respondDataError(c, err, "Discovery not found.")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"result": true})
}

func (h *DiscoveryHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "discovery_id")
	if !ok {
		return
	}
	var update models.DiscoveryUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if update.StateID != 0 && !models.ValidStateID(update.StateID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "state_id must be either 1 or 2."})
		return
	}
	if update.KindID != 0 && !models.ValidKindID(update.KindID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind_id must be between 1 and 4."})
		return
	}
	if update.CoordinateGPS != "" {
		update.CoordinateGPS = services.EncodePoint(update.CoordinateGPS)
	}

	discovery, err := h.Discoveries.GetByID(id)
	if err != nil {
		respondDataError(c, err, "Discovery not found")
		return
	}
	discovery.ApplyUpdate(update)
	if err := h.Discoveries.Update(discovery); err != nil {
		respondDataError(c, err, "Discovery not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": true})
}

func (h *DiscoveryHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "discovery_id")
	if !ok {
		return
	}
	discovery, err := h.Discoveries.GetByID(id)
	if err != nil {
		respondDataError(c, err, "No discovery found with the given id")
		return
	}
	if err := h.Discoveries.Delete(discovery); err != nil {
		respondDataError(c, err, "No discovery found with the given id")
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": true})
}

// Distance returns the distance in kilometers from the caller's position to
// every discovery.
func (h *DiscoveryHandler) Distance(c *gin.Context) {
	position := c.Query("my_position")
	if position == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "my_position is required"})
		return
	}

	distances, err := h.Discoveries.DistancesFrom(services.EncodePoint(position))
	if err != nil {
		respondDataError(c, err, "No discoveries found.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": distances})
}
