package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alfon96/askenzo-api/services"
)

const duplicateDetail = "Value already registered. (Value can be an email a title or a popup message text)."

// respondDataError maps a service error kind onto its HTTP status. The
// not-found detail varies per endpoint; the duplicate detail is deliberately
// generic so existing emails cannot be enumerated.
func respondDataError(c *gin.Context, err error, notFoundDetail string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundDetail})
	case errors.Is(err, services.ErrDuplicateValue):
		c.JSON(http.StatusBadRequest, gin.H{"error": duplicateDetail})
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// cursorParam reads the optional non-negative "cursor" query parameter.
func cursorParam(c *gin.Context) (*int, bool) {
	raw := c.Query("cursor")
	if raw == "" {
		return nil, true
	}
	cursor, err := strconv.Atoi(raw)
	if err != nil || cursor < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cursor must be a non-negative integer"})
		return nil, false
	}
	return &cursor, true
}

// limitParam reads the positive "limit" query parameter, defaulting to 20.
func limitParam(c *gin.Context) (int, bool) {
	raw := c.DefaultQuery("limit", "20")
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return 0, false
	}
	return limit, true
}

// idParam reads a positive integer id from the named query parameter.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Query(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}
