package handlers

import (
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/alfon96/askenzo-api/services"
)

type ImageHandler struct {
	Images services.ImageService
}

func contentTypeFor(filename string) string {
	if ct := mime.TypeByExtension(filepath.Ext(filename)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// uploadInputs opens every file of the request. The "files" field carries a
// batch; a lone "file" field is accepted for single uploads.
func uploadInputs(c *gin.Context) ([]services.UploadInput, []multipart.File, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No input file."})
		return nil, nil, false
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		headers = form.File["file"]
	}
	if len(headers) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No input file."})
		return nil, nil, false
	}

	ins := make([]services.UploadInput, 0, len(headers))
	opened := make([]multipart.File, 0, len(headers))
	for _, h := range headers {
		f, err := h.Open()
		if err != nil {
			for _, o := range opened {
				o.Close()
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
			return nil, nil, false
		}
		opened = append(opened, f)
		ins = append(ins, services.UploadInput{
			Filename:    h.Filename,
			ContentType: contentTypeFor(h.Filename),
			Body:        f,
		})
	}
	return ins, opened, true
}

func closeAll(files []multipart.File) {
	for _, f := range files {
		f.Close()
	}
}

func (h *ImageHandler) Upload(c *gin.Context) {
	identity := identityFromContext(c)
	ins, opened, ok := uploadInputs(c)
	if !ok {
		return
	}
	defer closeAll(opened)

	urls, err := h.Images.UploadBatch(c.Request.Context(), string(identity.Role), ins)
	if err != nil {
		// Partial failure: report what made it together with the error.
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "result": urls})
		return
	}
	if len(urls) == 1 {
		c.JSON(http.StatusCreated, gin.H{"result": urls[0]})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"result": urls})
}

func (h *ImageHandler) Replace(c *gin.Context) {
	oldName := c.Query("old_file_name")
	if oldName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "old_file_name is required"})
		return
	}
	identity := identityFromContext(c)

	ins, opened, ok := uploadInputs(c)
	if !ok {
		return
	}
	defer closeAll(opened)

	url, err := h.Images.Replace(c.Request.Context(), string(identity.Role), oldName, ins[0])
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to replace image"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": url})
}

func (h *ImageHandler) Delete(c *gin.Context) {
	name := c.Query("image_name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image_name is required"})
		return
	}
	identity := identityFromContext(c)

	if err := h.Images.Delete(c.Request.Context(), string(identity.Role), name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete image"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": true})
}
