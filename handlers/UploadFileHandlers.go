package handlers

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"io"
	"net/http"

	// Accepted evidence photo formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"backend/models"
	"backend/storage"

	"github.com/gin-gonic/gin"
)

// maxImageSize caps inline images at 10 MB; everything is held in
// memory as a data URI.
const maxImageSize = 10 << 20

// AttachItemImage uploads a reference or evidence image for one item
// @Summary Attach item image
// @Description Decode the uploaded image, inline it as a base64 data URI and store it on the item. kind=reference sets the authoring example image, kind=photo the field evidence.
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param project_id path string true "Project ID"
// @Param section_id path string true "Section ID"
// @Param item_id path string true "Item ID"
// @Param kind formData string true "reference or photo"
// @Param file formData file true "Image file"
// @Success 200 {object} object
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/item_image/{project_id}/{section_id}/{item_id} [post]
func AttachItemImage(store *storage.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		kind := c.PostForm("kind")
		var field string
		switch kind {
		case "reference":
			field = models.FieldReferenceImage
		case "photo":
			field = models.FieldPhoto
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be reference or photo"})
			return
		}

		file, header, err := c.Request.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error retrieving the file"})
			return
		}
		defer file.Close()

		if header.Size > maxImageSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image exceeds the 10MB limit"})
			return
		}

		data, err := io.ReadAll(io.LimitReader(file, maxImageSize))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error reading the file"})
			return
		}

		dataURI, err := encodeImageDataURI(data)
		if err != nil {
			// Decode failed: the item is left untouched.
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// The store write happens only after the decode resolved.
		// Concurrent attaches to the same field: last-resolved wins.
		found := store.SetItemField(c.Param("project_id"), c.Param("section_id"), c.Param("item_id"), field, dataURI)
		respondMutation(c, store, c.Param("project_id"), found)
	}
}

// encodeImageDataURI validates that data is a decodable image and
// returns it inlined as a data URI with a sniffed MIME type.
func encodeImageDataURI(data []byte) (string, error) {
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("file is not a supported image: %v", err)
	}
	contentType := http.DetectContentType(data)
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data)), nil
}
