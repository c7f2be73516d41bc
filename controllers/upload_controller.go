package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/essay-orders-api/services"
)

// UploadDocument handles POST /api/v1/uploads - stores one supporting document
// (multipart field "file") and returns the key to send back in an order's files list
func UploadDocument(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "MISSING_FILE", "A file is required in the \"file\" field")
		return
	}

	doc, err := services.GetDocumentService().Upload(c.Request.Context(), user.ID, fileHeader)
	if err != nil {
		respondServiceError(c, err, "Failed to upload file")
		return
	}
	respondOK(c, http.StatusCreated, doc)
}

// DocumentURL handles GET /api/v1/uploads/url?key= - a short-lived download link
// for the uploader, or for the client or assigned writer of an order holding the file
func DocumentURL(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	key := c.Query("key")
	if key == "" {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "key is required")
		return
	}

	allowed, err := services.GetOrderService().CanReadDocument(c.Request.Context(), user.ID, key)
	if err != nil {
		respondServiceError(c, err, "Failed to check file access")
		return
	}
	if !allowed {
		respondError(c, http.StatusNotFound, "FILE_NOT_FOUND", "File not found")
		return
	}

	url, err := services.GetDocumentService().DownloadURL(c.Request.Context(), key)
	if err != nil {
		_ = c.Error(err)
		respondError(c, http.StatusNotFound, "FILE_NOT_FOUND", "File not found")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"url": url, "expiresIn": int(services.PresignExpiry.Seconds())})
}

// DiscardDocument handles DELETE /api/v1/uploads?key= - removes a document the
// caller uploaded but never attached to an order
func DiscardDocument(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	key := c.Query("key")
	if key == "" {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "key is required")
		return
	}
	if !services.OwnsDocument(user.ID, key) {
		respondError(c, http.StatusNotFound, "FILE_NOT_FOUND", "File not found")
		return
	}

	attached, err := services.GetOrderService().DocumentAttached(c.Request.Context(), key)
	if err != nil {
		respondServiceError(c, err, "Failed to check file attachments")
		return
	}
	if attached {
		respondError(c, http.StatusConflict, "FILE_ATTACHED", "File is attached to an order")
		return
	}

	if err := services.GetDocumentService().Delete(c.Request.Context(), key); err != nil {
		respondServiceError(c, err, "Failed to delete file")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"deleted": true})
}
