package documents

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"

	"property-crm-server/handlers/auth"
	"property-crm-server/models"
	"property-crm-server/utils"

	"github.com/gin-gonic/gin"
)

// The document templates offered for generation, kept as data so the list
// can grow without touching handler code.
var documentTemplates = []gin.H{
	{"id": 1, "name": "Agreement to Sale", "type": "docx"},
	{"id": 2, "name": "Cost Sheet", "type": "csv"},
	{"id": 3, "name": "Possession Letter", "type": "docx"},
	{"id": 4, "name": "HDFC Demand Letter", "type": "docx"},
	{"id": 5, "name": "SBI NOC/Demand", "type": "docx"},
	{"id": 6, "name": "Payment Receipt", "type": "pdf"},
}

func UploadKYC(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	leadID, err := strconv.ParseUint(c.PostForm("lead_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid lead_id is required"})
		return
	}

	docType := c.PostForm("doc_type")
	if docType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "doc_type is required"})
		return
	}

	path := filepath.Join(utils.UploadDir(), utils.CategoryKYC, utils.StoredFilename(file.Filename))
	if err := c.SaveUploadedFile(file, path); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	id := uint(leadID)
	document := models.Document{
		LeadID:     &id,
		Type:       docType,
		FileName:   file.Filename,
		FilePath:   path,
		FileSize:   file.Size,
		MimeType:   file.Header.Get("Content-Type"),
		UploadedBy: auth.CurrentUserID(c),
	}

	if err := utils.DB.Create(&document).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save document"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "File uploaded successfully"})
}

func UploadCheque(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	bookingID, err := strconv.ParseUint(c.PostForm("booking_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid booking_id is required"})
		return
	}

	var booking models.Booking
	if err := utils.DB.First(&booking, bookingID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Booking %d does not exist", bookingID)})
		return
	}

	path := filepath.Join(utils.UploadDir(), utils.CategoryCheques, utils.StoredFilename(file.Filename))
	if err := c.SaveUploadedFile(file, path); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	document := models.Document{
		BookingID:  &booking.ID,
		Type:       "Cheque",
		FileName:   file.Filename,
		FilePath:   path,
		FileSize:   file.Size,
		MimeType:   file.Header.Get("Content-Type"),
		UploadedBy: auth.CurrentUserID(c),
	}

	if err := utils.DB.Create(&document).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save document"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cheque uploaded successfully"})
}

func GetDocumentTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, documentTemplates)
}
