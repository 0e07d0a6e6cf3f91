package handlers

import (
	"net/http"

	"alattar_back_end/internal/services"

	"github.com/gin-gonic/gin"
)

//
// 🟢 POST /api/owner/images/upload — tableau de bord propriétaire
//
func UploadProductImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Aucun fichier reçu"})
		return
	}

	url, err := services.UploadProductImage(c.Request.Context(), file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de l'upload"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
