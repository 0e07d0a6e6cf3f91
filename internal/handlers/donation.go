package handlers

import (
	"net/http"

	"alattar_back_end/internal/donation"

	"github.com/gin-gonic/gin"
)

//
// 🟢 GET /api/donations
//
func GetDonationPackages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"packages": donation.Packages()})
}

//
// 🟢 POST /api/donations/:id — compose le message de don et son lien WhatsApp
//
func ComposeDonation(c *gin.Context) {
	pkg, ok := donation.ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Paquet introuvable"})
		return
	}

	message, link := donation.Compose(pkg)
	c.JSON(http.StatusOK, gin.H{"message": message, "link": link})
}
