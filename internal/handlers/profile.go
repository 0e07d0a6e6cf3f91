package handlers

import (
	"errors"
	"net/http"

	"alattar_back_end/internal/models"
	"alattar_back_end/internal/session"

	"github.com/gin-gonic/gin"
)

// ProfileHandler : lecture et mise à jour du profil de la session courante.
type ProfileHandler struct {
	Sessions *session.Manager
}

//
// 🟢 GET /api/profile
//
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié", "redirect": "/register"})
		return
	}

	sess, ok := h.Sessions.Current(c.Request.Context(), userID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié", "redirect": "/register"})
		return
	}
	c.JSON(http.StatusOK, sess)
}

//
// 🟡 PUT /api/profile — jeu de champs fermé, validé avant tout effet de bord
//
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié", "redirect": "/register"})
		return
	}

	var update models.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	sess, err := h.Sessions.UpdateProfile(c.Request.Context(), userID, update)
	switch {
	case errors.Is(err, session.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié", "redirect": "/register"})
		return
	case isValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusBadGateway, gin.H{"error": "فشل تحديث بيانات المستخدم. الرجاء المحاولة مرة أخرى"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "تم تحديث الملف الشخصي بنجاح",
		"session": sess,
	})
}

func isValidationError(err error) bool {
	for _, v := range []error{
		models.ErrFullNameRequired,
		models.ErrRegionRequired,
		models.ErrAddressRequired,
		models.ErrInvalidPhone,
		models.ErrSocialMediaRequired,
		models.ErrSocialMediaTypeRequired,
		models.ErrDeliveryLocationRequired,
		models.ErrPreferredContactRequired,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
