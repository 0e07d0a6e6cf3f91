package middleware

import (
	"net/http"

	"alattar_back_end/internal/session"

	"github.com/gin-gonic/gin"
)

// OwnerRequired n'autorise que les sessions dont l'enregistrement admin_users
// porte le rôle owner. La décision est prise ici, côté serveur, jamais à
// partir d'identifiants embarqués dans le client.
func OwnerRequired(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
			c.Abort()
			return
		}

		sess, ok := sessions.Current(c.Request.Context(), userID)
		if !ok || !sess.IsOwner {
			c.JSON(http.StatusForbidden, gin.H{"error": "ليس لديك صلاحيات المدير"})
			c.Abort()
			return
		}

		c.Next()
	}
}
