package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"alattar_back_end/internal/cart"
	"alattar_back_end/internal/catalog"
	"alattar_back_end/internal/delivery"
	"alattar_back_end/internal/order"
	"alattar_back_end/internal/session"
	"alattar_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

// OrderHandler compose le récapitulatif de commande et le lien de remise WhatsApp.
type OrderHandler struct {
	Store    cart.Store
	Sessions *session.Manager
}

//
// 🟢 POST /api/orders/checkout  {"area": "القدس", "notes": "...", "deliveryDate": "..."}
//
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié", "redirect": "/register"})
		return
	}

	var input struct {
		Area         string `json:"area"`
		Notes        string `json:"notes"`
		DeliveryDate string `json:"deliveryDate"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	// zone inconnue → zone par défaut (l'UI ne propose que la table)
	area, found := delivery.Lookup(input.Area)
	if !found {
		area = delivery.Default()
	}

	sess, _ := h.Sessions.Current(c.Request.Context(), userID)

	items, err := cart.NewManager(h.Store, userID).Items(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ. الرجاء المحاولة مرة أخرى"})
		return
	}

	result, err := order.Compose(order.Checkout{
		Session:      sess,
		Items:        items,
		Area:         area,
		Notes:        input.Notes,
		DeliveryDate: input.DeliveryDate,
	})
	switch {
	case errors.Is(err, order.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "السلة فارغة", "description": "الرجاء إضافة منتجات إلى السلة قبل إتمام الطلب"})
		return
	case errors.Is(err, order.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié", "redirect": "/register"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ. الرجاء المحاولة مرة أخرى"})
		return
	}

	// notification au propriétaire, sans bloquer la réponse
	go utils.NotifyOwnerNewOrder(result.Message)

	c.JSON(http.StatusOK, gin.H{
		"message":  result.Message,
		"link":     result.Link,
		"qr":       result.QR,
		"subtotal": cart.Subtotal(items),
		"delivery": area,
		"total":    cart.Total(items, area.Cost),
	})
}

//
// 🟢 POST /api/orders/product/:id — commande directe d'un seul produit
//
func (h *OrderHandler) OrderProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	product, found := catalog.ByID(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	result := order.ComposeProduct(product)
	c.JSON(http.StatusOK, gin.H{"message": result.Message, "link": result.Link})
}
