package handlers

import (
	"net/http"
	"strconv"

	"alattar_back_end/internal/cart"
	"alattar_back_end/internal/catalog"
	"alattar_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// CartHandler : opérations panier de l'utilisateur courant.
// L'état vit dans le Store injecté (Redis en prod, mémoire en dev/tests).
type CartHandler struct {
	Store cart.Store
}

func (h *CartHandler) manager(c *gin.Context) (*cart.Manager, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return nil, false
	}
	return cart.NewManager(h.Store, userID), true
}

func cartResponse(items []models.CartItem) gin.H {
	return gin.H{
		"items":    items,
		"count":    cart.Count(items),
		"subtotal": cart.Subtotal(items),
	}
}

//
// 🟢 GET /api/cart
//
func (h *CartHandler) GetCart(c *gin.Context) {
	m, ok := h.manager(c)
	if !ok {
		return
	}

	items, err := m.Items(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ. الرجاء المحاولة مرة أخرى"})
		return
	}
	c.JSON(http.StatusOK, cartResponse(items))
}

//
// 🟢 POST /api/cart  {"productId": 7}
//
func (h *CartHandler) AddToCart(c *gin.Context) {
	m, ok := h.manager(c)
	if !ok {
		return
	}

	var input struct {
		ProductID int `json:"productId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	product, found := catalog.ByID(input.ProductID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	items, err := m.AddItem(c.Request.Context(), product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ. الرجاء المحاولة مرة أخرى"})
		return
	}

	resp := cartResponse(items)
	resp["message"] = "تمت الإضافة إلى السلة"
	c.JSON(http.StatusOK, resp)
}

//
// 🟡 PUT /api/cart/:productId  {"quantity": 3}
//
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	m, ok := h.manager(c)
	if !ok {
		return
	}

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	items, err := m.SetQuantity(c.Request.Context(), productID, input.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ. الرجاء المحاولة مرة أخرى"})
		return
	}
	c.JSON(http.StatusOK, cartResponse(items))
}

//
// ❌ DELETE /api/cart/:productId
//
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	m, ok := h.manager(c)
	if !ok {
		return
	}

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	items, err := m.RemoveItem(c.Request.Context(), productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ. الرجاء المحاولة مرة أخرى"})
		return
	}

	resp := cartResponse(items)
	resp["message"] = "تمت إزالة المنتج"
	c.JSON(http.StatusOK, resp)
}

//
// ❌ DELETE /api/cart
//
func (h *CartHandler) ClearCart(c *gin.Context) {
	m, ok := h.manager(c)
	if !ok {
		return
	}

	if err := m.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ. الرجاء المحاولة مرة أخرى"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "تم إفراغ السلة", "items": []models.CartItem{}})
}
