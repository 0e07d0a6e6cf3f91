package handlers

import (
	"net/http"
	"strconv"

	"alattar_back_end/internal/catalog"
	"alattar_back_end/internal/search"

	"github.com/gin-gonic/gin"
)

//
// 🟢 GET /api/products?q=&category=
//
func GetProducts(c *gin.Context) {
	query := c.Query("q")
	category := c.Query("category")

	products := search.Products(c.Request.Context(), query, category)
	c.JSON(http.StatusOK, gin.H{"products": products})
}

//
// 🟢 GET /api/products/categories
//
func GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": catalog.Categories()})
}

//
// 🟢 GET /api/products/:id
//
func GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	product, ok := catalog.ByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	c.JSON(http.StatusOK, product)
}
