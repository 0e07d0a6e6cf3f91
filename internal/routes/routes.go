package routes

import (
	"alattar_back_end/internal/cart"
	"alattar_back_end/internal/handlers"
	"alattar_back_end/internal/identity"
	"alattar_back_end/internal/middleware"
	"alattar_back_end/internal/session"

	"github.com/gin-gonic/gin"
)

// Deps : collaborateurs injectés dans les handlers.
type Deps struct {
	Identity  identity.Service
	Sessions  *session.Manager
	CartStore cart.Store
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	authH := &handlers.AuthHandler{Identity: deps.Identity, Sessions: deps.Sessions}
	cartH := &handlers.CartHandler{Store: deps.CartStore}
	orderH := &handlers.OrderHandler{Store: deps.CartStore, Sessions: deps.Sessions}
	profileH := &handlers.ProfileHandler{Sessions: deps.Sessions}

	api := r.Group("/api")

	// Catalogue (public)
	products := api.Group("/products")
	{
		products.GET("", handlers.GetProducts)
		products.GET("/categories", handlers.GetCategories)
		products.GET("/:id", handlers.GetProduct)
	}

	// Dons (public)
	donations := api.Group("/donations")
	{
		donations.GET("", handlers.GetDonationPackages)
		donations.POST("/:id", handlers.ComposeDonation)
	}

	// Authentification
	auth := api.Group("/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", authH.Login)
		auth.POST("/logout", middleware.AuthRequired(), authH.Logout)
		auth.GET("/:provider", authH.BeginAuth)
		auth.GET("/:provider/callback", authH.CallbackAuth)
	}

	// Panier (authentifié)
	cartGroup := api.Group("/cart", middleware.AuthRequired())
	{
		cartGroup.GET("", cartH.GetCart)
		cartGroup.POST("", cartH.AddToCart)
		cartGroup.PUT("/:productId", cartH.UpdateQuantity)
		cartGroup.DELETE("/:productId", cartH.RemoveFromCart)
		cartGroup.DELETE("", cartH.ClearCart)
	}

	// Commandes
	orders := api.Group("/orders")
	{
		orders.POST("/checkout", middleware.AuthRequired(), orderH.Checkout)
		orders.POST("/product/:id", orderH.OrderProduct)
	}

	// Profil (authentifié)
	profile := api.Group("/profile", middleware.AuthRequired())
	{
		profile.GET("", profileH.GetProfile)
		profile.PUT("", profileH.UpdateProfile)
	}

	// Tableau de bord propriétaire
	owner := api.Group("/owner", middleware.AuthRequired(), middleware.OwnerRequired(deps.Sessions))
	{
		owner.POST("/images/upload", handlers.UploadProductImage)
	}
}
