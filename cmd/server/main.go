package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	"alattar_back_end/internal/cache"
	"alattar_back_end/internal/cart"
	"alattar_back_end/internal/config"
	"alattar_back_end/internal/database"
	"alattar_back_end/internal/identity"
	"alattar_back_end/internal/routes"
	"alattar_back_end/internal/search"
	"alattar_back_end/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/facebook"
)

func main() {
	config.Load()

	database.ConnectDatabases()

	// ✅ Indexer le catalogue statique pour la recherche
	search.IndexCatalog(context.Background())

	initOAuthProviders()

	identitySvc := identity.NewScyllaService(database.Scylla)
	sessionMgr := session.NewManager(identitySvc, cache.RedisProfileMirror{})
	defer sessionMgr.Close()

	// Panier : Redis en prod, mémoire quand Redis n'est pas configuré
	var cartStore cart.Store
	if database.Redis != nil {
		cartStore = cart.NewRedisStore(database.Redis)
	} else {
		cartStore = cart.NewMemoryStore()
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendOrigin()},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	routes.RegisterRoutes(r, routes.Deps{
		Identity:  identitySvc,
		Sessions:  sessionMgr,
		CartStore: cartStore,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur Al-Attar lancé sur le port", port)
	r.Run(":" + port)
}

func frontendOrigin() string {
	origin := os.Getenv("FRONTEND_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return origin
}

func initOAuthProviders() {
	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Println("⚠️ SESSION_SECRET manquant — OAuth désactivé")
		return
	}

	store := sessions.NewCookieStore([]byte(sessionSecret))
	store.MaxAge(86400 * 30)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   false, // false en dev, true en prod
		SameSite: http.SameSiteLaxMode,
	}
	gothic.Store = store

	// Extraire le provider depuis l'URL (query ou form)
	gothic.GetProviderName = func(req *http.Request) (string, error) {
		if provider := req.URL.Query().Get("provider"); provider != "" {
			return provider, nil
		}
		if provider := req.FormValue("provider"); provider != "" {
			return provider, nil
		}
		return "", errors.New("provider not found")
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	clientID := os.Getenv("FACEBOOK_CLIENT_ID")
	clientSecret := os.Getenv("FACEBOOK_CLIENT_SECRET")
	if clientID == "" || clientSecret == "" {
		log.Println("⚠️ Aucun provider OAuth configuré")
		return
	}

	goth.UseProviders(facebook.New(
		clientID,
		clientSecret,
		baseURL+"/api/auth/facebook/callback",
	))
	log.Println("✅ Facebook OAuth activé")
}
