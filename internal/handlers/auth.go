package handlers

import (
	"context"
	"errors"
	"net/http"

	"alattar_back_end/internal/identity"
	"alattar_back_end/internal/session"
	"alattar_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/markbates/goth/gothic"
)

// AuthHandler : inscription, login/logout et OAuth.
type AuthHandler struct {
	Identity identity.Service
	Sessions *session.Manager
}

//
// 🟢 POST /api/auth/register  {"email": "...", "password": "..."}
//
func (h *AuthHandler) Register(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "بريد إلكتروني أو كلمة مرور غير صالحة"})
		return
	}

	userID, err := h.Identity.SignUp(c.Request.Context(), input.Email, input.Password)
	if errors.Is(err, identity.ErrEmailTaken) {
		c.JSON(http.StatusConflict, gin.H{"error": identity.ErrEmailTaken.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "حدث خطأ. الرجاء المحاولة مرة أخرى"})
		return
	}

	token, err := utils.GenerateJWT(userID, input.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ. الرجاء المحاولة مرة أخرى"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user_id": userID})
}

//
// 🟢 POST /api/auth/login
//
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	userID, err := h.Sessions.Login(c.Request.Context(), input.Email, input.Password)
	if errors.Is(err, identity.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "فشل تسجيل الدخول. الرجاء التحقق من بريدك الإلكتروني وكلمة المرور"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "حدث خطأ أثناء تسجيل الدخول"})
		return
	}

	token, err := utils.GenerateJWT(userID, input.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ. الرجاء المحاولة مرة أخرى"})
		return
	}

	sess, _ := h.Sessions.Current(c.Request.Context(), userID)
	c.JSON(http.StatusOK, gin.H{
		"message": "تم تسجيل الدخول بنجاح",
		"token":   token,
		"user_id": userID,
		"session": sess,
	})
}

//
// 🟢 POST /api/auth/logout
//
func (h *AuthHandler) Logout(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	// l'état local se vide toujours, même si le service distant échoue
	h.Sessions.Logout(c.Request.Context(), userID)
	c.JSON(http.StatusOK, gin.H{"message": "تم تسجيل الخروج"})
}

// ================== OAUTH (Facebook) ==================

type ctxKey string

const ProviderKey ctxKey = "provider"

//
// 🟢 GET /api/auth/:provider
//
func (h *AuthHandler) BeginAuth(c *gin.Context) {
	provider := c.Param("provider")
	if provider == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "aucun provider spécifié"})
		return
	}

	c.Request = c.Request.WithContext(
		context.WithValue(c.Request.Context(), ProviderKey, provider),
	)

	gothic.BeginAuthHandler(c.Writer, c.Request)
}

//
// 🟢 GET /api/auth/:provider/callback
//
func (h *AuthHandler) CallbackAuth(c *gin.Context) {
	provider := c.Param("provider")
	if provider == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "aucun provider spécifié"})
		return
	}

	c.Request = c.Request.WithContext(
		context.WithValue(c.Request.Context(), ProviderKey, provider),
	)

	user, err := gothic.CompleteUserAuth(c.Writer, c.Request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"provider": user.Provider,
		"email":    user.Email,
		"user_id":  user.UserID,
	})
}
