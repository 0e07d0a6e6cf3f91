package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"alattar_back_end/internal/database"
)

const (
	AuthCacheTTL = 15 * time.Minute // cache les vérifications de mot de passe pendant 15 min
)

// GetPasswordHashFromCache vérifie si cette combinaison email/mot de passe
// a déjà été validée. Évite de refaire bcrypt.CompareHashAndPassword à chaque login.
func GetPasswordHashFromCache(email, password string) (bool, error) {
	if database.Redis == nil {
		return false, nil
	}
	ctx := context.Background()

	passwordHash := sha256.Sum256([]byte(password))
	cacheKey := "auth:" + email + ":" + hex.EncodeToString(passwordHash[:])

	result, err := database.Redis.Get(ctx, cacheKey).Result()
	if err == nil && result == "valid" {
		return true, nil
	}
	return false, err
}

// SetPasswordHashInCache met en cache une vérification réussie.
func SetPasswordHashInCache(email, password string) {
	if database.Redis == nil {
		return
	}
	ctx := context.Background()

	passwordHash := sha256.Sum256([]byte(password))
	cacheKey := "auth:" + email + ":" + hex.EncodeToString(passwordHash[:])

	database.Redis.Set(ctx, cacheKey, "valid", AuthCacheTTL)
}
