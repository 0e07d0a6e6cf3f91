package cache

import (
	"context"
	"encoding/json"
	"log"

	"alattar_back_end/internal/database"
	"alattar_back_end/internal/models"
)

const profileKeyPrefix = "profile:"

// RedisProfileMirror : miroir du profil courant sous profile:<userID>,
// l'équivalent du cache localStorage du client d'origine. Lecture seule
// pour l'affichage ; la table profiles reste la source de vérité.
type RedisProfileMirror struct{}

func (RedisProfileMirror) Save(ctx context.Context, p models.UserProfile) {
	if database.Redis == nil {
		return
	}
	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	database.Redis.Set(ctx, profileKeyPrefix+p.ID, data, 0)
}

// Load retourne le profil en miroir, ou false si absent/illisible
// (une entrée corrompue vaut absence, loggée seulement).
func (RedisProfileMirror) Load(ctx context.Context, userID string) (*models.UserProfile, bool) {
	if database.Redis == nil {
		return nil, false
	}
	data, err := database.Redis.Get(ctx, profileKeyPrefix+userID).Result()
	if err != nil || data == "" {
		return nil, false
	}
	var p models.UserProfile
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		log.Printf("⚠️ Profil en cache illisible pour %s: %v", userID, err)
		return nil, false
	}
	return &p, true
}

func (RedisProfileMirror) Delete(ctx context.Context, userID string) {
	if database.Redis == nil {
		return
	}
	database.Redis.Del(ctx, profileKeyPrefix+userID)
}
