package cart

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"alattar_back_end/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "cart:"
	cartTTL   = 30 * 24 * time.Hour // panier conservé 30 jours
)

// Store : stockage durable de la collection de lignes, clé = identifiant utilisateur.
// Un panier absent ou illisible est rendu comme vide, jamais comme une erreur
// utilisateur (l'échec de parsing est seulement loggé).
type Store interface {
	Load(ctx context.Context, userID string) ([]models.CartItem, error)
	Save(ctx context.Context, userID string, items []models.CartItem) error
	Delete(ctx context.Context, userID string) error
}

// RedisStore persiste le panier en JSON dans Redis sous cart:<userID>.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Load(ctx context.Context, userID string) ([]models.CartItem, error) {
	data, err := s.client.Get(ctx, keyPrefix+userID).Result()
	if err == redis.Nil || data == "" {
		return nil, nil // panier vide
	}
	if err != nil {
		return nil, err
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		log.Printf("⚠️ Panier illisible pour %s, réinitialisé: %v", userID, err)
		return nil, nil
	}
	return items, nil
}

func (s *RedisStore) Save(ctx context.Context, userID string, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, keyPrefix+userID, data, cartTTL).Err()
}

func (s *RedisStore) Delete(ctx context.Context, userID string) error {
	return s.client.Del(ctx, keyPrefix+userID).Err()
}

// MemoryStore : même contrat que RedisStore, en mémoire.
// Utilisé par les tests et comme repli quand Redis n'est pas configuré.
// La sérialisation JSON est réelle pour garder le même comportement d'aller-retour.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, userID string) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.data[userID]
	if !ok {
		return nil, nil
	}
	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("⚠️ Panier illisible pour %s, réinitialisé: %v", userID, err)
		return nil, nil
	}
	return items, nil
}

func (s *MemoryStore) Save(_ context.Context, userID string, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[userID] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	delete(s.data, userID)
	s.mu.Unlock()
	return nil
}

// Corrupt écrase l'entrée avec un blob non-JSON. Réservé aux tests.
func (s *MemoryStore) Corrupt(userID string) {
	s.mu.Lock()
	s.data[userID] = []byte("{pas du json")
	s.mu.Unlock()
}
