package cart

import (
	"context"

	"alattar_back_end/internal/models"
)

// Manager maintient la collection de lignes d'un utilisateur.
// Invariant : une ligne présente a toujours une quantité ≥ 1 ; au plus une
// ligne par id produit. Chaque mutation persiste la collection complète.
type Manager struct {
	store  Store
	userID string
}

func NewManager(store Store, userID string) *Manager {
	return &Manager{store: store, userID: userID}
}

// Items charge l'état courant du panier.
func (m *Manager) Items(ctx context.Context) ([]models.CartItem, error) {
	return m.store.Load(ctx, m.userID)
}

// AddItem ajoute une unité du produit : incrémente la ligne existante,
// sinon insère une nouvelle ligne avec quantité 1.
func (m *Manager) AddItem(ctx context.Context, p models.Product) ([]models.CartItem, error) {
	items, err := m.store.Load(ctx, m.userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range items {
		if items[i].ID == p.ID {
			items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		items = append(items, models.CartItem{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Weight:      p.Weight,
			Image:       p.Image,
			Category:    p.Category,
			Quantity:    1,
		})
	}

	if err := m.store.Save(ctx, m.userID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// SetQuantity remplace la quantité d'une ligne. Toute valeur < 1 est ramenée
// à 1 : cet appel ne supprime jamais de ligne.
func (m *Manager) SetQuantity(ctx context.Context, productID, quantity int) ([]models.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}

	items, err := m.store.Load(ctx, m.userID)
	if err != nil {
		return nil, err
	}

	changed := false
	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity = quantity
			changed = true
			break
		}
	}
	if !changed {
		return items, nil
	}

	if err := m.store.Save(ctx, m.userID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// RemoveItem supprime la ligne si elle existe, sinon ne fait rien.
func (m *Manager) RemoveItem(ctx context.Context, productID int) ([]models.CartItem, error) {
	items, err := m.store.Load(ctx, m.userID)
	if err != nil {
		return nil, err
	}

	out := items[:0]
	for _, it := range items {
		if it.ID != productID {
			out = append(out, it)
		}
	}
	if len(out) == len(items) {
		return items, nil
	}

	if err := m.store.Save(ctx, m.userID, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Clear vide la collection.
func (m *Manager) Clear(ctx context.Context) error {
	return m.store.Delete(ctx, m.userID)
}

// Subtotal : somme des price × quantity. Fonction pure de l'état passé.
func Subtotal(items []models.CartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// Total = sous-total + frais de livraison.
func Total(items []models.CartItem, deliveryCost float64) float64 {
	return Subtotal(items) + deliveryCost
}

// Count : nombre total d'unités, toutes lignes confondues.
func Count(items []models.CartItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}
