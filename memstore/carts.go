package memstore

import (
	"sync"
	"time"

	"github.com/LeeCheeHoong/PetCare-Portal/models"
)

type cartStore struct {
	mu    sync.RWMutex
	carts map[string]models.Cart // keyed by user id
}

func newCartStore() *cartStore {
	return &cartStore{carts: make(map[string]models.Cart)}
}

func (s *cartStore) GetOrCreate(userID string) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cart, ok := s.carts[userID]; ok {
		return copyCart(cart)
	}
	cart := models.Cart{
		ID:        models.NewID("cart"),
		Items:     []models.CartItem{},
		UpdatedAt: time.Now().UTC(),
	}
	s.carts[userID] = cart
	return copyCart(cart)
}

func (s *cartStore) Get(userID string) (models.Cart, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cart, ok := s.carts[userID]
	if !ok {
		return models.Cart{}, false
	}
	return copyCart(cart), true
}

func (s *cartStore) Save(userID string, cart models.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[userID] = copyCart(cart)
}

// copyCart clones the item slice so callers never alias stored state.
func copyCart(cart models.Cart) models.Cart {
	items := make([]models.CartItem, len(cart.Items))
	copy(items, cart.Items)
	cart.Items = items
	return cart
}
