package memstore

import (
	"fmt"
	"sync"

	"github.com/LeeCheeHoong/PetCare-Portal/models"
)

type productStore struct {
	mu       sync.RWMutex
	products map[string]models.Product
}

func newProductStore() *productStore {
	return &productStore{products: make(map[string]models.Product)}
}

func (s *productStore) Get(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	return p, ok
}

func (s *productStore) GetMany(ids []string) map[string]models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]models.Product, len(ids))
	for _, id := range ids {
		if p, ok := s.products[id]; ok {
			out[id] = p
		}
	}
	return out
}

func (s *productStore) List() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	return out
}

func (s *productStore) Save(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
}

func (s *productStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return false
	}
	delete(s.products, id)
	return true
}

func (s *productStore) ValidateStock(id string, quantity int) (bool, int, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return false, 0, fmt.Sprintf("Product with id '%s' not found", id)
	}
	if !p.InStock {
		return false, 0, fmt.Sprintf("Product '%s' is currently out of stock", p.Name)
	}
	if p.StockCount < quantity {
		return false, p.StockCount, fmt.Sprintf("Insufficient stock. Only %d item(s) available", p.StockCount)
	}
	return true, p.StockCount, ""
}

type categoryStore struct {
	mu         sync.RWMutex
	categories map[string]models.Category
}

func newCategoryStore() *categoryStore {
	return &categoryStore{categories: make(map[string]models.Category)}
}

func (s *categoryStore) Get(id string) (models.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.categories[id]
	return c, ok
}

func (s *categoryStore) List() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	return out
}

func (s *categoryStore) Save(c models.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories[c.ID] = c
}

func (s *categoryStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[id]; !ok {
		return false
	}
	delete(s.categories, id)
	return true
}
