package memstore

import (
	"fmt"
	"sync"
	"time"

	"github.com/LeeCheeHoong/PetCare-Portal/models"
)

type orderStore struct {
	mu      sync.RWMutex
	orders  map[string]models.Order
	counter int
}

func newOrderStore() *orderStore {
	return &orderStore{orders: make(map[string]models.Order)}
}

func (s *orderStore) Get(id string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return models.Order{}, false
	}
	return copyOrder(o), true
}

func (s *orderStore) List() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, copyOrder(o))
	}
	return out
}

func (s *orderStore) Save(o models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID] = copyOrder(o)
}

func (s *orderStore) NextOrderNumber() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counter++
	return fmt.Sprintf("ORD-%d-%06d", time.Now().UTC().Year(), s.counter)
}

func copyOrder(o models.Order) models.Order {
	items := make([]models.OrderItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	history := make([]models.StatusEntry, len(o.StatusHistory))
	copy(history, o.StatusHistory)
	o.StatusHistory = history
	return o
}

type paymentMethodStore struct {
	mu      sync.Mutex
	methods map[string][]models.SavedPaymentMethod // keyed by user id
}

func newPaymentMethodStore() *paymentMethodStore {
	return &paymentMethodStore{methods: make(map[string][]models.SavedPaymentMethod)}
}

// seedDefaults lazily provisions a saved card the first time a user touches
// their payment methods, mirroring a returning customer's wallet.
func (s *paymentMethodStore) seedDefaults(userID string) {
	if _, ok := s.methods[userID]; ok {
		return
	}
	s.methods[userID] = []models.SavedPaymentMethod{
		{
			ID:             "pm_default",
			Type:           "card",
			IsDefault:      true,
			Last4:          "4242",
			Brand:          "Visa",
			ExpiryMonth:    "12",
			ExpiryYear:     "2027",
			CardholderName: "Default User",
		},
	}
}

func (s *paymentMethodStore) List(userID string) []models.SavedPaymentMethod {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seedDefaults(userID)
	out := make([]models.SavedPaymentMethod, len(s.methods[userID]))
	copy(out, s.methods[userID])
	return out
}

func (s *paymentMethodStore) Get(userID, id string) (models.SavedPaymentMethod, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seedDefaults(userID)
	for _, pm := range s.methods[userID] {
		if pm.ID == id {
			return pm, true
		}
	}
	return models.SavedPaymentMethod{}, false
}

func (s *paymentMethodStore) Add(userID string, pm models.SavedPaymentMethod) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seedDefaults(userID)
	s.methods[userID] = append(s.methods[userID], pm)
}

func (s *paymentMethodStore) ClearDefaults(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seedDefaults(userID)
	for i := range s.methods[userID] {
		s.methods[userID][i].IsDefault = false
	}
}
