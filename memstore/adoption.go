package memstore

import (
	"sync"

	"github.com/LeeCheeHoong/PetCare-Portal/models"
)

type adoptionStore struct {
	mu           sync.RWMutex
	pets         map[string]models.AdoptablePet
	applications map[string]models.AdoptionApplication
}

func newAdoptionStore() *adoptionStore {
	return &adoptionStore{
		pets:         make(map[string]models.AdoptablePet),
		applications: make(map[string]models.AdoptionApplication),
	}
}

func (s *adoptionStore) GetPet(id string) (models.AdoptablePet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.pets[id]
	return p, ok
}

func (s *adoptionStore) ListPets() []models.AdoptablePet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.AdoptablePet, 0, len(s.pets))
	for _, p := range s.pets {
		out = append(out, p)
	}
	return out
}

func (s *adoptionStore) SavePet(p models.AdoptablePet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pets[p.ID] = p
}

func (s *adoptionStore) DeletePet(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pets[id]; !ok {
		return false
	}
	delete(s.pets, id)
	return true
}

func (s *adoptionStore) GetApplication(id string) (models.AdoptionApplication, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.applications[id]
	return a, ok
}

func (s *adoptionStore) ListApplications() []models.AdoptionApplication {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.AdoptionApplication, 0, len(s.applications))
	for _, a := range s.applications {
		out = append(out, a)
	}
	return out
}

func (s *adoptionStore) SaveApplication(a models.AdoptionApplication) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applications[a.ID] = a
}

func (s *adoptionStore) DeleteApplication(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.applications[id]; !ok {
		return false
	}
	delete(s.applications, id)
	return true
}
