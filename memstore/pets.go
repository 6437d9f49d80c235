package memstore

import (
	"sync"
	"time"

	"github.com/LeeCheeHoong/PetCare-Portal/models"
)

type petStore struct {
	mu   sync.RWMutex
	pets map[string]models.Pet
}

func newPetStore() *petStore {
	return &petStore{pets: make(map[string]models.Pet)}
}

func (s *petStore) Get(id string) (models.Pet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.pets[id]
	return p, ok
}

func (s *petStore) ListByOwner(ownerID string) []models.Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Pet{}
	for _, p := range s.pets {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out
}

func (s *petStore) Save(p models.Pet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pets[p.ID] = p
}

func (s *petStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pets[id]; !ok {
		return false
	}
	delete(s.pets, id)
	return true
}

type appointmentStore struct {
	mu           sync.RWMutex
	appointments map[string]models.Appointment
}

func newAppointmentStore() *appointmentStore {
	return &appointmentStore{appointments: make(map[string]models.Appointment)}
}

func (s *appointmentStore) Get(id string) (models.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.appointments[id]
	return a, ok
}

func (s *appointmentStore) List() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Appointment, 0, len(s.appointments))
	for _, a := range s.appointments {
		out = append(out, a)
	}
	return out
}

func (s *appointmentStore) Save(a models.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments[a.ID] = a
}

// slotTaken reports whether [start, end) intersects any active appointment
// other than excludeID. Callers must hold the lock.
func (s *appointmentStore) slotTaken(start, end time.Time, excludeID string) bool {
	for _, other := range s.appointments {
		if other.ID == excludeID || !other.Status.Active() {
			continue
		}
		if start.Before(other.End()) && end.After(other.AppointmentDateTime) {
			return true
		}
	}
	return false
}

func (s *appointmentStore) Book(a models.Appointment) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.slotTaken(a.AppointmentDateTime, a.End(), "") {
		return false
	}
	s.appointments[a.ID] = a
	return true
}

func (s *appointmentStore) RescheduleIfFree(id string, start time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.appointments[id]
	if !ok {
		return false
	}
	end := start.Add(time.Duration(a.Duration) * time.Minute)
	if s.slotTaken(start, end, id) {
		return false
	}
	a.AppointmentDateTime = start
	a.UpdatedAt = time.Now().UTC()
	s.appointments[id] = a
	return true
}
