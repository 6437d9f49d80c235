// Package store defines the repository interfaces the controllers depend on.
// The in-memory implementations live in the memstore package.
package store

import (
	"time"

	"github.com/LeeCheeHoong/PetCare-Portal/models"
)

type ProductStore interface {
	Get(id string) (models.Product, bool)
	GetMany(ids []string) map[string]models.Product
	List() []models.Product
	Save(p models.Product)
	Delete(id string) bool
	// ValidateStock reports whether the requested quantity can be fulfilled
	// and, when it cannot, a human-readable reason.
	ValidateStock(id string, quantity int) (ok bool, stock int, msg string)
}

type CategoryStore interface {
	Get(id string) (models.Category, bool)
	List() []models.Category
	Save(c models.Category)
	Delete(id string) bool
}

type CartStore interface {
	// GetOrCreate returns the user's cart, creating an empty one on first use.
	GetOrCreate(userID string) models.Cart
	Get(userID string) (models.Cart, bool)
	Save(userID string, cart models.Cart)
}

type OrderStore interface {
	Get(id string) (models.Order, bool)
	List() []models.Order
	Save(o models.Order)
	// NextOrderNumber issues a process-unique order number, e.g. ORD-2026-000001.
	NextOrderNumber() string
}

type PaymentMethodStore interface {
	List(userID string) []models.SavedPaymentMethod
	Get(userID, id string) (models.SavedPaymentMethod, bool)
	Add(userID string, pm models.SavedPaymentMethod)
	ClearDefaults(userID string)
}

type PetStore interface {
	Get(id string) (models.Pet, bool)
	ListByOwner(ownerID string) []models.Pet
	Save(p models.Pet)
	Delete(id string) bool
}

type AppointmentStore interface {
	Get(id string) (models.Appointment, bool)
	List() []models.Appointment
	Save(a models.Appointment)
	// Book inserts the appointment only if its time slot does not overlap an
	// active appointment. The check and insert happen atomically.
	Book(a models.Appointment) bool
	// RescheduleIfFree moves the appointment to start only if the new slot is
	// free, ignoring the appointment's own current slot.
	RescheduleIfFree(id string, start time.Time) bool
}

type AdoptionStore interface {
	GetPet(id string) (models.AdoptablePet, bool)
	ListPets() []models.AdoptablePet
	SavePet(p models.AdoptablePet)
	DeletePet(id string) bool
	GetApplication(id string) (models.AdoptionApplication, bool)
	ListApplications() []models.AdoptionApplication
	SaveApplication(a models.AdoptionApplication)
	DeleteApplication(id string) bool
}

// Stores bundles every repository so handler constructors take one dependency.
type Stores struct {
	Products       ProductStore
	Categories     CategoryStore
	Carts          CartStore
	Orders         OrderStore
	PaymentMethods PaymentMethodStore
	Pets           PetStore
	Appointments   AppointmentStore
	Adoption       AdoptionStore
}
