// Package memstore holds all application state in process memory. Each store
// guards its maps with a mutex so handlers can run on concurrent requests.
package memstore

import (
	"github.com/LeeCheeHoong/PetCare-Portal/store"
)

// New returns an empty set of in-memory stores.
func New() *store.Stores {
	return &store.Stores{
		Products:       newProductStore(),
		Categories:     newCategoryStore(),
		Carts:          newCartStore(),
		Orders:         newOrderStore(),
		PaymentMethods: newPaymentMethodStore(),
		Pets:           newPetStore(),
		Appointments:   newAppointmentStore(),
		Adoption:       newAdoptionStore(),
	}
}
