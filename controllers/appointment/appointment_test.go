package appointmentControllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeeCheeHoong/PetCare-Portal/apierr"
	"github.com/LeeCheeHoong/PetCare-Portal/memstore"
	"github.com/LeeCheeHoong/PetCare-Portal/models"
	"github.com/LeeCheeHoong/PetCare-Portal/store"
)

func newTestStores(t *testing.T) *store.Stores {
	t.Helper()
	s := memstore.New()
	now := time.Now().UTC()
	s.Pets.Save(models.Pet{
		ID: "pet_rex", OwnerID: "user1", Name: "Rex", Species: "dog",
		Breed: "Labrador", Status: "healthy", CreatedAt: now, UpdatedAt: now,
	})
	s.Pets.Save(models.Pet{
		ID: "pet_tom", OwnerID: "user2", Name: "Tom", Species: "cat",
		Breed: "Tabby", Status: "healthy", CreatedAt: now, UpdatedAt: now,
	})
	return s
}

func bookingInput(petID, datetime string, duration int) BookAppointmentInput {
	return BookAppointmentInput{
		PetID:               petID,
		AppointmentDateTime: datetime,
		Duration:            duration,
		AppointmentType:     models.AppointmentTypeCheckup,
		Reason:              "Annual checkup",
	}
}

func TestBookAppointment(t *testing.T) {
	s := newTestStores(t)

	appointment, err := Book(s, "user1", bookingInput("pet_rex", "2026-09-10T10:00:00Z", 30))
	require.NoError(t, err)

	assert.Equal(t, "pet_rex", appointment.PetID)
	assert.Equal(t, "Rex", appointment.Pet.Name)
	assert.Equal(t, models.AppointmentStatusScheduled, appointment.Status)
	assert.Equal(t, 30, appointment.Duration)
	assert.Equal(t, time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC), appointment.AppointmentDateTime)
}

func TestBookRejectsOverlap(t *testing.T) {
	s := newTestStores(t)

	_, err := Book(s, "user1", bookingInput("pet_rex", "2026-09-10T10:00:00Z", 60))
	require.NoError(t, err)

	// starts inside the existing slot
	_, err = Book(s, "user2", bookingInput("pet_tom", "2026-09-10T10:30:00Z", 30))
	require.Error(t, err)
	assert.Equal(t, 409, apierr.StatusOf(err))
	assert.Equal(t, "This time slot is already booked. Please choose another time.", err.Error())

	// ends inside the existing slot
	_, err = Book(s, "user2", bookingInput("pet_tom", "2026-09-10T09:45:00Z", 30))
	require.Error(t, err)
	assert.Equal(t, 409, apierr.StatusOf(err))

	// fully contains the existing slot
	_, err = Book(s, "user2", bookingInput("pet_tom", "2026-09-10T09:00:00Z", 180))
	require.Error(t, err)
	assert.Equal(t, 409, apierr.StatusOf(err))
}

func TestAdjacentSlotsDoNotOverlap(t *testing.T) {
	s := newTestStores(t)

	_, err := Book(s, "user1", bookingInput("pet_rex", "2026-09-10T10:00:00Z", 30))
	require.NoError(t, err)

	// back to back bookings share only the boundary instant
	_, err = Book(s, "user2", bookingInput("pet_tom", "2026-09-10T10:30:00Z", 30))
	require.NoError(t, err)

	_, err = Book(s, "user1", bookingInput("pet_rex", "2026-09-10T09:30:00Z", 30))
	require.NoError(t, err)
}

func TestCancelledSlotFreesAvailability(t *testing.T) {
	s := newTestStores(t)

	first, err := Book(s, "user1", bookingInput("pet_rex", "2026-09-10T10:00:00Z", 30))
	require.NoError(t, err)

	_, err = Cancel(s, "user1", first.ID)
	require.NoError(t, err)

	_, err = Book(s, "user2", bookingInput("pet_tom", "2026-09-10T10:00:00Z", 30))
	require.NoError(t, err)
}

func TestCancelGuards(t *testing.T) {
	s := newTestStores(t)

	appointment, err := Book(s, "user1", bookingInput("pet_rex", "2026-09-10T10:00:00Z", 30))
	require.NoError(t, err)

	// another user's appointment is off limits
	_, err = Cancel(s, "user2", appointment.ID)
	require.Error(t, err)
	assert.Equal(t, 403, apierr.StatusOf(err))

	cancelled, err := Cancel(s, "user1", appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentStatusCancelled, cancelled.Status)

	_, err = Cancel(s, "user1", appointment.ID)
	require.Error(t, err)
	assert.Equal(t, "Cannot cancel appointment with status 'cancelled'", err.Error())
}

func TestReschedule(t *testing.T) {
	s := newTestStores(t)

	appointment, err := Book(s, "user1", bookingInput("pet_rex", "2026-09-10T10:00:00Z", 30))
	require.NoError(t, err)

	moved, err := Reschedule(s, "user1", appointment.ID, RescheduleAppointmentInput{
		AppointmentDateTime: "2026-09-11T14:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 11, 14, 0, 0, 0, time.UTC), moved.AppointmentDateTime)

	// the old slot is free again
	_, err = Book(s, "user2", bookingInput("pet_tom", "2026-09-10T10:00:00Z", 30))
	require.NoError(t, err)
}

func TestRescheduleToOwnSlot(t *testing.T) {
	s := newTestStores(t)

	appointment, err := Book(s, "user1", bookingInput("pet_rex", "2026-09-10T10:00:00Z", 60))
	require.NoError(t, err)

	// shifting within its own window must not collide with itself
	moved, err := Reschedule(s, "user1", appointment.ID, RescheduleAppointmentInput{
		AppointmentDateTime: "2026-09-10T10:15:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 10, 10, 15, 0, 0, time.UTC), moved.AppointmentDateTime)
}

func TestRescheduleConflict(t *testing.T) {
	s := newTestStores(t)

	_, err := Book(s, "user1", bookingInput("pet_rex", "2026-09-10T10:00:00Z", 30))
	require.NoError(t, err)
	second, err := Book(s, "user2", bookingInput("pet_tom", "2026-09-10T11:00:00Z", 30))
	require.NoError(t, err)

	_, err = Reschedule(s, "user2", second.ID, RescheduleAppointmentInput{
		AppointmentDateTime: "2026-09-10T10:15:00Z",
	})
	require.Error(t, err)
	assert.Equal(t, 409, apierr.StatusOf(err))
	assert.Equal(t, "This time slot is already booked", err.Error())

	// the conflicting reschedule must not move the appointment
	stored, ok := s.Appointments.Get(second.ID)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 9, 10, 11, 0, 0, 0, time.UTC), stored.AppointmentDateTime)
}

func TestBookValidation(t *testing.T) {
	s := newTestStores(t)

	_, err := Book(s, "user1", bookingInput("pet_missing", "2026-09-10T10:00:00Z", 30))
	require.Error(t, err)
	assert.Equal(t, 404, apierr.StatusOf(err))
	assert.Equal(t, "Pet with id 'pet_missing' not found", err.Error())

	_, err = Book(s, "user1", bookingInput("pet_tom", "2026-09-10T10:00:00Z", 30))
	require.Error(t, err)
	assert.Equal(t, 403, apierr.StatusOf(err))
	assert.Equal(t, "You don't have permission to access this pet", err.Error())

	_, err = Book(s, "user1", bookingInput("pet_rex", "next tuesday", 30))
	require.Error(t, err)
	assert.Equal(t, 400, apierr.StatusOf(err))
	assert.Equal(t, "Invalid datetime format. Use ISO format (e.g., 2024-01-15T14:30:00Z)", err.Error())
}

func TestParseTimeAcceptsDateOnly(t *testing.T) {
	s := newTestStores(t)

	appointment, err := Book(s, "user1", bookingInput("pet_rex", "2026-09-10", 30))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), appointment.AppointmentDateTime)
}
