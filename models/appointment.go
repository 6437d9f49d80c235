package models

import "time"

type AppointmentStatus string

const (
	AppointmentStatusScheduled  AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed  AppointmentStatus = "confirmed"
	AppointmentStatusInProgress AppointmentStatus = "in-progress"
	AppointmentStatusCompleted  AppointmentStatus = "completed"
	AppointmentStatusCancelled  AppointmentStatus = "cancelled"
	AppointmentStatusNoShow     AppointmentStatus = "no-show"
)

type AppointmentType string

const (
	AppointmentTypeCheckup     AppointmentType = "checkup"
	AppointmentTypeVaccination AppointmentType = "vaccination"
	AppointmentTypeSurgery     AppointmentType = "surgery"
	AppointmentTypeEmergency   AppointmentType = "emergency"
	AppointmentTypeGrooming    AppointmentType = "grooming"
	AppointmentTypeOther       AppointmentType = "other"
)

// Active reports whether the appointment still occupies its time slot.
// Cancelled and no-show bookings free the slot for others.
func (s AppointmentStatus) Active() bool {
	return s != AppointmentStatusCancelled && s != AppointmentStatusNoShow
}

type Appointment struct {
	ID                  string            `json:"id"`
	PetID               string            `json:"petId"`
	Pet                 Pet               `json:"pet"`
	OwnerID             string            `json:"ownerId"`
	OwnerName           string            `json:"ownerName"`
	AppointmentDateTime time.Time         `json:"appointmentDateTime"`
	Duration            int               `json:"duration"` // minutes, 15-480
	Status              AppointmentStatus `json:"status"`
	AppointmentType     AppointmentType   `json:"appointmentType"`
	Reason              string            `json:"reason"`
	Notes               string            `json:"notes,omitempty"`
	Diagnosis           string            `json:"diagnosis,omitempty"`
	Treatment           string            `json:"treatment,omitempty"`
	CreatedAt           time.Time         `json:"createdAt"`
	UpdatedAt           time.Time         `json:"updatedAt"`
}

// End is the exclusive end of the appointment's [start, end) window.
func (a Appointment) End() time.Time {
	return a.AppointmentDateTime.Add(time.Duration(a.Duration) * time.Minute)
}
