package models

import "time"

type PetStatus string

const (
	PetStatusHealthy     PetStatus = "healthy"
	PetStatusSick        PetStatus = "sick"
	PetStatusInTreatment PetStatus = "in-treatment"
	PetStatusRecovering  PetStatus = "recovering"
)

type Pet struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Species      string    `json:"species"`
	Breed        string    `json:"breed"`
	Age          int       `json:"age"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	Weight       float64   `json:"weight,omitempty"`
	Color        string    `json:"color,omitempty"`
	MedicalNotes string    `json:"medicalNotes,omitempty"`
	Status       PetStatus `json:"status"`
	OwnerID      string    `json:"ownerId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
