package models

import "time"

type AdoptionStatus string

const (
	AdoptionStatusAvailable AdoptionStatus = "available"
	AdoptionStatusPending   AdoptionStatus = "pending"
	AdoptionStatusAdopted   AdoptionStatus = "adopted"
)

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

type AdoptablePet struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Species        string         `json:"species"`
	Breed          string         `json:"breed"`
	Age            int            `json:"age"`
	ImageURL       string         `json:"imageUrl,omitempty"`
	Weight         float64        `json:"weight,omitempty"`
	Color          string         `json:"color,omitempty"`
	Description    string         `json:"description,omitempty"`
	AdoptionFee    float64        `json:"adoptionFee,omitempty"`
	AdoptionStatus AdoptionStatus `json:"adoptionStatus"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

type AdoptionApplication struct {
	ID                string            `json:"id"`
	PetID             string            `json:"petId"`
	Pet               AdoptablePet      `json:"pet"`
	UserID            string            `json:"userId"`
	AdopterName       string            `json:"adopterName"`
	AdopterEmail      string            `json:"adopterEmail"`
	AdopterPhone      string            `json:"adopterPhone"`
	AdopterAddress    string            `json:"adopterAddress"`
	HomeType          string            `json:"homeType"` // house, apartment, condo, other
	HasYard           bool              `json:"hasYard"`
	HasOtherPets      bool              `json:"hasOtherPets"`
	OtherPetsDetails  string            `json:"otherPetsDetails,omitempty"`
	PetExperience     string            `json:"petExperience"` // none, some, extensive
	ReasonForAdoption string            `json:"reasonForAdoption"`
	Notes             string            `json:"notes,omitempty"`
	Status            ApplicationStatus `json:"status"`
	AdminNotes        string            `json:"adminNotes,omitempty"`
	ReviewedBy        string            `json:"reviewedBy,omitempty"`
	ReviewedAt        *time.Time        `json:"reviewedAt,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}
