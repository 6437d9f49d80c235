package adoptionControllers

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
	s.Adoption.SavePet(models.AdoptablePet{
		ID: "adopt_max", Name: "Max", Species: "dog", Breed: "Beagle", Age: 3,
		AdoptionStatus: models.AdoptionStatusAvailable, CreatedAt: now, UpdatedAt: now,
	})
	return s
}

func applicationInput() ApplicationInput {
	return ApplicationInput{
		AdopterName:       "Jane Doe",
		AdopterEmail:      "jane@example.com",
		AdopterPhone:      "5551234567",
		AdopterAddress:    "1 Main St, Springfield",
		HomeType:          "house",
		HasYard:           true,
		PetExperience:     "some",
		ReasonForAdoption: "Looking for a family companion",
	}
}

func pendingApplication(t *testing.T, s *store.Stores, userID string) models.AdoptionApplication {
	t.Helper()
	_, err := SubmitApplication(s, userID, "adopt_max", applicationInput())
	require.NoError(t, err)
	for _, app := range s.Adoption.ListApplications() {
		if app.UserID == userID && app.Status == models.ApplicationStatusPending {
			return app
		}
	}
	t.Fatal("application not stored")
	return models.AdoptionApplication{}
}

func TestSubmitApplication(t *testing.T) {
	s := newTestStores(t)

	pet, err := SubmitApplication(s, "user1", "adopt_max", applicationInput())
	require.NoError(t, err)
	assert.Equal(t, models.AdoptionStatusPending, pet.AdoptionStatus)

	apps := s.Adoption.ListApplications()
	require.Len(t, apps, 1)
	assert.Equal(t, models.ApplicationStatusPending, apps[0].Status)
	assert.Equal(t, "Jane Doe", apps[0].AdopterName)
	assert.Equal(t, "adopt_max", apps[0].PetID)
}

func TestSubmitApplicationGuards(t *testing.T) {
	s := newTestStores(t)

	_, err := SubmitApplication(s, "user1", "adopt_missing", applicationInput())
	require.Error(t, err)
	assert.Equal(t, 404, apierr.StatusOf(err))
	assert.Equal(t, "Adoptable pet with id 'adopt_missing' not found", err.Error())

	_, err = SubmitApplication(s, "user1", "adopt_max", applicationInput())
	require.NoError(t, err)

	// the pet left available status, so a second applicant is turned away
	_, err = SubmitApplication(s, "user2", "adopt_max", applicationInput())
	require.Error(t, err)
	assert.Equal(t, "This pet is not available for adoption. Current status: pending", err.Error())
}

func TestDuplicatePendingApplication(t *testing.T) {
	s := newTestStores(t)
	app := pendingApplication(t, s, "user1")

	// reset the pet so only the duplicate check can fire
	pet, ok := s.Adoption.GetPet(app.PetID)
	require.True(t, ok)
	pet.AdoptionStatus = models.AdoptionStatusAvailable
	s.Adoption.SavePet(pet)

	_, err := SubmitApplication(s, "user1", "adopt_max", applicationInput())
	require.Error(t, err)
	assert.Equal(t, "You already have a pending application for this pet", err.Error())
}

func TestApproveApplication(t *testing.T) {
	s := newTestStores(t)
	app := pendingApplication(t, s, "user1")

	reviewed, err := ReviewApplication(s, app.ID, ReviewApplicationInput{
		Status:     models.ApplicationStatusApproved,
		AdminNotes: "Home visit completed",
	})
	require.NoError(t, err)

	assert.Equal(t, models.ApplicationStatusApproved, reviewed.Status)
	assert.Equal(t, "admin", reviewed.ReviewedBy)
	require.NotNil(t, reviewed.ReviewedAt)

	pet, ok := s.Adoption.GetPet("adopt_max")
	require.True(t, ok)
	assert.Equal(t, models.AdoptionStatusAdopted, pet.AdoptionStatus)
}

func TestRejectApplicationReleasesPet(t *testing.T) {
	s := newTestStores(t)
	app := pendingApplication(t, s, "user1")

	reviewed, err := ReviewApplication(s, app.ID, ReviewApplicationInput{
		Status: models.ApplicationStatusRejected,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusRejected, reviewed.Status)

	pet, ok := s.Adoption.GetPet("adopt_max")
	require.True(t, ok)
	assert.Equal(t, models.AdoptionStatusAvailable, pet.AdoptionStatus)
}

func TestRejectKeepsPetPendingWithOtherApplications(t *testing.T) {
	s := newTestStores(t)
	first := pendingApplication(t, s, "user1")

	// second applicant gets in while the pet is briefly available again
	pet, _ := s.Adoption.GetPet("adopt_max")
	pet.AdoptionStatus = models.AdoptionStatusAvailable
	s.Adoption.SavePet(pet)
	pendingApplication(t, s, "user2")

	_, err := ReviewApplication(s, first.ID, ReviewApplicationInput{
		Status: models.ApplicationStatusRejected,
	})
	require.NoError(t, err)

	pet, ok := s.Adoption.GetPet("adopt_max")
	require.True(t, ok)
	assert.Equal(t, models.AdoptionStatusPending, pet.AdoptionStatus)
}

func TestReviewIsFinal(t *testing.T) {
	s := newTestStores(t)
	app := pendingApplication(t, s, "user1")

	_, err := ReviewApplication(s, app.ID, ReviewApplicationInput{Status: models.ApplicationStatusApproved})
	require.NoError(t, err)

	_, err = ReviewApplication(s, app.ID, ReviewApplicationInput{Status: models.ApplicationStatusRejected})
	require.Error(t, err)
	assert.Equal(t, "Application already approved", err.Error())
}

func TestReviewUnknownApplication(t *testing.T) {
	s := newTestStores(t)

	_, err := ReviewApplication(s, "app_missing", ReviewApplicationInput{Status: models.ApplicationStatusApproved})
	require.Error(t, err)
	assert.Equal(t, 404, apierr.StatusOf(err))
}
