package memstore

import (
	"time"

	"github.com/LeeCheeHoong/PetCare-Portal/models"
	"github.com/LeeCheeHoong/PetCare-Portal/store"
)

// Seed loads the demo catalog, pets, and adoptable animals. Called once at
// startup so the API is usable without any persistence layer.
func Seed(s *store.Stores) {
	now := time.Now().UTC()

	categories := []models.Category{
		{ID: "cat_food", Name: "Food & Treats"},
		{ID: "cat_toys", Name: "Toys"},
		{ID: "cat_beds", Name: "Beds & Furniture"},
		{ID: "cat_grooming", Name: "Grooming"},
		{ID: "cat_health", Name: "Health & Wellness"},
		{ID: "cat_leashes", Name: "Leashes & Collars"},
		{ID: "cat_aquatic", Name: "Aquatic Supplies"},
		{ID: "cat_travel", Name: "Travel & Carriers"},
	}
	for _, c := range categories {
		s.Categories.Save(c)
	}

	products := []models.Product{
		{
			ID: "prod_1", Name: "Premium Dry Dog Food 12kg",
			Description:         "Grain-free chicken and sweet potato formula for adult dogs.",
			DetailedDescription: "High-protein recipe with added glucosamine for joint support. Suitable for all breeds over 12 months.",
			Price:               54.99, OriginalPrice: 64.99, Discount: 15,
			Images:   []string{"/images/products/dog-food-premium.jpg"},
			Category: categories[0], InStock: true, StockCount: 42,
		},
		{
			ID: "prod_2", Name: "Salmon Cat Treats",
			Description: "Freeze-dried wild salmon bites, 85g pouch.",
			Price:       8.49,
			Images:      []string{"/images/products/cat-treats-salmon.jpg"},
			Category:    categories[0], InStock: true, StockCount: 120,
		},
		{
			ID: "prod_3", Name: "Rope Tug Toy",
			Description: "Durable cotton rope toy for medium and large dogs.",
			Price:       12.99,
			Images:      []string{"/images/products/rope-tug.jpg"},
			Category:    categories[1], InStock: true, StockCount: 3,
		},
		{
			ID: "prod_4", Name: "Feather Wand Teaser",
			Description: "Interactive feather wand with replaceable attachments.",
			Price:       9.99,
			Images:      []string{"/images/products/feather-wand.jpg"},
			Category:    categories[1], InStock: false, StockCount: 0,
		},
		{
			ID: "prod_5", Name: "Orthopedic Dog Bed Large",
			Description:         "Memory foam bed with washable cover, 100x70cm.",
			DetailedDescription: "Three-layer memory foam relieves pressure on hips and joints. Cover is machine washable at 40C.",
			Price:               89.99, OriginalPrice: 109.99, Discount: 18,
			Images:   []string{"/images/products/ortho-bed.jpg"},
			Category: categories[2], InStock: true, StockCount: 11,
		},
		{
			ID: "prod_6", Name: "Cat Tree Tower 140cm",
			Description: "Multi-level scratching tower with two hideouts.",
			Price:       74.50,
			Images:      []string{"/images/products/cat-tree.jpg"},
			Category:    categories[2], InStock: true, StockCount: 6,
		},
		{
			ID: "prod_7", Name: "Deshedding Brush",
			Description: "Stainless steel deshedding tool for long-haired breeds.",
			Price:       18.95,
			Images:      []string{"/images/products/deshedding-brush.jpg"},
			Category:    categories[3], InStock: true, StockCount: 58,
		},
		{
			ID: "prod_8", Name: "Oatmeal Dog Shampoo 500ml",
			Description: "Soothing oatmeal and aloe shampoo for sensitive skin.",
			Price:       11.25,
			Images:      []string{"/images/products/oatmeal-shampoo.jpg"},
			Category:    categories[3], InStock: true, StockCount: 34,
		},
		{
			ID: "prod_9", Name: "Joint Support Chews",
			Description: "Glucosamine and chondroitin soft chews, 60 count.",
			Price:       24.99,
			Images:      []string{"/images/products/joint-chews.jpg"},
			Category:    categories[4], InStock: true, StockCount: 27,
		},
		{
			ID: "prod_10", Name: "Reflective Dog Leash 1.8m",
			Description: "Padded handle leash with reflective stitching.",
			Price:       16.75,
			Images:      []string{"/images/products/reflective-leash.jpg"},
			Category:    categories[5], InStock: true, StockCount: 49,
		},
		{
			ID: "prod_11", Name: "Aquarium Starter Kit 60L",
			Description: "Glass tank with LED lighting, filter, and heater.",
			Price:       129.00,
			Images:      []string{"/images/products/aquarium-kit.jpg"},
			Category:    categories[6], InStock: false, StockCount: 0,
		},
		{
			ID: "prod_12", Name: "Airline Approved Pet Carrier",
			Description: "Soft-sided carrier for cats and small dogs up to 8kg.",
			Price:       39.99,
			Images:      []string{"/images/products/pet-carrier.jpg"},
			Category:    categories[7], InStock: true, StockCount: 15,
		},
	}
	for i, p := range products {
		p.CreatedAt = now.Add(-time.Duration(len(products)-i) * 24 * time.Hour)
		p.UpdatedAt = p.CreatedAt
		s.Products.Save(p)
	}

	pets := []models.Pet{
		{ID: "pet_1", Name: "Buddy", Species: "dog", Breed: "Golden Retriever", Age: 4, Weight: 29.5, Color: "Golden", Status: models.PetStatusHealthy, OwnerID: "default"},
		{ID: "pet_2", Name: "Whiskers", Species: "cat", Breed: "Maine Coon", Age: 6, Weight: 7.2, Color: "Brown Tabby", Status: models.PetStatusHealthy, OwnerID: "default"},
		{ID: "pet_3", Name: "Rex", Species: "dog", Breed: "German Shepherd", Age: 2, Weight: 32.0, Color: "Black and Tan", MedicalNotes: "Mild hip dysplasia, on joint supplements.", Status: models.PetStatusInTreatment, OwnerID: "default"},
		{ID: "pet_4", Name: "Luna", Species: "cat", Breed: "Siamese", Age: 3, Weight: 4.1, Color: "Seal Point", Status: models.PetStatusRecovering, OwnerID: "default"},
		{ID: "pet_5", Name: "Coco", Species: "bird", Breed: "Cockatiel", Age: 1, Weight: 0.1, Color: "Grey", Status: models.PetStatusHealthy, OwnerID: "default"},
	}
	for i, p := range pets {
		p.CreatedAt = now.Add(-time.Duration(len(pets)-i) * 48 * time.Hour)
		p.UpdatedAt = p.CreatedAt
		s.Pets.Save(p)
	}

	adoptable := []models.AdoptablePet{
		{
			ID: "adopt_1", Name: "Max", Species: "dog", Breed: "Labrador Mix", Age: 2,
			Weight: 24.0, Color: "Black",
			Description: "Energetic and friendly, great with kids and other dogs.",
			AdoptionFee: 150, AdoptionStatus: models.AdoptionStatusAvailable,
		},
		{
			ID: "adopt_2", Name: "Mittens", Species: "cat", Breed: "Domestic Shorthair", Age: 5,
			Weight: 4.8, Color: "Tuxedo",
			Description: "Calm lap cat looking for a quiet home.",
			AdoptionFee: 90, AdoptionStatus: models.AdoptionStatusAvailable,
		},
	}
	for _, p := range adoptable {
		p.CreatedAt = now
		p.UpdatedAt = now
		s.Adoption.SavePet(p)
	}
}
