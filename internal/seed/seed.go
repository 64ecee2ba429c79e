// Package seed holds the bundled demo data: the product catalog, the
// partner brands, vets, adoption listings and articles the storefront
// ships with. The API client also uses the catalog as its offline
// fallback.
package seed

import (
	"time"

	"petbhai-backend/internal/domain"
)

func Brands() []domain.Brand {
	return []domain.Brand{
		{ID: 1, Name: "Me-O", Logo: "/img/brands/me-o.png"},
		{ID: 2, Name: "Pedigree", Logo: "/img/brands/pedigree.png"},
		{ID: 3, Name: "Whiskas", Logo: "/img/brands/whiskas.png"},
		{ID: 4, Name: "Drools", Logo: "/img/brands/drools.png"},
		{ID: 5, Name: "Kong", Logo: "/img/brands/kong.png"},
	}
}

func Products() []domain.Product {
	return []domain.Product{
		{
			ID: 1, Name: "Me-O Tuna Adult Cat Food", Category: domain.CategoryCatFood,
			BrandID: 1, Price: 1500, Weight: "1.2 kg",
			Image:       "/img/products/meo-tuna.jpg",
			Description: "Complete and balanced tuna-flavoured dry food for adult cats.",
			Tags:        []string{"tuna", "adult", "dry food"},
			Rating:      4.5, Stock: 40, StockStatus: domain.StockInStock,
			Reviews: []domain.Review{},
		},
		{
			ID: 2, Name: "Pedigree Chicken & Vegetables", Category: domain.CategoryDogFood,
			BrandID: 2, Price: 2000, Weight: "3 kg",
			Image:       "/img/products/pedigree-chicken.jpg",
			Description: "Dry food for adult dogs with chicken and vegetables.",
			Tags:        []string{"chicken", "adult", "dry food"},
			Rating:      4.2, Stock: 25, StockStatus: domain.StockInStock,
			Reviews: []domain.Review{},
		},
		{
			ID: 3, Name: "Whiskas Ocean Fish Kitten", Category: domain.CategoryCatFood,
			BrandID: 3, Price: 1200, OriginalPrice: 1400, Discount: 14, Weight: "450 g",
			Image:       "/img/products/whiskas-kitten.jpg",
			Description: "Ocean fish flavour for kittens aged 2 to 12 months.",
			Tags:        []string{"fish", "kitten"},
			Rating:      4.6, Stock: 8, StockStatus: domain.StockLowStock,
			Reviews: []domain.Review{},
		},
		{
			ID: 4, Name: "Drools Absolute Calcium Tablets", Category: domain.CategoryHealth,
			BrandID: 4, Price: 850, Weight: "110 tablets",
			Image:       "/img/products/drools-calcium.jpg",
			Description: "Calcium and mineral supplement for growing dogs.",
			Tags:        []string{"supplement", "bones"},
			Rating:      4.1, Stock: 30, StockStatus: domain.StockInStock,
			Reviews: []domain.Review{},
		},
		{
			ID: 5, Name: "Kong Classic Chew Toy", Category: domain.CategoryToys,
			BrandID: 5, Price: 1100, Weight: "Medium",
			Image:       "/img/products/kong-classic.jpg",
			Description: "Durable natural rubber chew toy, treat-stuffable.",
			Tags:        []string{"chew", "rubber", "fetch"},
			Rating:      4.8, Stock: 15, StockStatus: domain.StockInStock,
			Reviews: []domain.Review{},
		},
		{
			ID: 6, Name: "Reflective Cat Collar", Category: domain.CategoryAccessories,
			BrandID: 3, Price: 350, Weight: "One size",
			Image:       "/img/products/cat-collar.jpg",
			Description: "Adjustable reflective collar with safety buckle and bell.",
			Tags:        []string{"collar", "safety"},
			Rating:      3.9, Stock: 0, StockStatus: domain.StockOutOfStock,
			Reviews: []domain.Review{},
		},
		{
			ID: 7, Name: "Pedigree Puppy Starter", Category: domain.CategoryDogFood,
			BrandID: 2, Price: 1500, Weight: "1.2 kg",
			Image:       "/img/products/pedigree-puppy.jpg",
			Description: "Starter food for puppies from weaning to 3 months.",
			Tags:        []string{"puppy", "starter"},
			Rating:      4.4, Stock: 18, StockStatus: domain.StockInStock,
			Reviews: []domain.Review{},
		},
	}
}

func Vets() []domain.Vet {
	return []domain.Vet{
		{ID: 1, Name: "Dr. Farhana Ahmed", Specialty: "Small animal medicine", Location: "Dhanmondi, Dhaka", Phone: "+880-1711-000001", Fee: 80000},
		{ID: 2, Name: "Dr. Tanvir Hossain", Specialty: "Feline specialist", Location: "Gulshan, Dhaka", Phone: "+880-1711-000002", Fee: 100000},
		{ID: 3, Name: "Dr. Nusrat Jahan", Specialty: "Avian and exotics", Location: "Uttara, Dhaka", Phone: "+880-1711-000003", Fee: 90000},
	}
}

func Animals() []domain.Animal {
	return []domain.Animal{
		{ID: 1, Name: "Mishti", Species: "Cat", Breed: "Domestic shorthair", AgeMonths: 4, Description: "Playful rescue kitten, litter trained."},
		{ID: 2, Name: "Bagha", Species: "Dog", Breed: "Mixed", AgeMonths: 18, Description: "Gentle street rescue, good with kids."},
		{ID: 3, Name: "Tia", Species: "Bird", Breed: "Budgerigar", AgeMonths: 7, Description: "Hand-tamed budgie pair, adopted together.", Adopted: true},
	}
}

func Articles() []domain.Article {
	return []domain.Article{
		{
			ID: 1, Title: "Bringing your first kitten home", Author: "PetBhai Team",
			Summary: "A checklist for the first week with a new kitten.",
			Body:    "Set up a quiet room before arrival. Keep food, water and the litter tray well apart...",
			Posted:  time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
			Tags:    []string{"cats", "beginners"},
		},
		{
			ID: 2, Title: "Monsoon care for dogs", Author: "Dr. Farhana Ahmed",
			Summary: "Keeping paws dry and skin healthy through the wet season.",
			Body:    "Fungal infections spike during monsoon. Towel-dry after every walk and check between the toes...",
			Posted:  time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			Tags:    []string{"dogs", "health"},
		},
		{
			ID: 3, Title: "Reading pet food labels", Author: "PetBhai Team",
			Summary: "What the ingredient list actually tells you.",
			Body:    "Ingredients are listed by weight before cooking, which flatters fresh meat...",
			Posted:  time.Date(2025, 7, 21, 0, 0, 0, 0, time.UTC),
			Tags:    []string{"nutrition"},
		},
	}
}
