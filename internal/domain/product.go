package domain

import "time"

// Product categories are a fixed set; the shop filter treats anything
// else as "All".
const (
	CategoryCatFood     = "Cat Food"
	CategoryDogFood     = "Dog Food"
	CategoryToys        = "Toys"
	CategoryAccessories = "Accessories"
	CategoryHealth      = "Health"
)

var Categories = []string{
	CategoryCatFood,
	CategoryDogFood,
	CategoryToys,
	CategoryAccessories,
	CategoryHealth,
}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

type StockStatus string

const (
	StockInStock    StockStatus = "in-stock"
	StockLowStock   StockStatus = "low-stock"
	StockOutOfStock StockStatus = "out-of-stock"
)

type Review struct {
	ID        int       `bson:"id" json:"id"`
	Author    string    `bson:"author" json:"author"`
	Rating    float64   `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment" json:"comment"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Product prices are integers in minor currency units, so cart totals
// sum exactly with no rounding.
type Product struct {
	ID            int         `bson:"id" json:"id"`
	Name          string      `bson:"name" json:"name"`
	Category      string      `bson:"category" json:"category"`
	BrandID       int         `bson:"brandId" json:"brandId"`
	Price         int         `bson:"price" json:"price"`
	OriginalPrice int         `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	Discount      int         `bson:"discount,omitempty" json:"discount,omitempty"`
	Weight        string      `bson:"weight" json:"weight"`
	Image         string      `bson:"image" json:"image"`
	Description   string      `bson:"description" json:"description"`
	Tags          []string    `bson:"tags,omitempty" json:"tags,omitempty"`
	Rating        float64     `bson:"rating" json:"rating"`
	Reviews       []Review    `bson:"reviews" json:"reviews"`
	Stock         int         `bson:"stock" json:"stock"`
	StockStatus   StockStatus `bson:"stockStatus,omitempty" json:"stockStatus,omitempty"`
}

type Brand struct {
	ID   int    `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
	Logo string `bson:"logo" json:"logo"`
}

type Vet struct {
	ID        int    `bson:"id" json:"id"`
	Name      string `bson:"name" json:"name"`
	Specialty string `bson:"specialty" json:"specialty"`
	Location  string `bson:"location" json:"location"`
	Phone     string `bson:"phone" json:"phone"`
	Fee       int    `bson:"fee" json:"fee"`
}

// Animal is an adoption listing, not a product.
type Animal struct {
	ID          int    `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Species     string `bson:"species" json:"species"`
	Breed       string `bson:"breed" json:"breed"`
	AgeMonths   int    `bson:"ageMonths" json:"ageMonths"`
	Description string `bson:"description" json:"description"`
	Adopted     bool   `bson:"adopted" json:"adopted"`
}

type Article struct {
	ID      int       `bson:"id" json:"id"`
	Title   string    `bson:"title" json:"title"`
	Author  string    `bson:"author" json:"author"`
	Body    string    `bson:"body" json:"body"`
	Posted  time.Time `bson:"posted" json:"posted"`
	Tags    []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	Summary string    `bson:"summary" json:"summary"`
}
