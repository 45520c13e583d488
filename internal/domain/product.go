package domain

// Product is the normalized, display-ready view of one scanned product.
// It is constructed fresh for every lookup and never retained afterwards.
type Product struct {
	Barcode     string     `json:"barcode"`
	Name        string     `json:"name"`
	Brand       string     `json:"brand"`
	Ingredients []string   `json:"ingredients"`
	Labels      []string   `json:"labels"`
	Allergens   []string   `json:"allergens"`
	Nutriments  Nutriments `json:"nutriments"`
	NutriScore  Grade      `json:"nutriscore"`
	EcoScore    Grade      `json:"ecoscore"`
	ImageURL    *string    `json:"imageUrl"`
	Source      string     `json:"source"` // always "OpenFoodFacts"
}

// Nutriments holds per-100g nutrition values. A nil field means the
// upstream record did not carry a usable value ("unknown"), which is
// distinct from a true zero.
type Nutriments struct {
	EnergyKcal    *float64 `json:"energyKcal"`
	Fat           *float64 `json:"fat"`
	Carbohydrates *float64 `json:"carbohydrates"`
	Proteins      *float64 `json:"proteins"`
	Salt          *float64 `json:"salt"`
	Fiber         *float64 `json:"fiber"`
}

// ScanRequest represents an inbound barcode lookup request.
type ScanRequest struct {
	Barcode string `json:"barcode" binding:"required"`
}

// RawProductRecord is the loosely-typed product object from the
// Open Food Facts API. No field is guaranteed to be present, and
// nutriment values arrive as numbers or strings depending on the
// product, so they are decoded as interface{} and coerced later.
type RawProductRecord struct {
	ProductName     string        `json:"product_name"`
	Brands          string        `json:"brands"`
	ImageURL        string        `json:"image_url"`
	NutriscoreGrade string        `json:"nutriscore_grade"`
	EcoscoreGrade   string        `json:"ecoscore_grade"`
	IngredientsText *string       `json:"ingredients_text"`
	Labels          *string       `json:"labels"`
	Allergens       *string       `json:"allergens"`
	Nutriments      RawNutriments `json:"nutriments"`
}

// RawNutriments mirrors the upstream "nutriments" object for the
// per-100g fields this service exposes.
type RawNutriments struct {
	EnergyKcal100g    interface{} `json:"energy-kcal_100g"`
	Fat100g           interface{} `json:"fat_100g"`
	Carbohydrates100g interface{} `json:"carbohydrates_100g"`
	Proteins100g      interface{} `json:"proteins_100g"`
	Salt100g          interface{} `json:"salt_100g"`
	Fiber100g         interface{} `json:"fiber_100g"`
}
