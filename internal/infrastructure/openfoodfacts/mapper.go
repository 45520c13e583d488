package openfoodfacts

import (
	"math"
	"strconv"
	"strings"

	"github.com/productlens/backend/internal/domain"
)

// SourceName identifies Open Food Facts as the data source in responses
const SourceName = "OpenFoodFacts"

// MapToProduct converts a raw Open Food Facts record to our domain Product
// model. It is a pure function: field-level anomalies (missing names,
// non-numeric nutriments, unrecognized grades) are absorbed into explicit
// "unknown" defaults and never cause an error.
func MapToProduct(barcode string, raw *domain.RawProductRecord) *domain.Product {
	var imageURL *string
	if raw.ImageURL != "" {
		u := raw.ImageURL
		imageURL = &u
	}

	return &domain.Product{
		Barcode:     barcode,
		Name:        strings.TrimSpace(raw.ProductName),
		Brand:       strings.TrimSpace(raw.Brands),
		Ingredients: splitList(raw.IngredientsText),
		Labels:      splitList(raw.Labels),
		Allergens:   splitList(raw.Allergens),
		Nutriments:  extractNutriments(raw.Nutriments),
		NutriScore:  domain.ParseGrade(raw.NutriscoreGrade),
		EcoScore:    domain.ParseGrade(raw.EcoscoreGrade),
		ImageURL:    imageURL,
		Source:      SourceName,
	}
}

// extractNutriments coerces the loosely-typed upstream nutriment values
// into nullable per-100g amounts.
func extractNutriments(raw domain.RawNutriments) domain.Nutriments {
	return domain.Nutriments{
		EnergyKcal:    coerceAmount(raw.EnergyKcal100g),
		Fat:           coerceAmount(raw.Fat100g),
		Carbohydrates: coerceAmount(raw.Carbohydrates100g),
		Proteins:      coerceAmount(raw.Proteins100g),
		Salt:          coerceAmount(raw.Salt100g),
		Fiber:         coerceAmount(raw.Fiber100g),
	}
}

// coerceAmount attempts to read an upstream value as a finite number.
// Open Food Facts serves nutriments as JSON numbers for most products
// but as strings for some, so both are accepted; anything else (absent,
// null, non-numeric text) yields nil rather than a silent zero.
func coerceAmount(value interface{}) *float64 {
	var n float64
	switch v := value.(type) {
	case float64:
		n = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil
		}
		n = parsed
	default:
		return nil
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	return &n
}

// splitList turns a comma-separated upstream text field into an ordered
// list. Absent or null fields normalize to an empty, non-nil slice so
// the response schema is always fully shaped.
func splitList(text *string) []string {
	if text == nil || strings.TrimSpace(*text) == "" {
		return []string{}
	}

	parts := strings.Split(*text, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}
