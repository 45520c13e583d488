package openfoodfacts

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/productlens/backend/internal/domain"
)

func floatPtr(f float64) *float64 { return &f }

func strPtr(s string) *string { return &s }

func TestMapToProduct(t *testing.T) {
	tests := []struct {
		name    string
		barcode string
		raw     *domain.RawProductRecord
		want    *domain.Product
	}{
		{
			name:    "complete record",
			barcode: "3017620422003",
			raw: &domain.RawProductRecord{
				ProductName:     "Nutella",
				Brands:          "Ferrero",
				ImageURL:        "https://images.example.org/nutella.jpg",
				NutriscoreGrade: "e",
				EcoscoreGrade:   "d",
				IngredientsText: strPtr("Sugar, Palm Oil, Hazelnuts"),
				Labels:          strPtr("Gluten-free, No colorings"),
				Allergens:       strPtr("en:milk, en:nuts"),
				Nutriments: domain.RawNutriments{
					EnergyKcal100g:    float64(539),
					Fat100g:           float64(30.9),
					Carbohydrates100g: float64(57.5),
					Proteins100g:      float64(6.3),
					Salt100g:          float64(0.107),
					Fiber100g:         float64(0),
				},
			},
			want: &domain.Product{
				Barcode:     "3017620422003",
				Name:        "Nutella",
				Brand:       "Ferrero",
				Ingredients: []string{"Sugar", "Palm Oil", "Hazelnuts"},
				Labels:      []string{"Gluten-free", "No colorings"},
				Allergens:   []string{"en:milk", "en:nuts"},
				Nutriments: domain.Nutriments{
					EnergyKcal:    floatPtr(539),
					Fat:           floatPtr(30.9),
					Carbohydrates: floatPtr(57.5),
					Proteins:      floatPtr(6.3),
					Salt:          floatPtr(0.107),
					Fiber:         floatPtr(0),
				},
				NutriScore: domain.GradeE,
				EcoScore:   domain.GradeD,
				ImageURL:   strPtr("https://images.example.org/nutella.jpg"),
				Source:     "OpenFoodFacts",
			},
		},
		{
			name:    "empty record normalizes to fully shaped output",
			barcode: "12345678",
			raw:     &domain.RawProductRecord{},
			want: &domain.Product{
				Barcode:     "12345678",
				Name:        "",
				Brand:       "",
				Ingredients: []string{},
				Labels:      []string{},
				Allergens:   []string{},
				Nutriments:  domain.Nutriments{},
				NutriScore:  domain.GradeUnknown,
				EcoScore:    domain.GradeUnknown,
				ImageURL:    nil,
				Source:      "OpenFoodFacts",
			},
		},
		{
			name:    "textual nutriment values are coerced",
			barcode: "12345678",
			raw: &domain.RawProductRecord{
				ProductName: "Mystery Snack",
				Nutriments: domain.RawNutriments{
					EnergyKcal100g: "539",
					Fat100g:        " 30.9 ",
					Proteins100g:   "not a number",
					Salt100g:       true,
				},
			},
			want: &domain.Product{
				Barcode:     "12345678",
				Name:        "Mystery Snack",
				Ingredients: []string{},
				Labels:      []string{},
				Allergens:   []string{},
				Nutriments: domain.Nutriments{
					EnergyKcal: floatPtr(539),
					Fat:        floatPtr(30.9),
				},
				NutriScore: domain.GradeUnknown,
				EcoScore:   domain.GradeUnknown,
				Source:     "OpenFoodFacts",
			},
		},
		{
			name:    "null list fields become empty lists",
			barcode: "12345678",
			raw: &domain.RawProductRecord{
				ProductName:     "Plain Water",
				IngredientsText: nil,
				Labels:          strPtr(""),
				Allergens:       strPtr(" ,, "),
			},
			want: &domain.Product{
				Barcode:     "12345678",
				Name:        "Plain Water",
				Ingredients: []string{},
				Labels:      []string{},
				Allergens:   []string{},
				NutriScore:  domain.GradeUnknown,
				EcoScore:    domain.GradeUnknown,
				Source:      "OpenFoodFacts",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapToProduct(tt.barcode, tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MapToProduct() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMapToProduct_Deterministic(t *testing.T) {
	raw := &domain.RawProductRecord{
		ProductName:     "Nutella",
		NutriscoreGrade: "a",
		IngredientsText: strPtr("Sugar, Palm Oil"),
		Nutriments:      domain.RawNutriments{EnergyKcal100g: "539"},
	}

	first, err := json.Marshal(MapToProduct("3017620422003", raw))
	if err != nil {
		t.Fatalf("marshal first result: %v", err)
	}
	second, err := json.Marshal(MapToProduct("3017620422003", raw))
	if err != nil {
		t.Fatalf("marshal second result: %v", err)
	}

	if string(first) != string(second) {
		t.Errorf("normalization is not deterministic:\n%s\n%s", first, second)
	}
}

func TestCoerceAmount(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  *float64
	}{
		{"json number", float64(42.5), floatPtr(42.5)},
		{"zero is a real value", float64(0), floatPtr(0)},
		{"numeric string", "539", floatPtr(539)},
		{"decimal string", "30.9", floatPtr(30.9)},
		{"padded string", " 12.5 ", floatPtr(12.5)},
		{"non-numeric string", "N/A", nil},
		{"empty string", "", nil},
		{"nil value", nil, nil},
		{"bool value", true, nil},
		{"infinity string", "+Inf", nil},
		{"nan string", "NaN", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := coerceAmount(tt.value)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("coerceAmount(%v) = %v, want %v", tt.value, got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("coerceAmount(%v) = %v, want %v", tt.value, *got, *tt.want)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		text *string
		want []string
	}{
		{"nil", nil, []string{}},
		{"empty", strPtr(""), []string{}},
		{"whitespace only", strPtr("   "), []string{}},
		{"single item", strPtr("Sugar"), []string{"Sugar"}},
		{"preserves order", strPtr("c, a, b"), []string{"c", "a", "b"}},
		{"trims and drops empties", strPtr(" Sugar ,, Palm Oil , "), []string{"Sugar", "Palm Oil"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitList(tt.text)
			if got == nil {
				t.Fatal("splitList() returned nil, want non-nil slice")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitList() = %v, want %v", got, tt.want)
			}
		})
	}
}
