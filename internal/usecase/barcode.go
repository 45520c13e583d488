package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/productlens/backend/internal/domain"
)

// BarcodeValidator checks the syntactic validity of barcode input before
// it is used as a lookup key. It performs no I/O.
type BarcodeValidator struct {
	acceptedLengths map[int]struct{}
	lengthsLabel    string
}

// NewBarcodeValidator creates a validator accepting the given digit
// lengths. An empty list falls back to the EAN/UPC family defaults
// (EAN-8, UPC-A, EAN-13, GTIN-14).
func NewBarcodeValidator(acceptedLengths []int) *BarcodeValidator {
	if len(acceptedLengths) == 0 {
		acceptedLengths = []int{8, 12, 13, 14}
	}

	lengths := make(map[int]struct{}, len(acceptedLengths))
	for _, l := range acceptedLengths {
		lengths[l] = struct{}{}
	}

	return &BarcodeValidator{
		acceptedLengths: lengths,
		lengthsLabel:    formatLengths(lengths),
	}
}

// Validate trims the input and returns it as a barcode, or an error
// wrapping domain.ErrInvalidBarcode naming the violated constraint.
func (v *BarcodeValidator) Validate(input string) (string, error) {
	barcode := strings.TrimSpace(input)

	if barcode == "" {
		return "", fmt.Errorf("%w: barcode is empty", domain.ErrInvalidBarcode)
	}

	for _, r := range barcode {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: barcode must contain only digits", domain.ErrInvalidBarcode)
		}
	}

	if _, ok := v.acceptedLengths[len(barcode)]; !ok {
		return "", fmt.Errorf("%w: barcode length %d is not one of %s",
			domain.ErrInvalidBarcode, len(barcode), v.lengthsLabel)
	}

	return barcode, nil
}

// formatLengths renders the accepted length set for error messages.
func formatLengths(lengths map[int]struct{}) string {
	sorted := make([]int, 0, len(lengths))
	for l := range lengths {
		sorted = append(sorted, l)
	}
	sort.Ints(sorted)

	parts := make([]string, len(sorted))
	for i, l := range sorted {
		parts[i] = fmt.Sprintf("%d", l)
	}
	return strings.Join(parts, "/")
}
