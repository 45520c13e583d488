package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/productlens/backend/internal/domain"
	"github.com/productlens/backend/internal/infrastructure/openfoodfacts"
)

// LookupService orchestrates a barcode lookup:
// validate -> fetch -> normalize. It holds no state across calls; every
// lookup is independent and idempotent with respect to the upstream
// database's current content.
type LookupService struct {
	validator *BarcodeValidator
	fetcher   domain.ProductFetcher
}

// NewLookupService creates a new lookup service with dependencies
func NewLookupService(validator *BarcodeValidator, fetcher domain.ProductFetcher) *LookupService {
	return &LookupService{
		validator: validator,
		fetcher:   fetcher,
	}
}

// Lookup resolves raw barcode input to a normalized product. Failures
// are reported as exactly one of the domain error categories:
//
//   - domain.ErrInvalidBarcode     - syntactic validation failed; the
//     network is never touched
//   - domain.ErrProductNotFound    - upstream explicitly has no record
//   - domain.ErrUpstreamUnavailable - transport failure, timeout, bad
//     status, or an unparsable upstream body (a partially-parsed
//     envelope is never served)
//
// Field-level anomalies inside a successfully fetched record are not
// errors: normalization absorbs them into "unknown" defaults, so a
// partially-complete record always yields a usable product.
func (s *LookupService) Lookup(ctx context.Context, input string) (*domain.Product, error) {
	barcode, err := s.validator.Validate(input)
	if err != nil {
		return nil, err
	}

	raw, err := s.fetcher.FetchProduct(ctx, barcode)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedUpstream) {
			return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
		}
		return nil, err
	}

	return openfoodfacts.MapToProduct(barcode, raw), nil
}
