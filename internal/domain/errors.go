package domain

import "errors"

var (
	// ErrInvalidBarcode is returned when the barcode fails syntactic validation
	ErrInvalidBarcode = errors.New("invalid barcode")

	// ErrProductNotFound is returned when Open Food Facts has no record for the barcode
	ErrProductNotFound = errors.New("product not found in Open Food Facts database")

	// ErrUpstreamUnavailable is returned when the Open Food Facts request fails
	ErrUpstreamUnavailable = errors.New("Open Food Facts API unavailable")

	// ErrMalformedUpstream is returned when a successful response body cannot be parsed
	ErrMalformedUpstream = errors.New("malformed Open Food Facts response")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")
)
