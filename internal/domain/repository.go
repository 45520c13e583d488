package domain

import "context"

// ProductFetcher defines the interface for looking up one raw product
// record by barcode in the external product database.
type ProductFetcher interface {
	FetchProduct(ctx context.Context, barcode string) (*RawProductRecord, error)
}
