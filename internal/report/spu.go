package report

import "strings"

// DeriveSellerSPU derives the seller-level grouping key from a seller SKU by
// stripping the variant suffix after the last '-'. A SKU without a delimiter
// is its own SPU; an empty SKU yields "".
func DeriveSellerSPU(sku string) string {
	if sku == "" {
		return ""
	}
	if idx := strings.LastIndex(sku, "-"); idx >= 0 {
		return sku[:idx]
	}
	return sku
}
