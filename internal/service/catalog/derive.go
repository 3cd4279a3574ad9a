package catalog

// DiscountAmount returns how much a package saves over buying its
// services individually, in KES cents. Never negative.
func DiscountAmount(originalPrice, packagePrice int64) int64 {
	if packagePrice >= originalPrice {
		return 0
	}
	return originalPrice - packagePrice
}

// DiscountPercent returns the package discount as a whole percentage,
// rounded down. Zero when the package is not cheaper.
func DiscountPercent(originalPrice, packagePrice int64) int {
	if originalPrice <= 0 {
		return 0
	}
	return int(DiscountAmount(originalPrice, packagePrice) * 100 / originalPrice)
}
