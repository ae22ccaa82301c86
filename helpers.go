package atoship

import "fmt"

// PackageDimensions are default parcel dimensions in inches.
type PackageDimensions struct {
	Length float64
	Width  float64
	Height float64
}

// CalculatePackageWeight sums the weight of all order items in pounds,
// converting from each item's declared unit.
func CalculatePackageWeight(items []OrderItem) float64 {
	total := 0.0
	for _, item := range items {
		weight := item.Weight * float64(item.Quantity)
		switch item.WeightUnit {
		case WeightUnitKG:
			weight *= 2.20462
		case WeightUnitOZ:
			weight /= 16
		case WeightUnitG:
			weight /= 453.592
		}
		total += weight
	}
	return total
}

// DefaultPackageDimensions returns default parcel dimensions for a package
// weight in pounds.
func DefaultPackageDimensions(weight float64) PackageDimensions {
	switch {
	case weight <= 1:
		return PackageDimensions{Length: 6, Width: 4, Height: 2}
	case weight <= 5:
		return PackageDimensions{Length: 12, Width: 8, Height: 4}
	case weight <= 10:
		return PackageDimensions{Length: 16, Width: 12, Height: 6}
	case weight <= 20:
		return PackageDimensions{Length: 20, Width: 16, Height: 8}
	default:
		return PackageDimensions{Length: 24, Width: 18, Height: 12}
	}
}

// FormatCurrency renders an amount with its currency symbol, falling back
// to "amount CODE" for unrecognized currencies.
func FormatCurrency(amount float64, currency string) string {
	switch currency {
	case "", "USD":
		return fmt.Sprintf("$%.2f", amount)
	case "EUR":
		return fmt.Sprintf("€%.2f", amount)
	case "GBP":
		return fmt.Sprintf("£%.2f", amount)
	default:
		return fmt.Sprintf("%.2f %s", amount, currency)
	}
}
