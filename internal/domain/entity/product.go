package entity

import "time"

// Product is a catalog entry. CatalogID is the public sequential identifier.
type Product struct {
	CatalogID int
	Name      string
	Image     string
	Category  string
	NewPrice  float64
	OldPrice  float64
	Available bool
	CreatedAt time.Time
}

// NextCatalogID returns the identifier for a product appended to the catalog.
// found reports whether the catalog had any product at all.
func NextCatalogID(existingMax int, found bool) int {
	if !found {
		return 1
	}

	return existingMax + 1
}
