package collections

import (
	"github.com/ensigotrace/ensigotrace-backend/pkg/enums"
	"github.com/ensigotrace/ensigotrace-backend/pkg/models"
)

func ptr(v float64) *float64 { return &v }

// DefaultCollections seeds the store on first read so the dashboard has
// data before any collector submits the form.
func DefaultCollections() []models.SeedCollection {
	return []models.SeedCollection{
		{
			ID:             "SC-001",
			MotherTree:     "MT-001",
			Unit:           enums.SeedUnitKg,
			Quantity:       25,
			Species:        "Albizia coriaria",
			AdditionalInfo: "Collected after the first dry-season pod drop",
			Latitude:       ptr(3.0324),
			Longitude:      ptr(30.9108),
		},
		{
			ID:         "SC-002",
			MotherTree: "MT-002",
			Unit:       enums.SeedUnitCount,
			Quantity:   5000,
			Species:    "Markhamia lutea",
			Latitude:   ptr(3.0456),
			Longitude:  ptr(30.9234),
		},
		{
			ID:         "SC-003",
			MotherTree: "MT-003",
			Unit:       enums.SeedUnitKg,
			Quantity:   15,
			Species:    "Khaya anthotheca",
		},
	}
}
