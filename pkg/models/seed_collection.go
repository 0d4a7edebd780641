package models

import "github.com/ensigotrace/ensigotrace-backend/pkg/enums"

// SeedCollection is a collector's record of seed gathered from a mother tree.
// There is deliberately no collector id on the record; the original data
// model never tracked ownership and that gap is preserved.
type SeedCollection struct {
	ID             string         `json:"id"`
	MotherTree     string         `json:"motherTree"`
	Unit           enums.SeedUnit `json:"unit"`
	Quantity       float64        `json:"quantity"`
	Species        string         `json:"species,omitempty"`
	AdditionalInfo string         `json:"additionalInfo,omitempty"`
	Latitude       *float64       `json:"latitude,omitempty"`
	Longitude      *float64       `json:"longitude,omitempty"`
	Photos         []string       `json:"photos,omitempty"`
}
