package collections

import "github.com/ensigotrace/ensigotrace-backend/pkg/enums"

// CreateCollectionInput is the collector form payload. The id is assigned
// by the repository.
type CreateCollectionInput struct {
	MotherTree     string         `json:"motherTree"`
	Unit           enums.SeedUnit `json:"unit"`
	Quantity       float64        `json:"quantity"`
	Species        string         `json:"species,omitempty"`
	AdditionalInfo string         `json:"additionalInfo,omitempty"`
	Latitude       *float64       `json:"latitude,omitempty"`
	Longitude      *float64       `json:"longitude,omitempty"`
	Photos         []string       `json:"photos,omitempty"`
}

// UpdateCollectionInput is a partial update. Nil fields are left unchanged;
// there is no way to clear a field back to empty through this path.
type UpdateCollectionInput struct {
	MotherTree     *string         `json:"motherTree,omitempty"`
	Unit           *enums.SeedUnit `json:"unit,omitempty"`
	Quantity       *float64        `json:"quantity,omitempty"`
	Species        *string         `json:"species,omitempty"`
	AdditionalInfo *string         `json:"additionalInfo,omitempty"`
	Latitude       *float64        `json:"latitude,omitempty"`
	Longitude      *float64        `json:"longitude,omitempty"`
	Photos         []string        `json:"photos,omitempty"`
}
