package collections

import (
	"context"

	"github.com/ensigotrace/ensigotrace-backend/pkg/errors"
	"github.com/ensigotrace/ensigotrace-backend/pkg/models"
	"github.com/ensigotrace/ensigotrace-backend/pkg/store"
	"github.com/google/uuid"
)

const collectionsKey = "seed_collections"

// Repository is the CRUD surface over the persisted collection list.
// Delete is unused by any page flow but stays correct per contract.
type Repository interface {
	GetAll(ctx context.Context) ([]models.SeedCollection, error)
	Create(ctx context.Context, input CreateCollectionInput) (models.SeedCollection, error)
	Update(ctx context.Context, id string, updates UpdateCollectionInput) (*models.SeedCollection, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type repository struct {
	collections *store.Collection[models.SeedCollection]
}

// NewRepository binds the repository to the storage backend, seeding the
// given list on first read. A nil seed falls back to the demo defaults.
func NewRepository(kv store.KV, seed []models.SeedCollection, onCorrupt store.CorruptHook) Repository {
	if seed == nil {
		seed = DefaultCollections()
	}
	return &repository{
		collections: store.NewCollection(kv, collectionsKey, seed, onCorrupt),
	}
}

func (r *repository) GetAll(ctx context.Context) ([]models.SeedCollection, error) {
	items, err := r.collections.All(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "loading collections")
	}
	return items, nil
}

// Create assigns a fresh uuid and appends; all supplied fields are stored
// unchanged.
func (r *repository) Create(ctx context.Context, input CreateCollectionInput) (models.SeedCollection, error) {
	record := models.SeedCollection{
		ID:             uuid.NewString(),
		MotherTree:     input.MotherTree,
		Unit:           input.Unit,
		Quantity:       input.Quantity,
		Species:        input.Species,
		AdditionalInfo: input.AdditionalInfo,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		Photos:         input.Photos,
	}
	err := r.collections.Mutate(ctx, func(items []models.SeedCollection) ([]models.SeedCollection, error) {
		return append(items, record), nil
	})
	if err != nil {
		return models.SeedCollection{}, errors.Wrap(errors.CodeDependency, err, "creating collection")
	}
	return record, nil
}

// Update merges the supplied fields into the stored record. A nil result
// with a nil error means the id was absent.
func (r *repository) Update(ctx context.Context, id string, updates UpdateCollectionInput) (*models.SeedCollection, error) {
	var updated *models.SeedCollection
	err := r.collections.Mutate(ctx, func(items []models.SeedCollection) ([]models.SeedCollection, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			applyUpdates(&items[i], updates)
			found := items[i]
			updated = &found
			return items, nil
		}
		return items, nil
	})
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "updating collection")
	}
	return updated, nil
}

// Delete reports whether a record was removed.
func (r *repository) Delete(ctx context.Context, id string) (bool, error) {
	removed := false
	err := r.collections.Mutate(ctx, func(items []models.SeedCollection) ([]models.SeedCollection, error) {
		kept := items[:0]
		for _, item := range items {
			if item.ID == id {
				removed = true
				continue
			}
			kept = append(kept, item)
		}
		return kept, nil
	})
	if err != nil {
		return false, errors.Wrap(errors.CodeDependency, err, "deleting collection")
	}
	return removed, nil
}

func applyUpdates(record *models.SeedCollection, updates UpdateCollectionInput) {
	if updates.MotherTree != nil {
		record.MotherTree = *updates.MotherTree
	}
	if updates.Unit != nil {
		record.Unit = *updates.Unit
	}
	if updates.Quantity != nil {
		record.Quantity = *updates.Quantity
	}
	if updates.Species != nil {
		record.Species = *updates.Species
	}
	if updates.AdditionalInfo != nil {
		record.AdditionalInfo = *updates.AdditionalInfo
	}
	if updates.Latitude != nil {
		record.Latitude = updates.Latitude
	}
	if updates.Longitude != nil {
		record.Longitude = updates.Longitude
	}
	if updates.Photos != nil {
		record.Photos = updates.Photos
	}
}
