package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/ensigotrace/ensigotrace-backend/pkg/errors"
	"github.com/ensigotrace/ensigotrace-backend/pkg/models"
	"github.com/ensigotrace/ensigotrace-backend/pkg/store"
	"github.com/google/uuid"
)

const salesKey = "nursery_sales"

// Repository is the persistence surface for sale records. Sale numbers are
// assigned here; the collection mutex serializes Create calls so the
// year/sequence pair never repeats within one process.
type Repository interface {
	GetAll(ctx context.Context, nurseryID string) ([]models.Sale, error)
	GetByID(ctx context.Context, id string) (*models.Sale, error)
	GetBySaleNumber(ctx context.Context, saleNumber string) (*models.Sale, error)
	Create(ctx context.Context, sale models.Sale) (models.Sale, error)
	Update(ctx context.Context, id string, apply func(*models.Sale)) (*models.Sale, error)
}

type repository struct {
	sales *store.Collection[models.Sale]
	now   func() time.Time
}

// NewRepository binds the repository to the storage backend, seeding the
// given list on first read. A nil seed falls back to the demo defaults.
func NewRepository(kv store.KV, seed []models.Sale, onCorrupt store.CorruptHook) Repository {
	if seed == nil {
		seed = DefaultSales()
	}
	return &repository{
		sales: store.NewCollection(kv, salesKey, seed, onCorrupt),
		now:   time.Now,
	}
}

// GetAll returns every sale, or only those for the given nursery when
// nurseryID is non-empty.
func (r *repository) GetAll(ctx context.Context, nurseryID string) ([]models.Sale, error) {
	items, err := r.sales.All(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "loading sales")
	}
	if nurseryID == "" {
		return items, nil
	}
	filtered := make([]models.Sale, 0, len(items))
	for _, sale := range items {
		if sale.NurseryID == nurseryID {
			filtered = append(filtered, sale)
		}
	}
	return filtered, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*models.Sale, error) {
	items, err := r.sales.All(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "loading sales")
	}
	for _, sale := range items {
		if sale.ID == id {
			found := sale
			return &found, nil
		}
	}
	return nil, nil
}

// GetBySaleNumber resolves a checkout reference back to its sale. Sale
// numbers are unique per store so the first match wins.
func (r *repository) GetBySaleNumber(ctx context.Context, saleNumber string) (*models.Sale, error) {
	items, err := r.sales.All(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "loading sales")
	}
	for _, sale := range items {
		if sale.SaleNumber == saleNumber {
			found := sale
			return &found, nil
		}
	}
	return nil, nil
}

// Create assigns the id and the SALE-<year>-NNN number from the current
// collection length and appends the record.
func (r *repository) Create(ctx context.Context, sale models.Sale) (models.Sale, error) {
	err := r.sales.Mutate(ctx, func(items []models.Sale) ([]models.Sale, error) {
		sale.ID = uuid.NewString()
		sale.SaleNumber = fmt.Sprintf("SALE-%d-%03d", r.now().Year(), len(items)+1)
		return append(items, sale), nil
	})
	if err != nil {
		return models.Sale{}, errors.Wrap(errors.CodeDependency, err, "creating sale")
	}
	return sale, nil
}

// Update applies the mutation to the stored record in place. A nil result
// with a nil error means the id was absent.
func (r *repository) Update(ctx context.Context, id string, apply func(*models.Sale)) (*models.Sale, error) {
	var updated *models.Sale
	err := r.sales.Mutate(ctx, func(items []models.Sale) ([]models.Sale, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			apply(&items[i])
			found := items[i]
			updated = &found
			return items, nil
		}
		return items, nil
	})
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "updating sale")
	}
	return updated, nil
}
