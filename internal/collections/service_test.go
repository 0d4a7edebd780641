package collections

import (
	"context"
	"testing"

	"github.com/ensigotrace/ensigotrace-backend/pkg/enums"
	pkgerrors "github.com/ensigotrace/ensigotrace-backend/pkg/errors"
	"github.com/ensigotrace/ensigotrace-backend/pkg/models"
	"github.com/ensigotrace/ensigotrace-backend/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, seed []models.SeedCollection) Service {
	t.Helper()
	svc, err := NewService(NewRepository(store.NewMemory(), seed, nil))
	require.NoError(t, err)
	return svc
}

func validInput() CreateCollectionInput {
	return CreateCollectionInput{
		MotherTree: "MT-010",
		Unit:       enums.SeedUnitKg,
		Quantity:   12.5,
		Species:    "Prunus africana",
	}
}

func TestGetAllSeedsDefaultsOnFirstRead(t *testing.T) {
	svc := newTestService(t, nil)

	items, err := svc.GetAllCollections(context.Background())
	require.NoError(t, err)
	require.Len(t, items, len(DefaultCollections()))
	assert.Equal(t, "SC-001", items[0].ID)

	// Second read returns the persisted list, not a re-seed.
	again, err := svc.GetAllCollections(context.Background())
	require.NoError(t, err)
	assert.Equal(t, items, again)
}

func TestAddCollectionAssignsIDAndKeepsFields(t *testing.T) {
	svc := newTestService(t, []models.SeedCollection{})
	input := validInput()

	created, err := svc.AddCollection(context.Background(), input)
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, input.MotherTree, created.MotherTree)
	assert.Equal(t, input.Quantity, created.Quantity)
	assert.Equal(t, input.Species, created.Species)

	items, err := svc.GetAllCollections(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, created, items[0])
}

func TestAddCollectionValidation(t *testing.T) {
	svc := newTestService(t, []models.SeedCollection{})
	ctx := context.Background()

	input := validInput()
	input.MotherTree = "   "
	_, err := svc.AddCollection(ctx, input)
	require.Error(t, err)
	assert.Equal(t, "Mother tree name is required", pkgerrors.As(err).Message())

	input = validInput()
	input.Quantity = 0
	_, err = svc.AddCollection(ctx, input)
	require.Error(t, err)
	assert.Equal(t, "Quantity must be greater than 0", pkgerrors.As(err).Message())
}

func TestUpdateCollectionMergesFields(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	quantity := 40.0
	species := "Albizia coriaria"
	updated, err := svc.UpdateCollection(ctx, "SC-001", UpdateCollectionInput{
		Quantity: &quantity,
		Species:  &species,
	})
	require.NoError(t, err)

	assert.Equal(t, 40.0, updated.Quantity)
	assert.Equal(t, species, updated.Species)
	// Untouched fields survive the merge.
	assert.Equal(t, "MT-001", updated.MotherTree)
	assert.Equal(t, enums.SeedUnitKg, updated.Unit)
}

func TestUpdateCollectionRejectsNonPositiveQuantity(t *testing.T) {
	svc := newTestService(t, nil)

	quantity := -1.0
	_, err := svc.UpdateCollection(context.Background(), "SC-001", UpdateCollectionInput{Quantity: &quantity})
	require.Error(t, err)
	assert.Equal(t, "Quantity must be greater than 0", pkgerrors.As(err).Message())
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}

func TestUpdateCollectionNotFound(t *testing.T) {
	svc := newTestService(t, []models.SeedCollection{})

	species := "x"
	_, err := svc.UpdateCollection(context.Background(), "missing", UpdateCollectionInput{Species: &species})
	require.Error(t, err)
	assert.Equal(t, "Collection not found", pkgerrors.As(err).Message())
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))
}

func TestDeleteCollection(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	require.NoError(t, svc.DeleteCollection(ctx, "SC-002"))

	items, err := svc.GetAllCollections(ctx)
	require.NoError(t, err)
	assert.Len(t, items, len(DefaultCollections())-1)

	err = svc.DeleteCollection(ctx, "SC-002")
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))
}
