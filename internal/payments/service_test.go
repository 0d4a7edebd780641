package payments

import (
	"context"
	"testing"

	"github.com/ensigotrace/ensigotrace-backend/internal/sales"
	"github.com/ensigotrace/ensigotrace-backend/pkg/config"
	"github.com/ensigotrace/ensigotrace-backend/pkg/enums"
	pkgerrors "github.com/ensigotrace/ensigotrace-backend/pkg/errors"
	"github.com/ensigotrace/ensigotrace-backend/pkg/flutterwave"
	"github.com/ensigotrace/ensigotrace-backend/pkg/models"
	"github.com/ensigotrace/ensigotrace-backend/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *flutterwave.Client {
	t.Helper()
	client, err := flutterwave.NewClient(context.Background(), config.FlutterwaveConfig{
		PublicKey: "FLWPUBK_TEST-abc123-X",
		Env:       "test",
		Currency:  "UGX",
	}, nil)
	require.NoError(t, err)
	return client
}

func newTestService(t *testing.T, client *flutterwave.Client) (Service, sales.Service) {
	t.Helper()
	salesSvc, err := sales.NewService(sales.NewRepository(store.NewMemory(), nil, nil), nil)
	require.NoError(t, err)
	svc, err := NewService(ServiceParams{Sales: salesSvc, Client: client})
	require.NoError(t, err)
	return svc, salesSvc
}

func TestInitiateCheckoutShapesWidgetPayload(t *testing.T) {
	svc, salesSvc := newTestService(t, newTestClient(t))
	ctx := context.Background()

	sale, err := salesSvc.GetSale(ctx, "SL-002")
	require.NoError(t, err)

	checkout, err := svc.InitiateCheckout(ctx, sale.ID)
	require.NoError(t, err)

	assert.Equal(t, "FLWPUBK_TEST-abc123-X", checkout.PublicKey)
	assert.Equal(t, sale.SaleNumber, checkout.TxRef)
	assert.True(t, checkout.Amount.Equal(sale.TotalAmount))
	assert.Equal(t, "UGX", checkout.Currency)
	assert.Equal(t, "card,mobilemoney,ussd", checkout.PaymentOptions)
	assert.Equal(t, sale.CustomerEmail, checkout.Customer.Email)
	assert.Equal(t, sale.CustomerPhone, checkout.Customer.PhoneNumber)
	assert.Equal(t, sale.CustomerName, checkout.Customer.Name)
	assert.Equal(t, "Ensigo Trace - Tree Sale", checkout.Customizations.Title)
	assert.Equal(t, "Sale of 2000 seeds of Markhamia lutea", checkout.Customizations.Description)
	assert.Equal(t, map[string]string{
		"saleId":     sale.ID,
		"saleNumber": sale.SaleNumber,
		"batchId":    sale.BatchID,
	}, checkout.Meta)
}

func TestInitiateCheckoutWithoutGateway(t *testing.T) {
	svc, _ := newTestService(t, nil)

	_, err := svc.InitiateCheckout(context.Background(), "SL-002")
	require.Error(t, err)
	assert.Equal(t, "Payment gateway is loading. Please wait a moment and try again.", pkgerrors.As(err).Message())
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeGateway))
}

func TestInitiateCheckoutUnknownSale(t *testing.T) {
	svc, _ := newTestService(t, newTestClient(t))

	_, err := svc.InitiateCheckout(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))
}

func TestHandleCallbackSuccessMarksSalePaid(t *testing.T) {
	svc, salesSvc := newTestService(t, newTestClient(t))
	ctx := context.Background()

	updated, err := svc.HandleCallback(ctx, flutterwave.Callback{
		Status:        flutterwave.StatusSuccessful,
		TransactionID: "4821093",
		TxRef:         "SALE-2025-002",
	})
	require.NoError(t, err)

	assert.Equal(t, enums.PaymentStatusPaid, updated.PaymentStatus)
	require.NotNil(t, updated.TransactionReference)
	assert.Equal(t, "4821093", *updated.TransactionReference)
	require.NotNil(t, updated.PaymentMethod)
	assert.Equal(t, enums.PaymentMethodFlutterwave, *updated.PaymentMethod)

	persisted, err := salesSvc.GetSale(ctx, updated.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.PaymentStatusPaid, persisted.PaymentStatus)
}

func TestHandleCallbackFallsBackToSaleNumberReference(t *testing.T) {
	svc, _ := newTestService(t, newTestClient(t))

	updated, err := svc.HandleCallback(context.Background(), flutterwave.Callback{
		Status: flutterwave.StatusSuccessful,
		TxRef:  "SALE-2025-002",
	})
	require.NoError(t, err)
	require.NotNil(t, updated.TransactionReference)
	assert.Equal(t, "SALE-2025-002", *updated.TransactionReference)
}

func TestHandleCallbackFailureLeavesSaleUntouched(t *testing.T) {
	svc, salesSvc := newTestService(t, newTestClient(t))
	ctx := context.Background()

	_, err := svc.HandleCallback(ctx, flutterwave.Callback{
		Status: "cancelled",
		TxRef:  "SALE-2025-002",
	})
	require.Error(t, err)
	assert.Equal(t, "Payment was not successful. Please try again.", pkgerrors.As(err).Message())

	var sale models.Sale
	sale, err = salesSvc.GetSaleByNumber(ctx, "SALE-2025-002")
	require.NoError(t, err)
	assert.Equal(t, enums.PaymentStatusPending, sale.PaymentStatus)
	assert.Nil(t, sale.TransactionReference)
}

func TestHandleCallbackUnknownReference(t *testing.T) {
	svc, _ := newTestService(t, newTestClient(t))

	_, err := svc.HandleCallback(context.Background(), flutterwave.Callback{
		Status: flutterwave.StatusSuccessful,
		TxRef:  "SALE-1999-999",
	})
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))
}
