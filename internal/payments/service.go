// Package payments bridges sale records and the hosted checkout: it shapes
// the outbound checkout payload and settles sales from gateway callbacks.
package payments

import (
	"context"
	"fmt"

	"github.com/ensigotrace/ensigotrace-backend/internal/sales"
	"github.com/ensigotrace/ensigotrace-backend/pkg/enums"
	"github.com/ensigotrace/ensigotrace-backend/pkg/errors"
	"github.com/ensigotrace/ensigotrace-backend/pkg/flutterwave"
	"github.com/ensigotrace/ensigotrace-backend/pkg/logger"
	"github.com/ensigotrace/ensigotrace-backend/pkg/metrics"
	"github.com/ensigotrace/ensigotrace-backend/pkg/models"
)

const (
	gatewayLoadingMessage = "Payment gateway is loading. Please wait a moment and try again."
	paymentFailedMessage  = "Payment was not successful. Please try again."
)

// Service prepares hosted checkouts and applies their results.
type Service interface {
	InitiateCheckout(ctx context.Context, saleID string) (*flutterwave.CheckoutRequest, error)
	HandleCallback(ctx context.Context, callback flutterwave.Callback) (models.Sale, error)
}

type service struct {
	sales   sales.Service
	client  *flutterwave.Client
	logger  *logger.Logger
	metrics *metrics.APIMetrics
}

// ServiceParams bundles the dependencies for the payments service. Client
// may be nil when the gateway is not configured; checkout then reports the
// gateway as still loading. Logger and metrics may be nil.
type ServiceParams struct {
	Sales   sales.Service
	Client  *flutterwave.Client
	Logger  *logger.Logger
	Metrics *metrics.APIMetrics
}

// NewService builds the payments service.
func NewService(params ServiceParams) (Service, error) {
	if params.Sales == nil {
		return nil, fmt.Errorf("sales service is required")
	}
	return &service{
		sales:   params.Sales,
		client:  params.Client,
		logger:  params.Logger,
		metrics: params.Metrics,
	}, nil
}

// InitiateCheckout shapes the hosted widget payload for a pending sale. The
// tx_ref is the sale number, which the callback echoes back.
func (s *service) InitiateCheckout(ctx context.Context, saleID string) (*flutterwave.CheckoutRequest, error) {
	if !s.client.Ready() {
		return nil, errors.New(errors.CodeGateway, gatewayLoadingMessage)
	}

	sale, err := s.sales.GetSale(ctx, saleID)
	if err != nil {
		return nil, err
	}

	return &flutterwave.CheckoutRequest{
		PublicKey:      s.client.PublicKey(),
		TxRef:          sale.SaleNumber,
		Amount:         sale.TotalAmount,
		Currency:       s.client.Currency(),
		PaymentOptions: flutterwave.PaymentOptions,
		Customer: flutterwave.Customer{
			Email:       sale.CustomerEmail,
			PhoneNumber: sale.CustomerPhone,
			Name:        sale.CustomerName,
		},
		Customizations: flutterwave.Customizations{
			Title:       "Ensigo Trace - Tree Sale",
			Description: fmt.Sprintf("Sale of %v %s of %s", sale.Quantity, sale.Unit, sale.Species),
			Logo:        s.client.LogoURL(),
		},
		Meta: map[string]string{
			"saleId":     sale.ID,
			"saleNumber": sale.SaleNumber,
			"batchId":    sale.BatchID,
		},
	}, nil
}

// HandleCallback settles the sale named by the callback's tx_ref. Anything
// other than a successful status leaves the sale untouched; a missing
// transaction id falls back to the sale number as the stored reference.
func (s *service) HandleCallback(ctx context.Context, callback flutterwave.Callback) (models.Sale, error) {
	s.metrics.IncPaymentCallback(callback.Status)

	sale, err := s.sales.GetSaleByNumber(ctx, callback.TxRef)
	if err != nil {
		return models.Sale{}, err
	}

	if !callback.Successful() {
		if s.logger != nil {
			s.logger.Warn(ctx, fmt.Sprintf("payment callback for %s reported status %q", sale.SaleNumber, callback.Status))
		}
		return models.Sale{}, errors.New(errors.CodeValidation, paymentFailedMessage)
	}

	reference := callback.TransactionID
	if reference == "" {
		reference = sale.SaleNumber
	}

	method := enums.PaymentMethodFlutterwave
	updated, err := s.sales.UpdatePaymentStatus(ctx, sale.ID, sales.UpdatePaymentStatusInput{
		Status:               enums.PaymentStatusPaid,
		TransactionReference: reference,
		PaymentMethod:        &method,
	})
	if err != nil {
		return models.Sale{}, err
	}

	if s.logger != nil {
		s.logger.Info(ctx, fmt.Sprintf("sale %s marked paid via flutterwave (%s)", updated.SaleNumber, reference))
	}
	return updated, nil
}
