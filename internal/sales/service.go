package sales

import (
	"context"
	"fmt"

	"github.com/ensigotrace/ensigotrace-backend/pkg/enums"
	"github.com/ensigotrace/ensigotrace-backend/pkg/errors"
	"github.com/ensigotrace/ensigotrace-backend/pkg/metrics"
	"github.com/ensigotrace/ensigotrace-backend/pkg/models"
	"github.com/shopspring/decimal"
)

// Service owns the sale lifecycle: creation with derived totals, payment
// status transitions, and dashboard stats.
type Service interface {
	GetAllSales(ctx context.Context, nurseryID string) ([]models.Sale, error)
	GetSale(ctx context.Context, id string) (models.Sale, error)
	GetSaleByNumber(ctx context.Context, saleNumber string) (models.Sale, error)
	CreateSale(ctx context.Context, input CreateSaleInput) (models.Sale, error)
	UpdatePaymentStatus(ctx context.Context, id string, input UpdatePaymentStatusInput) (models.Sale, error)
	GetSalesStats(ctx context.Context, nurseryID string) (Stats, error)
}

type service struct {
	repo    Repository
	metrics *metrics.APIMetrics
}

// NewService wraps the repository with validation and derived fields.
// Metrics may be nil.
func NewService(repo Repository, m *metrics.APIMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("sales repository is required")
	}
	return &service{repo: repo, metrics: m}, nil
}

func (s *service) GetAllSales(ctx context.Context, nurseryID string) ([]models.Sale, error) {
	return s.repo.GetAll(ctx, nurseryID)
}

func (s *service) GetSale(ctx context.Context, id string) (models.Sale, error) {
	sale, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.Sale{}, err
	}
	if sale == nil {
		return models.Sale{}, errors.New(errors.CodeNotFound, "Sale not found")
	}
	return *sale, nil
}

func (s *service) GetSaleByNumber(ctx context.Context, saleNumber string) (models.Sale, error) {
	sale, err := s.repo.GetBySaleNumber(ctx, saleNumber)
	if err != nil {
		return models.Sale{}, err
	}
	if sale == nil {
		return models.Sale{}, errors.New(errors.CodeNotFound, "Sale not found")
	}
	return *sale, nil
}

// CreateSale validates the form, derives the total from quantity and unit
// price, and always starts the record as pending regardless of input.
func (s *service) CreateSale(ctx context.Context, input CreateSaleInput) (models.Sale, error) {
	if input.BatchID == "" {
		return models.Sale{}, errors.New(errors.CodeValidation, "Batch ID is required")
	}
	if input.Quantity <= 0 {
		return models.Sale{}, errors.New(errors.CodeValidation, "Quantity must be greater than 0")
	}
	if !input.PricePerUnit.IsPositive() {
		return models.Sale{}, errors.New(errors.CodeValidation, "Price per unit must be greater than 0")
	}
	if input.CustomerName == "" || input.CustomerEmail == "" || input.CustomerPhone == "" {
		return models.Sale{}, errors.New(errors.CodeValidation, "Customer information is required")
	}

	sale := models.Sale{
		BatchID:       input.BatchID,
		Species:       input.Species,
		Quantity:      input.Quantity,
		Unit:          input.Unit,
		PricePerUnit:  input.PricePerUnit,
		TotalAmount:   decimal.NewFromFloat(input.Quantity).Mul(input.PricePerUnit),
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		PaymentStatus: enums.PaymentStatusPending,
		PaymentMethod: input.PaymentMethod,
		SaleDate:      input.SaleDate,
		Notes:         input.Notes,
		NurseryID:     input.NurseryID,
	}

	created, err := s.repo.Create(ctx, sale)
	if err != nil {
		return models.Sale{}, err
	}
	s.metrics.IncSaleCreated()
	return created, nil
}

// UpdatePaymentStatus transitions a sale's payment state. The transaction
// reference and method are stored only when supplied.
func (s *service) UpdatePaymentStatus(ctx context.Context, id string, input UpdatePaymentStatusInput) (models.Sale, error) {
	if !input.Status.IsValid() {
		return models.Sale{}, errors.New(errors.CodeValidation, fmt.Sprintf("invalid payment status %q", input.Status))
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.Sale{}, err
	}
	if existing == nil {
		return models.Sale{}, errors.New(errors.CodeNotFound, "Sale not found")
	}

	updated, err := s.repo.Update(ctx, id, func(sale *models.Sale) {
		sale.PaymentStatus = input.Status
		if input.TransactionReference != "" {
			ref := input.TransactionReference
			sale.TransactionReference = &ref
		}
		if input.PaymentMethod != nil {
			sale.PaymentMethod = input.PaymentMethod
		}
	})
	if err != nil {
		return models.Sale{}, err
	}
	if updated == nil {
		return models.Sale{}, errors.New(errors.CodeNotFound, "Sale not found")
	}
	return *updated, nil
}

// GetSalesStats aggregates the dashboard counters over the (optionally
// nursery-filtered) sale list. Revenue sums paid sales only.
func (s *service) GetSalesStats(ctx context.Context, nurseryID string) (Stats, error) {
	items, err := s.repo.GetAll(ctx, nurseryID)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{TotalSales: len(items), TotalRevenue: decimal.Zero}
	for _, sale := range items {
		switch sale.PaymentStatus {
		case enums.PaymentStatusPaid:
			stats.PaidSales++
			stats.TotalRevenue = stats.TotalRevenue.Add(sale.TotalAmount)
		case enums.PaymentStatusPending:
			stats.PendingPayments++
		}
	}
	return stats, nil
}
