package sales

import (
	"github.com/ensigotrace/ensigotrace-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// CreateSaleInput is the nursery sale form payload. The id, sale number,
// total amount, and payment status are all assigned server-side.
type CreateSaleInput struct {
	BatchID       string               `json:"batchId"`
	Species       string               `json:"species"`
	Quantity      float64              `json:"quantity"`
	Unit          enums.SaleUnit       `json:"unit"`
	PricePerUnit  decimal.Decimal      `json:"pricePerUnit"`
	CustomerName  string               `json:"customerName"`
	CustomerEmail string               `json:"customerEmail"`
	CustomerPhone string               `json:"customerPhone"`
	PaymentMethod *enums.PaymentMethod `json:"paymentMethod,omitempty"`
	SaleDate      string               `json:"saleDate"`
	Notes         *string              `json:"notes,omitempty"`
	NurseryID     string               `json:"nurseryId"`
}

// UpdatePaymentStatusInput carries a payment status transition. The
// transaction reference is kept only when non-empty.
type UpdatePaymentStatusInput struct {
	Status               enums.PaymentStatus  `json:"status"`
	TransactionReference string               `json:"transactionReference,omitempty"`
	PaymentMethod        *enums.PaymentMethod `json:"paymentMethod,omitempty"`
}

// Stats aggregates the sales dashboard counters. Revenue counts paid sales
// only.
type Stats struct {
	TotalSales      int             `json:"totalSales"`
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	PendingPayments int             `json:"pendingPayments"`
	PaidSales       int             `json:"paidSales"`
}
