package models

import (
	"github.com/ensigotrace/ensigotrace-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Sale is a persisted transaction record for seed/seedling stock sold to a
// partner. TotalAmount is computed once at creation and never recomputed.
type Sale struct {
	ID                   string               `json:"id"`
	SaleNumber           string               `json:"saleNumber"`
	BatchID              string               `json:"batchId"`
	Species              string               `json:"species"`
	Quantity             float64              `json:"quantity"`
	Unit                 enums.SaleUnit       `json:"unit"`
	PricePerUnit         decimal.Decimal      `json:"pricePerUnit"`
	TotalAmount          decimal.Decimal      `json:"totalAmount"`
	CustomerName         string               `json:"customerName"`
	CustomerEmail        string               `json:"customerEmail"`
	CustomerPhone        string               `json:"customerPhone"`
	PaymentStatus        enums.PaymentStatus  `json:"paymentStatus"`
	PaymentMethod        *enums.PaymentMethod `json:"paymentMethod,omitempty"`
	TransactionReference *string              `json:"transactionReference,omitempty"`
	SaleDate             string               `json:"saleDate"`
	Notes                *string              `json:"notes,omitempty"`
	NurseryID            string               `json:"nurseryId"`
}
