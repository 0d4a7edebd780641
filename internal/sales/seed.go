package sales

import (
	"github.com/ensigotrace/ensigotrace-backend/pkg/enums"
	"github.com/ensigotrace/ensigotrace-backend/pkg/models"
	"github.com/shopspring/decimal"
)

// DefaultSales seeds the store on first read so the sales dashboard has
// data before any nursery records a sale.
func DefaultSales() []models.Sale {
	paidRef := "FLW-DEMO-20250118"
	flutterwave := enums.PaymentMethodFlutterwave
	return []models.Sale{
		{
			ID:                   "SL-001",
			SaleNumber:           "SALE-2025-001",
			BatchID:              "SB-001",
			Species:              "Albizia coriaria",
			Quantity:             10,
			Unit:                 enums.SaleUnitKg,
			PricePerUnit:         decimal.NewFromInt(45000),
			TotalAmount:          decimal.NewFromInt(450000),
			CustomerName:         "Green Earth Initiative",
			CustomerEmail:        "procurement@greenearth.org",
			CustomerPhone:        "+256700123456",
			PaymentStatus:        enums.PaymentStatusPaid,
			PaymentMethod:        &flutterwave,
			TransactionReference: &paidRef,
			SaleDate:             "2025-01-18",
			NurseryID:            "NUR-001",
		},
		{
			ID:            "SL-002",
			SaleNumber:    "SALE-2025-002",
			BatchID:       "SB-002",
			Species:       "Markhamia lutea",
			Quantity:      2000,
			Unit:          enums.SaleUnitSeeds,
			PricePerUnit:  decimal.NewFromInt(150),
			TotalAmount:   decimal.NewFromInt(300000),
			CustomerName:  "Uganda Conservation Foundation",
			CustomerEmail: "orders@ucf.or.ug",
			CustomerPhone: "+256772987654",
			PaymentStatus: enums.PaymentStatusPending,
			SaleDate:      "2025-02-02",
			NurseryID:     "NUR-001",
		},
	}
}
