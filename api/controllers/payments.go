package controllers

import (
	"net/http"

	"github.com/ensigotrace/ensigotrace-backend/api/responses"
	"github.com/ensigotrace/ensigotrace-backend/api/validators"
	"github.com/ensigotrace/ensigotrace-backend/internal/payments"
	pkgerrors "github.com/ensigotrace/ensigotrace-backend/pkg/errors"
	"github.com/ensigotrace/ensigotrace-backend/pkg/flutterwave"
	"github.com/ensigotrace/ensigotrace-backend/pkg/logger"
)

type checkoutRequest struct {
	SaleID string `json:"saleId" validate:"required"`
}

// PaymentCheckout shapes the hosted widget payload for a sale.
func PaymentCheckout(svc payments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "payments service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body checkoutRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		checkout, err := svc.InitiateCheckout(r.Context(), body.SaleID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, checkout)
	}
}

// PaymentCallback applies a gateway result to the referenced sale.
func PaymentCallback(svc payments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "payments service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body flutterwave.Callback
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sale, err := svc.HandleCallback(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, sale)
	}
}
