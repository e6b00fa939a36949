package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/cimillas/provapub-api/internal/app"
)

// PurchaseEvaluator is the minimal interface needed to check purchase eligibility.
type PurchaseEvaluator interface {
	Evaluate(ctx context.Context, customerID int64, purchaseValue decimal.Decimal) (app.Decision, error)
}

// HandleCanPurchase returns an HTTP handler for
// GET /customers/{customerID}/can-purchase?value=X.
// A denied purchase is a 200 with can_purchase=false.
func HandleCanPurchase(svc PurchaseEvaluator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID, err := strconv.ParseInt(chi.URLParam(r, "customerID"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidID, "invalid customer id")
			return
		}
		value, err := decimal.NewFromString(r.URL.Query().Get("value"))
		if err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidValue, "value must be a decimal number")
			return
		}

		d, err := svc.Evaluate(r.Context(), customerID, value)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, canPurchaseResponse{
			CustomerID:    customerID,
			PurchaseValue: value.StringFixed(2),
			CanPurchase:   d.Allowed,
			Reason:        string(d.Reason),
		})
	}
}

type canPurchaseResponse struct {
	CustomerID    int64  `json:"customer_id"`
	PurchaseValue string `json:"purchase_value"`
	CanPurchase   bool   `json:"can_purchase"`
	Reason        string `json:"reason,omitempty"`
}
