package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cimillas/provapub-api/internal/app"
	"github.com/cimillas/provapub-api/internal/domain"
)

// OrderPayer is the minimal interface needed to pay for an order.
type OrderPayer interface {
	PayOrder(ctx context.Context, in app.PayOrderInput) (domain.Order, error)
}

// HandlePayOrder returns an HTTP handler for POST /orders.
func HandlePayOrder(svc OrderPayer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req payOrderRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}
		if err := req.validate(); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, err.Error())
			return
		}

		order, err := svc.PayOrder(r.Context(), app.PayOrderInput{
			PaymentMethod: req.PaymentMethod,
			Value:         *req.Value,
			CustomerID:    req.CustomerID,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, orderResponse{
			ID:         order.ID,
			CustomerID: order.CustomerID,
			Value:      order.Value.StringFixed(2),
			OrderDate:  order.OrderDate,
		})
	}
}

type payOrderRequest struct {
	PaymentMethod string           `json:"payment_method"`
	Value         *decimal.Decimal `json:"value"`
	CustomerID    int64            `json:"customer_id"`
}

func (r payOrderRequest) validate() error {
	if r.PaymentMethod == "" {
		return errors.New("payment_method is required")
	}
	if r.Value == nil {
		return errors.New("value is required")
	}
	return nil
}

type orderResponse struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customer_id"`
	Value      string    `json:"value"`
	OrderDate  time.Time `json:"order_date"`
}
