package payment

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cimillas/provapub-api/internal/domain"
)

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(Defaults(nil)...)

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "exact", input: "pix", want: "pix"},
		{name: "mixed case", input: "CreditCard", want: "creditcard"},
		{name: "upper with spaces", input: "  PAYPAL ", want: "paypal"},
		{name: "unknown", input: "boleto", wantErr: domain.ErrInvalidPaymentMethod},
		{name: "empty", input: "", wantErr: domain.ErrInvalidPaymentMethod},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, err := reg.Lookup(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Name())
		})
	}
}

func TestRegistry_Names(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(Defaults(nil)...)

	assert.ElementsMatch(t, []string{"pix", "creditcard", "paypal"}, reg.Names())
}

func TestApprover_ProcessLogsPayment(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	m := Pix(zap.New(core))
	ref := uuid.New()

	err := m.Process(context.Background(), Payment{
		Reference:  ref,
		CustomerID: 7,
		Amount:     decimal.RequireFromString("49.9"),
	})
	require.NoError(t, err)

	entries := logs.FilterMessage("payment processed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "pix", fields["method"])
	assert.Equal(t, ref.String(), fields["reference"])
	assert.Equal(t, int64(7), fields["customer_id"])
	assert.Equal(t, "49.90", fields["amount"])
}

func TestApprover_ProcessHonoursCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := CreditCard(nil).Process(ctx, Payment{Reference: uuid.New(), CustomerID: 1, Amount: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, context.Canceled)
}
