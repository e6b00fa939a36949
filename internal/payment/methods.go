package payment

import (
	"context"

	"go.uber.org/zap"
)

// approver accepts every payment and logs it.
type approver struct {
	name   string
	logger *zap.Logger
}

func (a approver) Name() string { return a.name }

func (a approver) Process(ctx context.Context, p Payment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	a.logger.Info("payment processed",
		zap.String("method", a.name),
		zap.String("reference", p.Reference.String()),
		zap.Int64("customer_id", p.CustomerID),
		zap.String("amount", p.Amount.StringFixed(2)),
	)
	return nil
}

func Pix(logger *zap.Logger) Method        { return approver{name: "pix", logger: orNop(logger)} }
func CreditCard(logger *zap.Logger) Method { return approver{name: "creditcard", logger: orNop(logger)} }
func PayPal(logger *zap.Logger) Method     { return approver{name: "paypal", logger: orNop(logger)} }

// Defaults returns every built-in method.
func Defaults(logger *zap.Logger) []Method {
	return []Method{Pix(logger), CreditCard(logger), PayPal(logger)}
}

func orNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
