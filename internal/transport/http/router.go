package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// Services groups what the router dispatches to.
type Services struct {
	Products    ProductLister
	Customers   CustomerLister
	Eligibility PurchaseEvaluator
	Orders      OrderPayer
	DB          Pinger
}

// NewRouter wires every route behind logging, CORS and tracing middleware.
func NewRouter(svc Services, corsOrigins []string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(
		RequestLogger(logger),
		CORS(corsOrigins),
		otelhttp.NewMiddleware("provapub-api"),
	)
	r.NotFound(NotFoundHandler().ServeHTTP)
	r.MethodNotAllowed(MethodNotAllowedHandler().ServeHTTP)

	r.Get("/health", HandleHealth(svc.DB))
	r.Get("/products", HandleListProducts(svc.Products))
	r.Route("/customers", func(r chi.Router) {
		r.Get("/", HandleListCustomers(svc.Customers))
		r.Get("/{customerID}/can-purchase", HandleCanPurchase(svc.Eligibility))
	})
	r.Post("/orders", HandlePayOrder(svc.Orders))

	return r
}
