package metrics

import (
	"context"

	"github.com/aaravmahajanofficial/plantshop/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cartOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plantshop_cart_operations_total",
			Help: "Cart store operations by outcome.",
		},
		[]string{"operation", "result"},
	)

	ordersPlacedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plantshop_orders_placed_total",
			Help: "Orders stored, by delivery and payment method.",
		},
		[]string{"delivery_method", "payment_method"},
	)

	orderRevenueTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "plantshop_order_revenue_dong_total",
			Help: "Sum of placed order totals in đồng.",
		},
	)
)

// RecordCartOperation counts one cart store call.
func RecordCartOperation(operation string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}

	cartOperationsTotal.WithLabelValues(operation, result).Inc()
}

// OrderRecorder counts placed orders. It never fails.
type OrderRecorder struct{}

func (OrderRecorder) OrderPlaced(_ context.Context, tx *models.Transaction) error {
	ordersPlacedTotal.WithLabelValues(string(tx.DeliveryMethod), string(tx.PaymentMethod)).Inc()
	orderRevenueTotal.Add(float64(tx.TotalAmount))

	return nil
}
