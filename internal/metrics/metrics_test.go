package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/plantshop/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	t.Run("Labels by route pattern", func(t *testing.T) {
		// Arrange
		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/v1/products/{id}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})
		handler := Middleware(mux)
		before := counterValue(t, httpRequestsTotal.WithLabelValues("418", http.MethodGet, "/api/v1/products/{id}"))

		// Act
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products/42", nil))

		// Assert
		assert.Equal(t, http.StatusTeapot, rec.Code)
		after := counterValue(t, httpRequestsTotal.WithLabelValues("418", http.MethodGet, "/api/v1/products/{id}"))
		assert.Equal(t, before+1, after)
	})

	t.Run("Unmatched route", func(t *testing.T) {
		// Arrange
		handler := Middleware(http.NewServeMux())
		before := counterValue(t, httpRequestsTotal.WithLabelValues("404", http.MethodGet, "unmatched"))

		// Act
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

		// Assert
		assert.Equal(t, before+1, counterValue(t, httpRequestsTotal.WithLabelValues("404", http.MethodGet, "unmatched")))
	})
}

func TestRecordCartOperation(t *testing.T) {
	okBefore := counterValue(t, cartOperationsTotal.WithLabelValues("add", "success"))
	errBefore := counterValue(t, cartOperationsTotal.WithLabelValues("add", "error"))

	RecordCartOperation("add", nil)
	RecordCartOperation("add", errors.New("boom"))

	assert.Equal(t, okBefore+1, counterValue(t, cartOperationsTotal.WithLabelValues("add", "success")))
	assert.Equal(t, errBefore+1, counterValue(t, cartOperationsTotal.WithLabelValues("add", "error")))
}

func TestOrderRecorder(t *testing.T) {
	// Arrange
	counter := ordersPlacedTotal.WithLabelValues("fast", "visa")
	before := counterValue(t, counter)
	revenueBefore := counterValue(t, orderRevenueTotal)

	// Act
	err := OrderRecorder{}.OrderPlaced(context.Background(), &models.Transaction{
		DeliveryMethod: models.DeliveryFast,
		PaymentMethod:  models.PaymentVisa,
		TotalAmount:    515000,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, before+1, counterValue(t, counter))
	assert.Equal(t, revenueBefore+515000, counterValue(t, orderRevenueTotal))
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()

	var m dto.Metric
	require.NoError(t, c.Write(&m))

	return m.GetCounter().GetValue()
}
