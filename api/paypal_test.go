package api

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/safehaven-world/safehaven/db"
	"github.com/safehaven-world/safehaven/services/payment"
	"github.com/stretchr/testify/assert"
)

func TestCreatePayPalOrder(t *testing.T) {
	payments := &fakePayments{
		configured: true,
		create: func(ctx context.Context, items []payment.OrderItem, amount float64) (json.RawMessage, error) {
			assert.Equal(t, 59.98, amount)
			assert.Len(t, items, 1)
			return json.RawMessage(`{"id":"5O190127TN364715T","status":"CREATED"}`), nil
		},
	}
	api := newTestAPI(&db.DB{}, &fakeMailer{}, payments)

	w := do(api, "POST", "/api/paypal/create-order", map[string]interface{}{
		"items": []map[string]interface{}{
			{"name": "The Great Deception (hardcover)", "quantity": "2", "unit_amount": map[string]string{"currency_code": "USD", "value": "29.99"}},
		},
		"amount": 59.98,
	})

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"id":"5O190127TN364715T","status":"CREATED"}`, w.Body.String())
}

func TestCreatePayPalOrderMissingFields(t *testing.T) {
	api := newTestAPI(&db.DB{}, &fakeMailer{}, &fakePayments{configured: true})

	w := do(api, "POST", "/api/paypal/create-order", map[string]interface{}{"amount": 10})
	assert.Equal(t, 400, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request: missing required fields"}`, w.Body.String())
}

func TestCreatePayPalOrderUnconfigured(t *testing.T) {
	api := newTestAPI(&db.DB{}, &fakeMailer{}, &fakePayments{configured: false})

	w := do(api, "POST", "/api/paypal/create-order", map[string]interface{}{
		"items":  []map[string]interface{}{{"name": "x"}},
		"amount": 10,
	})
	assert.Equal(t, 500, w.Code)
	assert.JSONEq(t, `{"error":"PayPal configuration error"}`, w.Body.String())
}

func TestCreatePayPalOrderProviderFailure(t *testing.T) {
	payments := &fakePayments{
		configured: true,
		create: func(ctx context.Context, items []payment.OrderItem, amount float64) (json.RawMessage, error) {
			return nil, errors.New("upstream timeout")
		},
	}
	api := newTestAPI(&db.DB{}, &fakeMailer{}, payments)

	w := do(api, "POST", "/api/paypal/create-order", map[string]interface{}{
		"items":  []map[string]interface{}{{"name": "x"}},
		"amount": 10,
	})
	assert.Equal(t, 500, w.Code)
	assert.JSONEq(t, `{"error":"An error occurred while creating the PayPal order"}`, w.Body.String())
}

func TestCapturePayPalOrder(t *testing.T) {
	payments := &fakePayments{
		configured: true,
		capture: func(ctx context.Context, orderID string) (json.RawMessage, error) {
			assert.Equal(t, "5O190127TN364715T", orderID)
			return json.RawMessage(`{"id":"5O190127TN364715T","status":"COMPLETED"}`), nil
		},
	}
	api := newTestAPI(&db.DB{}, &fakeMailer{}, payments)

	w := do(api, "POST", "/api/paypal/capture-order", map[string]string{"orderId": "5O190127TN364715T"})
	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"id":"5O190127TN364715T","status":"COMPLETED"}`, w.Body.String())
}

func TestCapturePayPalOrderMissingID(t *testing.T) {
	api := newTestAPI(&db.DB{}, &fakeMailer{}, &fakePayments{configured: true})

	w := do(api, "POST", "/api/paypal/capture-order", map[string]string{})
	assert.Equal(t, 400, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request: missing order ID"}`, w.Body.String())
}
