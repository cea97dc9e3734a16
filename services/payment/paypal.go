package payment

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/safehaven-world/safehaven/config"
	"github.com/safehaven-world/safehaven/constants"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// OrderItem mirrors the PayPal purchase-unit item shape the storefront
// submits.
type OrderItem struct {
	Name       string `json:"name"`
	Quantity   string `json:"quantity"`
	UnitAmount Money  `json:"unit_amount"`
}

type Money struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

// PayPal drives the order create/capture flow against the PayPal REST API.
// Each operation fetches a fresh client-credentials token; the site's
// checkout volume doesn't justify caching one.
type PayPal struct {
	cfg     config.PayPalConfig
	siteURL string
	client  *resty.Client
	log     *zap.SugaredLogger
}

func New(cfg config.PayPalConfig, siteURL string, log *zap.SugaredLogger) *PayPal {
	client := resty.New().
		SetBaseURL(cfg.GetBaseURL()).
		SetTimeout(time.Second * 30)
	for _, header := range constants.DefaultOutboundRequestHeaders {
		client.SetHeader(header.Name, header.Value)
	}

	return &PayPal{
		cfg:     cfg,
		siteURL: siteURL,
		client:  client,
		log:     log,
	}
}

func (p *PayPal) IsConfigured() bool {
	return p.cfg.IsConfigured()
}

func (p *PayPal) accessToken(ctx context.Context) (string, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetBasicAuth(p.cfg.ClientID, string(p.cfg.ClientSecret)).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetBody("grant_type=client_credentials").
		Post("/v1/oauth2/token")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", errors.Errorf("token request failed: %s", resp.Status())
	}

	token := gjson.GetBytes(resp.Body(), "access_token").String()
	if token == "" {
		return "", errors.New("failed to get access token")
	}
	return token, nil
}

// CreateOrder creates a CAPTURE-intent order and returns the provider's
// response body verbatim so the storefront sees the exact PayPal shape.
func (p *PayPal) CreateOrder(ctx context.Context, items []OrderItem, amount float64) (json.RawMessage, error) {
	token, err := p.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	value := strconv.FormatFloat(amount, 'f', 2, 64)
	body := map[string]interface{}{
		"intent": "CAPTURE",
		"purchase_units": []map[string]interface{}{
			{
				"amount": map[string]interface{}{
					"currency_code": "USD",
					"value":         value,
					"breakdown": map[string]interface{}{
						"item_total": Money{CurrencyCode: "USD", Value: value},
					},
				},
				"items": items,
			},
		},
		"application_context": map[string]interface{}{
			"brand_name":   p.cfg.BrandName,
			"landing_page": "NO_PREFERENCE",
			"user_action":  "PAY_NOW",
			"return_url":   p.siteURL + "/books/payment-success",
			"cancel_url":   p.siteURL + "/books/payment-cancel",
		},
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(body).
		Post("/v2/checkout/orders")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		p.log.Errorw("paypal create order failed", "status", resp.Status(), "body", resp.String())
		return nil, errors.New("failed to create PayPal order")
	}

	return resp.Body(), nil
}

// CaptureOrder finalizes the payment for a previously created order.
func (p *PayPal) CaptureOrder(ctx context.Context, orderID string) (json.RawMessage, error) {
	token, err := p.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", orderID).
		Post("/v2/checkout/orders/{id}/capture")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		p.log.Errorw("paypal capture order failed", "order_id", orderID, "status", resp.Status(), "body", resp.String())
		return nil, errors.New("failed to capture PayPal order")
	}

	return resp.Body(), nil
}
