package models

import (
	"fmt"
	"strings"

	"github.com/aivantu/aivantu/internal/common"
)

// Provider is a payment gateway the backend can open an order with.
type Provider string

const (
	ProviderRazorpay Provider = "razorpay"
	ProviderPaypal   Provider = "paypal"
)

func ParseProvider(s string) (Provider, error) {
	switch p := Provider(strings.ToLower(strings.TrimSpace(s))); p {
	case ProviderRazorpay, ProviderPaypal:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown payment provider %q", common.ErrorInvalidInput, s)
	}
}

type OrderRequest struct {
	Plan      string `json:"plan"`
	Amount    int    `json:"amount"`
	Currency  string `json:"currency"`
	UserEmail string `json:"user_email"`
}

type Link struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

// PaymentOrder is what the create-order endpoints return. Razorpay-style
// backends answer with order_id/key, PayPal-style ones with id/links.
type PaymentOrder struct {
	Provider   Provider `json:"-"`
	OrderID    string   `json:"order_id,omitempty"`
	ID         string   `json:"id,omitempty"`
	Amount     float64  `json:"amount,omitempty"`
	Currency   string   `json:"currency,omitempty"`
	Key        string   `json:"key,omitempty"`
	Status     string   `json:"status,omitempty"`
	ApproveURL string   `json:"approve_url,omitempty"`
	Links      []Link   `json:"links,omitempty"`
}

func (o PaymentOrder) WithDefaults() PaymentOrder {
	o.OrderID = common.FirstNonEmpty(o.OrderID, o.ID)
	if o.ApproveURL == "" {
		for _, l := range o.Links {
			if strings.EqualFold(l.Rel, "approve") || strings.EqualFold(l.Rel, "payer-action") {
				o.ApproveURL = l.Href
				break
			}
		}
	}
	if o.Status == "" {
		o.Status = "created"
	}
	return o
}
