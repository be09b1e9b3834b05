package services

import (
	"context"
	"testing"

	"github.com/aivantu/aivantu/internal/client/client"
	"github.com/aivantu/aivantu/internal/client/models"
	"github.com/aivantu/aivantu/internal/common"
	"github.com/aivantu/aivantu/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPaymentService(fc *fakeClient) PaymentService {
	return NewPaymentService(fc, NewCatalogService(fc, logging.Discard()), staticIdentity("me@x.io"), "USD", logging.Discard())
}

func TestPayment_CreateOrder(t *testing.T) {
	fc := &fakeClient{OrderRet: &models.PaymentOrder{OrderID: "order_1", Provider: models.ProviderRazorpay}}

	o, err := newPaymentService(fc).CreateOrder(context.Background(), models.ProviderRazorpay, "pro")
	require.NoError(t, err)
	assert.Equal(t, "order_1", o.OrderID)
	assert.Equal(t, models.ProviderRazorpay, fc.LastProvider)
	assert.Equal(t, models.OrderRequest{Plan: "Pro", Amount: 999, Currency: "USD", UserEmail: "me@x.io"}, fc.LastOrder)
}

func TestPayment_Rejects(t *testing.T) {
	fc := &fakeClient{}
	svc := newPaymentService(fc)

	_, err := svc.CreateOrder(context.Background(), models.ProviderPaypal, "Free")
	require.ErrorIs(t, err, ErrFreePlan)

	_, err = svc.CreateOrder(context.Background(), models.ProviderPaypal, "Gold")
	require.ErrorIs(t, err, common.ErrorInvalidInput)
	assert.Empty(t, fc.LastProvider)

	fc.OrderErr = client.ErrUnavailable
	_, err = svc.CreateOrder(context.Background(), models.ProviderPaypal, "Premium")
	require.ErrorIs(t, err, client.ErrUnavailable)
}
