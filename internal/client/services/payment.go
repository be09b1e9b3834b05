package services

import (
	"context"
	"fmt"

	"github.com/aivantu/aivantu/internal/client/client"
	"github.com/aivantu/aivantu/internal/client/models"
	"github.com/aivantu/aivantu/internal/common"
	"github.com/aivantu/aivantu/internal/logging"
)

type PaymentService interface {
	CreateOrder(ctx context.Context, provider models.Provider, plan string) (*models.PaymentOrder, error)
}

type paymentService struct {
	client   client.Client
	catalog  CatalogService
	identity Identity
	currency string
	log      logging.Logger
}

func NewPaymentService(client client.Client, catalog CatalogService, identity Identity, currency string, log logging.Logger) PaymentService {
	return &paymentService{client: client, catalog: catalog, identity: identity, currency: currency, log: log}
}

// CreateOrder opens an order for plan with the given provider. The amount
// comes from the plan catalogue, never from the user.
func (s *paymentService) CreateOrder(ctx context.Context, provider models.Provider, plan string) (*models.PaymentOrder, error) {
	p, ok := models.FindPlan(s.catalog.Plans(), plan)
	if !ok {
		return nil, fmt.Errorf("%w: unknown plan %q", common.ErrorInvalidInput, plan)
	}
	if p.IsFree() {
		return nil, fmt.Errorf("%w: %s", ErrFreePlan, p.Name)
	}

	order, err := s.client.CreateOrder(ctx, provider, models.OrderRequest{
		Plan:      p.Name,
		Amount:    p.Price,
		Currency:  common.FirstNonEmpty(s.currency, "INR"),
		UserEmail: s.identity.Email(ctx),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "payment order created", "provider", provider, "plan", p.Name, "order_id", order.OrderID)
	return order, nil
}
