package payments

import (
	"context"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// Client wraps the Stripe SDK behind the one call the service layer needs,
// so tests can substitute it.
type Client struct {
	api *client.API
}

func NewClient(secretKey string) *Client {
	api := &client.API{}
	api.Init(secretKey, nil)

	return &Client{api: api}
}

func (c *Client) CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	params.Context = ctx

	return c.api.CheckoutSessions.New(params)
}
