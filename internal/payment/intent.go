package payment

import (
	"context" // Context for provider calls
	"errors"  // Sentinel errors
	"fmt"     // Error wrapping

	"github.com/google/uuid"                              // Dev-mode intent ids
	"github.com/stripe/stripe-go/v81"                     // Stripe API types
	stripeclient "github.com/stripe/stripe-go/v81/client" // Stripe API client
)

// ErrProvider marks a rejected payment-intent request (bad amount,
// provider-side failure). Handlers map it to a client error.
var ErrProvider = errors.New("payment provider rejected the intent")

// IntentClient issues a provider-side payment intent for an amount and
// returns the opaque client secret the frontend confirms against. No
// persistence happens here, it is purely a provider handshake.
type IntentClient interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
}

// StripeIntentClient issues real intents through the Stripe API
type StripeIntentClient struct {
	api *stripeclient.API // Process-wide Stripe client, injected once from main
}

// NewStripeIntentClient builds a client around the given secret key
func NewStripeIntentClient(secretKey string) *StripeIntentClient {
	api := &stripeclient.API{} // Dedicated client instead of the package-level stripe.Key singleton
	api.Init(secretKey, nil)
	return &StripeIntentClient{api: api}
}

// CreateIntent requests a card payment intent in USD for the given price
func (s *StripeIntentClient) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount := int64(price * 100) // Stripe takes the amount in cents
	if amount <= 0 {
		return "", fmt.Errorf("%w: amount must be positive, got %v", ErrProvider, price)
	}
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),                    // Amount in cents
		Currency:           stripe.String(string(stripe.CurrencyUSD)), // Currency is fixed
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),    // Card payments only
	}
	params.Context = ctx
	pi, err := s.api.PaymentIntents.New(params) // Create the intent
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProvider, err)
	}
	return pi.ClientSecret, nil // Opaque secret for the frontend
}

// DevIntentClient mints locally-generated intent secrets so the stack runs
// without a Stripe account. Used when no STRIPE_SECRET_KEY is configured.
type DevIntentClient struct{}

// CreateIntent validates the amount and returns a Stripe-shaped secret
func (DevIntentClient) CreateIntent(_ context.Context, price float64) (string, error) {
	amount := int64(price * 100) // Same cent conversion as the real client
	if amount <= 0 {
		return "", fmt.Errorf("%w: amount must be positive, got %v", ErrProvider, price)
	}
	// Shape matches Stripe's pi_<id>_secret_<key> so frontends behave the same
	return "pi_" + uuid.NewString() + "_secret_" + uuid.NewString(), nil
}
