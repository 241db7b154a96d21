package payment

import (
	"context"
	"fmt"
	"math"

	"brightnest/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// IntentResponse is what the booking flow needs to collect payment on the
// client: the intent's client secret plus the amount actually charged.
type IntentResponse struct {
	PaymentIntentID string  `json:"payment_intent_id"`
	ClientSecret    string  `json:"client_secret"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
}

// PaymentService creates payment intents for priced bookings.
type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, booking *models.Booking) (*IntentResponse, error)
}

// StripePaymentService implements PaymentService against Stripe. The API key
// is set globally at boot from config.
type StripePaymentService struct {
	Currency string
	Logger   *zap.Logger
}

// NewStripePaymentService creates a Stripe-backed payment service.
func NewStripePaymentService(currency string, logger *zap.Logger) *StripePaymentService {
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}
	return &StripePaymentService{Currency: currency, Logger: logger}
}

// CreatePaymentIntent charges the booking's captured total. The metadata
// carries the booking ID and the catalog SKU so charges reconcile against
// the external billing catalog.
func (s *StripePaymentService) CreatePaymentIntent(ctx context.Context, booking *models.Booking) (*IntentResponse, error) {
	amountCents := int64(math.Round(booking.Pricing.TotalPrice * 100))

	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(s.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("booking_id", booking.ID)
	params.AddMetadata("external_product_id", booking.Pricing.ExternalProductID)

	intent, err := paymentintent.New(params)
	if err != nil {
		s.Logger.Error("failed to create payment intent",
			zap.String("bookingID", booking.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &IntentResponse{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		Amount:          booking.Pricing.TotalPrice,
		Currency:        s.Currency,
	}, nil
}
