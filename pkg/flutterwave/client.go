// Package flutterwave wraps the hosted checkout configuration and the wire
// types the gateway exchanges with us. The checkout itself is a black box;
// this package only validates keys and shapes payloads.
package flutterwave

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ensigotrace/ensigotrace-backend/pkg/config"
	"github.com/ensigotrace/ensigotrace-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

const (
	testEnv = "test"
	liveEnv = "live"

	testKeyPrefix = "FLWPUBK_TEST-"
	liveKeyPrefix = "FLWPUBK-"
)

// StatusSuccessful is the only callback status that marks a sale paid.
const StatusSuccessful = "successful"

// PaymentOptions lists the methods offered in the hosted widget.
const PaymentOptions = "card,mobilemoney,ussd"

var (
	errPublicKeyRequired = errors.New("flutterwave public key is required")
	errInvalidEnv        = fmt.Errorf("flutterwave environment must be %q or %q", testEnv, liveEnv)
)

// Client holds validated checkout configuration.
type Client struct {
	publicKey   string
	environment string
	currency    string
	logoURL     string
}

// NewClient validates the configured key against the environment once at
// boot, the way a gateway secret should fail fast rather than at first
// checkout.
func NewClient(ctx context.Context, cfg config.FlutterwaveConfig, logg *logger.Logger) (*Client, error) {
	env, err := normalizeEnv(cfg.Environment())
	if err != nil {
		return nil, err
	}

	publicKey := strings.TrimSpace(cfg.PublicKey)
	if publicKey == "" {
		return nil, errPublicKeyRequired
	}
	if err := validatePublicKey(env, publicKey); err != nil {
		return nil, err
	}

	currency := strings.TrimSpace(cfg.Currency)
	if currency == "" {
		currency = "UGX"
	}

	if logg != nil {
		logg.Info(ctx, fmt.Sprintf("flutterwave client initialized (%s)", env))
	}

	return &Client{
		publicKey:   publicKey,
		environment: env,
		currency:    currency,
		logoURL:     cfg.LogoURL,
	}, nil
}

// Ready reports whether the client can open a checkout. A nil client stands
// in for the external script not having loaded yet.
func (c *Client) Ready() bool {
	return c != nil && c.publicKey != ""
}

// PublicKey returns the configured public key.
func (c *Client) PublicKey() string {
	if c == nil {
		return ""
	}
	return c.publicKey
}

// Environment reports the normalized environment in use.
func (c *Client) Environment() string {
	if c == nil {
		return ""
	}
	return c.environment
}

// Currency returns the checkout currency.
func (c *Client) Currency() string {
	if c == nil {
		return ""
	}
	return c.currency
}

// LogoURL returns the customization logo, if configured.
func (c *Client) LogoURL() string {
	if c == nil {
		return ""
	}
	return c.logoURL
}

// Customer identifies the payer on the hosted widget.
type Customer struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Name        string `json:"name"`
}

// Customizations controls the widget presentation.
type Customizations struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Logo        string `json:"logo,omitempty"`
}

// CheckoutRequest is the outbound payload handed to the hosted checkout.
type CheckoutRequest struct {
	PublicKey      string            `json:"public_key"`
	TxRef          string            `json:"tx_ref"`
	Amount         decimal.Decimal   `json:"amount"`
	Currency       string            `json:"currency"`
	PaymentOptions string            `json:"payment_options"`
	Customer       Customer          `json:"customer"`
	Customizations Customizations    `json:"customizations"`
	Meta           map[string]string `json:"meta"`
}

// Callback is the inbound result delivered after the widget closes a
// transaction. Any status other than "successful" is an explicit failure;
// the widget being dismissed produces no callback at all.
type Callback struct {
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id,omitempty"`
	TxRef         string `json:"tx_ref"`
}

// Successful reports whether the callback settles the payment.
func (c Callback) Successful() bool {
	return c.Status == StatusSuccessful
}

func normalizeEnv(raw string) (string, error) {
	env := strings.TrimSpace(strings.ToLower(raw))
	if env == "" {
		env = testEnv
	}
	switch env {
	case testEnv, liveEnv:
		return env, nil
	default:
		return "", errInvalidEnv
	}
}

func validatePublicKey(env, key string) error {
	switch env {
	case testEnv:
		if strings.HasPrefix(key, testKeyPrefix) {
			return nil
		}
		return fmt.Errorf("flutterwave environment %q requires a test public key (%s)", testEnv, testKeyPrefix)
	case liveEnv:
		if strings.HasPrefix(key, liveKeyPrefix) && !strings.HasPrefix(key, testKeyPrefix) {
			return nil
		}
		return fmt.Errorf("flutterwave environment %q requires a live public key (%s)", liveEnv, liveKeyPrefix)
	default:
		return errInvalidEnv
	}
}
