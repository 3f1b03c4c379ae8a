// Package mpesa implements the Daraja STK push flow: bearer token
// acquisition with long-lived client credentials, the signed push request,
// and the asynchronous callback payload.
package mpesa

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/imraac/LMS-backend/internal/logger"
)

// timestampLayout is the gateway's timestamp format (YYYYMMDDHHMMSS).
const timestampLayout = "20060102150405"

// ResponseCodeSuccess is the gateway code for an accepted push request.
const ResponseCodeSuccess = "0"

// ResultCodeSuccess is the gateway code for a completed payment in a callback.
const ResultCodeSuccess = 0

// ErrGatewayUnavailable is returned when the gateway cannot be reached
// or replies with a non-2xx status.
var ErrGatewayUnavailable = errors.New("payment gateway unavailable")

// Config carries the gateway credentials and endpoints.
// It is passed explicitly at construction; nothing here is process-global.
type Config struct {
	BaseURL        string        // Gateway base URL, e.g. https://sandbox.safaricom.co.ke
	ConsumerKey    string        // OAuth consumer key
	ConsumerSecret string        // OAuth consumer secret
	Shortcode      string        // Business shortcode (PartyB)
	Passkey        string        // Lipa na M-Pesa online passkey
	CallbackURL    string        // Publicly reachable callback endpoint
	Timeout        time.Duration // Per-request timeout for outbound calls
}

// TokenCache caches gateway bearer tokens between requests.
type TokenCache interface {
	GetAccessToken(ctx context.Context) (string, error)
	SetAccessToken(ctx context.Context, token string) error
}

// Client talks to the Daraja API.
type Client struct {
	cfg        Config
	httpClient *http.Client
	tokenCache TokenCache
}

// NewClient creates a gateway client. tokenCache may be nil, in which case
// every push request acquires a fresh token.
func NewClient(cfg Config, tokenCache TokenCache) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		tokenCache: tokenCache,
	}
}

// GeneratePassword derives the push request password for the given instant:
// base64(shortcode + passkey + timestamp). Returns the password and the
// timestamp string used to derive it.
func GeneratePassword(shortcode, passkey string, now time.Time) (string, string) {
	timestamp := now.Format(timestampLayout)
	password := base64.StdEncoding.EncodeToString([]byte(shortcode + passkey + timestamp))
	return password, timestamp
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

// AccessToken returns a gateway bearer token, from cache when possible.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	if c.tokenCache != nil {
		if token, err := c.tokenCache.GetAccessToken(ctx); err == nil && token != "" {
			return token, nil
		}
	}

	url := c.cfg.BaseURL + "/oauth/v1/generate?grant_type=client_credentials"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.cfg.ConsumerKey, c.cfg.ConsumerSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to request gateway access token", "error", err)
		return "", fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("gateway token endpoint returned non-OK status", "status", resp.StatusCode)
		return "", fmt.Errorf("%w: token endpoint status %d", ErrGatewayUnavailable, resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("%w: decoding token response: %v", ErrGatewayUnavailable, err)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", ErrGatewayUnavailable)
	}

	if c.tokenCache != nil {
		if err := c.tokenCache.SetAccessToken(ctx, tr.AccessToken); err != nil {
			logger.Log.Warnw("failed to cache gateway access token", "error", err)
		}
	}

	return tr.AccessToken, nil
}

// STKPushRequest is the push request body sent to the gateway.
type STKPushRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            string `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

// STKPushResponse is the gateway's synchronous reply to a push request.
type STKPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
}

// Accepted reports whether the gateway accepted the push request.
func (r *STKPushResponse) Accepted() bool {
	return r.ResponseCode == ResponseCodeSuccess
}

// STKPush prompts the given phone number to approve a payment of amount.
// The returned response carries the CheckoutRequestID correlation id used
// to match the asynchronous callback.
func (c *Client) STKPush(ctx context.Context, amount float64, phoneNumber string) (*STKPushResponse, error) {
	token, err := c.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	password, timestamp := GeneratePassword(c.cfg.Shortcode, c.cfg.Passkey, time.Now())
	payload := STKPushRequest{
		BusinessShortCode: c.cfg.Shortcode,
		Password:          password,
		Timestamp:         timestamp,
		TransactionType:   "CustomerPayBillOnline",
		Amount:            fmt.Sprintf("%.0f", amount),
		PartyA:            phoneNumber,
		PartyB:            c.cfg.Shortcode,
		PhoneNumber:       phoneNumber,
		CallBackURL:       c.cfg.CallbackURL,
		AccountReference:  "SubscriptionPayment",
		TransactionDesc:   "Subscription payment",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := c.cfg.BaseURL + "/mpesa/stkpush/v1/processrequest"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to call gateway push endpoint", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	var pushResp STKPushResponse
	if err := json.NewDecoder(resp.Body).Decode(&pushResp); err != nil {
		return nil, fmt.Errorf("%w: decoding push response: %v", ErrGatewayUnavailable, err)
	}

	logger.Log.Infow("gateway push response",
		"checkout_request_id", pushResp.CheckoutRequestID,
		"response_code", pushResp.ResponseCode,
		"description", pushResp.ResponseDescription,
	)

	return &pushResp, nil
}
