package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the local development address of the portal API
const DefaultBaseURL = "http://localhost:8080"

// maxErrorBodyLength caps how much of a non-JSON error body is surfaced
// to the user.
const maxErrorBodyLength = 200

// APIError is the uniform error for non-success responses from the portal
// API. The message is the server's detail field when available, otherwise
// the capped raw body, otherwise a generic fallback.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Offer is an offer as returned by the portal API
type Offer struct {
	ID            int64           `json:"id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Description   *string         `json:"description"`
	Currency      string          `json:"currency"`
	Price         decimal.Decimal `json:"price"`
	BillingPeriod string          `json:"billing_period"`
}

// CounterpartyRequest carries the customer fields for registration
type CounterpartyRequest struct {
	Type       string `json:"type,omitempty"`
	Name       string `json:"name"`
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
	Country    string `json:"country,omitempty"`
	Email      string `json:"email"`
}

// Counterparty is a registered customer
type Counterparty struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ContractParty is the counterparty summary nested in a contract
type ContractParty struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ContractOffer is the offer summary nested in a contract
type ContractOffer struct {
	ID            int64           `json:"id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Currency      string          `json:"currency"`
	Price         decimal.Decimal `json:"price"`
	BillingPeriod string          `json:"billing_period"`
}

// Contract is a contract as returned by the portal API
type Contract struct {
	ID                 string        `json:"id"`
	Status             string        `json:"status"`
	Counterparty       ContractParty `json:"counterparty"`
	Offer              ContractOffer `json:"offer"`
	DraftPDFAvailable  bool          `json:"draft_pdf_available"`
	SignedPDFAvailable bool          `json:"signed_pdf_available"`
	SignedAt           *time.Time    `json:"signed_at"`
}

// StatusSigned is the terminal contract status the poller watches for
const StatusSigned = "signed"

// SigningSession describes a started signing process. It is held in memory
// only for the duration of the signing step.
type SigningSession struct {
	ContractID         string `json:"contract_id"`
	Status             string `json:"status"`
	Provider           string `json:"provider"`
	ProviderEnvelopeID string `json:"provider_envelope_id"`
	SigningURL         string `json:"signing_url"`
}

// Client is a typed HTTP client for the portal API. It carries no state
// beyond its configuration and performs no retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	headers    http.Header
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithHeader adds a header sent on every request. The JSON content type
// cannot be overridden.
func WithHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.headers.Set(key, value)
	}
}

// NewClient creates a Client for the given base URL. An empty base URL
// falls back to the local development address.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		headers:    http.Header{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListOffers returns the active offers
func (c *Client) ListOffers(ctx context.Context) ([]Offer, error) {
	var offers []Offer
	if err := c.do(ctx, http.MethodGet, "/offers", nil, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

// CreateCounterparty registers a customer
func (c *Client) CreateCounterparty(ctx context.Context, req CounterpartyRequest) (*Counterparty, error) {
	var cp Counterparty
	if err := c.do(ctx, http.MethodPost, "/counterparties", req, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

// CreateContractDraft creates a contract draft from a customer and an offer
func (c *Client) CreateContractDraft(ctx context.Context, counterpartyID, offerID int64) (*Contract, error) {
	body := map[string]int64{
		"counterparty_id": counterpartyID,
		"offer_id":        offerID,
	}
	var contract Contract
	if err := c.do(ctx, http.MethodPost, "/contracts/draft", body, &contract); err != nil {
		return nil, err
	}
	return &contract, nil
}

// GetContract fetches a contract by its identifier
func (c *Client) GetContract(ctx context.Context, id string) (*Contract, error) {
	var contract Contract
	if err := c.do(ctx, http.MethodGet, "/contracts/"+id, nil, &contract); err != nil {
		return nil, err
	}
	return &contract, nil
}

// StartSigning begins the signing process for a contract
func (c *Client) StartSigning(ctx context.Context, id string) (*SigningSession, error) {
	var session SigningSession
	if err := c.do(ctx, http.MethodPost, "/contracts/"+id+"/signing/start", nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// DraftPDFURL returns the download URL of a contract's draft document
func (c *Client) DraftPDFURL(id string) string {
	return c.baseURL + "/contracts/" + id + "/draft-pdf"
}

// SignedPDFURL returns the download URL of a contract's signed document
func (c *Client) SignedPDFURL(id string) string {
	return c.baseURL + "/contracts/" + id + "/signed-pdf"
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	for key, values := range c.headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func newAPIError(resp *http.Response) *APIError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Detail != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: payload.Detail}
	}

	text := strings.TrimSpace(string(raw))
	if text != "" {
		if len(text) > maxErrorBodyLength {
			text = text[:maxErrorBodyLength]
			// don't leave a split rune at the cut
			for !utf8.ValidString(text) {
				text = text[:len(text)-1]
			}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: text}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("request failed: %d", resp.StatusCode),
	}
}
