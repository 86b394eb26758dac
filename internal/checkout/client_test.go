package checkout

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListOffers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/offers", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"code":"PRO","name":"Pro Plan","currency":"EUR","price":"199","billing_period":"monthly"}]`))
	}))
	defer srv.Close()

	offers, err := NewClient(srv.URL).ListOffers(context.Background())
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, "PRO", offers[0].Code)
	assert.Equal(t, "199", offers[0].Price.String())
}

func TestClient_CreateCounterparty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/counterparties", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":7,"name":"Max","email":"max@example.com"}`))
	}))
	defer srv.Close()

	cp, err := NewClient(srv.URL).CreateCounterparty(context.Background(), CounterpartyRequest{
		Name: "Max", Street: "Musterstr. 1", PostalCode: "10115", City: "Berlin", Email: "max@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), cp.ID)
}

func TestClient_ErrorWithDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Not found"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).GetContract(context.Background(), "nope")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Equal(t, "Not found", apiErr.Message)
}

func TestClient_ErrorWithRawBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).GetContract(context.Background(), "x")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 502, apiErr.StatusCode)
	assert.Equal(t, "upstream exploded", apiErr.Message)
}

func TestClient_ErrorBodyTruncated(t *testing.T) {
	long := strings.Repeat("x", 5000)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(long))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).GetContract(context.Background(), "x")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Len(t, apiErr.Message, maxErrorBodyLength)
	assert.Equal(t, long[:maxErrorBodyLength], apiErr.Message)
}

func TestClient_ErrorBodyTruncatedOnRuneBoundary(t *testing.T) {
	// 3-byte runes; the byte cap lands mid-rune
	long := strings.Repeat("€", 100)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(long))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).GetContract(context.Background(), "x")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, utf8.ValidString(apiErr.Message))
	assert.Equal(t, strings.Repeat("€", 66), apiErr.Message)
}

func TestClient_ErrorEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).GetContract(context.Background(), "x")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "request failed: 503", apiErr.Message)
}

func TestClient_ExtraHeadersDoNotOverrideContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "abc-123", r.Header.Get("X-Request-ID"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL,
		WithHeader("X-Request-ID", "abc-123"),
		WithHeader("Content-Type", "text/plain"))
	_, err := client.ListOffers(context.Background())
	require.NoError(t, err)
}

func TestClient_MalformedSuccessBodyPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("this is not json"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).ListOffers(context.Background())
	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestClient_PDFURLs(t *testing.T) {
	client := NewClient("http://localhost:9999/")
	assert.Equal(t, "http://localhost:9999/contracts/c-1/draft-pdf", client.DraftPDFURL("c-1"))
	assert.Equal(t, "http://localhost:9999/contracts/c-1/signed-pdf", client.SignedPDFURL("c-1"))
}

func TestClient_DefaultBaseURL(t *testing.T) {
	client := NewClient("")
	assert.Equal(t, DefaultBaseURL+"/contracts/x/draft-pdf", client.DraftPDFURL("x"))
}
