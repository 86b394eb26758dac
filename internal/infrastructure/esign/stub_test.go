package esign

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubProvider_CreateEnvelope(t *testing.T) {
	p := NewStubProvider("test-secret", false)

	env, err := p.CreateEnvelope(context.Background(), "contracts/x/draft.pdf", "Max", "max@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, env.ProviderEnvelopeID)
	assert.True(t, strings.HasPrefix(env.SigningURL, "https://example.invalid/sign/"))
	assert.True(t, strings.HasSuffix(env.SigningURL, env.ProviderEnvelopeID))
}

func TestStubProvider_ParseWebhook(t *testing.T) {
	p := NewStubProvider("test-secret", false)
	body := []byte(`{"envelope_id":"env-1","status":"signed"}`)

	event, err := p.ParseWebhook(body, p.Sign(body))
	require.NoError(t, err)
	assert.Equal(t, "env-1", event.ProviderEnvelopeID)
	assert.Equal(t, "signed", event.Status)
	assert.Equal(t, body, event.Raw)
}

func TestStubProvider_ParseWebhook_BadSignature(t *testing.T) {
	p := NewStubProvider("test-secret", false)
	body := []byte(`{"envelope_id":"env-1","status":"signed"}`)

	_, err := p.ParseWebhook(body, "sha256=deadbeef")
	assert.ErrorIs(t, err, ErrInvalidSignature)

	_, err = p.ParseWebhook(body, "")
	assert.ErrorIs(t, err, ErrInvalidSignature)

	other := NewStubProvider("other-secret", false)
	_, err = p.ParseWebhook(body, other.Sign(body))
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestStubProvider_ParseWebhook_SkipVerify(t *testing.T) {
	p := NewStubProvider("", true)
	body := []byte(`{"envelope_id":"env-2","status":"declined"}`)

	event, err := p.ParseWebhook(body, "")
	require.NoError(t, err)
	assert.Equal(t, "declined", event.Status)
}

func TestStubProvider_ParseWebhook_Malformed(t *testing.T) {
	p := NewStubProvider("", true)

	_, err := p.ParseWebhook([]byte("not json"), "")
	assert.ErrorIs(t, err, ErrMalformedPayload)

	_, err = p.ParseWebhook([]byte(`{"status":"signed"}`), "")
	assert.ErrorIs(t, err, ErrMalformedPayload)
}
