package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type wizardHarness struct {
	wizard       *Wizard
	store        *StateStore
	draftCalls   atomic.Int64
	getCalls     atomic.Int64
	contractGone bool
}

func newWizardHarness(t *testing.T) (*wizardHarness, *httptest.Server) {
	t.Helper()
	h := &wizardHarness{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/counterparties":
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":2,"name":"Max","email":"max@example.com"}`))

		case r.Method == http.MethodPost && r.URL.Path == "/contracts/draft":
			h.draftCalls.Add(1)
			var body map[string]int64
			_ = json.NewDecoder(r.Body).Decode(&body)
			assert.Equal(t, int64(2), body["counterparty_id"])
			assert.Equal(t, int64(1), body["offer_id"])
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"c-1","status":"draft"}`))

		case r.Method == http.MethodGet && r.URL.Path == "/contracts/c-1":
			h.getCalls.Add(1)
			if h.contractGone {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(`{"detail":"Contract not found"}`))
				return
			}
			_, _ = w.Write([]byte(`{"id":"c-1","status":"draft"}`))

		case r.Method == http.MethodPost && r.URL.Path == "/contracts/c-1/signing/start":
			_, _ = w.Write([]byte(`{"contract_id":"c-1","status":"awaiting_signature","provider":"stub","provider_envelope_id":"env-1","signing_url":"https://example.invalid/sign/env-1"}`))

		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail":"Not found"}`))
		}
	}))
	t.Cleanup(srv.Close)

	h.store = NewStateStore(NewMemoryStorage(), zap.NewNop())
	h.wizard = NewWizard(h.store, NewClient(srv.URL), zap.NewNop())
	return h, srv
}

func TestWizard_GuardRedirectsToFirstStep(t *testing.T) {
	h, _ := newWizardHarness(t)

	// nothing stored: everything but the first step redirects
	assert.Equal(t, StepOffer, h.wizard.Guard(StepOffer))
	assert.Equal(t, StepOffer, h.wizard.Guard(StepCustomer))
	assert.Equal(t, StepOffer, h.wizard.Guard(StepPreview))
	assert.Equal(t, StepOffer, h.wizard.Guard(StepSign))

	h.wizard.SelectOffer(1)
	assert.Equal(t, StepCustomer, h.wizard.Guard(StepCustomer))
	assert.Equal(t, StepOffer, h.wizard.Guard(StepPreview))

	h.store.Save(WizardState{CounterpartyID: int64Ptr(2)})
	assert.Equal(t, StepPreview, h.wizard.Guard(StepPreview))
	assert.Equal(t, StepOffer, h.wizard.Guard(StepSign))

	h.store.Save(WizardState{ContractID: strPtr("c-1")})
	assert.Equal(t, StepSign, h.wizard.Guard(StepSign))
}

func TestWizard_SubmitCustomer(t *testing.T) {
	h, _ := newWizardHarness(t)
	h.wizard.SelectOffer(1)

	cp, err := h.wizard.SubmitCustomer(context.Background(), CounterpartyRequest{
		Name: "Max", Street: "Musterstr. 1", PostalCode: "10115", City: "Berlin", Email: "max@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), cp.ID)

	state := h.wizard.State()
	require.NotNil(t, state.CounterpartyID)
	assert.Equal(t, int64(2), *state.CounterpartyID)
}

func TestWizard_EnsureDraft_CreatesOnce(t *testing.T) {
	h, _ := newWizardHarness(t)
	h.wizard.SelectOffer(1)
	h.store.Save(WizardState{CounterpartyID: int64Ptr(2)})

	contract, err := h.wizard.EnsureDraft(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "c-1", contract.ID)
	assert.Equal(t, int64(1), h.draftCalls.Load())

	// second entry reuses the stored contract, no new draft
	contract, err = h.wizard.EnsureDraft(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "c-1", contract.ID)
	assert.Equal(t, int64(1), h.draftCalls.Load())
	assert.Equal(t, int64(1), h.getCalls.Load())
}

func TestWizard_EnsureDraft_FallsBackWhenLookupFails(t *testing.T) {
	h, _ := newWizardHarness(t)
	h.wizard.SelectOffer(1)
	h.store.Save(WizardState{CounterpartyID: int64Ptr(2), ContractID: strPtr("c-1")})
	h.contractGone = true

	contract, err := h.wizard.EnsureDraft(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "c-1", contract.ID)
	assert.Equal(t, int64(1), h.draftCalls.Load())
}

func TestWizard_StartSigning(t *testing.T) {
	h, _ := newWizardHarness(t)
	h.wizard.SelectOffer(1)
	h.store.Save(WizardState{CounterpartyID: int64Ptr(2), ContractID: strPtr("c-1")})

	session, err := h.wizard.StartSigning(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "c-1", session.ContractID)
	assert.Equal(t, "awaiting_signature", session.Status)
	assert.NotEmpty(t, session.SigningURL)
}

func TestWizard_StartSigning_NoContract(t *testing.T) {
	h, _ := newWizardHarness(t)

	_, err := h.wizard.StartSigning(context.Background())
	assert.ErrorIs(t, err, ErrNoContract)
}

func TestWizard_RestartClearsProgress(t *testing.T) {
	h, _ := newWizardHarness(t)
	h.wizard.SelectOffer(1)
	h.store.Save(WizardState{CounterpartyID: int64Ptr(2), ContractID: strPtr("c-1")})

	h.wizard.Restart()
	assert.Equal(t, WizardState{}, h.wizard.State())
}
