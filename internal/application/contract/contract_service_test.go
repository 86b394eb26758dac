package contract

import (
	"context"
	"testing"
	"time"

	"github.com/dmc/portal/internal/domain/catalog"
	"github.com/dmc/portal/internal/domain/contract"
	"github.com/dmc/portal/internal/domain/partner"
	"github.com/dmc/portal/internal/domain/shared"
	"github.com/dmc/portal/internal/infrastructure/pdf"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContractRepo struct {
	contracts map[uuid.UUID]*contract.Contract
}

func newFakeContractRepo() *fakeContractRepo {
	return &fakeContractRepo{contracts: make(map[uuid.UUID]*contract.Contract)}
}

func (r *fakeContractRepo) FindByID(_ context.Context, id uuid.UUID) (*contract.Contract, error) {
	c, ok := r.contracts[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *fakeContractRepo) Save(_ context.Context, c *contract.Contract) error {
	copied := *c
	r.contracts[c.ID] = &copied
	return nil
}

func (r *fakeContractRepo) Update(_ context.Context, c *contract.Contract) error {
	copied := *c
	r.contracts[c.ID] = &copied
	return nil
}

type fakeEnvelopeRepo struct {
	envelopes map[string]*contract.SignatureEnvelope
}

func newFakeEnvelopeRepo() *fakeEnvelopeRepo {
	return &fakeEnvelopeRepo{envelopes: make(map[string]*contract.SignatureEnvelope)}
}

func (r *fakeEnvelopeRepo) FindByProviderEnvelopeID(_ context.Context, provider, providerEnvelopeID string) (*contract.SignatureEnvelope, error) {
	env, ok := r.envelopes[provider+"/"+providerEnvelopeID]
	if !ok {
		return nil, shared.ErrNotFound
	}
	copied := *env
	return &copied, nil
}

func (r *fakeEnvelopeRepo) FindLatestByContractID(_ context.Context, contractID uuid.UUID) (*contract.SignatureEnvelope, error) {
	var latest *contract.SignatureEnvelope
	for _, env := range r.envelopes {
		if env.ContractID != contractID {
			continue
		}
		if latest == nil || env.CreatedAt.After(latest.CreatedAt) {
			latest = env
		}
	}
	if latest == nil {
		return nil, shared.ErrNotFound
	}
	copied := *latest
	return &copied, nil
}

func (r *fakeEnvelopeRepo) Save(_ context.Context, env *contract.SignatureEnvelope) error {
	copied := *env
	r.envelopes[env.Provider+"/"+env.ProviderEnvelopeID] = &copied
	return nil
}

func (r *fakeEnvelopeRepo) Update(_ context.Context, env *contract.SignatureEnvelope) error {
	copied := *env
	r.envelopes[env.Provider+"/"+env.ProviderEnvelopeID] = &copied
	return nil
}

type fakeCounterpartyRepo struct {
	counterparties map[int64]*partner.Counterparty
}

func (r *fakeCounterpartyRepo) FindByID(_ context.Context, id int64) (*partner.Counterparty, error) {
	cp, ok := r.counterparties[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return cp, nil
}

func (r *fakeCounterpartyRepo) Save(_ context.Context, cp *partner.Counterparty) error {
	r.counterparties[cp.ID] = cp
	return nil
}

type fakeOfferRepo struct {
	offers map[int64]*catalog.Offer
}

func (r *fakeOfferRepo) FindByID(_ context.Context, id int64) (*catalog.Offer, error) {
	offer, ok := r.offers[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return offer, nil
}

func (r *fakeOfferRepo) FindActive(_ context.Context) ([]catalog.Offer, error) {
	return nil, nil
}

func (r *fakeOfferRepo) Save(_ context.Context, offer *catalog.Offer) error {
	r.offers[offer.ID] = offer
	return nil
}

type fakeRenderer struct {
	draftCalls  int
	signedCalls int
	failDraft   bool
}

func (r *fakeRenderer) RenderDraft(data pdf.DocumentData) (string, error) {
	r.draftCalls++
	if r.failDraft {
		return "", assert.AnError
	}
	return "contracts/" + data.ContractID.String() + "/draft.pdf", nil
}

func (r *fakeRenderer) RenderSigned(data pdf.DocumentData, _ time.Time) (string, error) {
	r.signedCalls++
	return "contracts/" + data.ContractID.String() + "/signed.pdf", nil
}

func (r *fakeRenderer) AbsolutePath(relative string) string {
	return "/storage/" + relative
}

type fixture struct {
	contractRepo *fakeContractRepo
	envelopeRepo *fakeEnvelopeRepo
	cpRepo       *fakeCounterpartyRepo
	offerRepo    *fakeOfferRepo
	renderer     *fakeRenderer
	service      *ContractService
	counterparty *partner.Counterparty
	offer        *catalog.Offer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cp, err := partner.NewCounterparty(partner.CounterpartyTypePerson,
		"Max Mustermann", "Musterstr. 1", "10115", "Berlin", "DE", "max@example.com")
	require.NoError(t, err)
	cp.ID = 1

	offer, err := catalog.NewOffer("PRO", "Pro Plan", 19900)
	require.NoError(t, err)
	offer.ID = 1

	contractRepo := newFakeContractRepo()
	envelopeRepo := newFakeEnvelopeRepo()
	renderer := &fakeRenderer{}
	cpRepo := &fakeCounterpartyRepo{counterparties: map[int64]*partner.Counterparty{1: cp}}
	offerRepo := &fakeOfferRepo{offers: map[int64]*catalog.Offer{1: offer}}

	return &fixture{
		contractRepo: contractRepo,
		envelopeRepo: envelopeRepo,
		cpRepo:       cpRepo,
		offerRepo:    offerRepo,
		renderer:     renderer,
		service:      NewContractService(contractRepo, cpRepo, offerRepo, renderer),
		counterparty: cp,
		offer:        offer,
	}
}

func TestContractService_CreateDraft(t *testing.T) {
	f := newFixture(t)

	resp, err := f.service.CreateDraft(context.Background(), CreateDraftRequest{
		CounterpartyID: 1,
		OfferID:        1,
	})
	require.NoError(t, err)
	assert.Equal(t, "draft", resp.Status)
	assert.Equal(t, "Max Mustermann", resp.Counterparty.Name)
	assert.Equal(t, "PRO", resp.Offer.Code)
	assert.True(t, resp.DraftPDFAvailable)
	assert.False(t, resp.SignedPDFAvailable)
	assert.Equal(t, 1, f.renderer.draftCalls)
}

func TestContractService_CreateDraft_UnknownCounterparty(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.CreateDraft(context.Background(), CreateDraftRequest{
		CounterpartyID: 42,
		OfferID:        1,
	})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	assert.Equal(t, "Counterparty not found", domainErr.Message)
}

func TestContractService_CreateDraft_UnknownOffer(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.CreateDraft(context.Background(), CreateDraftRequest{
		CounterpartyID: 1,
		OfferID:        42,
	})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	assert.Equal(t, "Offer not found", domainErr.Message)
}

func TestContractService_CreateDraft_InactiveOffer(t *testing.T) {
	f := newFixture(t)
	f.offer.Deactivate()

	_, err := f.service.CreateDraft(context.Background(), CreateDraftRequest{
		CounterpartyID: 1,
		OfferID:        1,
	})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "BUSINESS_RULE", domainErr.Code)
	assert.Equal(t, "Offer is not active", domainErr.Message)
}

func TestContractService_Get(t *testing.T) {
	f := newFixture(t)

	created, err := f.service.CreateDraft(context.Background(), CreateDraftRequest{
		CounterpartyID: 1,
		OfferID:        1,
	})
	require.NoError(t, err)

	resp, err := f.service.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID)
	assert.Equal(t, "draft", resp.Status)

	_, err = f.service.Get(context.Background(), uuid.New())
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "Contract not found", domainErr.Message)
}

func TestContractService_PDFPaths(t *testing.T) {
	f := newFixture(t)

	created, err := f.service.CreateDraft(context.Background(), CreateDraftRequest{
		CounterpartyID: 1,
		OfferID:        1,
	})
	require.NoError(t, err)

	path, err := f.service.DraftPDFPath(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "/storage/contracts/"+created.ID.String()+"/draft.pdf", path)

	_, err = f.service.SignedPDFPath(context.Background(), created.ID)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	assert.Equal(t, "Signed document not available", domainErr.Message)
}
