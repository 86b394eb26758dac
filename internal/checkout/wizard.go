package checkout

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// Step identifies one of the four checkout steps
type Step int

const (
	StepOffer Step = iota + 1
	StepCustomer
	StepPreview
	StepSign
)

func (s Step) String() string {
	switch s {
	case StepOffer:
		return "offer"
	case StepCustomer:
		return "customer"
	case StepPreview:
		return "preview"
	case StepSign:
		return "sign"
	}
	return "unknown"
}

// Wizard orchestrates the four-step checkout flow: select an offer,
// register the customer, preview the contract draft, sign. Progress is
// persisted through the state store so the flow survives restarts; the
// server independently re-validates every stored reference.
type Wizard struct {
	state  *StateStore
	client *Client
	logger *zap.Logger
}

// NewWizard creates a Wizard over the given state store and API client
func NewWizard(state *StateStore, client *Client, logger *zap.Logger) *Wizard {
	return &Wizard{state: state, client: client, logger: logger}
}

// Guard checks whether the stored progress allows entering the given step.
// When a prerequisite from a prior step is missing it returns StepOffer:
// a silent navigation correction, not an error. Fields belonging to later
// steps are never inspected.
func (w *Wizard) Guard(step Step) Step {
	state := w.state.Load()
	switch step {
	case StepCustomer:
		if state.OfferID == nil {
			return StepOffer
		}
	case StepPreview:
		if state.OfferID == nil || state.CounterpartyID == nil {
			return StepOffer
		}
	case StepSign:
		if state.OfferID == nil || state.CounterpartyID == nil || state.ContractID == nil {
			return StepOffer
		}
	}
	return step
}

// SelectOffer records the chosen offer and completes the first step
func (w *Wizard) SelectOffer(offerID int64) {
	w.state.Save(WizardState{OfferID: &offerID})
}

// SubmitCustomer registers the customer and completes the second step
func (w *Wizard) SubmitCustomer(ctx context.Context, req CounterpartyRequest) (*Counterparty, error) {
	cp, err := w.client.CreateCounterparty(ctx, req)
	if err != nil {
		return nil, err
	}
	w.state.Save(WizardState{CounterpartyID: &cp.ID})
	return cp, nil
}

// EnsureDraft is the preview step's entry action. When a contract
// reference is stored it tries to reuse that contract; any failure on the
// lookup falls back to creating a fresh draft, so draft creation stays
// idempotent across reloads.
func (w *Wizard) EnsureDraft(ctx context.Context) (*Contract, error) {
	state := w.state.Load()

	if state.ContractID != nil {
		contract, err := w.client.GetContract(ctx, *state.ContractID)
		if err == nil {
			return contract, nil
		}
		w.logger.Info("Stored contract not reusable, creating a new draft",
			zap.String("contract_id", *state.ContractID),
			zap.Error(err),
		)
	}

	contract, err := w.client.CreateContractDraft(ctx, *state.CounterpartyID, *state.OfferID)
	if err != nil {
		return nil, err
	}
	w.state.Save(WizardState{ContractID: &contract.ID})
	return contract, nil
}

// ErrNoContract is returned when signing is attempted without a stored
// contract reference. The guard normally prevents this.
var ErrNoContract = errors.New("no contract draft in checkout state")

// StartSigning begins the signing process for the stored contract. The
// returned session lives in memory only.
func (w *Wizard) StartSigning(ctx context.Context) (*SigningSession, error) {
	state := w.state.Load()
	if state.ContractID == nil {
		return nil, ErrNoContract
	}
	return w.client.StartSigning(ctx, *state.ContractID)
}

// State exposes the current stored progress
func (w *Wizard) State() WizardState {
	return w.state.Load()
}

// Restart drops all stored progress
func (w *Wizard) Restart() {
	w.state.Clear()
}

// Complete drops stored progress after a finished flow
func (w *Wizard) Complete() {
	w.state.Clear()
}
