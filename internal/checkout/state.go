package checkout

import (
	"encoding/json"

	"go.uber.org/zap"
)

// DefaultStateKey is the storage key holding the serialized wizard state
const DefaultStateKey = "dmc.checkout.state"

// WizardState is the persisted checkout progress. Fields are filled in
// strict left-to-right order as the steps complete: offer, counterparty,
// contract. A nil field means the step has not been completed.
type WizardState struct {
	OfferID        *int64  `json:"offer_id"`
	CounterpartyID *int64  `json:"counterparty_id"`
	ContractID     *string `json:"contract_id"`
}

// StateStore loads and saves WizardState. Corrupt or missing stored data
// degrades to the empty state; persistence failures are logged and
// swallowed so the in-memory flow always continues.
type StateStore struct {
	storage Storage
	key     string
	logger  *zap.Logger
}

// NewStateStore creates a StateStore over the given storage
func NewStateStore(storage Storage, logger *zap.Logger) *StateStore {
	return &StateStore{storage: storage, key: DefaultStateKey, logger: logger}
}

// Load returns the stored state, or the empty state if nothing is stored
// or the stored payload is not a well-formed JSON object. Never fails.
func (s *StateStore) Load() WizardState {
	raw, ok, err := s.storage.Get(s.key)
	if err != nil {
		s.logger.Warn("Checkout state unreadable, starting over", zap.Error(err))
		return WizardState{}
	}
	if !ok {
		return WizardState{}
	}

	// Reject anything that is not a JSON object before decoding fields,
	// so an array or bare literal degrades to "no progress yet".
	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &probe); err != nil || probe == nil {
		s.logger.Warn("Checkout state corrupt, starting over")
		return WizardState{}
	}

	var state WizardState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		s.logger.Warn("Checkout state corrupt, starting over")
		return WizardState{}
	}
	return state
}

// Save shallow-merges partial over the stored state and writes the result.
// Nil fields in partial leave the stored value untouched. Persistence
// failures are logged and ignored.
func (s *StateStore) Save(partial WizardState) {
	state := s.Load()
	if partial.OfferID != nil {
		state.OfferID = partial.OfferID
	}
	if partial.CounterpartyID != nil {
		state.CounterpartyID = partial.CounterpartyID
	}
	if partial.ContractID != nil {
		state.ContractID = partial.ContractID
	}

	raw, err := json.Marshal(state)
	if err != nil {
		s.logger.Warn("Cannot serialize checkout state", zap.Error(err))
		return
	}
	if err := s.storage.Set(s.key, string(raw)); err != nil {
		s.logger.Warn("Cannot persist checkout state, progress will not survive a restart", zap.Error(err))
	}
}

// Clear removes the persisted state. Idempotent, never fails.
func (s *StateStore) Clear() {
	if err := s.storage.Delete(s.key); err != nil {
		s.logger.Warn("Cannot clear checkout state", zap.Error(err))
	}
}
