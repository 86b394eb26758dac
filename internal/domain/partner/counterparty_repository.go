package partner

import "context"

// CounterpartyRepository defines the persistence interface for
// counterparties. Save reports a duplicate email as a domain conflict.
type CounterpartyRepository interface {
	FindByID(ctx context.Context, id int64) (*Counterparty, error)
	Save(ctx context.Context, counterparty *Counterparty) error
}
