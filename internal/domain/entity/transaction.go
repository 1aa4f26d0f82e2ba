package entity

// TransactionType is the tagged variant of exactly two cases a ledger entry
// can take: credits earned or credits spent. The amount is stored unsigned;
// its sign is implied by the type.
type TransactionType string

const (
	TransactionEarn  TransactionType = "earn"
	TransactionSpent TransactionType = "spent"
)

// Valid reports whether t is one of the two known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionEarn || t == TransactionSpent
}

// Transaction is one ledger entry belonging to exactly one user. The
// relationship is extrinsic: it is established only by which user's
// identifier was used to fetch the entry, not embedded in the record.
type Transaction struct {
	TransactionType TransactionType `json:"transaction_type"`
	ActivityType    string          `json:"activity_type"` // Free-form description of the source action.
	Amount          float64         `json:"amount"`        // Non-negative; sign implied by TransactionType.
	CreatedAt       string          `json:"created_at"`    // ISO-like timestamp string, server-formatted.
}
