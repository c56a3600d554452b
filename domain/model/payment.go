package model

// ChainTransaction is the subset of an on-chain transaction the verifier needs.
// Value is the transferred amount in the smallest unit, as a decimal string.
type ChainTransaction struct {
	Hash  string
	From  string
	To    string
	Value string
}

// ChainReceipt is the subset of a transaction receipt the verifier needs.
type ChainReceipt struct {
	Success     bool
	BlockNumber uint64
}

// PaymentChecks is the per-rule breakdown of a verification run.
type PaymentChecks struct {
	ValidRecipient bool `json:"validRecipient"`
	ValidChain     bool `json:"validChain"`
	ValidAmount    bool `json:"validAmount"`
}
