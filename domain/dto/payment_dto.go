package dto

import "jobcast/domain/model"

// VerifyPaymentRequest is the POST /api/verify-payment body. Token selects the
// fee schedule ("ETH" when empty); ExpectedAmount overrides the configured fee.
type VerifyPaymentRequest struct {
	TxHash         string `json:"txHash"`
	Token          string `json:"token,omitempty"`
	ExpectedAmount string `json:"expectedAmount,omitempty"`
	JobID          string `json:"jobId,omitempty"`
}

// VerifyPaymentResponse wraps the verification outcome in the original wire
// shape: the transaction summary plus a per-check breakdown.
type VerifyPaymentResponse struct {
	Verified    bool                   `json:"verified"`
	Transaction PaymentTransactionInfo `json:"transaction"`
	Checks      model.PaymentChecks    `json:"checks"`
}

type PaymentTransactionInfo struct {
	Hash        string `json:"hash"`
	From        string `json:"from"`
	To          string `json:"to"`
	Value       string `json:"value"`
	Token       string `json:"token,omitempty"`
	ChainID     int64  `json:"chainId"`
	BlockNumber uint64 `json:"blockNumber"`
}
