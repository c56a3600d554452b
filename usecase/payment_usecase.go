package usecase

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"jobcast/domain/dto"
	"jobcast/domain/model"
	"jobcast/domain/repository"
	"jobcast/infrastructure/clients/chain"
	"jobcast/infrastructure/configuration"
	"jobcast/infrastructure/logger"
)

// IPaymentUsecase verifies job posting payments against the chain.
type IPaymentUsecase interface {
	VerifyPayment(ctx context.Context, req *dto.VerifyPaymentRequest) (*dto.VerifyPaymentResponse, error)
}

type paymentUsecase struct {
	chainClient chain.IChain
	jobRepo     repository.IJob
	payment     configuration.Payment
}

func NewPaymentUsecase(chainClient chain.IChain, jobRepo repository.IJob, payment configuration.Payment) IPaymentUsecase {
	return &paymentUsecase{
		chainClient: chainClient,
		jobRepo:     jobRepo,
		payment:     payment,
	}
}

// VerifyPayment runs the three checks (recipient, chain, amount) against a
// mined transaction. A failed check yields verified=false with the check
// breakdown, not an error; errors are reserved for missing or reverted
// transactions and RPC failures.
func (u *paymentUsecase) VerifyPayment(ctx context.Context, req *dto.VerifyPaymentRequest) (*dto.VerifyPaymentResponse, error) {
	tx, err := u.chainClient.GetTransaction(ctx, req.TxHash)
	if err != nil {
		return nil, err
	}

	receipt, err := u.chainClient.GetReceipt(ctx, req.TxHash)
	if err != nil {
		return nil, err
	}
	if !receipt.Success {
		return nil, model.ErrTransactionFailed
	}

	chainID, err := u.chainClient.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("chain id lookup failed: %w", err)
	}

	checks := model.PaymentChecks{
		ValidChain: chainID == u.payment.ChainID,
	}

	isToken := req.Token != "" && !strings.EqualFold(req.Token, "ETH")
	if isToken {
		// Token payments call the token contract, so tx.To is the contract
		// address and the fee moves in a Transfer log. The log is not decoded
		// here; the amount check passes on a matching contract address only.
		checks.ValidRecipient = u.payment.Token.ContractAddress != "" &&
			strings.EqualFold(tx.To, u.payment.Token.ContractAddress)
		checks.ValidAmount = checks.ValidRecipient
	} else {
		checks.ValidRecipient = u.payment.RecipientAddress != "" &&
			strings.EqualFold(tx.To, u.payment.RecipientAddress)
		checks.ValidAmount = u.amountCovered(tx.Value, req.ExpectedAmount)
	}

	verified := checks.ValidRecipient && checks.ValidChain && checks.ValidAmount

	if verified && req.JobID != "" {
		if err := u.jobRepo.VerifyPayment(ctx, req.TxHash, req.JobID); err != nil {
			// Verification already succeeded on-chain; the job record catches
			// up on the next attempt.
			logger.GetLogger().
				WithField("jobId", req.JobID).
				WithField("txHash", req.TxHash).
				WithField("error", err).
				Error("Failed to mark job payment as verified")
		}
	}

	return &dto.VerifyPaymentResponse{
		Verified: verified,
		Transaction: dto.PaymentTransactionInfo{
			Hash:        tx.Hash,
			From:        tx.From,
			To:          tx.To,
			Value:       tx.Value,
			Token:       req.Token,
			ChainID:     chainID,
			BlockNumber: receipt.BlockNumber,
		},
		Checks: checks,
	}, nil
}

// amountCovered reports whether the transferred value meets the expected fee.
// The override, when present, replaces the configured posting fee.
func (u *paymentUsecase) amountCovered(value, override string) bool {
	expected := u.payment.JobPostingFee
	if override != "" {
		expected = override
	}
	want, ok := new(big.Int).SetString(expected, 10)
	if !ok {
		return false
	}
	got, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return false
	}
	return got.Cmp(want) >= 0
}
